// Command ptable is an interactive reference over a CSV table of chemical
// elements.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/ptable/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
