package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/ptable/internal/shell"
)

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive element menu",
		Long: `Open the interactive element menu.

The menu offers lookups, searches, group/period listings, the average
atomic mass, and exports to HTML, JSON, XML and Markdown. Choose 9 to exit.
Running ptable without a subcommand does the same.

Example:
  ptable shell --data ./elements.csv --out-dir ./out`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(rootOpts, cmd)
		},
	}
	return cmd
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	a, err := newApp(opts, cmd)
	if err != nil {
		return err
	}

	sh := shell.New(a.store,
		shell.WithInput(cmd.InOrStdin()),
		shell.WithOutput(cmd.OutOrStdout()),
		shell.WithLogger(a.logger),
		shell.WithOutputPath(a.cfg.OutputPath),
	)

	if err := sh.Run(commandContext(cmd)); err != nil {
		return WrapExitError(ExitFailure, "shell stopped", err)
	}
	a.logger.Debug("shell finished")
	return nil
}
