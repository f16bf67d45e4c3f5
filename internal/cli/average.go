package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ptable/internal/aggregate"
	"github.com/roach88/ptable/internal/store"
)

// AverageResult is the JSON payload of the average command.
type AverageResult struct {
	Field   string  `json:"field"`
	Average float64 `json:"average"`
	Display string  `json:"display"`
}

// NewAverageCommand creates the average command.
func NewAverageCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "average",
		Short: "Print the average atomic mass",
		Long: `Print the arithmetic mean of AtomicMass over all elements.

Values that are not plain decimal numbers (e.g. "[209]") are skipped.
Prints 0.00 when no value parses.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAverage(rootOpts, cmd)
		},
	}
	return cmd
}

func runAverage(opts *RootOptions, cmd *cobra.Command) error {
	f := formatter(opts, cmd)

	a, err := newApp(opts, cmd)
	if err != nil {
		reportStartupError(f, err)
		return err
	}

	avg := aggregate.AverageMass(a.store.Records())
	if opts.Format == "json" {
		return f.Success(AverageResult{
			Field:   store.FieldAtomicMass,
			Average: avg,
			Display: aggregate.FormatMass(avg),
		})
	}
	return f.Success(fmt.Sprintf("Average relative atomic mass: %s", aggregate.FormatMass(avg)))
}
