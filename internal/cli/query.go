package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ptable/internal/query"
	"github.com/roach88/ptable/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name|symbol|number>",
		Short: "Show the properties of an element",
		Long: `Show the properties of an element.

The query is matched case-insensitively against AtomicNumber, then
Element, then Symbol; the first field with matches wins.

Example:
  ptable show 8
  ptable show oxygen
  ptable show O --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, cmd, func(records []store.Record) []store.Record {
				return query.Lookup(records, args[0])
			}, fmt.Sprintf("element not found: %s", args[0]))
		},
	}
	return cmd
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <criterion> <value>",
		Short: "Search elements by a field, ignoring case",
		Long: `Search elements by a field, ignoring case.

Example:
  ptable search Symbol fe
  ptable search Element "carbon"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, cmd, func(records []store.Record) []store.Record {
				return query.Search(records, args[0], args[1])
			}, fmt.Sprintf("element not found: %s=%s", args[0], args[1]))
		},
	}
	return cmd
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <Group|Period> <value>",
		Short: "List elements of a group or period",
		Long: `List elements whose field equals value exactly (case-sensitive).

Example:
  ptable filter Group 18
  ptable filter Period 2`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, cmd, func(records []store.Record) []store.Record {
				return query.Filter(records, args[0], args[1])
			}, fmt.Sprintf("no elements found: %s=%s", args[0], args[1]))
		},
	}
	return cmd
}

// runQuery loads the store, applies find and prints the matches.
// An empty result exits with ExitFailure.
func runQuery(opts *RootOptions, cmd *cobra.Command, find func([]store.Record) []store.Record, notFound string) error {
	f := formatter(opts, cmd)

	a, err := newApp(opts, cmd)
	if err != nil {
		reportStartupError(f, err)
		return err
	}

	results := find(a.store.Records())
	a.logger.Debug("query finished", "matches", len(results))
	f.VerboseLog("%d of %d records matched", len(results), a.store.Len())

	if len(results) == 0 {
		if opts.Format == "json" {
			_ = f.Error(ErrCodeNotFound, notFound, nil)
		}
		return NewExitError(ExitFailure, notFound)
	}
	return f.Records(results)
}
