package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ptable/internal/export"
)

// ExportResult describes one written file.
type ExportResult struct {
	Format  string `json:"format"`
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [html|json|xml|markdown ...]",
		Short: "Export all elements to one or more formats",
		Long: `Export all elements to one or more formats.

With no arguments every format is written. Existing files are overwritten.
File names come from the config (defaults: elements.html, elements.json,
elements.xml, elements.md) inside --out-dir.

Example:
  ptable export
  ptable export json xml --out-dir ./out`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, cmd, args)
		},
	}
	return cmd
}

func runExport(opts *RootOptions, cmd *cobra.Command, names []string) error {
	f := formatter(opts, cmd)

	exporters, err := selectExporters(names)
	if err != nil {
		if opts.Format == "json" {
			_ = f.Error(ErrCodeBadArgument, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "invalid export format", err)
	}

	a, err := newApp(opts, cmd)
	if err != nil {
		reportStartupError(f, err)
		return err
	}

	records := a.store.Records()
	results := make([]ExportResult, 0, len(exporters))
	for _, exp := range exporters {
		path := a.cfg.OutputPath(exp)
		if err := export.WriteFile(path, exp, records); err != nil {
			if opts.Format == "json" {
				_ = f.Error(errorCode(err), err.Error(), map[string]string{"format": exp.Name()})
			}
			return WrapExitError(ExitCommandError, "export failed", err)
		}
		a.logger.Debug("export written", "format", exp.Name(), "path", path, "records", len(records))
		results = append(results, ExportResult{Format: exp.Name(), Path: path, Records: len(records)})

		if opts.Format != "json" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s file generated as %s.\n", exp.Title(), path)
		}
	}

	if opts.Format == "json" {
		return f.Success(results)
	}
	return nil
}

// selectExporters resolves format names, or all exporters when none given.
// Duplicates are written once.
func selectExporters(names []string) ([]export.Exporter, error) {
	if len(names) == 0 {
		return export.All(), nil
	}

	var out []export.Exporter
	seen := make(map[string]bool)
	for _, name := range names {
		exp, ok := export.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q: must be one of %s", name, strings.Join(export.Names(), ", "))
		}
		if seen[exp.Name()] {
			continue
		}
		seen[exp.Name()] = true
		out = append(out, exp)
	}
	return out, nil
}
