package cli

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlscript/internal/cli/config"
	"github.com/leapstack-labs/sqlscript/internal/cli/output"
	"github.com/leapstack-labs/sqlscript/pkg/extract"
	"github.com/leapstack-labs/sqlscript/pkg/scanner"
	"github.com/spf13/cobra"
)

// NewGrepDocCommand creates the sqlgrepdoc root command.
func NewGrepDocCommand() *cobra.Command {
	cmd := newRootCommand(
		"sqlgrepdoc [file ...]",
		"Extract documentation statements from SQL scripts",
		`sqlgrepdoc filters SQL scripts down to the statements a
documentation build needs: CONNECT, SET SCHEMA, SET CURRENT SCHEMA,
and COMMENT ON. Matching statements are written to standard output
exactly as they appear in the input; everything else is dropped.

It reads the named files, or standard input when no files are given
(or a file is -). Compound statement bodies stay whole, so a COMMENT
buried inside a trigger body is not extracted on its own.`,
	)

	cmd.RunE = runGrepDoc
	cmd.AddCommand(NewVersionCommand("sqlgrepdoc", Version))

	return cmd
}

func runGrepDoc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	r := GetRenderer(ctx)
	logger := config.GetLogger(ctx)

	sources, readErrs := ReadSources(cmd.InOrStdin(), args)
	for _, err := range readErrs {
		r.Errorf("%v", err)
	}

	out := cmd.OutOrStdout()
	summary := &output.RunSummary{}
	failed := len(readErrs)

	for _, src := range sources {
		stmts, warnings, scanErr := scanSource(src, cfg)

		fileErrors := 0
		if scanErr != nil {
			fileErrors = 1
			failed++
			r.Errorf("%s: %v", src.Name, scanErr)
			if cfg.Verbose {
				var se *scanner.ScanError
				if errors.As(scanErr, &se) {
					if excerpt := se.Excerpt(); excerpt != "" {
						r.Mutedf("%s", excerpt)
					}
				}
			}
		}
		if !cfg.Quiet {
			for _, w := range warnings {
				r.Warningf("%s: %s", src.Name, w)
			}
		}

		kept := 0
		total := 0
		for i := range stmts {
			st := &stmts[i]
			if st.IsBlank() {
				continue
			}
			total++
			if extract.Classify(st) != extract.Keep {
				continue
			}
			kept++
			fmt.Fprintln(out, st.Text())
		}

		logger.Info("extracted statements",
			"source", src.Name,
			"kept", kept,
			"total", total)

		summary.Add(output.FileSummary{
			Path:       src.Name,
			Statements: kept,
			Errors:     fileErrors,
			Warnings:   len(warnings),
		})
	}

	if cfg.Verbose {
		if err := r.RenderSummary(summary); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources had errors", failed, len(sources)+len(readErrs))
	}
	return nil
}
