package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FileSummary holds per-file processing stats.
type FileSummary struct {
	Path       string `json:"path"`
	Statements int    `json:"statements"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
	Changed    bool   `json:"changed,omitempty"`
}

// RunSummary aggregates stats across all processed sources.
type RunSummary struct {
	Files      []FileSummary `json:"files"`
	Statements int           `json:"statements"`
	Errors     int           `json:"errors"`
	Warnings   int           `json:"warnings"`
}

// Add folds a file summary into the totals.
func (s *RunSummary) Add(f FileSummary) {
	s.Files = append(s.Files, f)
	s.Statements += f.Statements
	s.Errors += f.Errors
	s.Warnings += f.Warnings
}

// RenderSummary writes the run summary to the diagnostics stream, as a
// table in text mode or as JSON in JSON mode.
func (r *Renderer) RenderSummary(s *RunSummary) error {
	if r.EffectiveMode() == ModeJSON {
		enc := jsonEncoder(r.errOut)
		return enc.Encode(s)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.errOut)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Statements", "Errors", "Warnings"})
	for _, f := range s.Files {
		t.AppendRow(table.Row{f.Path, f.Statements, f.Errors, f.Warnings})
	}
	t.AppendFooter(table.Row{"total", s.Statements, s.Errors, s.Warnings})
	t.Render()

	if s.Errors > 0 {
		r.Errorf("%d scan errors in %d files", s.Errors, len(s.Files))
	} else {
		r.Success(fmt.Sprintf("%d statements in %d files", s.Statements, len(s.Files)))
	}
	return nil
}
