package cli

import (
	"github.com/leapstack-labs/sqlscript/internal/cli/config"
	"github.com/leapstack-labs/sqlscript/pkg/dialect"
	"github.com/leapstack-labs/sqlscript/pkg/scanner"
	"github.com/leapstack-labs/sqlscript/pkg/stmt"
	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// activeDialect resolves the configured dialect, falling back to the
// default. Validation already rejected unknown names.
func activeDialect(cfg *config.Config) *dialect.Dialect {
	if d, ok := dialect.Get(cfg.Dialect); ok {
		return d
	}
	return dialect.Default()
}

// scanSource runs the scanner and segmenter over one source with the
// configured terminator and dialect. Warnings from both stages come
// back as display strings; the error is the scanner's fatal error, if
// any. Statements are returned either way, since the error token keeps
// the remaining text and the stream still round-trips.
func scanSource(src Source, cfg *config.Config) ([]stmt.Statement, []string, error) {
	d := activeDialect(cfg)
	s := scanner.NewWithDialect(src.Text, cfg.Terminator, d)
	seg := stmt.NewSegmenter(stmt.Options{BlockOpen: d.BlockOpen, BlockClose: d.BlockClose})
	for {
		tok := s.Next()
		if tok.Type == token.EOF {
			break
		}
		seg.Push(tok)
	}
	stmts, segWarnings := seg.Finish()

	var warnings []string
	for _, w := range s.Warnings() {
		warnings = append(warnings, w.String())
	}
	for _, w := range segWarnings {
		warnings = append(warnings, w.String())
	}
	return stmts, warnings, s.Err()
}
