// Package format provides SQL statement formatting.
//
// The printer is indentation-driven rather than grammar-driven: it
// works from the token stream alone, so any statement the scanner can
// tokenize can be formatted, parseable or not. Output depends only on
// the sequence of significant tokens, which makes formatting
// idempotent.
package format

import (
	"bytes"
	"strings"
)

const indentSize = 2

// printer accumulates formatted output with indentation tracking.
type printer struct {
	output      bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *printer {
	return &printer{atLineStart: true}
}

// String returns the output normalized to exactly one trailing
// newline.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) space() {
	p.output.WriteByte(' ')
}
