package scanner

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// Fatal scan error messages.
const (
	ErrUnterminatedString  = "unterminated string literal"
	ErrUnterminatedQuoted  = "unterminated quoted identifier"
	ErrUnterminatedComment = "unterminated block comment"
)

// ScanError is a fatal lexical error. The scanner produces at most one
// per input; everything after the offending opener is consumed into the
// final token.
type ScanError struct {
	Pos     token.Position
	Message string

	source string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Excerpt returns the offending source line followed by a marker line
// pointing at the error column:
//
//	SELECT 'unterminated
//	       ^
//
// Tabs in the source are preserved in the marker line so the caret
// stays aligned in terminal output. Returns "" when the position does
// not fall inside the source.
func (e *ScanError) Excerpt() string {
	if e.source == "" || e.Pos.Line < 1 || e.Pos.Column < 1 {
		return ""
	}
	lines := strings.Split(e.source, "\n")
	if e.Pos.Line > len(lines) {
		return ""
	}
	srcLine := strings.TrimSuffix(lines[e.Pos.Line-1], "\r")
	if e.Pos.Column > len(srcLine)+1 {
		return ""
	}

	var marker strings.Builder
	for i := 0; i < e.Pos.Column-1 && i < len(srcLine); i++ {
		if srcLine[i] == '\t' {
			marker.WriteByte('\t')
		} else {
			marker.WriteByte(' ')
		}
	}
	marker.WriteByte('^')
	return srcLine + "\n" + marker.String()
}

// Warning is a non-fatal scan problem, such as an invalid hex literal.
// The token it refers to is still produced.
type Warning struct {
	Pos     token.Position
	Message string
}

func newWarning(pos token.Position, format string, args ...any) Warning {
	return Warning{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d, column %d: %s", w.Pos.Line, w.Pos.Column, w.Message)
}
