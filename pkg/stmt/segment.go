package stmt

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// Options configures the block keywords the segmenter balances.
type Options struct {
	// BlockOpen lists the keywords that increase nesting depth.
	// Defaults to BEGIN and CASE. CASE is included so CASE ... END
	// expressions keep the depth balanced; IF, LOOP and friends are
	// deliberately absent because their keywords also appear in
	// contexts that never see a closing END (FOR UPDATE, IF EXISTS).
	BlockOpen []string

	// BlockClose lists the keywords that decrease nesting depth.
	// Defaults to END.
	BlockClose []string
}

// Warning is a non-fatal segmentation problem, such as an END with no
// open block. Depth is clamped at zero so a stray END never makes
// later statements disappear into a phantom block.
type Warning struct {
	Pos     token.Position
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d, column %d: %s", w.Pos.Line, w.Pos.Column, w.Message)
}

// Segmenter accumulates tokens into statements. Push feeds it one
// token at a time; Finish flushes whatever is pending and returns the
// result.
type Segmenter struct {
	open  map[string]struct{}
	close map[string]struct{}

	current  []token.Token
	blocks   []token.Position // positions of currently open blocks
	suppress bool             // next open keyword belongs to an END phrase

	stmts    []Statement
	warnings []Warning
}

// NewSegmenter creates a Segmenter with the given options. Zero-value
// options select the default block keywords.
func NewSegmenter(opts Options) *Segmenter {
	openKw := opts.BlockOpen
	if openKw == nil {
		openKw = []string{"BEGIN", "CASE"}
	}
	closeKw := opts.BlockClose
	if closeKw == nil {
		closeKw = []string{"END"}
	}
	return &Segmenter{
		open:  keywordSet(openKw),
		close: keywordSet(closeKw),
	}
}

// Segment splits a scanned token stream into statements using the
// default block keywords. EOF tokens are ignored.
func Segment(tokens []token.Token) ([]Statement, []Warning) {
	return SegmentWithOptions(tokens, Options{})
}

// SegmentWithOptions is Segment with explicit block keywords.
func SegmentWithOptions(tokens []token.Token, opts Options) ([]Statement, []Warning) {
	sg := NewSegmenter(opts)
	for _, tok := range tokens {
		sg.Push(tok)
	}
	return sg.Finish()
}

// Push feeds the next token to the segmenter.
func (sg *Segmenter) Push(tok token.Token) {
	switch tok.Type {
	case token.EOF:
		return
	case token.Terminator:
		if len(sg.blocks) > 0 {
			// Inside a block the terminator is body text, as in a
			// trigger whose body reuses the script terminator.
			sg.current = append(sg.current, tok)
			return
		}
		term := tok
		sg.stmts = append(sg.stmts, Statement{Tokens: sg.current, Terminator: &term})
		sg.current = nil
		sg.suppress = false
		return
	case token.Ident:
		upper := strings.ToUpper(tok.Text)
		switch {
		case sg.isClose(upper):
			if len(sg.blocks) > 0 {
				sg.blocks = sg.blocks[:len(sg.blocks)-1]
			} else {
				sg.warnings = append(sg.warnings, Warning{
					Pos:     tok.Pos,
					Message: fmt.Sprintf("unbalanced block: %s without an open block", upper),
				})
			}
			sg.suppress = true
		case sg.isOpen(upper):
			if sg.suppress {
				// The trailing keyword of END CASE and similar
				// phrases must not reopen a block.
				sg.suppress = false
			} else {
				sg.blocks = append(sg.blocks, tok.Pos)
			}
		default:
			sg.suppress = false
		}
	default:
		if tok.Significant() {
			sg.suppress = false
		}
	}
	sg.current = append(sg.current, tok)
}

// Finish flushes the final statement, if any tokens are pending, and
// returns all statements and warnings. An unterminated trailing
// statement comes back with a nil Terminator; blocks still open at end
// of input each produce a warning.
func (sg *Segmenter) Finish() ([]Statement, []Warning) {
	if len(sg.current) > 0 {
		sg.stmts = append(sg.stmts, Statement{Tokens: sg.current})
		sg.current = nil
	}
	for _, pos := range sg.blocks {
		sg.warnings = append(sg.warnings, Warning{
			Pos:     pos,
			Message: "unbalanced block: block opened here is never closed",
		})
	}
	sg.blocks = nil
	return sg.stmts, sg.warnings
}

func (sg *Segmenter) isOpen(upper string) bool {
	_, ok := sg.open[upper]
	return ok
}

func (sg *Segmenter) isClose(upper string) bool {
	_, ok := sg.close[upper]
	return ok
}

func keywordSet(kws []string) map[string]struct{} {
	set := make(map[string]struct{}, len(kws))
	for _, kw := range kws {
		set[strings.ToUpper(kw)] = struct{}{}
	}
	return set
}
