package format

import (
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// Segment keys for list-break decisions that are not tied to a clause
// keyword or paren token index.
const (
	stmtSegment    = -1 // the run of tokens before the first clause keyword
	discardSegment = -2 // segments reset by an inner terminator
)

// clauseKeywords start a new line at the enclosing frame's indent.
var clauseKeywords = map[string]struct{}{
	"SELECT": {},
	"FROM":   {},
	"WHERE":  {},
	"GROUP":  {},
	"HAVING": {},
	"ORDER":  {},
	"VALUES": {},
	"SET":    {},
	"FETCH":  {},
}

// setOperators go on their own line with a blank line on both sides.
var setOperators = map[string]struct{}{
	"UNION":     {},
	"INTERSECT": {},
	"EXCEPT":    {},
}

func isClause(upper string) bool {
	_, ok := clauseKeywords[upper]
	return ok
}

func isSetOp(upper string) bool {
	_, ok := setOperators[upper]
	return ok
}

// analysis carries the per-statement layout decisions computed before
// emission: paren pair matching, which paren groups render multiline,
// and which comma lists break one item per line.
type analysis struct {
	match     map[int]int  // '(' index <-> ')' index
	multi     map[int]bool // '(' index -> group renders multiline
	segBroken map[int]bool // segment key -> items one per line
}

// analyze runs the layout pass. A paren group is multiline when its
// first significant child is a clause keyword or set operator, when
// its top-level item count exceeds the threshold, or when it contains
// a multiline group (multiline inside an inline group cannot render).
// A segment's items break when the count of top-level comma-separated
// items exceeds the threshold.
func analyze(toks []token.Token, opts Options) *analysis {
	a := &analysis{
		match:     make(map[int]int),
		multi:     make(map[int]bool),
		segBroken: make(map[int]bool),
	}
	threshold := opts.ListItemThreshold

	type segment struct {
		key    int
		commas int
	}
	type group struct {
		openIdx  int
		multi    bool
		sawChild bool
		seg      segment
	}

	finalize := func(seg segment) {
		if seg.key == discardSegment {
			return
		}
		a.segBroken[seg.key] = seg.commas+1 > threshold
	}

	stmtSeg := segment{key: stmtSegment}
	var stack []*group

	curSeg := func() *segment {
		if len(stack) > 0 {
			return &stack[len(stack)-1].seg
		}
		return &stmtSeg
	}
	markChild := func() {
		if len(stack) > 0 {
			stack[len(stack)-1].sawChild = true
		}
	}

	for i, tok := range toks {
		switch tok.Type {
		case token.Whitespace, token.LineComment, token.BlockComment, token.EOF:
			// Comments never influence layout decisions.
			continue
		case token.Ident:
			upper := strings.ToUpper(tok.Text)
			if isClause(upper) || isSetOp(upper) {
				if len(stack) > 0 && !stack[len(stack)-1].sawChild {
					stack[len(stack)-1].multi = true
				}
				seg := curSeg()
				finalize(*seg)
				*seg = segment{key: i}
			}
			markChild()
		case token.Terminator:
			// An inner terminator (compound body) resets the segment.
			seg := curSeg()
			finalize(*seg)
			*seg = segment{key: discardSegment}
			markChild()
		case token.Operator:
			switch tok.Text {
			case "(":
				markChild()
				stack = append(stack, &group{openIdx: i, seg: segment{key: i}})
			case ")":
				if len(stack) == 0 {
					continue // stray close, renders as a plain token
				}
				g := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				finalize(g.seg)
				a.match[g.openIdx] = i
				a.match[i] = g.openIdx
				if g.multi || a.segBroken[g.openIdx] {
					a.multi[g.openIdx] = true
					if len(stack) > 0 {
						stack[len(stack)-1].multi = true
					}
				}
				markChild()
			case ",":
				curSeg().commas++
				markChild()
			default:
				markChild()
			}
		default:
			markChild()
		}
	}

	finalize(stmtSeg)
	for _, g := range stack { // unmatched opens render inline
		finalize(g.seg)
	}
	return a
}
