package format

import (
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/stmt"
	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// Words that stay on their introducing keyword's line.
var (
	clauseAttach = map[string][]string{
		"SELECT": {"ALL", "DISTINCT"},
		"GROUP":  {"BY"},
		"ORDER":  {"BY"},
	}
	setOpAttach = []string{"ALL", "DISTINCT"}
	beginAttach = []string{"NOT", "ATOMIC"}
)

// Format pretty-prints one statement. The output ends with a single
// newline; the statement's terminator, when present, is re-attached
// flush to the last token. Formatting a formatted statement again
// yields identical output.
func Format(s *stmt.Statement, opts Options) string {
	opts = opts.withDefaults()

	toks := workTokens(s.Tokens)
	if len(toks) == 0 {
		if s.Terminator != nil {
			return s.Terminator.Text + "\n"
		}
		return ""
	}

	e := newEmitter(toks, analyze(toks, opts), opts)
	e.run()

	body := strings.TrimSuffix(e.p.String(), "\n")
	switch {
	case s.Terminator == nil:
		return body + "\n"
	case e.endsWithLineComment:
		// Attaching the terminator to a line comment would comment
		// it out.
		return body + "\n" + s.Terminator.Text + "\n"
	default:
		return body + s.Terminator.Text + "\n"
	}
}

// workTokens drops whitespace; everything else, comments included, is
// emitted.
func workTokens(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == token.Whitespace || tok.Type == token.EOF {
			continue
		}
		out = append(out, tok)
	}
	return out
}

const (
	frameStmt = iota
	frameParen
	frameBlock
)

// frame is one level of layout nesting: the statement itself, a
// multiline paren group, or a BEGIN ... END block.
type frame struct {
	kind      int
	base      int // indent for clause keywords and content lines
	close     int // indent for the closing ')' or END
	itemDepth int // indent for broken list items in the active segment
	leadDepth int // itemDepth to restore when a terminator resets the frame
	segBroken bool
	cond      bool // active clause is WHERE/HAVING: AND/OR break
}

type emitter struct {
	p    *printer
	toks []token.Token
	a    *analysis
	opts Options

	frames  []*frame
	inline  int // nesting inside inline paren groups
	curLine int // indent of the line being written

	prevText string // last emitted token text on this line
	hasPrev  bool

	attach       []string // uppercase words attachable to the last keyword
	pendingBreak int      // indent for a line break before the next token, -1 none
	pendingBlank bool     // blank line before the next token (set operators)
	between      bool     // swallow the AND that closes BETWEEN

	endsWithLineComment bool
}

func newEmitter(toks []token.Token, a *analysis, opts Options) *emitter {
	e := &emitter{
		p:            newPrinter(),
		toks:         toks,
		a:            a,
		opts:         opts,
		pendingBreak: -1,
	}
	e.frames = []*frame{{
		kind:      frameStmt,
		itemDepth: 1,
		leadDepth: 1,
		segBroken: a.segBroken[stmtSegment],
	}}
	return e
}

func (e *emitter) run() {
	for i := 0; i < len(e.toks); i++ {
		tok := e.toks[i]

		if tok.Type == token.Ident && e.inline == 0 && e.attachMatches(tok) {
			e.emitToken(tok)
			continue
		}
		e.attach = nil
		e.flushPending()

		switch tok.Type {
		case token.LineComment:
			// The forced newline keeps the next token out of the
			// comment.
			e.emitToken(tok)
			e.p.writeln()
			e.hasPrev = false
		case token.Ident:
			e.ident(i, tok)
		case token.Terminator:
			e.innerTerminator(tok)
		case token.Operator:
			switch tok.Text {
			case "(":
				e.openParen(i, tok)
			case ")":
				e.closeParen(tok)
			case ",":
				e.comma(tok)
			default:
				e.emitToken(tok)
			}
		default:
			e.emitToken(tok)
		}
	}
}

func (e *emitter) cur() *frame {
	return e.frames[len(e.frames)-1]
}

func (e *emitter) attachMatches(tok token.Token) bool {
	upper := strings.ToUpper(tok.Text)
	for _, w := range e.attach {
		if w == upper {
			return true
		}
	}
	return false
}

func (e *emitter) flushPending() {
	if e.pendingBlank {
		e.blankBreak(e.cur().base)
		e.pendingBlank = false
		e.pendingBreak = -1
		return
	}
	if e.pendingBreak >= 0 {
		e.breakLine(e.pendingBreak)
		e.pendingBreak = -1
	}
}

// breakLine starts a fresh line at the given indent. A no-op newline
// when already at a line start, so stacked breaks collapse.
func (e *emitter) breakLine(depth int) {
	if !e.p.atLineStart {
		e.p.writeln()
	}
	e.p.depth = depth
	e.curLine = depth
	e.hasPrev = false
}

// blankBreak is breakLine with an empty line in between.
func (e *emitter) blankBreak(depth int) {
	if !e.p.atLineStart {
		e.p.writeln()
	}
	e.p.writeln()
	e.p.depth = depth
	e.curLine = depth
	e.hasPrev = false
}

func (e *emitter) ident(i int, tok token.Token) {
	if e.inline > 0 {
		e.emitToken(tok)
		return
	}
	upper := strings.ToUpper(tok.Text)
	cur := e.cur()

	switch {
	case isSetOp(upper):
		e.blankBreak(cur.base)
		e.emitToken(tok)
		cur.segBroken = false
		cur.cond = false
		e.between = false
		e.attach = setOpAttach
		e.pendingBlank = true

	case isClause(upper):
		e.breakLine(cur.base)
		e.emitToken(tok)
		cur.itemDepth = cur.base + 1
		cur.cond = upper == "WHERE" || upper == "HAVING"
		cur.segBroken = e.a.segBroken[i] || cur.cond
		e.between = false
		e.attach = clauseAttach[upper]
		if cur.segBroken {
			e.pendingBreak = cur.itemDepth
		}

	case upper == "BEGIN":
		e.breakLine(cur.base)
		e.emitToken(tok)
		e.frames = append(e.frames, &frame{
			kind:      frameBlock,
			base:      cur.base + 1,
			close:     cur.base,
			itemDepth: cur.base + 2,
			leadDepth: cur.base + 2,
		})
		e.between = false
		e.attach = beginAttach
		e.pendingBreak = cur.base + 1

	case upper == "END" && cur.kind == frameBlock:
		e.frames = e.frames[:len(e.frames)-1]
		e.breakLine(cur.close)
		e.emitToken(tok)
		e.between = false

	case (upper == "AND" || upper == "OR") && cur.cond:
		if upper == "AND" && e.between {
			e.between = false
			e.emitToken(tok)
			return
		}
		e.breakLine(cur.itemDepth)
		e.emitToken(tok)

	case upper == "BETWEEN":
		e.between = true
		e.emitToken(tok)

	default:
		e.emitToken(tok)
	}
}

// innerTerminator handles terminators inside compound bodies: flush
// against the last token, then a fresh line for the next inner
// statement with the frame's clause state reset.
func (e *emitter) innerTerminator(tok token.Token) {
	e.emitToken(tok)
	cur := e.cur()
	cur.segBroken = false
	cur.cond = false
	cur.itemDepth = cur.leadDepth
	e.between = false
	e.breakLine(cur.base)
}

func (e *emitter) openParen(i int, tok token.Token) {
	e.emitToken(tok)
	if e.a.multi[i] {
		base := e.curLine + 1
		e.frames = append(e.frames, &frame{
			kind:      frameParen,
			base:      base,
			close:     e.curLine,
			itemDepth: base,
			leadDepth: base,
			segBroken: e.a.segBroken[i],
		})
		e.p.writeln()
		e.p.depth = base
		e.curLine = base
		e.hasPrev = false
		return
	}
	if _, ok := e.a.match[i]; ok {
		e.inline++
	}
}

func (e *emitter) closeParen(tok token.Token) {
	if e.inline > 0 {
		e.inline--
		e.emitToken(tok)
		return
	}
	cur := e.cur()
	if cur.kind == frameParen {
		e.frames = e.frames[:len(e.frames)-1]
		e.breakLine(cur.close)
	}
	e.emitToken(tok)
}

func (e *emitter) comma(tok token.Token) {
	e.emitToken(tok)
	if e.inline > 0 {
		return
	}
	if cur := e.cur(); cur.segBroken {
		e.breakLine(cur.itemDepth)
	}
}

func (e *emitter) emitToken(tok token.Token) {
	text := e.display(tok)
	if !e.p.atLineStart && e.needSpace(tok) {
		e.p.space()
	}
	e.p.write(text)
	e.prevText = text
	e.hasPrev = true
	e.endsWithLineComment = tok.Type == token.LineComment
}

// needSpace implements the spacing rules: single space between tokens
// except none before comma, close paren, dot and the terminator, and
// none after open paren and dot.
func (e *emitter) needSpace(cur token.Token) bool {
	if !e.hasPrev {
		return false
	}
	if cur.Type == token.Terminator {
		return false
	}
	if cur.Type == token.Operator {
		switch cur.Text {
		case ",", ")", ".":
			return false
		}
	}
	switch e.prevText {
	case "(", ".":
		return false
	}
	return true
}

// display applies keyword casing. Only identifiers in the dialect's
// keyword list are touched; everything else is verbatim.
func (e *emitter) display(tok token.Token) string {
	if tok.Type != token.Ident || !e.opts.Dialect.IsKeyword(tok.Text) {
		return tok.Text
	}
	switch e.opts.KeywordCase {
	case KeywordLower:
		return strings.ToLower(tok.Text)
	case KeywordPreserve:
		return tok.Text
	default:
		return strings.ToUpper(tok.Text)
	}
}
