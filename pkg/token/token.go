// Package token defines the lexical categories shared by the scanner,
// statement segmenter, and formatter.
package token

// TokenType identifies the lexical category of a token.
//
// The set is closed: every byte of the input belongs to exactly one
// token of one of these categories, and a single EOF token terminates
// every scan. Parentheses and commas are ordinary Operator tokens;
// consumers that care dispatch on Text.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	EOF TokenType = iota
	Whitespace
	LineComment
	BlockComment
	String
	QuotedIdent
	HexString
	Number
	Ident
	Operator
	Terminator
)

var tokenNames = map[TokenType]string{
	EOF:          "EOF",
	Whitespace:   "WHITESPACE",
	LineComment:  "LINE_COMMENT",
	BlockComment: "BLOCK_COMMENT",
	String:       "STRING",
	QuotedIdent:  "QUOTED_IDENT",
	HexString:    "HEXSTRING",
	Number:       "NUMBER",
	Ident:        "IDENT",
	Operator:     "OPERATOR",
	Terminator:   "TERMINATOR",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit.
//
// Text is the exact source slice, quotes and all: concatenating the
// Text of every token of a scan reproduces the input byte for byte.
// Whitespace and comments are tokens, not discarded.
type Token struct {
	Type TokenType
	Text string
	Pos  Position
}

// Significant reports whether the token carries statement content.
// Whitespace and comments round-trip but never affect segmentation,
// classification, or clause structure.
func (t Token) Significant() bool {
	switch t.Type {
	case EOF, Whitespace, LineComment, BlockComment:
		return false
	}
	return true
}

// End returns the position one byte past the token.
func (t Token) End() Position {
	end := t.Pos
	end.Offset += len(t.Text)
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '\n' {
			end.Line++
			end.Column = 1
		} else {
			end.Column++
		}
	}
	return end
}

// Span returns the source range covered by the token.
func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End()}
}
