// Package stmt groups a scanned token stream into executable statements.
//
// Splitting happens on terminator tokens at block depth zero, so a
// compound body such as a trigger (BEGIN ... ; ... ; END) stays one
// statement even though its body reuses the terminator. Every non-EOF
// token lands in exactly one statement, which keeps the stream as
// lossless as the scanner left it.
package stmt

import (
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// Statement is a contiguous run of tokens up to (and including) its
// closing terminator.
type Statement struct {
	// Tokens holds the statement's tokens in input order, whitespace
	// and comments included. The terminator is not part of it.
	Tokens []token.Token

	// Terminator is the token that closed the statement, or nil when
	// the input ended first.
	Terminator *token.Token
}

// Source returns the statement's exact input text, terminator
// included.
func (s *Statement) Source() string {
	var sb strings.Builder
	for _, tok := range s.Tokens {
		sb.WriteString(tok.Text)
	}
	if s.Terminator != nil {
		sb.WriteString(s.Terminator.Text)
	}
	return sb.String()
}

// Text returns Source with surrounding whitespace trimmed.
func (s *Statement) Text() string {
	return strings.TrimSpace(s.Source())
}

// Significant returns the statement's tokens with whitespace and
// comments filtered out.
func (s *Statement) Significant() []token.Token {
	var out []token.Token
	for _, tok := range s.Tokens {
		if tok.Significant() {
			out = append(out, tok)
		}
	}
	return out
}

// IsBlank reports whether the statement carries no significant tokens,
// as in the gap produced by ";;" or trailing whitespace after the last
// terminator. A comment-only statement is blank in this sense.
func (s *Statement) IsBlank() bool {
	for _, tok := range s.Tokens {
		if tok.Significant() {
			return false
		}
	}
	return true
}

// IsWhitespace reports whether the statement contains nothing but
// whitespace tokens. Unlike IsBlank it is false for comment-only
// statements, which still carry text worth keeping.
func (s *Statement) IsWhitespace() bool {
	for _, tok := range s.Tokens {
		if tok.Type != token.Whitespace {
			return false
		}
	}
	return true
}

// Pos returns the position of the first significant token, falling
// back to the first token of any kind, then to the terminator.
func (s *Statement) Pos() token.Position {
	for _, tok := range s.Tokens {
		if tok.Significant() {
			return tok.Pos
		}
	}
	if len(s.Tokens) > 0 {
		return s.Tokens[0].Pos
	}
	if s.Terminator != nil {
		return s.Terminator.Pos
	}
	return token.Position{}
}

// Span returns the source range the statement covers, terminator
// included.
func (s *Statement) Span() token.Span {
	if len(s.Tokens) == 0 && s.Terminator == nil {
		return token.Span{}
	}
	var first, last token.Token
	if len(s.Tokens) > 0 {
		first = s.Tokens[0]
		last = s.Tokens[len(s.Tokens)-1]
	} else {
		first = *s.Terminator
	}
	if s.Terminator != nil {
		last = *s.Terminator
	}
	return token.Span{Start: first.Pos, End: last.End()}
}
