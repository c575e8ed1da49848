// Package scanner converts raw SQL text into a lossless token stream.
//
// Every byte of the input lands in exactly one token, whitespace and
// comments included, so concatenating token texts reproduces the input
// exactly. The statement terminator is an explicit configuration value,
// not process state, and dialect quirks (string prefix letters,
// operator digraphs) come from pkg/dialect data.
package scanner

import (
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/dialect"
	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// Scanner tokenizes SQL input.
type Scanner struct {
	input      string
	terminator string

	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	dialect *dialect.Dialect

	err      *ScanError
	warnings []Warning
}

// New creates a Scanner for the given input and statement terminator,
// using the default dialect.
func New(input, terminator string) *Scanner {
	return NewWithDialect(input, terminator, nil)
}

// NewWithDialect creates a dialect-aware Scanner. A nil dialect selects
// the default.
func NewWithDialect(input, terminator string, d *dialect.Dialect) *Scanner {
	if d == nil {
		d = dialect.Default()
	}
	s := &Scanner{
		input:      input,
		terminator: terminator,
		line:       1,
		col:        0,
		dialect:    d,
	}
	s.readChar()
	return s
}

// Scan tokenizes text with the given statement terminator using the
// default dialect. The returned slice covers the whole input and ends
// with a single EOF token. A non-nil error reports the first fatal
// lexical problem; the tokens produced before (and including) the
// erroring one are still returned.
func Scan(text, terminator string) ([]token.Token, error) {
	return ScanWithDialect(text, terminator, nil)
}

// ScanWithDialect is Scan with an explicit dialect.
func ScanWithDialect(text, terminator string, d *dialect.Dialect) ([]token.Token, error) {
	s := NewWithDialect(text, terminator, d)
	var tokens []token.Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, s.Err()
}

// Err returns the first fatal scan error, or nil.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Warnings returns the non-fatal problems found so far.
func (s *Scanner) Warnings() []Warning {
	return s.warnings
}

// readChar advances to the next character.
func (s *Scanner) readChar() {
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}
	if s.readPos >= len(s.input) {
		s.ch = 0 // ASCII NUL = EOF
	} else {
		s.ch = s.input[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++
	s.col++
}

// peekChar returns the next character without advancing.
func (s *Scanner) peekChar() byte {
	if s.readPos >= len(s.input) {
		return 0
	}
	return s.input[s.readPos]
}

// currentPos returns the position of the current character.
func (s *Scanner) currentPos() token.Position {
	return token.Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// Next returns the next token. After the input is exhausted (or a
// fatal error consumed the remainder) it returns EOF tokens forever.
func (s *Scanner) Next() token.Token {
	start := s.currentPos()

	switch {
	case s.ch == 0:
		return token.Token{Type: token.EOF, Pos: start}
	case isSpace(s.ch):
		return s.scanWhitespace(start)
	case s.ch == '-' && s.peekChar() == '-':
		return s.scanLineComment(start)
	case s.ch == '/' && s.peekChar() == '*':
		return s.scanBlockComment(start)
	case s.ch == '\'':
		return s.scanQuoted(start, token.String, ErrUnterminatedString)
	case s.ch == '"':
		return s.scanQuoted(start, token.QuotedIdent, ErrUnterminatedQuoted)
	case isDigit(s.ch) || (s.ch == '.' && isDigit(s.peekChar())):
		return s.scanNumber(start)
	case isIdentStart(s.ch):
		if v, ok := s.dialect.StringPrefix(s.ch); ok && s.peekChar() == '\'' {
			return s.scanPrefixedString(start, v)
		}
		return s.scanIdentifier(start)
	case s.terminatorAt():
		return s.scanTerminator(start)
	default:
		return s.scanOperator(start)
	}
}

// terminatorAt reports whether the configured terminator matches at the
// current position.
func (s *Scanner) terminatorAt() bool {
	return s.terminator != "" && strings.HasPrefix(s.input[s.pos:], s.terminator)
}

func (s *Scanner) scanTerminator(start token.Position) token.Token {
	for i := 0; i < len(s.terminator); i++ {
		s.readChar()
	}
	return s.text(token.Terminator, start)
}

func (s *Scanner) scanWhitespace(start token.Position) token.Token {
	for isSpace(s.ch) {
		s.readChar()
	}
	return s.text(token.Whitespace, start)
}

func (s *Scanner) scanLineComment(start token.Position) token.Token {
	// The newline is not part of the comment; it starts the next
	// whitespace token.
	for s.ch != '\n' && s.ch != 0 {
		s.readChar()
	}
	return s.text(token.LineComment, start)
}

func (s *Scanner) scanBlockComment(start token.Position) token.Token {
	s.readChar() // skip '/'
	s.readChar() // skip '*'

	for s.ch != 0 {
		// Block comments do not nest: the first */ closes.
		if s.ch == '*' && s.peekChar() == '/' {
			s.readChar()
			s.readChar()
			return s.text(token.BlockComment, start)
		}
		s.readChar()
	}
	s.fail(start, ErrUnterminatedComment)
	return s.text(token.BlockComment, start)
}

// scanQuoted scans a '- or "-delimited literal where the delimiter is
// escaped by doubling. On end of input without a closing delimiter the
// remainder of the input becomes the token and a fatal error is
// recorded at the opening delimiter.
func (s *Scanner) scanQuoted(start token.Position, tt token.TokenType, errMsg string) token.Token {
	quote := s.ch
	s.readChar() // skip opening quote

	for s.ch != 0 {
		if s.ch == quote {
			if s.peekChar() == quote {
				s.readChar()
				s.readChar()
				continue
			}
			s.readChar() // closing quote
			return s.text(tt, start)
		}
		s.readChar()
	}
	s.fail(start, errMsg)
	return s.text(tt, start)
}

// scanPrefixedString scans x'1F', b'0101', n'text' and similar forms.
// Content violations are warnings; the token is produced either way.
func (s *Scanner) scanPrefixedString(start token.Position, v dialect.StringValidation) token.Token {
	s.readChar() // skip prefix letter
	tok := s.scanQuoted(start, token.String, ErrUnterminatedString)
	tok.Type = token.String
	if v == dialect.ValidateHex || v == dialect.ValidateBinary {
		tok.Type = token.HexString
	}
	if s.err == nil {
		s.validatePrefixed(tok, v)
	}
	return tok
}

func (s *Scanner) validatePrefixed(tok token.Token, v dialect.StringValidation) {
	// Strip the prefix letter and the enclosing quotes.
	content := tok.Text[2 : len(tok.Text)-1]
	switch v {
	case dialect.ValidateHex:
		for i := 0; i < len(content); i++ {
			if !isHexDigit(content[i]) {
				s.warn(tok.Pos, "invalid hex literal: invalid character %q", content[i])
				return
			}
		}
		if len(content)%2 != 0 {
			s.warn(tok.Pos, "invalid hex literal: odd number of digits")
		}
	case dialect.ValidateBinary:
		for i := 0; i < len(content); i++ {
			if content[i] != '0' && content[i] != '1' {
				s.warn(tok.Pos, "invalid binary literal: invalid character %q", content[i])
				return
			}
		}
	}
}

func (s *Scanner) scanNumber(start token.Position) token.Token {
	for isDigit(s.ch) {
		s.readChar()
	}
	if s.ch == '.' && isDigit(s.peekChar()) {
		s.readChar()
		for isDigit(s.ch) {
			s.readChar()
		}
	}
	if (s.ch == 'e' || s.ch == 'E') && s.exponentFollows() {
		s.readChar()
		if s.ch == '+' || s.ch == '-' {
			s.readChar()
		}
		for isDigit(s.ch) {
			s.readChar()
		}
	}
	return s.text(token.Number, start)
}

// exponentFollows reports whether the current 'e' really starts an
// exponent, so "1easy" scans as a number followed by an identifier.
func (s *Scanner) exponentFollows() bool {
	next := s.peekChar()
	if isDigit(next) {
		return true
	}
	if (next == '+' || next == '-') && s.readPos+1 < len(s.input) {
		return isDigit(s.input[s.readPos+1])
	}
	return false
}

func (s *Scanner) scanIdentifier(start token.Position) token.Token {
	for isIdentCont(s.ch) {
		// A terminator like @ or # is also a valid identifier
		// character in DB2; the configured terminator wins so END@
		// splits into END and @. The s.pos guard keeps a terminator
		// that is itself identifier-like from producing an empty
		// token here.
		if s.pos > start.Offset && s.terminatorAt() {
			break
		}
		s.readChar()
	}
	return s.text(token.Ident, start)
}

func (s *Scanner) scanOperator(start token.Position) token.Token {
	if op := s.dialect.MatchOperator(s.input[s.pos:]); op != "" {
		for i := 0; i < len(op); i++ {
			s.readChar()
		}
		return s.text(token.Operator, start)
	}
	s.readChar()
	return s.text(token.Operator, start)
}

// text builds a token whose Text is the exact source slice consumed
// since start.
func (s *Scanner) text(tt token.TokenType, start token.Position) token.Token {
	return token.Token{Type: tt, Text: s.input[start.Offset:s.pos], Pos: start}
}

// fail records the first fatal error and consumes nothing further; the
// caller has already consumed to end of input.
func (s *Scanner) fail(pos token.Position, msg string) {
	if s.err == nil {
		s.err = &ScanError{Pos: pos, Message: msg, source: s.input}
	}
}

func (s *Scanner) warn(pos token.Position, format string, args ...any) {
	s.warnings = append(s.warnings, newWarning(pos, format, args...))
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

// isIdentCont matches the DB2 unquoted identifier charset, which
// includes $, # and @.
func isIdentCont(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '$' || ch == '#' || ch == '@'
}
