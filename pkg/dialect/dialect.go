// Package dialect holds the static configuration for SQL dialects.
//
// A Dialect is pure data: keyword lists, compound-statement block
// keywords, string prefix letters, operator digraphs. The scanner,
// segmenter, and formatter consume this data; no behavior lives here.
package dialect

import "strings"

// StringValidation selects the content check applied to a prefixed
// string literal (x'1F', b'0101', n'text').
type StringValidation int

const (
	// ValidateNone accepts any content (national/graphic strings).
	ValidateNone StringValidation = iota
	// ValidateHex requires an even count of hex digits.
	ValidateHex
	// ValidateBinary requires binary digits.
	ValidateBinary
)

// String returns the string representation of the validation mode.
func (v StringValidation) String() string {
	switch v {
	case ValidateHex:
		return "hex"
	case ValidateBinary:
		return "binary"
	default:
		return "none"
	}
}

// Dialect describes the lexical quirks of one SQL dialect.
type Dialect struct {
	// Name is the dialect identifier (e.g., "db2", "ansi")
	Name string

	// BlockOpen and BlockClose are the keywords that open and close
	// compound statement bodies. A statement terminator between an
	// opener and its closer is part of the statement, not a script
	// boundary.
	BlockOpen  []string
	BlockClose []string

	// PrefixedStrings maps a prefix letter (lowercase) to the
	// validation applied to the quoted literal following it.
	PrefixedStrings map[byte]StringValidation

	// TwoCharOperators are scanned as single operator tokens so the
	// formatter never splits them ("<=" would otherwise emit "< =").
	TwoCharOperators []string

	// Keywords is the reserved word list, used for keyword-case
	// normalization when formatting. Unlisted identifiers keep their
	// case.
	Keywords []string

	keywordSet    map[string]struct{}
	blockOpenSet  map[string]struct{}
	blockCloseSet map[string]struct{}
}

// finalize builds the lookup sets. Called once by Register.
func (d *Dialect) finalize() {
	d.keywordSet = toSet(d.Keywords)
	d.blockOpenSet = toSet(d.BlockOpen)
	d.blockCloseSet = toSet(d.BlockClose)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return set
}

// IsKeyword reports whether word is reserved in this dialect.
// Comparison is case-insensitive.
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.keywordSet[strings.ToUpper(word)]
	return ok
}

// IsBlockOpen reports whether word opens a compound statement body.
func (d *Dialect) IsBlockOpen(word string) bool {
	_, ok := d.blockOpenSet[strings.ToUpper(word)]
	return ok
}

// IsBlockClose reports whether word closes a compound statement body.
func (d *Dialect) IsBlockClose(word string) bool {
	_, ok := d.blockCloseSet[strings.ToUpper(word)]
	return ok
}

// StringPrefix returns the validation for a string prefix letter and
// whether the letter is a prefix in this dialect.
func (d *Dialect) StringPrefix(ch byte) (StringValidation, bool) {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	v, ok := d.PrefixedStrings[ch]
	return v, ok
}

// MatchOperator returns the two-character operator starting at the
// front of s, or "" if none matches.
func (d *Dialect) MatchOperator(s string) string {
	for _, op := range d.TwoCharOperators {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}
