// Package extract classifies statements by their leading keywords,
// separating the ones a documentation build needs (connection setup,
// schema selection, comment definitions) from everything else in a DDL
// script.
package extract

import (
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/stmt"
	"github.com/leapstack-labs/sqlscript/pkg/token"
)

// Disposition is the classifier's verdict on a statement.
type Disposition int

const (
	// Drop marks a statement as irrelevant for documentation output.
	Drop Disposition = iota
	// Keep marks a statement for verbatim emission.
	Keep
)

// String returns the string representation of the disposition.
func (d Disposition) String() string {
	switch d {
	case Drop:
		return "drop"
	case Keep:
		return "keep"
	default:
		return "unknown"
	}
}

// keepPatterns are the keyword prefixes that mark a statement as
// documentation-relevant. Matching is case-insensitive and runs over
// significant tokens only, so comments and whitespace ahead of the
// keywords do not interfere.
var keepPatterns = [][]string{
	{"CONNECT"},
	{"SET", "SCHEMA"},
	{"SET", "CURRENT", "SCHEMA"},
	{"COMMENT", "ON"},
}

// Classify returns Keep when the statement's significant tokens start
// with one of the documentation-relevant keyword prefixes, Drop
// otherwise. Blank and comment-only statements always drop.
func Classify(s *stmt.Statement) Disposition {
	sig := s.Significant()
	for _, pattern := range keepPatterns {
		if matchesPrefix(sig, pattern) {
			return Keep
		}
	}
	return Drop
}

// matchesPrefix reports whether the token run starts with the given
// keywords. Only plain identifiers match: a string literal 'CONNECT'
// or a quoted "CONNECT" identifier is data, not a verb.
func matchesPrefix(sig []token.Token, pattern []string) bool {
	if len(sig) < len(pattern) {
		return false
	}
	for i, word := range pattern {
		if sig[i].Type != token.Ident {
			return false
		}
		if !strings.EqualFold(sig[i].Text, word) {
			return false
		}
	}
	return true
}
