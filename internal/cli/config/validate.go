package config

import (
	"fmt"
	"unicode"

	"github.com/leapstack-labs/sqlscript/pkg/dialect"
	"github.com/leapstack-labs/sqlscript/pkg/format"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := ValidateTerminator(c.Terminator); err != nil {
		return err
	}
	if _, ok := dialect.Get(c.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q (available: %v)", c.Dialect, dialect.List())
	}
	if _, ok := format.ParseKeywordCase(c.KeywordCase); !ok {
		return fmt.Errorf("invalid keyword_case %q (must be upper, lower, or preserve)", c.KeywordCase)
	}
	if c.ListThreshold < 1 {
		return fmt.Errorf("list_threshold must be at least 1, got %d", c.ListThreshold)
	}
	return nil
}

// ValidateTerminator rejects terminator strings the scanner could never
// match: anything that starts an identifier, number, or quoted literal
// is consumed by those rules first.
func ValidateTerminator(s string) error {
	if s == "" {
		return fmt.Errorf("terminator is required")
	}
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return fmt.Errorf("terminator %q must not contain whitespace", s)
		case unicode.IsLetter(r) || r == '_':
			return fmt.Errorf("terminator %q conflicts with identifiers", s)
		case unicode.IsDigit(r):
			return fmt.Errorf("terminator %q conflicts with numeric literals", s)
		case r == '\'' || r == '"':
			return fmt.Errorf("terminator %q conflicts with quoted literals", s)
		}
	}
	return nil
}
