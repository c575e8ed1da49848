package format

import (
	"strings"

	"github.com/leapstack-labs/sqlscript/pkg/dialect"
)

// DefaultListItemThreshold is the item count above which lists break
// one item per line.
const DefaultListItemThreshold = 1

// KeywordCase selects how keywords are re-cased.
type KeywordCase int

const (
	// KeywordUpper folds keywords to upper case.
	KeywordUpper KeywordCase = iota
	// KeywordLower folds keywords to lower case.
	KeywordLower
	// KeywordPreserve leaves keywords exactly as written.
	KeywordPreserve
)

// String returns the string representation of the keyword case.
func (k KeywordCase) String() string {
	switch k {
	case KeywordUpper:
		return "upper"
	case KeywordLower:
		return "lower"
	case KeywordPreserve:
		return "preserve"
	default:
		return "unknown"
	}
}

// ParseKeywordCase converts a string to a KeywordCase value. Returns
// the case and true if valid, or KeywordUpper and false if invalid.
func ParseKeywordCase(s string) (KeywordCase, bool) {
	switch strings.ToLower(s) {
	case "upper":
		return KeywordUpper, true
	case "lower":
		return KeywordLower, true
	case "preserve":
		return KeywordPreserve, true
	default:
		return KeywordUpper, false
	}
}

// Options configures formatting.
type Options struct {
	// ListItemThreshold is the item count above which comma lists
	// break one per line. Values below one select the default.
	ListItemThreshold int

	// KeywordCase selects keyword re-casing. Identifiers outside the
	// dialect's keyword list always keep their case.
	KeywordCase KeywordCase

	// Dialect supplies the keyword list; nil selects the default.
	Dialect *dialect.Dialect
}

func (o Options) withDefaults() Options {
	if o.ListItemThreshold < 1 {
		o.ListItemThreshold = DefaultListItemThreshold
	}
	if o.Dialect == nil {
		o.Dialect = dialect.Default()
	}
	return o
}
