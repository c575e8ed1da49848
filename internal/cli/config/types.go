// Package config provides configuration management for the sqlscript tools.
//
// Settings come from four layers with increasing precedence: built-in
// defaults, a sqlscript.yaml file, SQLSCRIPT_* environment variables,
// and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Terminator    string `koanf:"terminator"`
	Dialect       string `koanf:"dialect"`
	KeywordCase   string `koanf:"keyword_case"`
	ListThreshold int    `koanf:"list_threshold"`
	Quiet         bool   `koanf:"quiet"`
	Verbose       bool   `koanf:"verbose"`
	Debug         bool   `koanf:"debug"`
	LogFile       string `koanf:"log_file"`
	Output        string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultTerminator    = ";"
	DefaultDialect       = "db2"
	DefaultKeywordCase   = "upper"
	DefaultListThreshold = 1
	DefaultOutput        = "auto" // Auto-detect: TTY=styled text, non-TTY=plain
)
