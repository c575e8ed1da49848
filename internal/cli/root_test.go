package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/leapstack-labs/sqlscript/internal/cli/config"
	"github.com/leapstack-labs/sqlscript/internal/cli/output"
	"github.com/leapstack-labs/sqlscript/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTidyCommand(t *testing.T) {
	cmd := NewTidyCommand()

	assert.Equal(t, "sqltidy [file ...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")

	// Global flags shared by both tools, plus the formatting flags
	persistent := []string{
		"config", "terminator", "dialect", "quiet", "verbose", "debug",
		"log-file", "output", "keyword-case", "list-threshold",
	}
	for _, flag := range persistent {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "persistent flag %q should exist", flag)
	}

	// Mode flags are local to sqltidy
	local := []string{"write", "check", "watch"}
	for _, flag := range local {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}

	assert.Equal(t, "t", cmd.PersistentFlags().Lookup("terminator").Shorthand)
	assert.Equal(t, ";", cmd.PersistentFlags().Lookup("terminator").DefValue)
	assert.Equal(t, "w", cmd.Flags().Lookup("write").Shorthand)
}

func TestNewGrepDocCommand(t *testing.T) {
	cmd := NewGrepDocCommand()

	assert.Equal(t, "sqlgrepdoc [file ...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")

	persistent := []string{
		"config", "terminator", "dialect", "quiet", "verbose", "debug",
		"log-file", "output",
	}
	for _, flag := range persistent {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "persistent flag %q should exist", flag)
	}

	// Formatting and mode flags belong to sqltidy only
	assert.Nil(t, cmd.PersistentFlags().Lookup("keyword-case"))
	assert.Nil(t, cmd.Flags().Lookup("write"))
}

func TestTidyCommand_HasVersionSubcommand(t *testing.T) {
	cmd := NewTidyCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "version")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("sqltidy", "1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "sqltidy v1.2.3")
	assert.Contains(t, buf.String(), "build")
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("sqlgrepdoc", "test")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}

func TestGetConfig_Fallback(t *testing.T) {
	cfg := GetConfig(context.Background())

	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultTerminator, cfg.Terminator)
	assert.Equal(t, config.DefaultDialect, cfg.Dialect)
	assert.Equal(t, config.DefaultKeywordCase, cfg.KeywordCase)
}

func TestGetConfig_FromContext(t *testing.T) {
	want := &config.Config{Terminator: "@"}
	ctx := context.WithValue(context.Background(), configKey{}, want)

	assert.Same(t, want, GetConfig(ctx))
}

func TestGetRenderer_Fallback(t *testing.T) {
	assert.NotNil(t, GetRenderer(context.Background()))
}

func TestGetRenderer_FromContext(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeText, false)
	ctx := context.WithValue(context.Background(), rendererKey{}, tr.Renderer)

	assert.Same(t, tr.Renderer, GetRenderer(ctx))
}

func TestRenderSummary_JSONModeThroughContext(t *testing.T) {
	// A simulated TTY must still produce plain JSON diagnostics
	tr := testutil.NewTestRenderer(output.ModeJSON, true)
	ctx := context.WithValue(context.Background(), rendererKey{}, tr.Renderer)

	s := &output.RunSummary{}
	s.Add(output.FileSummary{Path: "a.sql", Statements: 2})
	require.NoError(t, GetRenderer(ctx).RenderSummary(s))

	testutil.AssertNoANSI(t, tr.ErrorOutput())
	assert.Contains(t, tr.ErrorOutput(), `"path": "a.sql"`)
	assert.Empty(t, tr.Output())
}
