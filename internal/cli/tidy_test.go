package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlscript/internal/cli/config"
	clitestutil "github.com/leapstack-labs/sqlscript/internal/cli/testutil"
	"github.com/leapstack-labs/sqlscript/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execCommand runs a freshly built command with the given stdin and
// args, returning captured stdout, stderr, and the Execute error.
func execCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	cfgFile = ""
	if args == nil {
		args = []string{}
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTidy_Stdin(t *testing.T) {
	out, _, err := execCommand(t, NewTidyCommand(), "select a,b from t;")

	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  a,\n  b\nFROM t;\n", out)
}

func TestTidy_StdinMultipleStatements(t *testing.T) {
	out, _, err := execCommand(t, NewTidyCommand(), "select a from t;\nselect b from u;")

	require.NoError(t, err)
	assert.Equal(t, "SELECT a\nFROM t;\n\nSELECT b\nFROM u;\n", out)
}

func TestTidy_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("select a from t;"), 0o644))

	out, _, err := execCommand(t, NewTidyCommand(), "", path)

	require.NoError(t, err)
	assert.Equal(t, "SELECT a\nFROM t;\n", out)

	// Without --write the file stays untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "select a from t;", string(data))
}

func TestTidy_MultipleFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.sql")
	b := filepath.Join(dir, "b.sql")
	c := filepath.Join(dir, "c.sql")
	require.NoError(t, os.WriteFile(a, []byte("select 1;"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("select 2;"), 0o644))
	require.NoError(t, os.WriteFile(c, []byte("select 3;"), 0o644))

	out, _, err := execCommand(t, NewTidyCommand(), "", a, b, c)

	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\nSELECT 2;\nSELECT 3;\n", out)
}

func TestTidy_WriteRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("select a,b from t;"), 0o644))

	out, _, err := execCommand(t, NewTidyCommand(), "", "-w", path)

	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  a,\n  b\nFROM t;\n", string(data))
}

func TestTidy_WriteStdinPrintsToStdout(t *testing.T) {
	out, _, err := execCommand(t, NewTidyCommand(), "select 1;", "-w")

	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n", out)
}

func TestTidy_CheckReportsDirtyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("select a from t;"), 0o644))

	out, _, err := execCommand(t, NewTidyCommand(), "", "--check", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "need formatting")
	assert.Contains(t, out, path)

	// Check mode never writes
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "select a from t;", string(data))
}

func TestTidy_CheckPassesCleanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT a\nFROM t;\n"), 0o644))

	out, _, err := execCommand(t, NewTidyCommand(), "", "--check", path)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTidy_ScanErrorStillEmits(t *testing.T) {
	out, stderr, err := execCommand(t, NewTidyCommand(), "SELECT 'oops;")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "had errors")
	assert.Contains(t, stderr, "unterminated string literal")
	clitestutil.AssertNoANSI(t, stderr)

	// The error token keeps the remaining text, so output round-trips
	assert.Equal(t, "SELECT 'oops;\n", out)
}

func TestTidySource_Direct(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	cfg := &config.Config{
		Terminator:    ";",
		Dialect:       "db2",
		KeywordCase:   "upper",
		ListThreshold: 1,
	}

	res := tidySource(Source{Name: "inline", Text: "select a from t;"}, cfg, logger)

	require.NoError(t, res.scanErr)
	assert.Empty(t, res.warnings)
	assert.Equal(t, 1, res.statements)
	assert.True(t, res.changed)
	assert.Equal(t, "SELECT a\nFROM t;\n", res.formatted)

	// A second pass over its own output reports nothing to change
	again := tidySource(Source{Name: "inline", Text: res.formatted}, cfg, logger)
	assert.False(t, again.changed)
	assert.Equal(t, res.formatted, again.formatted)
}

func TestTidy_MissingFileContinues(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sql")
	require.NoError(t, os.WriteFile(good, []byte("select 1;"), 0o644))
	missing := filepath.Join(dir, "missing.sql")

	out, stderr, err := execCommand(t, NewTidyCommand(), "", missing, good)

	require.Error(t, err)
	assert.Contains(t, stderr, "failed to read")
	assert.Equal(t, "SELECT 1;\n", out)
}

func TestTidy_CustomTerminator(t *testing.T) {
	out, _, err := execCommand(t, NewTidyCommand(), "select a from t@", "-t", "@")

	require.NoError(t, err)
	assert.Equal(t, "SELECT a\nFROM t@\n", out)
}

func TestTidy_InvalidTerminatorRejected(t *testing.T) {
	_, _, err := execCommand(t, NewTidyCommand(), "select 1;", "-t", "GO")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestTidy_KeywordCaseFlag(t *testing.T) {
	out, _, err := execCommand(t, NewTidyCommand(), "SELECT col FROM T;", "--keyword-case", "lower")

	require.NoError(t, err)
	assert.Equal(t, "select col\nfrom T;\n", out)
}

func TestTidy_ListThresholdFlag(t *testing.T) {
	out, _, err := execCommand(t, NewTidyCommand(), "select a,b,c from t;", "--list-threshold", "3")

	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b, c\nFROM t;\n", out)
}

func TestTidy_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sqlscript.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("keyword_case: lower\n"), 0o644))

	out, _, err := execCommand(t, NewTidyCommand(), "SELECT 1;", "--config", cfgPath)

	require.NoError(t, err)
	assert.Equal(t, "select 1;\n", out)
}

func TestTidy_WarningsReported(t *testing.T) {
	_, stderr, err := execCommand(t, NewTidyCommand(), "END;")

	require.NoError(t, err)
	assert.Contains(t, stderr, "unbalanced block")
}

func TestTidy_QuietSuppressesWarnings(t *testing.T) {
	_, stderr, err := execCommand(t, NewTidyCommand(), "END;", "-q")

	require.NoError(t, err)
	assert.NotContains(t, stderr, "unbalanced block")
}

func TestTidy_VerboseSummary(t *testing.T) {
	out, stderr, err := execCommand(t, NewTidyCommand(), "select 1;", "-v")

	require.NoError(t, err)
	assert.Contains(t, stderr, "<stdin>")
	assert.Contains(t, stderr, "1 statements in 1 files")

	// Piped output carries no escape codes on either stream
	clitestutil.AssertNoANSI(t, out)
	clitestutil.AssertNoANSI(t, stderr)
}

func TestTidy_JSONSummary(t *testing.T) {
	_, stderr, err := execCommand(t, NewTidyCommand(), "select 1;", "-v", "-o", "json")

	require.NoError(t, err)
	assert.Contains(t, stderr, `"statements": 1`)
	assert.Contains(t, stderr, `"path": "<stdin>"`)
}

func TestTidy_WatchCheckConflict(t *testing.T) {
	_, _, err := execCommand(t, NewTidyCommand(), "", "--watch", "--check")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestTidy_WatchRequiresFiles(t *testing.T) {
	_, _, err := execCommand(t, NewTidyCommand(), "", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least one file")

	_, _, err = execCommand(t, NewTidyCommand(), "", "--watch", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read from stdin")
}

func TestTidy_VersionFlag(t *testing.T) {
	out, _, err := execCommand(t, NewTidyCommand(), "", "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "sqltidy")
	assert.Contains(t, out, Version)
}
