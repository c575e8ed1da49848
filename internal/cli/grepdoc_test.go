package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqlscript/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrepDoc_Stdin(t *testing.T) {
	input := `CONNECT TO mydb;
CREATE TABLE t (a INT);
SET SCHEMA foo;
comment on table t is 'Orders';
SELECT * FROM t;
COMMENT ON COLUMN t.a IS 'key';`

	out, _, err := execCommand(t, NewGrepDocCommand(), input)

	require.NoError(t, err)
	want := "CONNECT TO mydb;\n" +
		"SET SCHEMA foo;\n" +
		"comment on table t is 'Orders';\n" +
		"COMMENT ON COLUMN t.a IS 'key';\n"
	assert.Equal(t, want, out)
}

func TestGrepDoc_SetCurrentSchema(t *testing.T) {
	out, _, err := execCommand(t, NewGrepDocCommand(), "SET CURRENT SCHEMA = 'ERP';\nSET PASSTHRU RESET;")

	require.NoError(t, err)
	assert.Equal(t, "SET CURRENT SCHEMA = 'ERP';\n", out)
}

func TestGrepDoc_TriggerBodyStaysWhole(t *testing.T) {
	input := `CREATE TRIGGER tr AFTER INSERT ON t
BEGIN ATOMIC
  COMMENT ON TABLE t IS 'inside';
END;
COMMENT ON TABLE t IS 'outside';`

	out, _, err := execCommand(t, NewGrepDocCommand(), input)

	require.NoError(t, err)
	assert.Equal(t, "COMMENT ON TABLE t IS 'outside';\n", out)
}

func TestGrepDoc_KeepsAttachedComments(t *testing.T) {
	input := "-- setup\nCONNECT TO db;\nSELECT 1;"

	out, _, err := execCommand(t, NewGrepDocCommand(), input)

	require.NoError(t, err)
	assert.Equal(t, "-- setup\nCONNECT TO db;\n", out)
}

func TestGrepDoc_MultilineKeptVerbatim(t *testing.T) {
	input := "COMMENT ON TABLE t IS\n    'spans\n     lines';\n"

	out, _, err := execCommand(t, NewGrepDocCommand(), input)

	require.NoError(t, err)
	assert.Equal(t, "COMMENT ON TABLE t IS\n    'spans\n     lines';\n", out)
}

func TestGrepDoc_CommentOnlyStatementDropped(t *testing.T) {
	out, _, err := execCommand(t, NewGrepDocCommand(), "-- just a comment\n;")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGrepDoc_CustomTerminator(t *testing.T) {
	out, _, err := execCommand(t, NewGrepDocCommand(), "CONNECT TO db@\nSELECT 1 FROM t@", "-t", "@")

	require.NoError(t, err)
	assert.Equal(t, "CONNECT TO db@\n", out)
}

func TestGrepDoc_ScanErrorStillExtracts(t *testing.T) {
	out, stderr, err := execCommand(t, NewGrepDocCommand(), "CONNECT TO db;\nSELECT 'oops")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "had errors")
	assert.Contains(t, stderr, "unterminated string literal")
	assert.Equal(t, "CONNECT TO db;\n", out)
}

func TestGrepDoc_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	script := "CONNECT TO erp;\nCREATE TABLE t (a INT);\nCOMMENT ON TABLE t IS 'x';\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	out, _, err := execCommand(t, NewGrepDocCommand(), "", path)

	require.NoError(t, err)
	assert.Equal(t, "CONNECT TO erp;\nCOMMENT ON TABLE t IS 'x';\n", out)
}

func TestGrepDoc_MissingFileContinues(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sql")
	require.NoError(t, os.WriteFile(good, []byte("CONNECT TO db;"), 0o644))
	missing := filepath.Join(dir, "missing.sql")

	out, stderr, err := execCommand(t, NewGrepDocCommand(), "", missing, good)

	require.Error(t, err)
	assert.Contains(t, stderr, "failed to read")
	assert.Equal(t, "CONNECT TO db;\n", out)
}

func TestGrepDoc_VerboseSummary(t *testing.T) {
	out, stderr, err := execCommand(t, NewGrepDocCommand(), "CONNECT TO db;\nSELECT 1;", "-v")

	require.NoError(t, err)
	assert.Contains(t, stderr, "<stdin>")
	assert.Contains(t, stderr, "1 statements in 1 files")
	testutil.AssertNoANSI(t, out)
	testutil.AssertNoANSI(t, stderr)
}
