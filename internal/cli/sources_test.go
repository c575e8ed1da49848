package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSources_DefaultsToStdin(t *testing.T) {
	sources, errs := ReadSources(strings.NewReader("SELECT 1;"), nil)

	require.Empty(t, errs)
	require.Len(t, sources, 1)
	assert.Equal(t, "<stdin>", sources[0].Name)
	assert.Equal(t, "SELECT 1;", sources[0].Text)
	assert.True(t, sources[0].Stdin)
}

func TestReadSources_DashReadsStdin(t *testing.T) {
	sources, errs := ReadSources(strings.NewReader("SELECT 1;"), []string{"-"})

	require.Empty(t, errs)
	require.Len(t, sources, 1)
	assert.True(t, sources[0].Stdin)
	assert.Equal(t, "SELECT 1;", sources[0].Text)
}

func TestReadSources_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.sql")
	b := filepath.Join(dir, "b.sql")
	require.NoError(t, os.WriteFile(a, []byte("SELECT 1;"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("SELECT 2;"), 0o644))

	sources, errs := ReadSources(strings.NewReader(""), []string{a, b})

	require.Empty(t, errs)
	require.Len(t, sources, 2)
	assert.Equal(t, a, sources[0].Name)
	assert.Equal(t, "SELECT 1;", sources[0].Text)
	assert.False(t, sources[0].Stdin)
	assert.Equal(t, b, sources[1].Name)
	assert.Equal(t, "SELECT 2;", sources[1].Text)
}

func TestReadSources_MixedFilesAndStdin(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.sql")
	require.NoError(t, os.WriteFile(a, []byte("SELECT 1;"), 0o644))

	sources, errs := ReadSources(strings.NewReader("SELECT 2;"), []string{a, "-"})

	require.Empty(t, errs)
	require.Len(t, sources, 2)
	assert.False(t, sources[0].Stdin)
	assert.True(t, sources[1].Stdin)
	assert.Equal(t, "SELECT 2;", sources[1].Text)
}

func TestReadSources_StdinOnlyOnce(t *testing.T) {
	sources, errs := ReadSources(strings.NewReader("SELECT 1;"), []string{"-", "-"})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "stdin may only be read once")
	require.Len(t, sources, 1)
}

func TestReadSources_UnreadableFileContinues(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sql")
	require.NoError(t, os.WriteFile(good, []byte("SELECT 1;"), 0o644))
	missing := filepath.Join(dir, "missing.sql")

	sources, errs := ReadSources(strings.NewReader(""), []string{missing, good})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "failed to read")
	assert.Contains(t, errs[0].Error(), "missing.sql")
	require.Len(t, sources, 1)
	assert.Equal(t, good, sources[0].Name)
}
