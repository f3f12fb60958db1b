package sweep

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDeleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.log")
	writeFile(t, path, "x")

	results := Delete([]string{path})
	require.Len(t, results, 1)
	assert.Equal(t, Deleted, results[0].Outcome)
	assert.NoFileExists(t, path)
}

func TestDeleteMissingPath(t *testing.T) {
	results := Delete([]string{filepath.Join(t.TempDir(), "gone.log")})
	require.Len(t, results, 1)
	assert.Equal(t, Failed, results[0].Outcome)
	assert.NotEmpty(t, results[0].Reason)
}

func TestDeleteDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Caches")
	writeFile(t, filepath.Join(dir, "a", "x.dat"), "x")
	writeFile(t, filepath.Join(dir, "b.dat"), "y")

	results := Delete([]string{dir})
	require.Len(t, results, 1)
	assert.Equal(t, Deleted, results[0].Outcome)
	assert.NoDirExists(t, dir)
}

func TestDeleteDirectoryFallbackAfterBulkFailure(t *testing.T) {
	orig := removeAll
	t.Cleanup(func() { removeAll = orig })
	removeAll = func(string) error { return errors.New("bulk removal interrupted") }

	dir := filepath.Join(t.TempDir(), "Caches")
	writeFile(t, filepath.Join(dir, "a", "x.dat"), "x")
	writeFile(t, filepath.Join(dir, "b.dat"), "y")

	results := Delete([]string{dir})
	require.Len(t, results, 1)
	assert.Equal(t, Deleted, results[0].Outcome,
		"a fully removable directory is deleted even when bulk removal fails")
	assert.Empty(t, results[0].Reason)
	assert.NoDirExists(t, dir)
}

func TestDeletePartiallyRemovableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := filepath.Join(t.TempDir(), "Caches")
	writeFile(t, filepath.Join(dir, "free.dat"), "x")
	locked := filepath.Join(dir, "locked")
	writeFile(t, filepath.Join(locked, "pinned.dat"), "y")
	require.NoError(t, os.Chmod(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	results := Delete([]string{dir})
	require.Len(t, results, 1)
	assert.Equal(t, PartiallyDeleted, results[0].Outcome)
	assert.NotEmpty(t, results[0].Reason)

	assert.DirExists(t, dir, "a partially deleted directory is left in place")
	assert.NoFileExists(t, filepath.Join(dir, "free.dat"),
		"removable siblings are removed during the fallback sweep")
	assert.FileExists(t, filepath.Join(locked, "pinned.dat"))
}

func TestDeleteBatchIsIndependent(t *testing.T) {
	tmp := t.TempDir()
	good := filepath.Join(tmp, "good.log")
	writeFile(t, good, "x")
	missing := filepath.Join(tmp, "missing.log")
	alsoGood := filepath.Join(tmp, "also.tmp")
	writeFile(t, alsoGood, "y")

	results := Delete([]string{good, missing, alsoGood})
	require.Len(t, results, 3)
	assert.Equal(t, Deleted, results[0].Outcome)
	assert.Equal(t, Failed, results[1].Outcome)
	assert.Equal(t, Deleted, results[2].Outcome,
		"a failed path must not stop the rest of the batch")
	assert.NoFileExists(t, alsoGood)
}

func TestTeardownBottomUp(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tree")
	writeFile(t, filepath.Join(root, "a", "b", "deep.dat"), "x")
	writeFile(t, filepath.Join(root, "a", "mid.dat"), "y")
	writeFile(t, filepath.Join(root, "top.dat"), "z")

	teardown(root)

	// Everything below root is gone; root itself is left for the caller.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, os.Remove(root))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "deleted", Deleted.String())
	assert.Equal(t, "partially deleted", PartiallyDeleted.String())
	assert.Equal(t, "failed", Failed.String())
}
