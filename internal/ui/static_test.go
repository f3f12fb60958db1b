package ui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunktools/gunk/internal/rules"
)

func TestRunStatic(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proj", "Caches"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "proj", "Caches", "x.log"), []byte("abc"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "proj", ".DS_Store"), []byte("m"), 0o644))

	var out bytes.Buffer
	matches, aborted, err := RunStatic(context.Background(), &out, root, rules.Default())
	require.NoError(t, err)
	assert.False(t, aborted)

	require.Len(t, matches, 2)
	paths := []string{matches[0].Path, matches[1].Path}
	assert.Contains(t, paths, filepath.Join(root, "proj", "Caches"))
	assert.Contains(t, paths, filepath.Join(root, "proj", ".DS_Store"))

	assert.Contains(t, out.String(), "Scan completed")
	assert.Contains(t, out.String(), "Found 2 items")
}

func TestRunStaticAborted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".DS_Store"), []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	matches, aborted, err := RunStatic(ctx, &out, root, rules.Default())
	require.NoError(t, err)
	assert.True(t, aborted, "cancellation must be reported to the caller")
	assert.Empty(t, matches)
	assert.Contains(t, out.String(), "Scan aborted")
}

func TestRunStaticBadRoot(t *testing.T) {
	var out bytes.Buffer
	_, _, err := RunStatic(context.Background(), &out, filepath.Join(t.TempDir(), "missing"), rules.Default())
	assert.Error(t, err)
}
