package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunktools/gunk/internal/scan"
)

func entry(path string, size int64) scan.Entry {
	return scan.Entry{Path: path, Size: size, ModTime: time.Now()}
}

func TestAddKeepsDiscoveryOrderAndSelectsByDefault(t *testing.T) {
	s := New()
	s.Add(entry("/a/.DS_Store", 10))
	s.Add(entry("/a/Caches", 100))
	s.Add(entry("/b/x.log", 5))

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "/a/.DS_Store", items[0].Path)
	assert.Equal(t, "/a/Caches", items[1].Path)
	assert.Equal(t, "/b/x.log", items[2].Path)
	for _, item := range items {
		assert.True(t, item.Selected, "new matches start selected")
	}
	assert.Equal(t, int64(115), s.TotalSize())
}

func TestAddIgnoresDuplicatePaths(t *testing.T) {
	s := New()
	s.Add(entry("/a/x.log", 5))
	s.Add(entry("/a/x.log", 7))

	require.Equal(t, 1, s.Len())
	assert.Equal(t, int64(5), s.TotalSize(), "first discovery wins")
}

func TestToggle(t *testing.T) {
	s := New()
	s.Add(entry("/a/x.log", 5))

	require.True(t, s.Toggle("/a/x.log"))
	assert.False(t, s.Get("/a/x.log").Selected)
	require.True(t, s.Toggle("/a/x.log"))
	assert.True(t, s.Get("/a/x.log").Selected)

	assert.False(t, s.Toggle("/nope"))
}

func TestSelectionHelpers(t *testing.T) {
	s := New()
	s.Add(entry("/a", 1))
	s.Add(entry("/b", 2))
	s.Add(entry("/c", 4))

	assert.True(t, s.AllSelected())
	assert.True(t, s.AnySelected())
	assert.Equal(t, int64(7), s.SelectedSize())

	s.Toggle("/b")
	assert.False(t, s.AllSelected())
	assert.True(t, s.AnySelected())
	assert.Equal(t, []string{"/a", "/c"}, s.SelectedPaths())
	assert.Equal(t, int64(5), s.SelectedSize())

	s.DeselectAll()
	assert.False(t, s.AnySelected())
	assert.Empty(t, s.SelectedPaths())

	s.SelectAll()
	assert.True(t, s.AllSelected())
}

func TestAnySelectedEmpty(t *testing.T) {
	s := New()
	assert.False(t, s.AnySelected())
	assert.False(t, s.AllSelected())
}

func TestRemove(t *testing.T) {
	s := New()
	s.Add(entry("/a", 1))
	s.Add(entry("/b", 2))
	s.Add(entry("/c", 4))

	require.True(t, s.Remove("/b"))
	assert.False(t, s.Remove("/b"), "second removal is a no-op")
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "/a", s.Items()[0].Path)
	assert.Equal(t, "/c", s.Items()[1].Path)
	assert.Nil(t, s.Get("/b"))
}

func TestReplaceAllAndClear(t *testing.T) {
	s := New()
	s.Add(entry("/old", 1))
	s.Toggle("/old")

	s.ReplaceAll([]scan.Entry{entry("/new1", 10), entry("/new2", 20)})
	require.Equal(t, 2, s.Len())
	assert.Nil(t, s.Get("/old"))
	assert.True(t, s.AllSelected(), "replacement resets selection state")

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int64(0), s.TotalSize())
}
