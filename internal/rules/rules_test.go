package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFile(t *testing.T) {
	set := Default()

	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},         // exact name
		{"desktop.ini", true},       // exact name
		{"Thumbs.db", true},         // exact name
		{".zcompdump-mac-5.8", true}, // pattern
		{"install.log", true},       // extension
		{"data.tmp", true},          // extension
		{"archive.cache", true},     // extension
		{"notes.txt", false},
		{"DS_Store", false},          // name match is exact, including the dot
		{"install.LOG", false},       // extensions are case-sensitive
		{"x.zcompdump-mac", false},   // pattern is anchored at the start
		{"Caches", false},            // folder rules never match files
		{"mylog", false},             // no extension at all
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.MatchFile(tt.name))
		})
	}
}

func TestMatchFolder(t *testing.T) {
	set := Default()

	assert.True(t, set.MatchFolder("Caches"))
	assert.True(t, set.MatchFolder(".Trash"))
	assert.True(t, set.MatchFolder("Photo Booth Library"))
	assert.False(t, set.MatchFolder("caches"), "folder match is case-sensitive")
	assert.False(t, set.MatchFolder("Caches2"))
	assert.False(t, set.MatchFolder(".DS_Store"), "file rules never match folders")
}

func TestCompilePatternAnchored(t *testing.T) {
	p, err := CompilePattern(`foo.*bar`)
	require.NoError(t, err)

	assert.True(t, p.MatchString("fooXbar"))
	assert.True(t, p.MatchString("fooXbar.extra"), "match from start, not full string")
	assert.False(t, p.MatchString("prefix-fooXbar"))
}
