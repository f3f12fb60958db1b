// Package rules defines the junk classification rule set and the matcher
// that decides whether a file or folder name is junk.
package rules

import (
	"path/filepath"
	"regexp"
	"slices"
)

// Set is a classification rule set. A Set must not be mutated while a scan
// is using it.
type Set struct {
	// Names are exact-match file names.
	Names []string

	// Patterns are matched against file names from the start of the string.
	Patterns []*regexp.Regexp

	// Extensions are file extensions including the leading dot,
	// case-sensitive.
	Extensions []string

	// Folders are exact-match directory base names.
	Folders []string
}

// Default returns the built-in rule set: macOS and cross-platform metadata
// files, shell droppings, log/temp extensions, and well-known cache folders.
func Default() *Set {
	return &Set{
		Names: []string{
			".DS_Store",
			"desktop.ini",
			"Thumbs.db",
			".zsh_history",
			".viminfo",
			".localized",
		},
		Patterns: []*regexp.Regexp{
			MustCompilePattern(`\.zcompdump-.*`),
		},
		Extensions: []string{".log", ".tmp", ".cache"},
		Folders: []string{
			"$RECYCLE.BIN",
			"Caches",
			"Logs",
			"CrashReporter",
			"tmp",
			"temp",
			"log",
			".Trash",
			".fseventsd",
			".Spotlight-V100",
			"Photo Booth Library",
		},
	}
}

// CompilePattern compiles a name pattern anchored at the start of the
// string, so `foo.*` matches "foobar" but not "xfoobar".
func CompilePattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + expr + `)`)
}

// MustCompilePattern is CompilePattern for built-in patterns.
func MustCompilePattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + expr + `)`)
}

// PatternSource returns a compiled pattern as it was written, without the
// anchor wrapper added by CompilePattern. This is the form Exclude entries
// match against.
func PatternSource(p *regexp.Regexp) string {
	return patternSource(p.String())
}

// MatchFile reports whether a file name is junk: an exact name match, a
// pattern match from the start of the name, or an extension match. The
// extension is the substring from the last dot to the end of the name,
// compared case-sensitively.
func (s *Set) MatchFile(name string) bool {
	if slices.Contains(s.Names, name) {
		return true
	}
	for _, p := range s.Patterns {
		if p.MatchString(name) {
			return true
		}
	}
	if ext := filepath.Ext(name); ext != "" {
		return slices.Contains(s.Extensions, ext)
	}
	return false
}

// MatchFolder reports whether a directory base name is junk. Folders match
// by exact name only; patterns and extensions do not apply.
func (s *Set) MatchFolder(name string) bool {
	return slices.Contains(s.Folders, name)
}
