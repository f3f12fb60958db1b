package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Config is the optional JSON rules overlay. Every field extends the
// built-in Set except Exclude, which drops a built-in entry by its literal
// value (name, pattern source, extension, or folder).
type Config struct {
	Names      []string `json:"names"`
	Patterns   []string `json:"patterns"`
	Extensions []string `json:"extensions"`
	Folders    []string `json:"folders"`
	Exclude    []string `json:"exclude"`
}

// ResolveConfigPath returns the rules config to load: the explicit path if
// given, otherwise the first existing default location.
func ResolveConfigPath(root, explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	for _, candidate := range defaultConfigPaths(root) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func defaultConfigPaths(root string) []string {
	var paths []string
	if root != "" {
		paths = append(paths, filepath.Join(root, ".gunk.json"))
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "gunk", "config.json"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gunk", "config.json"))
	}
	return paths
}

// LoadConfig reads and parses a rules overlay file.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply returns a new Set with the overlay applied to base. Added entries
// are deduplicated; unknown Exclude values are ignored.
func (c Config) Apply(base *Set) (*Set, error) {
	drop := make(map[string]bool, len(c.Exclude))
	for _, v := range c.Exclude {
		drop[v] = true
	}

	out := &Set{}
	for _, n := range append(slices.Clone(base.Names), c.Names...) {
		if !drop[n] && !slices.Contains(out.Names, n) {
			out.Names = append(out.Names, n)
		}
	}
	for _, p := range base.Patterns {
		if !drop[patternSource(p.String())] {
			out.Patterns = append(out.Patterns, p)
		}
	}
	for _, expr := range c.Patterns {
		if drop[expr] {
			continue
		}
		p, err := CompilePattern(expr)
		if err != nil {
			return nil, fmt.Errorf("config pattern %q: %w", expr, err)
		}
		out.Patterns = append(out.Patterns, p)
	}
	for _, e := range append(slices.Clone(base.Extensions), c.Extensions...) {
		if !drop[e] && !slices.Contains(out.Extensions, e) {
			out.Extensions = append(out.Extensions, e)
		}
	}
	for _, f := range append(slices.Clone(base.Folders), c.Folders...) {
		if !drop[f] && !slices.Contains(out.Folders, f) {
			out.Folders = append(out.Folders, f)
		}
	}
	return out, nil
}

// patternSource strips the anchor wrapper added by CompilePattern so that
// Exclude entries can name the pattern as the user wrote it.
func patternSource(compiled string) string {
	const prefix, suffix = `\A(?:`, `)`
	if len(compiled) > len(prefix)+len(suffix) &&
		compiled[:len(prefix)] == prefix && compiled[len(compiled)-1:] == suffix {
		return compiled[len(prefix) : len(compiled)-1]
	}
	return compiled
}
