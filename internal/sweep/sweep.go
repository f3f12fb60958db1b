// Package sweep removes junk entries. Removal is permanent: there is no
// trash integration and no confirmation at this layer.
package sweep

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Outcome classifies the result of deleting one path.
type Outcome int

const (
	// Deleted means the path is gone.
	Deleted Outcome = iota

	// PartiallyDeleted means some of a directory's contents were removed
	// but the directory itself remains.
	PartiallyDeleted

	// Failed means nothing was removed.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case PartiallyDeleted:
		return "partially deleted"
	default:
		return "failed"
	}
}

// removeAll is swapped out in tests to force the fallback path.
var removeAll = os.RemoveAll

// Result is the per-path deletion report.
type Result struct {
	Path    string
	Outcome Outcome

	// Reason carries a human-readable failure description for
	// PartiallyDeleted and Failed outcomes.
	Reason string
}

// Delete removes each path independently and reports one Result per path in
// input order. A failure on one path never stops the rest of the batch.
func Delete(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, deleteOne(path))
	}
	return results
}

func deleteOne(path string) Result {
	info, err := os.Lstat(path)
	if err != nil {
		return Result{Path: path, Outcome: Failed, Reason: err.Error()}
	}

	if !info.IsDir() {
		if err := os.Remove(path); err != nil {
			return Result{Path: path, Outcome: Failed, Reason: err.Error()}
		}
		return Result{Path: path, Outcome: Deleted}
	}

	// First attempt: one bulk recursive removal.
	err = removeAll(path)
	if err == nil {
		if _, statErr := os.Lstat(path); os.IsNotExist(statErr) {
			return Result{Path: path, Outcome: Deleted}
		}
	}

	// Fallback: manual bottom-up teardown, skipping whatever resists.
	teardown(path)
	if rmErr := os.Remove(path); rmErr == nil || os.IsNotExist(rmErr) {
		return Result{Path: path, Outcome: Deleted}
	}
	reason := "directory still contains entries that could not be removed"
	if err != nil {
		reason = err.Error()
	}
	return Result{Path: path, Outcome: PartiallyDeleted, Reason: reason}
}

// teardown walks the subtree below root, removing files as they are seen
// and then the collected directories deepest-first. Every removal is
// best-effort; failures are skipped so siblings still get a chance.
func teardown(root string) {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
			return nil
		}
		_ = os.Remove(path)
		return nil
	})

	// Children before parents.
	for i := len(dirs) - 1; i >= 0; i-- {
		_ = os.Remove(dirs[i])
	}
}
