package scan

import (
	"context"
	"io/fs"
	"path/filepath"
)

// DirSize returns the total byte size of all files reachable under path.
// Individual files that cannot be read contribute 0 and unreadable subtrees
// are skipped; the call never fails. If the root itself cannot be traversed
// the result is 0. Symlinked directories are not followed. Cancelling ctx
// stops the summation and returns the total counted so far.
func DirSize(ctx context.Context, path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if err != nil {
			// Unreadable entry or vanished file: count nothing for it.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}
