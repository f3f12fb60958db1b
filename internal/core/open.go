package core

import (
	"os/exec"
	"path/filepath"
	"runtime"
)

// Reveal opens the OS file manager with the given path's enclosing folder.
// Errors are ignored; this is a convenience action, not a contract.
func Reveal(path string) {
	switch runtime.GOOS {
	case "darwin":
		_ = exec.Command("open", "-R", path).Start()
	case "windows":
		_ = exec.Command("explorer", "/select,", path).Start()
	default:
		_ = exec.Command("xdg-open", filepath.Dir(path)).Start()
	}
}
