// Package core holds small helpers shared by the CLI and the TUI.
package core

import (
	"fmt"
	"time"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count in binary (1024-based) units with one
// decimal place. Display caps at TB: anything larger keeps dividing into a
// growing TB figure ("1024.0 TB").
func FormatSize(size int64) string {
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}

// FormatDuration renders an elapsed time for status lines, trimming to a
// readable precision ("3.42s", "1m12s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return d.Truncate(time.Second).String()
}
