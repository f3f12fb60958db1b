package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tb := int64(math.Pow(1024, 4))

	tests := []struct {
		size int64
		want string
	}{
		{0, "0.0 B"},
		{1, "1.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5*1024*1024*1024 + 512*1024*1024, "5.5 GB"},
		{tb, "1.0 TB"},
		{tb * 1024, "1024.0 TB"}, // display caps at TB
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.size), "size %d", tt.size)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.50s", FormatDuration(500*time.Millisecond))
	assert.Equal(t, "3.42s", FormatDuration(3420*time.Millisecond))
	assert.Equal(t, "1m12s", FormatDuration(72*time.Second))
}
