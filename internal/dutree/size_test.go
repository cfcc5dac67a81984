package dutree

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormatSize(t *testing.T) {
	const (
		kib = 1024
		mib = kib * 1024
		gib = mib * 1024
		tib = gib * 1024
	)

	tests := []struct {
		bytes    uint64
		expected string
	}{
		{0, "0.00 B"},
		{1, "1.00 B"},
		{1023, "1023.00 B"},
		{kib, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{mib - 1, "1024.00 KiB"},
		{mib, "1.00 MiB"},
		{gib, "1.00 GiB"},
		{tib, "1.00 TiB"},
		{1024 * tib, "1024.00 TiB"},
		{5 * gib / 2, "2.50 GiB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSize(tt.bytes, false), "bytes=%d", tt.bytes)
	}
}

func TestFormatSizeRaw(t *testing.T) {
	assert.Equal(t, "0.00 B", FormatSize(0, true))
	assert.Equal(t, "1048576.00 B", FormatSize(1<<20, true))
}
