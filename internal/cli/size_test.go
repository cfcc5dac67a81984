package cli

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		value    string
		expected uint64
	}{
		{"0", 0},
		{"512", 512},
		{"512b", 512},
		{"2K", 2048},
		{"2k", 2048},
		{"1M", 1 << 20},
		{"3G", 3 << 30},
		{"1T", 1 << 40},
		{"1.5GiB", 3 << 29},
		{"10MB", 10_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			size, err := ParseSize(tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, size)
		})
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, value := range []string{"", "abc", "5X", "-5", "M"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParseSize(value)
			assert.Error(t, err)
		})
	}
}
