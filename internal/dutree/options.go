package dutree

import (
	"time"

	"github.com/idelchi/dutree/internal/lscolors"
)

// UnlimitedDepth expands directories without a depth limit.
const UnlimitedDepth = -1

// Options configures tree building and printing.
type Options struct {
	// Paths are the roots to analyze.
	Paths []string
	// Depth is the number of directory levels to display (UnlimitedDepth=all).
	Depth int
	// Aggregate is the size in bytes below which entries are folded (0=off).
	Aggregate uint64
	// Usage reports allocated disk usage instead of logical file size.
	Usage bool
	// Bytes prints exact byte counts.
	Bytes bool
	// NoHidden skips entries whose name starts with a dot.
	NoHidden bool
	// ASCII restricts bars to ASCII glyphs and disables colors.
	ASCII bool
	// Exclude holds exact entry names to skip.
	Exclude []string
	// Colors maps entry kinds and extensions to terminal colors.
	Colors lscolors.Table
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug enables debug output.
	Debug bool
}

// depthLimited reports whether Depth restricts expansion.
func (o Options) depthLimited() bool {
	return o.Depth >= 0
}
