//go:build unix

package fsmeta

import (
	"io/fs"
	"syscall"
)

// blockSize is the unit of st_blocks, fixed at 512 bytes by POSIX.
const blockSize = 512

func usage(fi fs.FileInfo) uint64 {
	stat, ok := fi.Sys().(*syscall.Stat_t)
	if !ok || stat.Blocks < 0 {
		return 0
	}

	return uint64(stat.Blocks) * blockSize //nolint:gosec // Blocks checked non-negative
}
