//go:build !unix

package fsmeta

import "io/fs"

// usage falls back to the logical size where block counts are unavailable.
func usage(fi fs.FileInfo) uint64 {
	if fi.Size() < 0 {
		return 0
	}

	return uint64(fi.Size())
}
