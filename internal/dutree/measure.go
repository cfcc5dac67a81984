package dutree

import (
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/idelchi/dutree/internal/fsmeta"
)

// measure returns the size of path including everything below it.
// Directories are walked to the bottom regardless of the display depth and
// without name filters; symlinks are not followed.
func (b *Builder) measure(path string, info fsmeta.Info) uint64 {
	if info.Kind != fsmeta.Directory {
		return info.Bytes(b.opts.Usage)
	}

	var total atomic.Uint64

	total.Store(info.Footprint(b.opts.Usage))

	root := filepath.Clean(path)

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			b.readError(filepath.Base(p), err)

			return nil
		}

		if p == root {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			b.stats.addEntry(0)
			b.readError(d.Name(), err)

			return nil //nolint:nilerr // Unreadable entries count as zero
		}

		footprint := fsmeta.FromFileInfo(fileInfo).Footprint(b.opts.Usage)
		b.stats.addEntry(footprint)
		total.Add(footprint)

		return nil
	})
	if walkErr != nil {
		b.readError(filepath.Base(root), walkErr)
	}

	return total.Load()
}
