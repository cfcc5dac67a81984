package dutree

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/idelchi/dutree/internal/fsmeta"
)

// Builder turns filesystem paths into Entry trees.
type Builder struct {
	opts    Options
	exclude map[string]struct{}
	log     logger
	stats   *collector
	// readDir lists a directory. Nil names mean it could not be opened.
	readDir func(path string) ([]string, error)
}

// NewBuilder creates a Builder. Warnings about unreadable paths go to errw.
func NewBuilder(opts Options, errw io.Writer) *Builder {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = struct{}{}
	}

	return &Builder{
		opts:    opts,
		exclude: exclude,
		log:     logger{w: errw, debug: opts.Debug},
		stats:   newCollector(nil, opts.ProgressInterval),
		readDir: readNames,
	}
}

// Run builds the tree for opts.Paths and reports what the walk did.
// progressHook, if not nil, receives the number of visited entries and the
// bytes seen so far, at most once per opts.ProgressInterval.
func Run(opts Options, errw io.Writer, progressHook func(int64, uint64)) (Entry, Stats) {
	start := time.Now()

	b := NewBuilder(opts, errw)
	b.stats = newCollector(progressHook, opts.ProgressInterval)

	root := b.BuildAll(opts.Paths)

	return root, b.stats.finalize(root, start)
}

// BuildAll builds one tree per path. Several paths are gathered under a
// synthetic collection root; no path means the current directory.
func (b *Builder) BuildAll(paths []string) Entry {
	switch len(paths) {
	case 0:
		return b.Build(".")
	case 1:
		return b.Build(paths[0])
	}

	children := make([]Entry, 0, len(paths))

	var size uint64

	for _, path := range paths {
		entry := b.Build(path)
		size += entry.Size
		children = append(children, entry)
	}

	sortBySize(children)

	return Entry{Name: CollectionName, Size: size, Kind: KindDirectory, Children: children}
}

// Build builds the tree rooted at path.
func (b *Builder) Build(path string) Entry {
	return b.build(path, "", b.opts.Depth)
}

// build creates the entry for path. An empty name is derived from the path.
// depth is the number of directory levels still to expand.
func (b *Builder) build(path, name string, depth int) Entry {
	info, err := fsmeta.Lstat(path)
	if name == "" {
		name = displayName(path, info)
	}

	if err != nil {
		b.stats.addEntry(0)
		b.readError(name, err)

		return leaf(name, 0, "")
	}

	b.stats.addEntry(info.Footprint(b.opts.Usage))

	color := b.color(name, info)

	if info.Kind == fsmeta.Directory && (!b.opts.depthLimited() || depth > 0) {
		children, ok := b.children(path, name, depth-1)
		if !ok {
			return leaf(name, info.Footprint(b.opts.Usage), color)
		}

		size := info.Footprint(b.opts.Usage)
		for _, child := range children {
			size += child.Size
		}

		return Entry{Name: name, Size: size, Color: color, Kind: KindDirectory, Children: children}
	}

	return leaf(name, b.measure(path, info), color)
}

// children builds, filters, folds and sorts the entries of directory path.
// It returns false if the directory could not be opened.
func (b *Builder) children(path, name string, depth int) ([]Entry, bool) {
	names, err := b.readDir(path)
	if names == nil {
		b.readError(name, err)

		return nil, false
	}

	if err != nil {
		b.stats.addError()
		b.log.warnf("Couldn't read entry (%v)", reason(err))
	}

	entries := make([]Entry, 0, len(names))

	var aggregated uint64

	for _, child := range names {
		if b.skip(child) {
			b.log.debugf("excluding %s", filepath.ToSlash(filepath.Join(path, child)))

			continue
		}

		entry := b.build(filepath.Join(path, child), child, depth)

		if b.opts.Aggregate > 0 && entry.Size < b.opts.Aggregate {
			aggregated += entry.Size

			continue
		}

		entries = append(entries, entry)
	}

	sortBySize(entries)

	if aggregated > 0 {
		entries = append(entries, leaf(AggregatedName, aggregated, ""))
	}

	return entries, true
}

// skip reports whether a directory entry is filtered out by name.
func (b *Builder) skip(name string) bool {
	if _, ok := b.exclude[name]; ok {
		return true
	}

	return b.opts.NoHidden && strings.HasPrefix(name, ".")
}

// readError reports an unreadable path.
func (b *Builder) readError(name string, err error) {
	b.stats.addError()
	b.log.warnf("Couldn't read %s (%v)", name, reason(err))
}

// readNames lists a directory in enumeration order. On a failed open it
// returns nil; on a failed listing it returns what was read and the error.
func readNames(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	dirents, err := dir.ReadDir(-1)

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		names = append(names, d.Name())
	}

	return names, err
}

// sortBySize orders entries by descending size, keeping enumeration order for ties.
func sortBySize(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})
}

// displayName returns the final component of path. Paths that are not
// symlinks are resolved first, so "." and ".." show a real directory name.
func displayName(path string, info fsmeta.Info) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if info.Kind != fsmeta.Symlink {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
	}

	return filepath.Base(abs)
}

// reason strips the path from filesystem errors.
func reason(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
