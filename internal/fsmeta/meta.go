package fsmeta

import (
	"io/fs"
	"os"
)

// Kind classifies a path without following symbolic links.
type Kind uint8

const (
	// File is a regular file.
	File Kind = iota
	// Directory is a directory.
	Directory
	// Symlink is a symbolic link.
	Symlink
	// Other is a device, socket, named pipe or anything else.
	Other
)

// Info holds the metadata of one path.
type Info struct {
	// Size is the nominal byte length (st_size).
	Size uint64
	// Usage is the allocated size in bytes (st_blocks * 512).
	Usage uint64
	// Kind is the type of the path itself.
	Kind Kind
	// Mode holds the permission bits.
	Mode fs.FileMode
	// TargetExists reports whether a symlink resolves. Always false for non-links.
	TargetExists bool
	// TargetIsDir reports whether a symlink resolves to a directory.
	TargetIsDir bool
}

// Bytes returns the disk usage when usage is set and the logical size otherwise.
func (i Info) Bytes(usage bool) uint64 {
	if usage {
		return i.Usage
	}

	return i.Size
}

// Footprint returns the bytes the path contributes on its own, excluding any
// directory contents. A directory has no logical footprint.
func (i Info) Footprint(usage bool) uint64 {
	if i.Kind == Directory && !usage {
		return 0
	}

	return i.Bytes(usage)
}

// IsDir reports whether the path is a directory, or a symlink to one.
func (i Info) IsDir() bool {
	return i.Kind == Directory || (i.Kind == Symlink && i.TargetIsDir)
}

// Lstat returns the metadata of path without following a final symlink.
func Lstat(path string) (Info, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Info{}, err
	}

	info := FromFileInfo(fi)

	if info.Kind == Symlink {
		if target, err := os.Stat(path); err == nil {
			info.TargetExists = true
			info.TargetIsDir = target.IsDir()
		}
	}

	return info, nil
}

// FromFileInfo converts lstat results into an Info. Symlink targets are not resolved.
func FromFileInfo(fi fs.FileInfo) Info {
	size := fi.Size()
	if size < 0 {
		size = 0
	}

	return Info{
		Size:  uint64(size),
		Usage: usage(fi),
		Kind:  kindOf(fi.Mode()),
		Mode:  fi.Mode().Perm(),
	}
}

func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case mode.IsDir():
		return Directory
	case mode.IsRegular():
		return File
	default:
		return Other
	}
}
