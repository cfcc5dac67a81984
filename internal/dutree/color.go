package dutree

import (
	"path/filepath"
	"strings"

	"github.com/idelchi/dutree/internal/fsmeta"
	"github.com/idelchi/dutree/internal/lscolors"
)

// color resolves the display color of an entry, or "" in ASCII mode.
func (b *Builder) color(name string, info fsmeta.Info) string {
	if b.opts.ASCII {
		return ""
	}

	return resolveColor(b.opts.Colors, name, info)
}

// resolveColor applies the ls lookup order: links, directories, executables,
// extensions, regular files, then everything else as a block device.
func resolveColor(table lscolors.Table, name string, info fsmeta.Info) string {
	if info.Kind == fsmeta.Symlink {
		key := "or"
		if info.TargetExists {
			key = "ln"
		}

		if col, ok := table.Get(key); ok {
			return col
		}
	}

	if info.IsDir() {
		if info.Mode&0o002 != 0 {
			if col, ok := table.Get("ow"); ok {
				return col
			}
		}

		if col, ok := table.Get("di"); ok {
			return col
		}
	}

	if info.Mode&0o111 != 0 {
		if col, ok := table.Get("ex"); ok {
			return col
		}
	}

	if col, ok := table.Extension(extension(name)); ok {
		return col
	}

	if isFile(info) {
		col, _ := table.Get("fi")

		return col
	}

	col, _ := table.Get("bd")

	return col
}

// extension returns the suffix after the last dot, without the dot.
// Names that only start with a dot have none.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}

	return strings.TrimPrefix(ext, ".")
}

func isFile(info fsmeta.Info) bool {
	return info.Kind == fsmeta.File ||
		(info.Kind == fsmeta.Symlink && info.TargetExists && !info.TargetIsDir)
}
