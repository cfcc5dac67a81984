package dutree

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 80
	// sizeColumn is the width reserved for the size column and separators.
	sizeColumn = 15
	// branchWidth is the width of one level of tree connectors.
	branchWidth = 3
	// barShare is the percentage of the remaining width given to the bar.
	barShare = 75
)

// Printer renders Entry trees as text.
type Printer struct {
	w         io.Writer
	raw       bool
	ascii     bool
	barWidth  int
	nameWidth int
}

// NewPrinter creates a Printer for a terminal of the given width in columns.
// A non-positive width selects DefaultWidth.
func NewPrinter(w io.Writer, width int, raw, ascii bool) *Printer {
	if width <= 0 {
		width = DefaultWidth
	}

	variable := max(width-sizeColumn, 0)

	return &Printer{
		w:         w,
		raw:       raw,
		ascii:     ascii,
		barWidth:  variable * barShare / 100,
		nameWidth: variable * (100 - barShare) / 100,
	}
}

// Print writes a header line for root followed by one line per visible descendant.
func (p *Printer) Print(root Entry) error {
	w := bufio.NewWriter(p.w)

	fmt.Fprintf(w, "[ %s %s ]\n", root.Name, FormatSize(root.Size, p.raw))
	p.printChildren(w, root, nil, []uint64{root.Size})

	return w.Flush()
}

// printChildren prints the children of parent. lastParents records for each
// ancestor level whether that ancestor was the last of its siblings; sizes is
// the size chain from the root down to parent.
func (p *Printer) printChildren(w io.Writer, parent Entry, lastParents []bool, sizes []uint64) {
	nameWidth := p.nameWidth - (len(lastParents)+1)*branchWidth
	if nameWidth <= 0 {
		return
	}

	for i, entry := range parent.Children {
		last := i == len(parent.Children)-1
		chain := append(slices.Clip(sizes), entry.Size)

		var line strings.Builder

		for _, closed := range lastParents {
			if closed {
				line.WriteString("   ")
			} else {
				line.WriteString("│  ")
			}
		}

		if last {
			line.WriteString("└─ ")
		} else {
			line.WriteString("├─ ")
		}

		line.WriteString(p.name(entry, nameWidth))
		line.WriteByte(' ')
		line.WriteString(RenderBar(chain, p.barWidth, p.ascii))
		fmt.Fprintf(&line, " %13s", FormatSize(entry.Size, p.raw))

		fmt.Fprintln(w, line.String())

		if entry.Expandable() {
			p.printChildren(w, entry, append(slices.Clip(lastParents), last), chain)
		}
	}
}

// name truncates the entry name to width display cells, colors it and pads it.
func (p *Printer) name(entry Entry, width int) string {
	name := runewidth.Truncate(entry.Name, width, "")
	pad := max(width-runewidth.StringWidth(name), 0)

	if entry.Color != "" {
		name = "\x1b[" + entry.Color + "m" + name + "\x1b[0m"
	}

	return name + strings.Repeat(" ", pad)
}
