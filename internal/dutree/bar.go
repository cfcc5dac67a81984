package dutree

import (
	"fmt"
	"strings"
)

const (
	// barBorders is the number of border characters around the bar.
	barBorders = 2
	// barPercent is the width of the " NNN%" suffix.
	barPercent = 5
)

//nolint:gochecknoglobals // Glyph tables
var (
	shadeGlyphs = []rune{' ', '░', '▒', '▓', '█'}
	asciiGlyphs = []rune{' ', '#'}
)

// RenderBar draws the share of the last element of sizes relative to its
// ancestors. sizes[0] is the root total and each following element is a child
// of the one before it. Every nesting level occupies a region proportional to
// its share of the parent region and is drawn one shade darker; the deepest
// level is solid. width includes the borders and the percentage suffix.
func RenderBar(sizes []uint64, width int, ascii bool) string {
	inner := max(width-barBorders-barPercent, 0)

	glyphs := shadeGlyphs
	if ascii {
		glyphs = asciiGlyphs
	}

	var bar strings.Builder

	bar.Grow(inner*3 + 2) //nolint:mnd // Up to 3 bytes per glyph
	bar.WriteRune('│')

	if len(sizes) >= 2 { //nolint:nestif // Level walk
		span := uint64(inner)
		levels := len(sizes) - 1
		next := 2
		total, part := sizes[0], sizes[1]
		bars := scale(part, span, total)
		pos := span - bars
		shade := 0

		for x := range span {
			for x >= pos {
				total = part
				part = 0

				if next < len(sizes) {
					part = sizes[next]
					next++
				}

				bars = scale(part, bars, total)
				pos = span - bars

				shade++
				if shade >= levels || shade >= len(glyphs) {
					shade = len(glyphs) - 1
				}
			}

			bar.WriteRune(glyphs[shade])
		}
	} else {
		bar.WriteString(strings.Repeat(" ", inner))
	}

	bar.WriteRune('│')

	return fmt.Sprintf("%s %3d%%", bar.String(), percent(sizes))
}

// scale returns part/total of length, clamped to length. A zero total yields 0.
func scale(part, length, total uint64) uint64 {
	if total == 0 {
		return 0
	}

	return min(part*length/total, length)
}

// percent returns the share of the last size in its parent.
func percent(sizes []uint64) uint64 {
	if len(sizes) < 2 || sizes[len(sizes)-2] == 0 {
		return 0
	}

	return sizes[len(sizes)-1] * 100 / sizes[len(sizes)-2] //nolint:mnd // Percentage
}
