package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dutree/internal/dutree"
)

// PrintSummary outputs build statistics as a debug line.
func PrintSummary(stats dutree.Stats, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, "[debug]: visited %d entries, %s in total, %d errors, took %v\n",
		stats.Entries, humanize.IBytes(stats.TotalBytes), stats.ErrorCount, stats.Elapsed)

	return err
}
