package dutree

import "fmt"

//nolint:gochecknoglobals // Unit table
var units = []string{"KiB", "MiB", "GiB", "TiB"}

// FormatSize renders bytes with two decimals in the largest binary unit that
// keeps the value below 1024, capped at TiB. With raw set, or below 1 KiB, the
// exact byte count is printed.
func FormatSize(bytes uint64, raw bool) string {
	const unit = 1024

	if raw || bytes < unit {
		return fmt.Sprintf("%d.00 B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
