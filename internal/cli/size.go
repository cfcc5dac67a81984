package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals // Compiled once
var shortSize = regexp.MustCompile(`^(\d+)([a-zA-Z]?)$`)

// ParseSize converts a size such as "512", "10K" or "1M" into bytes, where the
// single letter suffixes B, K, M, G and T are powers of 1024. Anything else is
// handed to humanize, so "1.5GiB" and "10MB" work as well.
func ParseSize(value string) (uint64, error) {
	match := shortSize.FindStringSubmatch(value)
	if match == nil {
		size, err := humanize.ParseBytes(value)
		if err != nil {
			return 0, fmt.Errorf("invalid argument %q", value)
		}

		return size, nil
	}

	unit := strings.ToUpper(match[2])

	switch unit {
	case "", "B":
		size, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid argument %q: %w", value, err)
		}

		return size, nil
	case "K", "M", "G", "T":
		size, err := humanize.ParseBytes(match[1] + unit + "iB")
		if err != nil {
			return 0, fmt.Errorf("invalid argument %q: %w", value, err)
		}

		return size, nil
	default:
		return 0, fmt.Errorf("invalid argument %q: unknown unit %q", value, match[2])
	}
}
