package cli

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // Compiled once
var attachedValue = regexp.MustCompile(`^-([da])(\d.*)$`)

// normalizeArgs rewrites "-d2" and "-a10M" to "-d=2" and "-a=10M". Both flags
// take optional values, which pflag only reads when attached with '='.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}

		if match := attachedValue.FindStringSubmatch(arg); match != nil && !strings.Contains(arg, "=") {
			arg = "-" + match[1] + "=" + match[2]
		}

		out = append(out, arg)
	}

	return out
}
