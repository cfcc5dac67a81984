// Package lscolors parses LS_COLORS-style color definitions.
package lscolors

import "strings"

// EnvVar is the environment variable holding the color definitions.
const EnvVar = "LS_COLORS"

type pair struct {
	key string
	val string
}

// Table is an ordered key to SGR-parameter lookup. The zero value is empty.
type Table struct {
	pairs []pair
}

// Parse reads a colon separated list of key=value pairs, such as
// "di=01;34:ln=01;36:*.tar=01;31". Parsing stops at the first empty item.
// Items without '=' are ignored and double quotes are stripped.
func Parse(value string) Table {
	var t Table

	for item := range strings.SplitSeq(value, ":") {
		if item == "" {
			break
		}

		key, val, ok := strings.Cut(strings.ReplaceAll(item, `"`, ""), "=")
		if !ok {
			continue
		}

		t.pairs = append(t.pairs, pair{key: key, val: val})
	}

	return t
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.pairs)
}

// Get returns the value of the first entry named key.
func (t Table) Get(key string) (string, bool) {
	for _, p := range t.pairs {
		if p.key == key {
			return p.val, true
		}
	}

	return "", false
}

// Extension returns the value of the first "*.<ext>" entry matching ext.
// ext is given without the leading dot.
func (t Table) Extension(ext string) (string, bool) {
	if ext == "" {
		return "", false
	}

	for _, p := range t.pairs {
		if name, ok := strings.CutPrefix(p.key, "*."); ok && name == ext {
			return p.val, true
		}
	}

	return "", false
}
