package dutree

import (
	"fmt"
	"io"
)

// logger writes diagnostics to the error stream.
type logger struct {
	w     io.Writer
	debug bool
}

// warnf reports a recoverable problem.
func (l logger) warnf(format string, args ...any) {
	if l.w == nil {
		return
	}

	fmt.Fprintf(l.w, format+"\n", args...)
}

// debugf prints debug output if enabled.
func (l logger) debugf(format string, args ...any) {
	if !l.debug || l.w == nil {
		return
	}

	fmt.Fprintf(l.w, "[debug]: "+format+"\n", args...)
}
