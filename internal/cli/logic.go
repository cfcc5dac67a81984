package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/idelchi/dutree/internal/dutree"
	"github.com/idelchi/dutree/internal/lscolors"
)

func logic(options dutree.Options, stdout, stderr io.Writer) error {
	enableProgress := !options.Debug && isTerminal(stderr)

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries int64, bytes uint64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(entries int64, bytes uint64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s", entries, humanize.IBytes(bytes))
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	if options.Debug {
		fmt.Fprintf(stderr, "[debug]: %d color definitions from %s\n", options.Colors.Len(), lscolors.EnvVar)
	}

	root, stats := dutree.Run(options, stderr, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if options.Debug {
		if err := PrintSummary(stats, stderr); err != nil {
			return err
		}
	}

	width := terminalWidth(stdout)
	if width <= 0 && options.Debug {
		fmt.Fprintf(stderr, "[debug]: unable to get terminal size, using %d columns\n", dutree.DefaultWidth)
	}

	printer := dutree.NewPrinter(stdout, width, options.Bytes, options.ASCII)
	if err := printer.Print(root); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// terminalWidth returns the column count of w if it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd())) //nolint:gosec // File descriptors fit in int
	if err != nil {
		return 0
	}

	return width
}
