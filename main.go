// Command dutree displays a disk usage tree with proportional bars.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dutree/internal/cli"
)

// Version is set at build time.
var version = "unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
