package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dutree/internal/dutree"
	"github.com/idelchi/dutree/internal/lscolors"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// flags holds raw flag values before validation.
type flags struct {
	depth     int
	aggregate string
	summary   bool
	usage     bool
	bytes     bool
	exclude   []string
	noHidden  bool
	ascii     bool
	debug     bool
}

// Execute runs the CLI with os.Args.
func (c CLI) Execute() error {
	cmd := c.Command()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))

	return cmd.Execute()
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "dutree [options] <path> [<path>..]",
		Short: "Display a disk usage tree with proportional bars",
		Long: heredoc.Doc(`
			dutree shows the disk usage of one or more paths as a tree.

			Every line carries a bar showing how much of its parent the entry takes up,
			nested inside the bars of all its ancestors, followed by the share of the
			parent in percent and the size of the entry.

			Paths default to the current directory. Several paths are shown under a
			common <collection> root. Colors follow LS_COLORS unless --ascii is set.

			Optional values must be attached, e.g. '-d2', '-d=2', '-a10M' or '--aggr=10M'.
			A separate word such as '-d 2' is read as a path.
			Aggregation sizes take a B, K, M, G or T suffix (powers of 1024).
		`),
		Example: heredoc.Doc(`
			dutree
			dutree -s ~/Downloads
			dutree -d=2 -a=10M -x node_modules -x .git src docs
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := f.options(args)
			if err != nil {
				return err
			}

			options.Colors = lscolors.Parse(os.Getenv(lscolors.EnvVar))

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetVersionTemplate("dutree version {{.Version}}\n")

	fl := cmd.Flags()
	fl.SortFlags = false

	fl.IntVarP(&f.depth, "depth", "d", dutree.UnlimitedDepth, "Show directories up to depth N, given as -dN or --depth=N (1 if no value is given, -1=unlimited)")
	optionalValue(fl, "depth", "1")
	fl.StringVarP(&f.aggregate, "aggr", "a", "0", "Aggregate entries smaller than N[BKMGT], given as -aN or --aggr=N (1M if no value is given)")
	optionalValue(fl, "aggr", "1M")
	fl.BoolVarP(&f.summary, "summary", "s", false, "Equivalent to -d=1 -a=1M")
	fl.BoolVarP(&f.usage, "usage", "u", false, "Report real disk usage instead of file size")
	fl.BoolVarP(&f.bytes, "bytes", "b", false, "Print sizes in bytes")
	fl.StringArrayVarP(&f.exclude, "exclude", "x", nil, "Exclude files or directories with this exact name (repeatable)")
	fl.BoolVarP(&f.noHidden, "no-hidden", "H", false, "Exclude hidden files")
	fl.BoolVarP(&f.ascii, "ascii", "A", false, "ASCII characters only, no colors")
	fl.BoolVar(&f.debug, "debug", false, "Enable debug output")

	return cmd
}

// optionalValue lets a flag be given without a value.
func optionalValue(fl *pflag.FlagSet, name, value string) {
	fl.Lookup(name).NoOptDefVal = value
}

// options validates the flags and resolves the root paths.
func (f flags) options(args []string) (dutree.Options, error) {
	options := dutree.Options{
		Paths:    args,
		Depth:    f.depth,
		Usage:    f.usage,
		Bytes:    f.bytes,
		Exclude:  f.exclude,
		NoHidden: f.noHidden,
		ASCII:    f.ascii,
		Debug:    f.debug,
	}

	if options.Depth < dutree.UnlimitedDepth {
		return options, errors.New("depth cannot be negative")
	}

	aggregate, err := ParseSize(f.aggregate)
	if err != nil {
		return options, fmt.Errorf("invalid aggregation size: %w", err)
	}

	options.Aggregate = aggregate

	if f.summary {
		options.Depth = 1
		options.Aggregate = 1 << 20
	}

	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}

	for _, path := range options.Paths {
		if _, err := os.Lstat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return options, fmt.Errorf("path %s doesn't exist", path)
			}

			return options, fmt.Errorf("accessing path %q: %w", path, err)
		}
	}

	return options, nil
}
