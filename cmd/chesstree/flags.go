// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"

	"github.com/lgbarn/chesstree/internal/config"
)

// options holds parsed command-line flags.
type options struct {
	// Output options
	outputFile string
	lineLength int
	jsonOutput bool
	sevenTags  bool
	noTags     bool

	// Content options
	noComments   bool
	noNAGs       bool
	noVariations bool
	noResults    bool
	noClocks     bool

	// Duplicate detection
	suppressDuplicates bool
	exactDuplicates    bool

	// Position tools
	fen   string
	moves string
	legal bool
	perft int

	// Runtime
	configFile string
	workers    int
	logLevel   string
	version    bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("chesstree", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.IntVar(&opts.lineLength, "w", 80, "Maximum line length (0 = no wrapping)")
	fs.BoolVar(&opts.jsonOutput, "J", false, "Output in JSON format")
	fs.BoolVar(&opts.sevenTags, "7", false, "Output only the seven tag roster")
	fs.BoolVar(&opts.noTags, "notags", false, "Don't output any tags")

	fs.BoolVar(&opts.noComments, "C", false, "Don't output comments")
	fs.BoolVar(&opts.noNAGs, "N", false, "Don't output NAGs")
	fs.BoolVar(&opts.noVariations, "V", false, "Don't output variations")
	fs.BoolVar(&opts.noResults, "noresults", false, "Don't output results")
	fs.BoolVar(&opts.noClocks, "noclocks", false, "Strip clock annotations from comments")

	fs.BoolVar(&opts.suppressDuplicates, "D", false, "Suppress games whose mainline ends in an already seen position")
	fs.BoolVar(&opts.exactDuplicates, "exact", false, "With -D, also require the same number of moves")

	fs.StringVar(&opts.fen, "fen", "", "Start position for -legal, -moves and -perft (default: initial position)")
	fs.StringVar(&opts.moves, "moves", "", "Play space-separated SAN moves from the start position")
	fs.BoolVar(&opts.legal, "legal", false, "List the legal moves of the position")
	fs.IntVar(&opts.perft, "perft", 0, "Count move-tree leaves to depth N, per root move")

	fs.StringVar(&opts.configFile, "config", "", "Configuration file (YAML, TOML or JSON)")
	fs.IntVar(&opts.workers, "workers", 0, "Parallel game parsers (0 = one per CPU)")
	fs.StringVar(&opts.logLevel, "log", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.version, "version", false, "Show version and exit")
	return fs
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides loaded configuration with the flags that were
// given explicitly.
func applyFlags(cfg *config.Config, opts *options, set map[string]bool) *config.Config {
	b := config.From(cfg)
	if set["w"] {
		b.WithMaxLineLength(opts.lineLength)
	}
	if set["J"] {
		b.WithJSONOutput(opts.jsonOutput)
	}
	if opts.sevenTags {
		b.WithTagFormat(config.SevenTagRoster)
	}
	if opts.noTags {
		b.WithTagFormat(config.NoTags)
	}
	if opts.noComments {
		b.WithComments(false)
	}
	if opts.noNAGs {
		b.WithNAGs(false)
	}
	if opts.noVariations {
		b.WithVariations(false)
	}
	if opts.noResults {
		b.WithResults(false)
	}
	if opts.noClocks {
		b.WithClocks(false)
	}
	if set["workers"] {
		b.WithWorkers(opts.workers)
	}
	if opts.logLevel != "" {
		b.WithLogLevel(opts.logLevel)
	}
	return b.Build()
}
