// chesstree reads PGN games into variation trees and writes them back as
// normalised PGN or a JSON tree export. It also lists legal moves, replays
// move lists and runs perft on a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lgbarn/chesstree/internal/config"
	"github.com/lgbarn/chesstree/internal/errors"
	"github.com/lgbarn/chesstree/internal/hashing"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // an input or output error, or games that failed to parse
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "chesstree version %s\n", programVersion)
		return exitOK
	}

	loaded, err := config.Load(opts.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return exitFailure
	}
	cfg := applyFlags(loaded, &opts, setFlags(fs))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return exitFailure
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	out, closeOut, err := openOutput(opts.outputFile, stdout)
	if err != nil {
		logger.Errorw("cannot open output", "file", opts.outputFile, "error", err)
		return exitFailure
	}
	defer closeOut()

	switch {
	case opts.perft > 0:
		err = runPerft(out, opts.fen, opts.perft)
	case opts.legal:
		err = listLegalMoves(out, opts.fen)
	case opts.moves != "":
		err = playMoves(out, opts.fen, opts.moves)
	default:
		return processAll(ctx, cfg, &opts, fs.Args(), stdin, out, logger)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// openOutput opens the output file, or returns stdout for "".
func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil //nolint:errcheck,gosec // G104: cleanup on exit
}

// processAll parses and writes every input file, or stdin without files.
func processAll(ctx context.Context, cfg *config.Config, opts *options, files []string, stdin io.Reader, out io.Writer, logger *zap.SugaredLogger) int {
	p := newProcessor(cfg, out, logger)
	if opts.suppressDuplicates {
		p.detector = hashing.NewDuplicateDetector(hashing.HashFinalPosition, opts.exactDuplicates)
	}
	code := exitOK

	if len(files) == 0 {
		if err := p.processInput(ctx, stdin, "stdin"); err != nil {
			logger.Errorw("processing failed", "error", err)
			code = exitFailure
		}
	}
	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			logger.Errorw("cannot open input", "file", filename, "error", err)
			code = exitFailure
			continue
		}
		err = p.processInput(ctx, file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			logger.Errorw("processing failed", "file", filename, "error", err)
			code = exitFailure
			if ctx.Err() != nil {
				break
			}
		}
	}

	if err := p.finish(); err != nil {
		logger.Errorw("processing failed", "error", err)
		code = exitFailure
	}
	if p.stats.failed > 0 {
		code = exitFailure
	}
	logger.Infow("done", "games", p.stats.games, "written", p.stats.written,
		"failed", p.stats.failed, "duplicates", p.stats.duplicates)
	return code
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: chesstree [options] [input-files...]\n\n")
	fmt.Fprintf(w, "Reads PGN games and writes them as normalised PGN or JSON.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nConfiguration is read from -config, then CHESSTREE_* environment\n")
	fmt.Fprintf(w, "variables (e.g. CHESSTREE_OUTPUT_MAX_LINE_LENGTH), then flags.\n")
}
