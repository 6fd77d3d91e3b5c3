// processor.go - Parallel parsing and ordered output of PGN input
package main

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/chesstree/internal/config"
	"github.com/lgbarn/chesstree/internal/errors"
	"github.com/lgbarn/chesstree/internal/hashing"
	"github.com/lgbarn/chesstree/internal/output"
	"github.com/lgbarn/chesstree/internal/parser"
	"github.com/lgbarn/chesstree/internal/worker"
)

// stats counts games across all inputs.
type stats struct {
	games      int
	written    int
	failed     int
	duplicates int
}

// processor parses input streams and writes each game that parses.
type processor struct {
	cfg    *config.Config
	parser *parser.Parser
	writer output.GameWriter
	logger *zap.SugaredLogger
	stats  stats

	// detector is nil unless duplicates are suppressed.
	detector *hashing.DuplicateDetector
}

func newProcessor(cfg *config.Config, w io.Writer, logger *zap.SugaredLogger) *processor {
	return &processor{
		cfg:    cfg,
		parser: parser.NewParser(parser.WithLogger(logger)),
		writer: output.NewGameWriter(w, &cfg.Output),
		logger: logger,
	}
}

// processInput parses every game in r on a worker pool and writes them in
// input order. Games that fail to parse are logged and skipped; a read or
// write error ends processing of r.
func (p *processor) processInput(ctx context.Context, r io.Reader, name string) error {
	pool := worker.NewPool(worker.ParseFunc(p.parser),
		worker.WithWorkers(p.cfg.Workers),
		worker.WithLogger(p.logger.With("file", name)))
	pool.Start()

	scanDone := make(chan error, 1)
	go func() {
		defer pool.Close()
		sc := parser.NewGameScanner(r)
		for i := 0; sc.Scan(); i++ {
			item := worker.WorkItem{Text: sc.Text(), Index: i, Line: sc.StartLine()}
			if err := pool.Submit(ctx, item); err != nil {
				scanDone <- err
				return
			}
		}
		scanDone <- sc.Err()
	}()

	seq := worker.NewSequencer()
	var writeErr error
	for res := range pool.Results() {
		for _, ready := range seq.Add(res) {
			p.handle(ready, name, &writeErr, pool)
		}
	}

	if err := <-scanDone; err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	if writeErr != nil {
		return errors.Wrap(writeErr, "writing output")
	}
	return nil
}

func (p *processor) handle(r worker.ProcessResult, name string, writeErr *error, pool *worker.Pool) {
	p.stats.games++
	if r.Error != nil {
		p.stats.failed++
		var gameErr *errors.GameError
		if errors.As(r.Error, &gameErr) {
			gameErr.File = name
		}
		p.logger.Warnw("skipping game", "error", r.Error)
		return
	}
	if *writeErr != nil {
		return
	}
	if p.detector != nil && p.detector.CheckAndAdd(r.Game) {
		p.stats.duplicates++
		p.logger.Debugw("duplicate game suppressed", "file", name, "game", r.Index+1)
		return
	}
	if err := p.writer.WriteGame(r.Game); err != nil {
		*writeErr = err
		pool.Stop()
		return
	}
	p.stats.written++
}

// finish flushes buffered output.
func (p *processor) finish() error {
	if err := p.writer.Close(); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}
