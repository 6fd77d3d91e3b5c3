// Package worker parses game texts in parallel and hands the results back
// in input order.
package worker

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lgbarn/chesstree/internal/errors"
	"github.com/lgbarn/chesstree/internal/parser"
)

// WorkItem is the text of one game and its position in the input.
type WorkItem struct {
	Text  string
	Index int // 0-based position in the input
	Line  int // first input line of the game, 0 if unknown
}

// ProcessResult is the outcome of parsing one work item.
type ProcessResult struct {
	Game  *parser.Game
	Index int
	Error error
}

// ProcessFunc parses a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ParseFunc returns a ProcessFunc that parses items with p. Failures are
// wrapped in a *errors.GameError with the 1-based game number and the
// offending token.
func ParseFunc(p *parser.Parser) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		game, err := p.ParseGame(item.Text)
		if err != nil {
			gameErr := &errors.GameError{Err: err, GameNum: item.Index + 1}
			var parseErr *errors.ParseError
			if errors.As(err, &parseErr) {
				if token, uerr := strconv.Unquote(parseErr.Got); uerr == nil {
					gameErr.MoveText = token
				}
			}
			err = gameErr
		}
		return ProcessResult{Game: game, Index: item.Index, Error: err}
	}
}

// Pool manages a pool of workers for parallel game parsing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	logger      *zap.SugaredLogger
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 keep
// the default of one worker per CPU.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithLogger sets the logger used for worker diagnostics.
func WithLogger(logger *zap.SugaredLogger) PoolOption {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPool creates a pool running processFunc.
// Default: one worker per CPU, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  runtime.NumCPU(),
		bufferSize:  10,
		processFunc: processFunc,
		logger:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	p.logger.Debugw("starting workers", "workers", p.numWorkers, "buffer", p.bufferSize)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		res := p.processFunc(item)
		if res.Error != nil {
			p.logger.Debugw("game failed to parse", "game", item.Index+1, "line", item.Line, "error", res.Error)
		}
		p.resultChan <- res
	}
}

// Submit submits a work item, blocking while the buffer is full. It
// returns ctx.Err() if ctx ends first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Sequencer restores input order to results that arrive out of order.
type Sequencer struct {
	next    int
	pending map[int]ProcessResult
}

// NewSequencer creates a sequencer expecting index 0 first.
func NewSequencer() *Sequencer {
	return &Sequencer{pending: make(map[int]ProcessResult)}
}

// Add records a result and returns every result that is now ready, in
// index order.
func (s *Sequencer) Add(res ProcessResult) []ProcessResult {
	s.pending[res.Index] = res
	var ready []ProcessResult
	for {
		r, ok := s.pending[s.next]
		if !ok {
			return ready
		}
		delete(s.pending, s.next)
		ready = append(ready, r)
		s.next++
	}
}

// Pending returns the number of results held back waiting for an
// earlier index.
func (s *Sequencer) Pending() int {
	return len(s.pending)
}

// ParseAll parses texts on a pool and returns the games in input order.
// Like parser.ParseGames it stops at the first failing game, returning
// the games before it and a *errors.GameError.
func ParseAll(ctx context.Context, texts []string, p *parser.Parser, opts ...PoolOption) ([]*parser.Game, error) {
	pool := NewPool(ParseFunc(p), opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, text := range texts {
			if pool.IsStopped() {
				return
			}
			if err := pool.Submit(ctx, WorkItem{Text: text, Index: i}); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	games := make([]*parser.Game, 0, len(texts))
	seq := NewSequencer()
	var firstErr error
	for res := range pool.Results() {
		if firstErr != nil {
			continue
		}
		for _, r := range seq.Add(res) {
			if r.Error != nil {
				firstErr = r.Error
				pool.Stop()
				break
			}
			games = append(games, r.Game)
		}
	}
	if firstErr != nil {
		return games, firstErr
	}
	if err := ctx.Err(); err != nil {
		return games, err
	}
	return games, nil
}
