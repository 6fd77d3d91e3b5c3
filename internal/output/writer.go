package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesstree/internal/config"
	"github.com/lgbarn/chesstree/internal/parser"
)

// GameWriter receives parsed games in output order. Close must be called
// once all games are written; batching writers emit their output there.
type GameWriter interface {
	WriteGame(game *parser.Game) error
	Flush() error
	Close() error
}

// NewGameWriter returns a JSON writer when cfg.JSONFormat is set and a PGN
// writer otherwise.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewPGNWriter(w, cfg)
}

// PGNWriter writes each game as soon as it arrives. After a write error
// it refuses further games.
type PGNWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
	err error
}

func NewPGNWriter(w io.Writer, cfg *config.OutputConfig) *PGNWriter {
	return &PGNWriter{w: w, cfg: cfg}
}

func (pw *PGNWriter) WriteGame(game *parser.Game) error {
	if pw.err == nil {
		pw.err = WriteGame(pw.w, game, pw.cfg)
	}
	return pw.err
}

func (pw *PGNWriter) Flush() error { return pw.err }

func (pw *PGNWriter) Close() error { return pw.err }

// JSONWriter collects games into one {"games": [...]} document written on
// Flush. Games are converted on arrival so their trees can be released.
// In single mode every game is written at once as its own document.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	pending []*JSONGame
	single  bool
}

func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle returns a writer that emits one document per game.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

func (jw *JSONWriter) WriteGame(game *parser.Game) error {
	jg := GameToJSON(game, jw.cfg)
	if jw.single {
		return encodeIndented(jw.w, jg)
	}
	jw.pending = append(jw.pending, jg)
	return nil
}

// Flush writes the collected games, if any, and empties the batch.
func (jw *JSONWriter) Flush() error {
	if len(jw.pending) == 0 {
		return nil
	}
	out := &JSONOutput{Games: jw.pending}
	jw.pending = nil
	return encodeIndented(jw.w, out)
}

func (jw *JSONWriter) Close() error { return jw.Flush() }

func encodeIndented(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
