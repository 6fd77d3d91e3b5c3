// Package output writes games as PGN text or as a JSON tree export.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/config"
	"github.com/lgbarn/chesstree/internal/parser"
	"github.com/lgbarn/chesstree/internal/tree"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	prefix        string
	err           error
}

// NewOutputWriter creates a new output writer. A maxLineLength of 0
// disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a word, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	s = o.prefix + s
	o.prefix = ""
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// Prefix attaches s to the front of the next word.
func (o *OutputWriter) Prefix(s string) {
	o.prefix += s
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

// WriteGame writes a game as PGN: tag pairs, a blank line, the movetext
// and a blank line separating it from the next game.
func WriteGame(w io.Writer, game *parser.Game, cfg *config.OutputConfig) error {
	if err := writeTags(w, game, cfg); err != nil {
		return err
	}
	ow := NewOutputWriter(w, cfg.MaxLineLength)
	e := &encoder{game: game, cfg: cfg, ow: ow}
	e.writeMovetext()
	ow.NewLine()
	ow.NewLine()
	return ow.Err()
}

// EncodeMovetext returns a game's movetext without tags.
func EncodeMovetext(game *parser.Game, cfg *config.OutputConfig) string {
	var sb strings.Builder
	ow := NewOutputWriter(&sb, cfg.MaxLineLength)
	e := &encoder{game: game, cfg: cfg, ow: ow}
	e.writeMovetext()
	return sb.String()
}

// orderedTags returns the tags to write: the Seven Tag Roster first, in
// roster order and filled in where missing, then the rest in input order.
func orderedTags(game *parser.Game, form config.TagOutputForm) chess.Tags {
	if form == config.NoTags {
		return nil
	}
	tags := slices.Clone(game.Tags)
	for _, name := range chess.SevenTagRoster {
		if tags.Has(name) {
			continue
		}
		value := "?"
		if name == "Result" {
			value = game.Result.String()
		}
		tags = append(tags, chess.Tag{Name: name, Value: value})
	}

	rank := func(name string) int {
		if i := slices.Index(chess.SevenTagRoster, name); i >= 0 {
			return i
		}
		return len(chess.SevenTagRoster)
	}
	slices.SortStableFunc(tags, func(a, b chess.Tag) int {
		return rank(a.Name) - rank(b.Name)
	})

	if form == config.SevenTagRoster {
		tags = slices.DeleteFunc(tags, func(t chess.Tag) bool {
			return !chess.IsSevenTagRosterTag(t.Name)
		})
	}
	return tags
}

// writeTags writes the tag section followed by its blank line.
func writeTags(w io.Writer, game *parser.Game, cfg *config.OutputConfig) error {
	tags := orderedTags(game, cfg.TagFormat)
	if len(tags) == 0 {
		return nil
	}
	eol := cfg.TagLineEnding
	var sb strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&sb, "[%s \"%s\"]%s", tag.Name, escapeTagValue(tag.Value), eol)
	}
	sb.WriteString(eol)
	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// encoder writes the movetext of one game depth first.
type encoder struct {
	game *parser.Game
	cfg  *config.OutputConfig
	ow   *OutputWriter
}

func (e *encoder) writeMovetext() {
	forceNumber := true
	if e.cfg.KeepComments && e.game.Comment != "" {
		e.ow.Write("{" + commentText(e.game.Comment) + "}")
	}
	if first, ok := e.game.Tree.MainlineChild(tree.Key{}); ok {
		e.writeLine(first, forceNumber)
	}
	if e.cfg.KeepResults {
		e.ow.Write(e.game.Result.String())
	}
}

// writeLine writes k and its mainline continuation, with the side
// variations of each move after it. A black move gets a "N..." number
// when forceNumber is set, which happens at the start of a line and
// after a comment or variation.
func (e *encoder) writeLine(k tree.Key, forceNumber bool) {
	for {
		data, ok := e.game.Tree.Data(k)
		if !ok {
			return
		}

		if e.cfg.KeepMoveNumbers {
			switch {
			case data.IsWhiteMove():
				e.ow.Write(fmt.Sprintf("%d.", data.MoveNumber()))
			case forceNumber:
				e.ow.Write(fmt.Sprintf("%d...", data.MoveNumber()))
			}
		}
		e.ow.Write(data.Move.SAN)
		forceNumber = false

		if e.cfg.KeepNAGs {
			for _, nag := range data.NAGs {
				e.ow.Write(fmt.Sprintf("$%d", nag))
			}
		}
		if c := e.comment(data); c != "" {
			e.ow.Write(c)
			forceNumber = true
		}

		if e.cfg.KeepVariations && e.game.Tree.SiblingIndex(k) == 0 {
			siblings := e.game.Tree.Siblings(k)
			for _, alt := range siblings[1:] {
				e.ow.Prefix("(")
				e.writeLine(alt, true)
				e.ow.WriteNoSpace(")")
				forceNumber = true
			}
		}

		next, ok := e.game.Tree.MainlineChild(k)
		if !ok {
			return
		}
		k = next
	}
}

// comment renders a node's commands and text as one {comment}, or "".
func (e *encoder) comment(data chess.NodeData) string {
	var parts []string
	if e.cfg.KeepClocks && data.Clock != nil {
		parts = append(parts, "[%clk "+parser.FormatClock(*data.Clock)+"]")
	}
	if e.cfg.KeepComments {
		if len(data.MarkedSquares) > 0 {
			parts = append(parts, "[%csl "+joinStrings(data.MarkedSquares)+"]")
		}
		if len(data.Arrows) > 0 {
			parts = append(parts, "[%cal "+joinStrings(data.Arrows)+"]")
		}
		if data.Eval != nil {
			parts = append(parts, "[%eval "+data.Eval.String()+"]")
		}
		names := make([]string, 0, len(data.Commands))
		for name := range data.Commands {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			parts = append(parts, "[%"+name+" "+data.Commands[name]+"]")
		}
		if data.Comment != "" {
			parts = append(parts, commentText(data.Comment))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// commentText removes characters that would end a brace comment early.
func commentText(s string) string {
	return strings.ReplaceAll(s, "}", "")
}

func joinStrings[T fmt.Stringer](items []T) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return strings.Join(out, ",")
}
