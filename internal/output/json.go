package output

import (
	"io"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/config"
	"github.com/lgbarn/chesstree/internal/engine"
	"github.com/lgbarn/chesstree/internal/parser"
	"github.com/lgbarn/chesstree/internal/tree"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	InitialFEN string            `json:"initialFEN"`
	Result     string            `json:"result"`
	Comment    string            `json:"comment,omitempty"`
	// Mainline lists node keys from the first move to the end.
	Mainline []string   `json:"mainline"`
	Nodes    []JSONNode `json:"nodes"`
}

// JSONNode is one tree node. Nodes appear depth first with mainline
// children before side variations, so a parent always precedes its
// children.
type JSONNode struct {
	Key        string   `json:"key"`
	Parent     string   `json:"parent,omitempty"`
	Children   []string `json:"children,omitempty"`
	Ply        int      `json:"ply"`
	MoveNumber int      `json:"moveNumber"`
	Color      string   `json:"color"` // "white" or "black"
	SAN        string   `json:"san"`
	UCI        string   `json:"uci"`
	FEN        string   `json:"fen"`
	Check      bool     `json:"check,omitempty"`
	Checkmate  bool     `json:"checkmate,omitempty"`
	Comment    string   `json:"comment,omitempty"`
	NAGs       []int    `json:"nags,omitempty"`
	Clock      string   `json:"clock,omitempty"`
	Eval       string   `json:"eval,omitempty"`
	Arrows     []string `json:"arrows,omitempty"`
	Squares    []string `json:"squares,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// WriteJSON writes games as an indented JSON document.
func WriteJSON(w io.Writer, games []*parser.Game, cfg *config.OutputConfig) error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(games))}
	for _, game := range games {
		out.Games = append(out.Games, GameToJSON(game, cfg))
	}
	return encodeIndented(w, out)
}

// GameToJSON converts a parsed game to its JSON tree export.
func GameToJSON(game *parser.Game, cfg *config.OutputConfig) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(game.Tags),
		InitialFEN: engine.EncodeFEN(game.Start),
		Result:     game.Result.String(),
		Mainline:   []string{},
		Nodes:      []JSONNode{},
	}
	if cfg.KeepComments {
		jg.Comment = game.Comment
	}
	for _, k := range game.MainlineKeys() {
		jg.Mainline = append(jg.Mainline, k.String())
	}

	game.Tree.Walk(func(n tree.Node[chess.NodeData], _ int) bool {
		if !cfg.KeepVariations && game.Tree.SiblingIndex(n.Key) != 0 {
			return false
		}
		jg.Nodes = append(jg.Nodes, convertNode(n, cfg))
		return true
	})
	return jg
}

// copyTags copies game tags into a map.
func copyTags(tags chess.Tags) map[string]string {
	result := make(map[string]string, len(tags))
	for _, tag := range tags {
		result[tag.Name] = tag.Value
	}
	return result
}

func convertNode(n tree.Node[chess.NodeData], cfg *config.OutputConfig) JSONNode {
	d := n.Data
	jn := JSONNode{
		Key:        n.Key.String(),
		Ply:        d.Ply,
		MoveNumber: d.MoveNumber(),
		Color:      colorName(d.IsWhiteMove()),
		SAN:        d.Move.SAN,
		UCI:        d.Move.UCI(),
		FEN:        d.FEN,
		Check:      d.Move.Check,
		Checkmate:  d.Move.Checkmate,
	}
	if !n.Parent.IsZero() {
		jn.Parent = n.Parent.String()
	}
	for i, c := range n.Children {
		if i > 0 && !cfg.KeepVariations {
			break
		}
		jn.Children = append(jn.Children, c.String())
	}

	if cfg.KeepNAGs {
		jn.NAGs = d.NAGs
	}
	if cfg.KeepClocks && d.Clock != nil {
		jn.Clock = parser.FormatClock(*d.Clock)
	}
	if cfg.KeepComments {
		jn.Comment = d.Comment
		if d.Eval != nil {
			jn.Eval = d.Eval.String()
		}
		for _, a := range d.Arrows {
			jn.Arrows = append(jn.Arrows, a.String())
		}
		for _, s := range d.MarkedSquares {
			jn.Squares = append(jn.Squares, s.String())
		}
	}
	return jn
}

// colorName returns "white" or "black" based on the boolean.
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}
