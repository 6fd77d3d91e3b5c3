package parser

import (
	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/engine"
	"github.com/lgbarn/chesstree/internal/errors"
	"github.com/lgbarn/chesstree/internal/tree"
)

// Game is one parsed PGN game: its tags, the position the movetext starts
// from, and every line of play as a variation tree.
type Game struct {
	Tags  chess.Tags
	Start chess.GameState
	Tree  *tree.Tree[chess.NodeData]

	// Result is the movetext termination token.
	Result chess.Result

	// Comment holds text written before the first move.
	Comment string
}

// NewGame creates an empty game starting from state.
func NewGame(start chess.GameState) *Game {
	return &Game{
		Start: start,
		Tree:  tree.New[chess.NodeData](),
	}
}

// SameMove matches tree nodes by move, so that replaying a known line
// through a cursor reuses the existing branch.
func SameMove(existing, candidate chess.NodeData) bool {
	return existing.Move == candidate.Move
}

// Cursor returns a cursor over the game tree that reuses matching moves.
func (g *Game) Cursor() *tree.Cursor[chess.NodeData] {
	return tree.NewCursor(g.Tree, SameMove)
}

// StateAt returns the position after the node k. The zero Key gives the
// start position.
func (g *Game) StateAt(k tree.Key) (chess.GameState, error) {
	if k.IsZero() {
		return g.Start, nil
	}
	data, ok := g.Tree.Data(k)
	if !ok {
		return chess.GameState{}, errors.Wrapf(errors.ErrNodeNotFound, "key %s", k)
	}
	return data.State, nil
}

// plyAfter returns the ply of a move played from k. Plies count on from
// the parent node rather than from the full-move counter, which a FEN may
// leave at 0.
func (g *Game) plyAfter(k tree.Key) int {
	if k.IsZero() {
		return g.Start.Ply()
	}
	data, _ := g.Tree.Data(k)
	return data.Ply + 1
}

// nodeFor plays a legal move and records the resulting snapshot.
func nodeFor(before chess.GameState, move chess.Move, ply int) (chess.NodeData, error) {
	after, _, err := engine.Apply(before, move)
	if err != nil {
		return chess.NodeData{}, err
	}
	return chess.NodeData{
		Move:  move,
		FEN:   engine.EncodeFEN(after),
		State: after,
		Ply:   ply,
	}, nil
}

// AddMove plays a SAN (or long algebraic) move from the cursor position
// and moves the cursor onto it. An existing child with the same move is
// reused instead of adding a duplicate variation.
func (g *Game) AddMove(c *tree.Cursor[chess.NodeData], token string) (tree.Key, error) {
	before, err := g.StateAt(c.Current())
	if err != nil {
		return tree.Key{}, err
	}
	move, err := engine.ParseSAN(before, token)
	if err != nil {
		return tree.Key{}, err
	}
	node, err := nodeFor(before, move, g.plyAfter(c.Current()))
	if err != nil {
		return tree.Key{}, err
	}
	k, _, err := c.AddMove(node)
	return k, err
}

// MainlineKeys returns the keys of the mainline in order.
func (g *Game) MainlineKeys() []tree.Key {
	return g.Tree.Continuation(tree.Key{})
}

// Mainline returns the mainline move snapshots in order.
func (g *Game) Mainline() []chess.NodeData {
	keys := g.MainlineKeys()
	line := make([]chess.NodeData, 0, len(keys))
	for _, k := range keys {
		data, _ := g.Tree.Data(k)
		line = append(line, data)
	}
	return line
}

// FinalState returns the position at the end of the mainline.
func (g *Game) FinalState() chess.GameState {
	keys := g.MainlineKeys()
	if len(keys) == 0 {
		return g.Start
	}
	data, _ := g.Tree.Data(keys[len(keys)-1])
	return data.State
}

// Replay plays the mainline into a rules-engine game, which tracks
// repetition and reports the outcome.
func (g *Game) Replay() (*engine.Game, error) {
	eg := engine.NewGameFromState(g.Start)
	for _, node := range g.Mainline() {
		if err := eg.Play(node.Move); err != nil {
			return eg, errors.Wrapf(err, "ply %d", node.Ply)
		}
	}
	return eg, nil
}
