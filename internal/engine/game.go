package engine

import (
	"fmt"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/errors"
)

// Game tracks a single line of play from a start position: the move
// history, the legal replies, repetition counts and the outcome.
type Game struct {
	start   chess.GameState
	state   chess.GameState
	history []chess.Move
	legal   []chess.Move

	// Occurrences of each repetition key, start position included.
	seen map[string]int

	outcome *chess.Outcome
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	return NewGameFromState(InitialState())
}

// NewGameFromFEN creates a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	state, err := DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromState(state), nil
}

// NewGameFromState creates a game starting at the given state. A start
// position that is already mate, stalemate or dead is reported through
// Outcome immediately.
func NewGameFromState(state chess.GameState) *Game {
	g := &Game{
		start: state,
		seen:  make(map[string]int),
	}
	g.enter(state)
	return g
}

// enter makes state current and re-evaluates the outcome.
func (g *Game) enter(state chess.GameState) {
	g.state = state
	g.legal = LegalMoves(state)
	key := RepetitionKey(state)
	g.seen[key]++
	if outcome, over := evaluateOutcome(&g.state, len(g.legal) > 0, g.seen[key]); over {
		g.outcome = &outcome
	}
}

// Play applies a move. The move must equal one of LegalMoves.
func (g *Game) Play(move chess.Move) error {
	if g.outcome != nil {
		return fmt.Errorf("%s: %w", move, errors.ErrGameOver)
	}
	for _, legal := range g.legal {
		if legal == move {
			next, _ := transition(&g.state, move)
			g.history = append(g.history, move)
			g.enter(next)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
}

// PlaySAN resolves a SAN token against the current position and plays it.
func (g *Game) PlaySAN(token string) error {
	if g.outcome != nil {
		return fmt.Errorf("%s: %w", token, errors.ErrGameOver)
	}
	move, err := ResolveSAN(g.legal, token)
	if err != nil {
		return err
	}
	return g.Play(move)
}

// PlayUCI resolves a UCI move against the current position and plays it.
func (g *Game) PlayUCI(s string) error {
	if g.outcome != nil {
		return fmt.Errorf("%s: %w", s, errors.ErrGameOver)
	}
	move, err := ParseUCI(g.state, s)
	if err != nil {
		return err
	}
	return g.Play(move)
}

// Resign ends the game with a win for the other colour.
func (g *Game) Resign(colour chess.Colour) error {
	if g.outcome != nil {
		return errors.ErrGameOver
	}
	g.outcome = &chess.Outcome{Result: chess.WinFor(colour.Opposite()), By: chess.Resignation}
	return nil
}

// AgreeDraw ends the game as a draw by agreement.
func (g *Game) AgreeDraw() error {
	if g.outcome != nil {
		return errors.ErrGameOver
	}
	g.outcome = &chess.Outcome{Result: chess.Draw, By: chess.Agreement}
	return nil
}

// State returns the current state.
func (g *Game) State() chess.GameState {
	return g.state
}

// StartState returns the state the game started from.
func (g *Game) StartState() chess.GameState {
	return g.start
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return EncodeFEN(g.state)
}

// LegalMoves returns a copy of the legal moves in the current position.
// It is empty once the outcome is set.
func (g *Game) LegalMoves() []chess.Move {
	if g.outcome != nil {
		return nil
	}
	return append([]chess.Move(nil), g.legal...)
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// LastMove returns the most recent move.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(&g.state.Position, g.state.ActiveColour)
}

// Outcome returns the result of the game, or nil while it is in progress.
func (g *Game) Outcome() *chess.Outcome {
	if g.outcome == nil {
		return nil
	}
	outcome := *g.outcome
	return &outcome
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.seen[RepetitionKey(g.state)]
}

// MovePairs groups the history into numbered full moves. A game starting
// with Black to move has a first pair with no White move.
func (g *Game) MovePairs() []chess.MovePair {
	var pairs []chess.MovePair
	number := g.start.FullMoveNumber
	colour := g.start.ActiveColour
	moves := g.Moves()
	for i := range moves {
		move := &moves[i]
		if colour == chess.White || len(pairs) == 0 {
			pairs = append(pairs, chess.MovePair{Number: number})
		}
		if colour == chess.White {
			pairs[len(pairs)-1].White = move
		} else {
			pairs[len(pairs)-1].Black = move
			number++
		}
		colour = colour.Opposite()
	}
	return pairs
}
