// Package testutil provides shared test utilities for chesstree.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/engine"
	"github.com/lgbarn/chesstree/internal/parser"
)

// MustDecodeFEN decodes a FEN string, calling t.Fatal on failure.
func MustDecodeFEN(t *testing.T, fen string) chess.GameState {
	t.Helper()
	state, err := engine.DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q) error: %v", fen, err)
	}
	return state
}

// MustPlay plays SAN moves from a state and returns the final state.
// It calls t.Fatal on the first move that does not resolve.
func MustPlay(t *testing.T, state chess.GameState, sans ...string) chess.GameState {
	t.Helper()
	for i, san := range sans {
		move, err := engine.ParseSAN(state, san)
		if err != nil {
			t.Fatalf("move %d %q: %v", i+1, san, err)
		}
		state, _, err = engine.Apply(state, move)
		if err != nil {
			t.Fatalf("move %d %q: %v", i+1, san, err)
		}
	}
	return state
}

// MustParseGame parses a single PGN game, calling t.Fatal on failure.
func MustParseGame(t *testing.T, pgn string) *parser.Game {
	t.Helper()
	game, err := parser.ParseGame(pgn)
	if err != nil {
		t.Fatalf("failed to parse test game: %v\n%s", err, pgn)
	}
	return game
}

// MainlineSAN returns the SAN of each mainline move of a parsed game.
func MainlineSAN(game *parser.Game) []string {
	var sans []string
	for _, node := range game.Mainline() {
		sans = append(sans, node.Move.SAN)
	}
	return sans
}
