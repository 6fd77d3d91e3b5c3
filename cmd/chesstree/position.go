// position.go - Position tools: legal move listing, move replay and perft
package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/engine"
)

// startState decodes fen, or returns the initial position for "".
func startState(fen string) (chess.GameState, error) {
	if fen == "" {
		return engine.InitialState(), nil
	}
	return engine.DecodeFEN(fen)
}

// listLegalMoves prints each legal move as "SAN UCI", sorted by SAN.
func listLegalMoves(w io.Writer, fen string) error {
	state, err := startState(fen)
	if err != nil {
		return err
	}
	moves := engine.LegalMoves(state)
	slices.SortFunc(moves, func(a, b chess.Move) int {
		return strings.Compare(a.SAN, b.SAN)
	})
	for _, m := range moves {
		fmt.Fprintf(w, "%s %s\n", m.SAN, m.UCI())
	}
	fmt.Fprintf(w, "%d legal moves\n", len(moves))
	return nil
}

// playMoves plays SAN moves and prints the FEN after each one, followed
// by the outcome if the game ended.
func playMoves(w io.Writer, fen, moves string) error {
	state, err := startState(fen)
	if err != nil {
		return err
	}
	g := engine.NewGameFromState(state)
	for _, token := range strings.Fields(moves) {
		if err := g.PlaySAN(token); err != nil {
			return err
		}
		last, _ := g.LastMove()
		fmt.Fprintf(w, "%s %s\n", last.SAN, g.FEN())
	}
	if outcome := g.Outcome(); outcome != nil {
		fmt.Fprintln(w, outcome)
	}
	return nil
}

// runPerft prints the leaf count below each root move and the total.
func runPerft(w io.Writer, fen string, depth int) error {
	state, err := startState(fen)
	if err != nil {
		return err
	}
	counts := engine.Divide(state, depth)
	moves := make([]string, 0, len(counts))
	var total uint64
	for uci, n := range counts {
		moves = append(moves, uci)
		total += n
	}
	slices.Sort(moves)
	for _, uci := range moves {
		fmt.Fprintf(w, "%s: %d\n", uci, counts[uci])
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return nil
}
