package engine

import "github.com/lgbarn/chesstree/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Moves are generated without notation, so the count exercises only the
// generator and the transition.
func Perft(state chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return perft(&state, depth)
}

func perft(state *chess.GameState, depth int) uint64 {
	moves := generate(state, false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next, _ := transition(state, m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal move, keyed by UCI.
func Divide(state chess.GameState, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range generate(&state, false) {
		next, _ := transition(&state, m)
		counts[m.UCI()] = Perft(next, depth-1)
	}
	return counts
}
