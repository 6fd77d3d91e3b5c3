package engine

import "github.com/lgbarn/chesstree/internal/chess"

// FiftyMoveLimit is the half-move clock value at which a game is drawn.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that draws.
const RepetitionLimit = 3

// HasInsufficientMaterial returns true if neither side holds a pawn, rook
// or queen, and each side has at most one minor piece.
func HasInsufficientMaterial(pos *chess.Position) bool {
	var minors [2]int
	for _, p := range pos.Pieces() {
		switch p.Piece.Type {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Bishop, chess.Knight:
			minors[p.Piece.Colour]++
			if minors[p.Piece.Colour] > 1 {
				return false
			}
		}
	}
	return true
}

// IsFiftyMoveDraw returns true once the half-move clock reaches the limit.
func IsFiftyMoveDraw(state chess.GameState) bool {
	return state.HalfMoveClock >= FiftyMoveLimit
}
