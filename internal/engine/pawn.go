package engine

import "github.com/lgbarn/chesstree/internal/chess"

// pawnRules returns the push and the two capture diagonals for a pawn.
// The push has range 2 from the pawn's starting rank.
func pawnRules(colour chess.Colour, from chess.Square) []moveRule {
	dir := colour.PawnDirection()
	pushRange := 1
	if from.Y() == pawnStartRank(colour) {
		pushRange = 2
	}
	return []moveRule{
		{dx: 0, dy: dir, canCapture: false, maxRange: pushRange},
		{dx: -1, dy: dir, canCapture: true, captureOnly: true, maxRange: 1},
		{dx: 1, dy: dir, canCapture: true, captureOnly: true, maxRange: 1},
	}
}

// pawnStartRank returns the zero-based rank pawns start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// promotionRank returns the zero-based rank on which pawns promote.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// enPassantVictim returns the square of the pawn captured by an en passant
// capture landing on target from origin.
func enPassantVictim(from, target chess.Square) chess.Square {
	return chess.SquareAt(target.X(), from.Y())
}

// appendPawnMove appends a pawn move, expanding it into the four
// promotion choices when it reaches the last rank.
func appendPawnMove(moves []chess.Move, colour chess.Colour, from, to, capture chess.Square) []chess.Move {
	if to.Y() != promotionRank(colour) {
		return append(moves, chess.Move{From: from, To: to, Capture: capture})
	}
	for _, promo := range chess.PromotionTypes {
		moves = append(moves, chess.Move{From: from, To: to, Capture: capture, Promotion: promo})
	}
	return moves
}
