package engine

import "github.com/lgbarn/chesstree/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A position without that king is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.FindKing(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour has a capturing
// rule that reaches the square. The square need not be occupied.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	for from := chess.Square(0); from < chess.BoardSize*chess.BoardSize; from++ {
		piece := pos[from]
		if piece.IsEmpty() || piece.Colour != byColour {
			continue
		}
		if attacksSquare(pos, piece, from, sq) {
			return true
		}
	}
	return false
}

// attacksSquare reports whether the piece on from reaches target with one
// of its capturing rules.
func attacksSquare(pos *chess.Position, piece chess.Piece, from, target chess.Square) bool {
	hit := false
	for _, rule := range rulesFor(piece, from) {
		if !rule.canCapture {
			continue
		}
		rule.walk(pos, from, func(to chess.Square, _ chess.Piece) {
			if to == target {
				hit = true
			}
		})
		if hit {
			return true
		}
	}
	return false
}

// attackedSquares returns the set of squares attacked by byColour.
func attackedSquares(pos *chess.Position, byColour chess.Colour) [chess.BoardSize * chess.BoardSize]bool {
	var attacked [chess.BoardSize * chess.BoardSize]bool
	for from := chess.Square(0); from < chess.BoardSize*chess.BoardSize; from++ {
		piece := pos[from]
		if piece.IsEmpty() || piece.Colour != byColour {
			continue
		}
		for _, rule := range rulesFor(piece, from) {
			if !rule.canCapture {
				continue
			}
			rule.walk(pos, from, func(to chess.Square, _ chess.Piece) {
				attacked[to] = true
			})
		}
	}
	return attacked
}
