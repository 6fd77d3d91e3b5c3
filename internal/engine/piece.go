package engine

import "github.com/lgbarn/chesstree/internal/chess"

// moveRule describes one direction a piece can travel in.
type moveRule struct {
	dx, dy int

	// canCapture is false for the pawn push.
	canCapture bool

	// captureOnly is true for the pawn diagonals.
	captureOnly bool

	// maxRange is the number of steps the rule may take.
	maxRange int
}

// Unranged rules walk until they leave the board or are blocked.
const unranged = chess.BoardSize - 1

var (
	diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	knightJumps  = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

var (
	knightRules = buildRules(knightJumps[:], 1)
	bishopRules = buildRules(diagonalDirs[:], unranged)
	rookRules   = buildRules(straightDirs[:], unranged)
	queenRules  = append(buildRules(diagonalDirs[:], unranged), buildRules(straightDirs[:], unranged)...)
	kingRules   = append(buildRules(diagonalDirs[:], 1), buildRules(straightDirs[:], 1)...)
)

// buildRules creates capturing rules of the given range for each direction.
func buildRules(dirs [][2]int, maxRange int) []moveRule {
	rules := make([]moveRule, 0, len(dirs))
	for _, d := range dirs {
		rules = append(rules, moveRule{dx: d[0], dy: d[1], canCapture: true, maxRange: maxRange})
	}
	return rules
}

// rulesFor returns the movement rules of a piece standing on a square.
func rulesFor(piece chess.Piece, from chess.Square) []moveRule {
	switch piece.Type {
	case chess.Pawn:
		return pawnRules(piece.Colour, from)
	case chess.Knight:
		return knightRules
	case chess.Bishop:
		return bishopRules
	case chess.Rook:
		return rookRules
	case chess.Queen:
		return queenRules
	case chess.King:
		return kingRules
	default:
		return nil
	}
}

// walk steps along the rule from the origin, calling fn for every square
// reached. It stops after the first occupied square, at the board edge,
// or when the range is exhausted.
func (r moveRule) walk(pos *chess.Position, from chess.Square, fn func(to chess.Square, occupant chess.Piece)) {
	to := from
	for step := 0; step < r.maxRange; step++ {
		to = to.Offset(r.dx, r.dy)
		if to == chess.NoSquare {
			return
		}
		occupant := pos.At(to)
		fn(to, occupant)
		if !occupant.IsEmpty() {
			return
		}
	}
}
