package engine

import "github.com/lgbarn/chesstree/internal/chess"

// Files used by standard castling.
const (
	kingFile          = 4
	kingSideRookFile  = 7
	queenSideRookFile = 0
	kingSideKingTo    = 6
	queenSideKingTo   = 2
	kingSideRookTo    = 5
	queenSideRookTo   = 3
)

// castleSpec describes the squares involved in one castling move.
type castleSpec struct {
	side     chess.CastleSide
	rookFile int
	kingTo   int
	rookTo   int
	// Files that must be empty.
	empty []int
	// Files the king stands on, crosses or lands on; none may be attacked.
	safe []int
}

var castleSpecs = [2]castleSpec{
	{
		side:     chess.KingSide,
		rookFile: kingSideRookFile,
		kingTo:   kingSideKingTo,
		rookTo:   kingSideRookTo,
		empty:    []int{5, 6},
		safe:     []int{4, 5, 6},
	},
	{
		side:     chess.QueenSide,
		rookFile: queenSideRookFile,
		kingTo:   queenSideKingTo,
		rookTo:   queenSideRookTo,
		empty:    []int{1, 2, 3},
		safe:     []int{4, 3, 2},
	},
}

// hasRight reports whether the rights allow castling to the given side.
func (c castleSpec) hasRight(rights chess.SideRights) bool {
	if c.side == chess.KingSide {
		return rights.KingSide
	}
	return rights.QueenSide
}

// castlingMoves returns the legal castling moves for the side to move.
// The king's final square is the move's destination.
func castlingMoves(state *chess.GameState) []chess.Move {
	colour := state.ActiveColour
	rights := state.Castling.For(colour)
	if !rights.Any() {
		return nil
	}

	rank := colour.HomeRank()
	pos := &state.Position
	king := chess.SquareAt(kingFile, rank)
	if pos.At(king) != chess.NewPiece(colour, chess.King) {
		return nil
	}

	// Only computed when a castling right remains.
	attacked := attackedSquares(pos, colour.Opposite())

	var moves []chess.Move
	for _, spec := range castleSpecs {
		if !spec.hasRight(rights) {
			continue
		}
		if pos.At(chess.SquareAt(spec.rookFile, rank)) != chess.NewPiece(colour, chess.Rook) {
			continue
		}
		if !filesEmpty(pos, rank, spec.empty) || !filesSafe(&attacked, rank, spec.safe) {
			continue
		}
		moves = append(moves, chess.Move{
			From:    king,
			To:      chess.SquareAt(spec.kingTo, rank),
			Capture: chess.NoSquare,
			Castle:  spec.side,
		})
	}
	return moves
}

func filesEmpty(pos *chess.Position, rank int, files []int) bool {
	for _, f := range files {
		if !pos.At(chess.SquareAt(f, rank)).IsEmpty() {
			return false
		}
	}
	return true
}

func filesSafe(attacked *[chess.BoardSize * chess.BoardSize]bool, rank int, files []int) bool {
	for _, f := range files {
		if attacked[chess.SquareAt(f, rank)] {
			return false
		}
	}
	return true
}

// castleRookSquares returns the rook's origin and destination for a
// castling move by the given colour.
func castleRookSquares(colour chess.Colour, side chess.CastleSide) (from, to chess.Square) {
	rank := colour.HomeRank()
	if side == chess.KingSide {
		return chess.SquareAt(kingSideRookFile, rank), chess.SquareAt(kingSideRookTo, rank)
	}
	return chess.SquareAt(queenSideRookFile, rank), chess.SquareAt(queenSideRookTo, rank)
}

// clearCornerRights removes the castling right tied to a rook home corner
// when a piece leaves or is captured on that corner.
func clearCornerRights(rights chess.CastleRights, sq chess.Square) chess.CastleRights {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		rank := colour.HomeRank()
		side := rights.For(colour)
		switch sq {
		case chess.SquareAt(kingSideRookFile, rank):
			side.KingSide = false
		case chess.SquareAt(queenSideRookFile, rank):
			side.QueenSide = false
		default:
			continue
		}
		rights = rights.With(colour, side)
	}
	return rights
}
