package engine

import (
	"fmt"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/errors"
)

// Apply plays a move and returns the resulting state and the captured
// piece (NoPiece if none). The move must equal one of LegalMoves(state),
// including its annotations; anything else returns ErrIllegalMove.
func Apply(state chess.GameState, move chess.Move) (chess.GameState, chess.Piece, error) {
	for _, legal := range LegalMoves(state) {
		if legal == move {
			next, captured := transition(&state, move)
			return next, captured, nil
		}
	}
	return state, chess.NoPiece, fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
}

// transition is the single state transition used by legality testing,
// perft and Apply. It assumes the move was produced by the generator.
func transition(state *chess.GameState, move chess.Move) (chess.GameState, chess.Piece) {
	next := *state
	pos := &next.Position
	colour := state.ActiveColour
	piece := pos.At(move.From)

	captured := chess.NoPiece
	if move.Capture != chess.NoSquare {
		captured = pos.At(move.Capture)
		pos.Set(move.Capture, chess.NoPiece)
	}

	pos.Set(move.From, chess.NoPiece)
	placed := piece
	if move.Promotion != chess.NoPieceType {
		placed.Type = move.Promotion
	}
	pos.Set(move.To, placed)

	if move.Castle != chess.NoCastle {
		rookFrom, rookTo := castleRookSquares(colour, move.Castle)
		pos.Set(rookTo, pos.At(rookFrom))
		pos.Set(rookFrom, chess.NoPiece)
	}

	// Castling rights.
	if piece.Type == chess.King {
		next.Castling = next.Castling.With(colour, chess.SideRights{})
	}
	next.Castling = clearCornerRights(next.Castling, move.From)
	if move.Capture != chess.NoSquare {
		next.Castling = clearCornerRights(next.Castling, move.Capture)
	}

	next.EnPassant = chess.NoSquare
	if piece.Type == chess.Pawn && abs(move.To.Y()-move.From.Y()) == 2 {
		next.EnPassant = chess.SquareAt(move.From.X(), (move.From.Y()+move.To.Y())/2)
	}

	if piece.Type == chess.Pawn || captured != chess.NoPiece {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}
	if colour == chess.Black {
		next.FullMoveNumber++
	}
	next.ActiveColour = colour.Opposite()

	return next, captured
}
