package engine

import "github.com/lgbarn/chesstree/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(state chess.GameState) bool {
	return IsInCheck(&state.Position, state.ActiveColour) && !hasLegalMove(&state)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(state chess.GameState) bool {
	return !IsInCheck(&state.Position, state.ActiveColour) && !hasLegalMove(&state)
}

// PositionOutcome evaluates the conditions that end a game from the
// position alone. Repetition needs the game history and is left to Game.
func PositionOutcome(state chess.GameState) (chess.Outcome, bool) {
	return evaluateOutcome(&state, hasLegalMove(&state), 1)
}

// evaluateOutcome checks, in order: checkmate, stalemate, insufficient
// material, repetition and the fifty-move rule. A side to move without
// legal moves is mated exactly when it is in check, which is when the
// previous move was flagged as check.
func evaluateOutcome(state *chess.GameState, hasMoves bool, repetitions int) (chess.Outcome, bool) {
	if !hasMoves {
		if IsInCheck(&state.Position, state.ActiveColour) {
			return chess.Outcome{Result: chess.WinFor(state.ActiveColour.Opposite()), By: chess.Checkmate}, true
		}
		return chess.Outcome{Result: chess.Draw, By: chess.Stalemate}, true
	}
	if HasInsufficientMaterial(&state.Position) {
		return chess.Outcome{Result: chess.Draw, By: chess.InsufficientMaterial}, true
	}
	if repetitions >= RepetitionLimit {
		return chess.Outcome{Result: chess.Draw, By: chess.Repetition}, true
	}
	if IsFiftyMoveDraw(*state) {
		return chess.Outcome{Result: chess.Draw, By: chess.FiftyMoveRule}, true
	}
	return chess.Outcome{}, false
}
