package engine

import "github.com/lgbarn/chesstree/internal/chess"

// LegalMoves returns every legal move for the side to move, each annotated
// with its check and checkmate flags and its disambiguated SAN.
// The order is deterministic: pieces in a1..h8 order, each piece's targets
// in rule order, castling last.
func LegalMoves(state chess.GameState) []chess.Move {
	return generate(&state, true)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
// It stops at the first move found.
func HasLegalMoves(state chess.GameState) bool {
	return hasLegalMove(&state)
}

// generate produces the legal moves of a state. Annotation is done only
// at the top level: the checkmate test for each move uses hasLegalMove,
// which never annotates.
func generate(state *chess.GameState, annotate bool) []chess.Move {
	colour := state.ActiveColour
	legal := make([]chess.Move, 0, 48)
	for _, m := range pseudoLegalMoves(state) {
		next, _ := transition(state, m)
		if IsInCheck(&next.Position, colour) {
			continue
		}
		if annotate {
			if IsInCheck(&next.Position, next.ActiveColour) {
				m.Check = true
				m.Checkmate = !hasLegalMove(&next)
			}
		}
		legal = append(legal, m)
	}
	if annotate {
		annotateSAN(state, legal)
	}
	return legal
}

// hasLegalMove reports whether any pseudo-legal move leaves the mover's
// king safe.
func hasLegalMove(state *chess.GameState) bool {
	colour := state.ActiveColour
	for _, m := range pseudoLegalMoves(state) {
		next, _ := transition(state, m)
		if !IsInCheck(&next.Position, colour) {
			return true
		}
	}
	return false
}

// pseudoLegalMoves generates moves from the movement rules without testing
// whether the mover's king is left in check. Castling moves are already
// filtered for attacked transit squares.
func pseudoLegalMoves(state *chess.GameState) []chess.Move {
	colour := state.ActiveColour
	pos := &state.Position
	moves := make([]chess.Move, 0, 64)

	for from := chess.Square(0); from < chess.BoardSize*chess.BoardSize; from++ {
		piece := pos[from]
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, rule := range rulesFor(piece, from) {
			rule.walk(pos, from, func(to chess.Square, occupant chess.Piece) {
				capture := chess.NoSquare
				switch {
				case occupant.IsEmpty() && !rule.captureOnly:
				case occupant.IsEmpty() && piece.Type == chess.Pawn && to == state.EnPassant:
					capture = enPassantVictim(from, to)
					if pos.At(capture) != chess.NewPiece(colour.Opposite(), chess.Pawn) {
						return
					}
				case !occupant.IsEmpty() && occupant.Colour != colour && rule.canCapture:
					capture = to
				default:
					return
				}
				if piece.Type == chess.Pawn {
					moves = appendPawnMove(moves, colour, from, to, capture)
				} else {
					moves = append(moves, chess.Move{From: from, To: to, Capture: capture})
				}
			})
		}
	}
	return append(moves, castlingMoves(state)...)
}

// LegalMovesFrom returns the legal moves of the piece on one square.
func LegalMovesFrom(state chess.GameState, from chess.Square) []chess.Move {
	var moves []chess.Move
	for _, m := range LegalMoves(state) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}

// PieceView is one occupied square together with the destinations its
// piece can legally move to. Pieces of the side not to move have no targets.
type PieceView struct {
	Square  chess.Square
	Piece   chess.Piece
	Targets []chess.Square
}

// PieceViews lists the board as pieces with their legal target squares,
// in a1..h8 order.
func PieceViews(state chess.GameState) []PieceView {
	targets := make(map[chess.Square][]chess.Square)
	for _, m := range generate(&state, false) {
		ts := targets[m.From]
		if len(ts) > 0 && ts[len(ts)-1] == m.To {
			// Promotion variants share a destination.
			continue
		}
		targets[m.From] = append(ts, m.To)
	}

	placed := state.Position.Pieces()
	views := make([]PieceView, 0, len(placed))
	for _, p := range placed {
		views = append(views, PieceView{Square: p.Square, Piece: p.Piece, Targets: targets[p.Square]})
	}
	return views
}
