package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/errors"
)

// SAN castling strings.
const (
	KingSideCastle  = "O-O"
	QueenSideCastle = "O-O-O"
)

// SAN returns the standard algebraic notation of a move in a state.
// The move's Check and Checkmate flags decide the suffix.
func SAN(state chess.GameState, move chess.Move) string {
	return san(&state, move, generate(&state, false))
}

// annotateSAN fills in the SAN of each move, disambiguated against the
// others.
func annotateSAN(state *chess.GameState, moves []chess.Move) {
	for i := range moves {
		moves[i].SAN = san(state, moves[i], moves)
	}
}

func san(state *chess.GameState, move chess.Move, siblings []chess.Move) string {
	var sb strings.Builder
	sb.Grow(8)

	piece := state.Position.At(move.From)
	switch {
	case move.Castle != chess.NoCastle || (piece.Type == chess.King && abs(move.To.X()-move.From.X()) == 2):
		if move.To.X() == kingSideKingTo {
			sb.WriteString(KingSideCastle)
		} else {
			sb.WriteString(QueenSideCastle)
		}
	case piece.Type == chess.Pawn:
		if move.IsCapture() {
			sb.WriteByte(move.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(move.Promotion.Letter())
		}
	default:
		sb.WriteByte(piece.Type.Letter())
		sb.WriteString(disambiguation(state, move, piece, siblings))
		if move.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
	}

	switch {
	case move.Checkmate:
		sb.WriteByte('#')
	case move.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell
// the move apart from other moves of the same piece type to the same
// destination. The file is preferred, then the rank.
func disambiguation(state *chess.GameState, move chess.Move, piece chess.Piece, siblings []chess.Move) string {
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range siblings {
		if other.To != move.To || other.From == move.From {
			continue
		}
		if state.Position.At(other.From) != piece {
			continue
		}
		ambiguous = true
		if other.From.X() == move.From.X() {
			sameFile = true
		}
		if other.From.Y() == move.From.Y() {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(move.From.File())
	case !sameRank:
		return string(move.From.Rank())
	default:
		return move.From.String()
	}
}

// Matches pawn-capture shorthand once decorations are removed: "ed5",
// "ed" or "ed8Q".
var pawnCaptureRe = regexp.MustCompile(`^([a-h])([a-h])([1-8])?=?([QRBN])?$`)

// Long algebraic form, with an optional piece letter and separator.
var longAlgebraicRe = regexp.MustCompile(`^[KQRBN]?([a-h][1-8])[-x]?([a-h][1-8])=?([QRBNqrbn])?$`)

// ParseSAN resolves a notation token against the legal moves of a state.
func ParseSAN(state chess.GameState, token string) (chess.Move, error) {
	return ResolveSAN(LegalMoves(state), token)
}

// ResolveSAN matches a token against an annotated legal move list. It
// tries an exact SAN match, then a match ignoring decorations such as
// check marks and the capture x, then pawn-capture shorthand, then long
// algebraic notation.
func ResolveSAN(moves []chess.Move, token string) (chess.Move, error) {
	token = normaliseCastling(strings.TrimSpace(token))
	// An explicit pawn letter: Pe4, Pexd5.
	if len(token) > 2 && token[0] == 'P' && token[1] >= 'a' && token[1] <= 'h' {
		token = token[1:]
	}

	for _, m := range moves {
		if m.SAN == token {
			return m, nil
		}
	}

	bare := stripDecorations(token)
	if bare == "" {
		return chess.Move{}, illegalToken(token)
	}
	for _, m := range moves {
		if stripDecorations(m.SAN) == bare {
			return m, nil
		}
	}

	if groups := pawnCaptureRe.FindStringSubmatch(bare); groups != nil {
		return matchPawnCapture(moves, token, groups)
	}

	if groups := longAlgebraicRe.FindStringSubmatch(bare); groups != nil {
		from, to := chess.ParseSquare(groups[1]), chess.ParseSquare(groups[2])
		promo := chess.NoPieceType
		if groups[3] != "" {
			promo = chess.PieceTypeFromLetter(groups[3][0])
		}
		for _, m := range moves {
			if m.From == from && m.To == to && m.Promotion == promo {
				return m, nil
			}
		}
	}

	return chess.Move{}, illegalToken(token)
}

// matchPawnCapture resolves shorthand like "ed5" or "ed" to the one pawn
// capture that fits it.
func matchPawnCapture(moves []chess.Move, token string, groups []string) (chess.Move, error) {
	fromFile := groups[1][0]
	toFile := groups[2][0]
	promo := chess.NoPieceType
	if groups[4] != "" {
		promo = chess.PieceTypeFromLetter(groups[4][0])
	}

	var found []chess.Move
	for _, m := range moves {
		// Pawn captures have a lowercase origin file as their first SAN letter.
		if !m.IsCapture() || len(m.SAN) == 0 || m.SAN[0] != fromFile {
			continue
		}
		if m.To.File() != toFile || m.Promotion != promo {
			continue
		}
		if groups[3] != "" && m.To.Rank() != groups[3][0] {
			continue
		}
		found = append(found, m)
	}
	if len(found) != 1 {
		return chess.Move{}, illegalToken(token)
	}
	return found[0], nil
}

func normaliseCastling(token string) string {
	switch {
	case strings.HasPrefix(token, "0-0-0"):
		return QueenSideCastle + token[len("0-0-0"):]
	case strings.HasPrefix(token, "0-0"):
		return KingSideCastle + token[len("0-0"):]
	}
	return token
}

// stripDecorations removes check, capture, promotion and annotation marks.
func stripDecorations(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '+', '#', 'x', '!', '?', '=':
			return -1
		}
		return r
	}, s)
}

func illegalToken(token string) error {
	return fmt.Errorf("%q: %w", token, errors.ErrIllegalMove)
}

// ParseUCI resolves a UCI move such as "e2e4" or "e7e8q". A king moving
// onto its own rook ("e1h1") is read as castling to that side.
func ParseUCI(state chess.GameState, s string) (chess.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, illegalToken(s)
	}
	from, to := chess.ParseSquare(s[0:2]), chess.ParseSquare(s[2:4])
	if from == chess.NoSquare || to == chess.NoSquare {
		return chess.Move{}, illegalToken(s)
	}
	promo := chess.NoPieceType
	if len(s) == 5 {
		promo = chess.PieceTypeFromLetter(s[4])
		if promo == chess.NoPieceType || promo == chess.Pawn || promo == chess.King {
			return chess.Move{}, illegalToken(s)
		}
	}

	to = normaliseRookSquareCastle(&state, from, to)
	want := chess.Move{From: from, To: to, Promotion: promo}
	for _, m := range LegalMoves(state) {
		if m.SameAction(want) {
			return m, nil
		}
	}
	return chess.Move{}, illegalToken(s)
}

// normaliseRookSquareCastle maps a king-takes-own-rook destination on the
// home rank to the king's castling square.
func normaliseRookSquareCastle(state *chess.GameState, from, to chess.Square) chess.Square {
	colour := state.ActiveColour
	pos := &state.Position
	if pos.At(from) != chess.NewPiece(colour, chess.King) || pos.At(to) != chess.NewPiece(colour, chess.Rook) {
		return to
	}
	rank := colour.HomeRank()
	if from != chess.SquareAt(kingFile, rank) {
		return to
	}
	switch to {
	case chess.SquareAt(kingSideRookFile, rank):
		return chess.SquareAt(kingSideKingTo, rank)
	case chess.SquareAt(queenSideRookFile, rank):
		return chess.SquareAt(queenSideKingTo, rank)
	}
	return to
}
