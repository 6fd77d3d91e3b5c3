// Package engine implements the chess rules: legal move generation, the
// state transition, FEN encoding and SAN notation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated FEN fields.
const fenFields = 6

// InitialState returns the standard starting position.
func InitialState() chess.GameState {
	state, err := DecodeFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return state
}

// DecodeFEN parses a FEN string. Fields are validated in order: field
// count, active colour, castling, en passant, the two counters, then
// piece placement.
func DecodeFEN(fen string) (chess.GameState, error) {
	var state chess.GameState

	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return state, fenError("expected %d fields, got %d", fenFields, len(parts))
	}

	colour, err := parseActiveColour(parts[1])
	if err != nil {
		return state, err
	}
	state.ActiveColour = colour

	if state.Castling, err = parseCastling(parts[2]); err != nil {
		return state, err
	}

	state.EnPassant = chess.NoSquare
	if parts[3] != "-" {
		sq := chess.ParseSquare(parts[3])
		if sq == chess.NoSquare {
			return state, fenError("invalid en passant square %q", parts[3])
		}
		state.EnPassant = sq
	}

	if state.HalfMoveClock, err = parseCounter("half-move clock", parts[4]); err != nil {
		return state, err
	}
	if state.FullMoveNumber, err = parseCounter("full-move number", parts[5]); err != nil {
		return state, err
	}

	if err := parsePlacement(&state.Position, parts[0]); err != nil {
		return state, err
	}
	return state, nil
}

func fenError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidFEN)
}

func parseActiveColour(s string) (chess.Colour, error) {
	switch s {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fenError("invalid active colour %q", s)
	}
}

// parseCastling accepts "-" or a non-empty set of KQkq without repeats.
func parseCastling(s string) (chess.CastleRights, error) {
	var rights chess.CastleRights
	if s == "-" {
		return rights, nil
	}
	if s == "" || len(s) > 4 {
		return rights, fenError("invalid castling availability %q", s)
	}
	seen := make(map[rune]bool, 4)
	for _, c := range s {
		if seen[c] {
			return rights, fenError("repeated castling right %q", c)
		}
		seen[c] = true
		switch c {
		case 'K':
			rights.White.KingSide = true
		case 'Q':
			rights.White.QueenSide = true
		case 'k':
			rights.Black.KingSide = true
		case 'q':
			rights.Black.QueenSide = true
		default:
			return rights, fenError("invalid castling availability %q", s)
		}
	}
	return rights, nil
}

func parseCounter(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fenError("invalid %s %q", name, s)
	}
	return n, nil
}

// parsePlacement reads the eight ranks, rank 8 first.
func parsePlacement(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}
	for i, row := range ranks {
		y := chess.BoardSize - 1 - i
		x := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				if x > chess.BoardSize {
					return fenError("rank %d is too long", y+1)
				}
				continue
			}
			piece, ok := chess.PieceFromFENLetter(c)
			if !ok {
				return fenError("invalid piece %q", c)
			}
			if x >= chess.BoardSize {
				return fenError("rank %d is too long", y+1)
			}
			pos.Set(chess.SquareAt(x, y), piece)
			x++
		}
		if x != chess.BoardSize {
			return fenError("rank %d has %d squares", y+1, x)
		}
	}
	return nil
}

// EncodeFEN produces the six-field FEN of a state.
func EncodeFEN(state chess.GameState) string {
	var sb strings.Builder
	sb.Grow(90)
	writeFENPrefix(&sb, &state)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(state.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(state.FullMoveNumber))
	return sb.String()
}

// RepetitionKey returns the first four FEN fields: placement, active
// colour, castling and en passant. Positions with equal keys are
// repetitions of each other.
func RepetitionKey(state chess.GameState) string {
	var sb strings.Builder
	sb.Grow(80)
	writeFENPrefix(&sb, &state)
	return sb.String()
}

func writeFENPrefix(sb *strings.Builder, state *chess.GameState) {
	pos := &state.Position
	for y := chess.BoardSize - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := pos.At(chess.SquareAt(x, y))
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(state.ActiveColour.Letter())

	sb.WriteByte(' ')
	sb.WriteString(castlingString(state.Castling))

	sb.WriteByte(' ')
	sb.WriteString(state.EnPassant.String())
}

func castlingString(rights chess.CastleRights) string {
	var sb strings.Builder
	if rights.White.KingSide {
		sb.WriteByte('K')
	}
	if rights.White.QueenSide {
		sb.WriteByte('Q')
	}
	if rights.Black.KingSide {
		sb.WriteByte('k')
	}
	if rights.Black.QueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
