package chess

import "strings"

// CastleSide identifies which side a castling move goes to.
type CastleSide int

const (
	NoCastle CastleSide = iota
	KingSide
	QueenSide
)

// Move is a single legal half-move produced by the move generator.
// Moves are comparable values; a Move is only meaningful in the position
// it was generated for.
type Move struct {
	// Origin and destination squares. For castling, To is the king's
	// final square.
	From Square
	To   Square

	// Square of the captured piece, or NoSquare. Differs from To only for
	// en passant captures.
	Capture Square

	// Piece type promoted to, or NoPieceType.
	Promotion PieceType

	Castle CastleSide

	// Whether this move gives check or checkmate. Checkmate implies Check.
	Check     bool
	Checkmate bool

	// Standard algebraic notation, disambiguated against the other legal
	// moves of the same position (e.g. "Nbd7", "exd6", "O-O", "e8=Q#").
	SAN string
}

// IsCapture returns true if the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Capture != NoSquare
}

// IsEnPassant returns true if the captured piece is not on the destination.
func (m Move) IsEnPassant() bool {
	return m.Capture != NoSquare && m.Capture != m.To
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle returns true if the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// UCI returns the move in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	var sb strings.Builder
	sb.Grow(5)
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// String returns the SAN of the move if known, otherwise its UCI form.
func (m Move) String() string {
	if m.SAN != "" {
		return m.SAN
	}
	return m.UCI()
}

// SameAction reports whether two moves describe the same board action,
// ignoring notation and check annotations.
func (m Move) SameAction(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// MovePair is one full move: White's ply then Black's. Either side may
// be nil when a game starts with Black to move or ends after White.
type MovePair struct {
	Number int
	White  *Move
	Black  *Move
}
