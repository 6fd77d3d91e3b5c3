// Package chess provides core chess types shared by the rules engine,
// the PGN codec and the variation tree.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the FEN letter of a colour ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the zero-based rank of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceType is the closed set of chess piece kinds.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the piece types a pawn may promote to, in the
// order promotions are generated.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the name of the piece type.
func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the uppercase SAN letter of the piece type.
// Pawns return 'P' even though SAN omits it.
func (p PieceType) Letter() byte {
	switch p {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// Value returns the conventional material value in pawns.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// IsMinor reports whether the piece type is a bishop or knight.
func (p PieceType) IsMinor() bool {
	return p == Bishop || p == Knight
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// NoPiece is the empty-square value.
var NoPiece = Piece{}

// NewPiece creates a coloured piece.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Colour: colour, Type: pieceType}
}

// IsEmpty returns true if there is no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// FENLetter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromFENLetter converts a FEN letter to a coloured piece.
// The second result is false for unrecognised letters.
func PieceFromFENLetter(c byte) (Piece, bool) {
	t := PieceTypeFromLetter(c)
	if t == NoPieceType {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Colour: colour, Type: t}, true
}

// String returns the FEN letter of the piece, or "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.FENLetter())
}
