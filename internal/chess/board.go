package chess

// Position maps every square to the piece standing on it.
// It is a value type: copying a Position copies the board.
type Position [BoardSize * BoardSize]Piece

// At returns the piece on a square. Off-board squares read as empty.
func (p *Position) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p[sq]
}

// Set places a piece on a square. Setting NoPiece clears it.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p[sq] = piece
	}
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (p *Position) FindKing(colour Colour) Square {
	king := NewPiece(colour, King)
	for sq := Square(0); sq < BoardSize*BoardSize; sq++ {
		if p[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// PlacedPiece is a piece together with its square.
type PlacedPiece struct {
	Square Square
	Piece  Piece
}

// Pieces returns all occupied squares in a1..h8 order.
func (p *Position) Pieces() []PlacedPiece {
	pieces := make([]PlacedPiece, 0, 32)
	for sq := Square(0); sq < BoardSize*BoardSize; sq++ {
		if !p[sq].IsEmpty() {
			pieces = append(pieces, PlacedPiece{Square: sq, Piece: p[sq]})
		}
	}
	return pieces
}

// SideRights holds one colour's castling availability.
type SideRights struct {
	KingSide  bool
	QueenSide bool
}

// Any returns true if either castling right remains.
func (r SideRights) Any() bool {
	return r.KingSide || r.QueenSide
}

// CastleRights holds castling availability for both colours.
type CastleRights struct {
	White SideRights
	Black SideRights
}

// For returns the rights of one colour.
func (c CastleRights) For(colour Colour) SideRights {
	if colour == White {
		return c.White
	}
	return c.Black
}

// With returns a copy with one colour's rights replaced.
func (c CastleRights) With(colour Colour, rights SideRights) CastleRights {
	if colour == White {
		c.White = rights
	} else {
		c.Black = rights
	}
	return c
}

// Any returns true if any castling right remains for either colour.
func (c CastleRights) Any() bool {
	return c.White.Any() || c.Black.Any()
}

// GameState is a complete, immutable-by-convention snapshot of a game:
// everything needed to generate legal moves and encode a FEN.
type GameState struct {
	Position Position

	// Who has the next move.
	ActiveColour Colour

	// The square skipped by a two-square pawn advance on the previous
	// move, or NoSquare.
	EnPassant Square

	Castling CastleRights

	// Half-moves since the last pawn move or capture.
	HalfMoveClock int

	// Starts at 1 and increments after Black's move.
	FullMoveNumber int
}

// Ply returns the 1-based ply index of the next move to be made from this
// state, counting from move 1 with White to move. A full-move number below
// 1 counts as 1.
func (s GameState) Ply() int {
	ply := 2*(max(s.FullMoveNumber, 1)-1) + 1
	if s.ActiveColour == Black {
		ply++
	}
	return ply
}
