package chess

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square identifies one of the 64 board squares as rank*8 + file,
// with a1 = 0 and h8 = 63.
type Square int8

// NoSquare marks an absent square (no en passant target, no capture).
const NoSquare Square = -1

// SquareAt returns the square at zero-based coordinates (x = file, y = rank).
// Returns NoSquare if the coordinates are off the board.
func SquareAt(x, y int) Square {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return NoSquare
	}
	return Square(y*BoardSize + x)
}

// ParseSquare parses an algebraic coordinate such as "e4".
// Returns NoSquare if the text is not a valid square.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	return SquareAt(int(s[0])-'a', int(s[1])-'1')
}

// X returns the zero-based file index.
func (s Square) X() int {
	return int(s) % BoardSize
}

// Y returns the zero-based rank index.
func (s Square) Y() int {
	return int(s) / BoardSize
}

// File returns the file letter ('a'..'h').
func (s Square) File() byte {
	return byte('a' + s.X())
}

// Rank returns the rank digit ('1'..'8').
func (s Square) Rank() byte {
	return byte('1' + s.Y())
}

// Valid returns true if the square is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < BoardSize*BoardSize
}

// Offset returns the square displaced by (dx, dy), or NoSquare if that
// leaves the board.
func (s Square) Offset(dx, dy int) Square {
	return SquareAt(s.X()+dx, s.Y()+dy)
}

// IsLight returns true for light squares (h1 is light).
func (s Square) IsLight() bool {
	return (s.X()+s.Y())%2 == 1
}

// String returns the algebraic coordinate, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}
