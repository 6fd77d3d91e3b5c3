package chess

import (
	"fmt"
	"time"
)

// MarkColour is one of the highlight colours used by display commands.
type MarkColour byte

const (
	Red    MarkColour = 'R'
	Green  MarkColour = 'G'
	Blue   MarkColour = 'B'
	Yellow MarkColour = 'Y'
)

// ParseMarkColour converts a colour letter of either case.
func ParseMarkColour(c byte) (MarkColour, bool) {
	switch c {
	case 'R', 'r':
		return Red, true
	case 'G', 'g':
		return Green, true
	case 'B', 'b':
		return Blue, true
	case 'Y', 'y':
		return Yellow, true
	}
	return 0, false
}

// MarkedSquare is a highlighted square ([%csl Gd4]).
type MarkedSquare struct {
	Colour MarkColour
	Square Square
}

// String returns the display command form, e.g. "Gd4".
func (m MarkedSquare) String() string {
	return string(m.Colour) + m.Square.String()
}

// Arrow is a drawn arrow ([%cal Ge2e4]).
type Arrow struct {
	Colour MarkColour
	From   Square
	To     Square
}

// String returns the display command form, e.g. "Ge2e4".
func (a Arrow) String() string {
	return string(a.Colour) + a.From.String() + a.To.String()
}

// Evaluation is a cached engine score ([%eval 0.25] or [%eval #-3]),
// always from White's point of view.
type Evaluation struct {
	// Centipawns is meaningful when MateIn is zero.
	Centipawns int
	// MateIn is the signed distance to mate; positive means White mates.
	MateIn int
}

// String returns the display command form.
func (e Evaluation) String() string {
	if e.MateIn != 0 {
		return fmt.Sprintf("#%d", e.MateIn)
	}
	sign := ""
	cp := e.Centipawns
	if cp < 0 {
		sign = "-"
		cp = -cp
	}
	return fmt.Sprintf("%s%d.%02d", sign, cp/100, cp%100)
}

// NodeData is the resolved payload of one half-move in a variation tree.
type NodeData struct {
	Move Move

	// Position after the move, as FEN and as a full state.
	FEN   string
	State GameState

	Comment string
	NAGs    []int

	Arrows        []Arrow
	MarkedSquares []MarkedSquare

	// Remaining clock time after the move, if recorded.
	Clock *time.Duration

	Eval *Evaluation

	// Other [%name value] comment commands, keyed by name.
	Commands map[string]string

	// 1-based ply index of the move (1 = White's first move).
	Ply int
}

// MoveNumber returns the full-move number the node's move belongs to.
func (n NodeData) MoveNumber() int {
	return (n.Ply + 1) / 2
}

// IsWhiteMove returns true if White made the node's move.
func (n NodeData) IsWhiteMove() bool {
	return n.Ply%2 == 1
}

// HasAnnotations returns true if the node carries a comment or any
// display command.
func (n NodeData) HasAnnotations() bool {
	return n.Comment != "" || len(n.Arrows) > 0 || len(n.MarkedSquares) > 0 ||
		n.Clock != nil || n.Eval != nil || len(n.Commands) > 0
}
