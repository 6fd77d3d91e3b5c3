package chess

// Result is the winner of a finished game.
type Result int

const (
	NoResult Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN result token.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WinFor returns the result in which the given colour wins.
func WinFor(c Colour) Result {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// ResultFromToken parses a PGN termination token. Unknown tokens map to
// NoResult.
func ResultFromToken(token string) Result {
	switch token {
	case "1-0":
		return WhiteWins
	case "0-1":
		return BlackWins
	case "1/2-1/2":
		return Draw
	default:
		return NoResult
	}
}

// Method is how a game ended.
type Method int

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	Repetition
	FiftyMoveRule
	Resignation
	Agreement
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient-material"
	case Repetition:
		return "repetition"
	case FiftyMoveRule:
		return "fifty-move-rule"
	case Resignation:
		return "resignation"
	case Agreement:
		return "agreement"
	default:
		return "none"
	}
}

// Outcome is the terminal state of a game.
type Outcome struct {
	Result Result
	By     Method
}

// String returns e.g. "1-0 by checkmate".
func (o Outcome) String() string {
	return o.Result.String() + " by " + o.By.String()
}
