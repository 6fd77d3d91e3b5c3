// Package parser reads PGN games into variation trees.
//
// Every move token is resolved through the rules engine against the
// position it is played from, so a parsed tree only ever holds legal moves.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TagToken
	CommentToken
	NAGToken
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token from PGN input.
type Token struct {
	Type TokenType
	// Text is the token as written: the move, the comment body, the tag
	// name, the result, or the offending input of an ErrorToken.
	Text string
	// Value is the tag value of a TagToken.
	Value string
	// NAG is the numeric annotation of a NAGToken.
	NAG int
	// Number is the move number of a MoveNumber token.
	Number int

	Line   int
	Column int
}

// charClass classifies input bytes for the lexer.
type charClass uint8

const (
	classError charClass = iota
	classWhitespace
	classTagStart
	classCommentStart
	classLineComment
	classNAG
	classAnnotate
	classDot
	classRAVStart
	classRAVEnd
	classPercent
	classAlpha
	classDigit
	classStar
)
