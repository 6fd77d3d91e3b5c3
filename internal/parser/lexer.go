package parser

import (
	"strconv"
	"strings"
)

// Character classification table
var chTab [256]charClass

// Move character classification table
var moveChars [256]bool

// annotationNAGs maps traditional move suffixes to their NAG numbers.
var annotationNAGs = map[string]int{
	"!":  1,
	"?":  2,
	"!!": 3,
	"??": 4,
	"!?": 5,
	"?!": 6,
}

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		chTab[c] = classWhitespace
	}

	chTab['['] = classTagStart
	chTab['{'] = classCommentStart
	chTab[';'] = classLineComment
	chTab['$'] = classNAG
	chTab['!'] = classAnnotate
	chTab['?'] = classAnnotate
	chTab['.'] = classDot
	chTab['('] = classRAVStart
	chTab[')'] = classRAVEnd
	chTab['%'] = classPercent
	chTab['*'] = classStar

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = classDigit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = classAlpha
		chTab[c+32] = classAlpha
	}

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	// Pieces (P for an explicit pawn), captures, promotion, castling and
	// check marks.
	for _, c := range []byte("KQRBNPxX=O0-+#") {
		moveChars[c] = true
	}
}

// cursor is an immutable read position in the input. The lexer states
// are pure functions from a cursor to a token and the cursor after it.
type cursor struct {
	src  string
	pos  int
	line int
	col  int
}

func newCursor(src string) cursor {
	return cursor{src: src, line: 1, col: 1}
}

func (c cursor) eof() bool {
	return c.pos >= len(c.src)
}

// peek returns the current byte, or 0 at the end of input.
func (c cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c cursor) advance() cursor {
	if c.eof() {
		return c
	}
	if c.src[c.pos] == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	c.pos++
	return c
}

// advanceWhile consumes bytes matching fn and returns them.
func (c cursor) advanceWhile(fn func(byte) bool) (string, cursor) {
	start := c.pos
	for !c.eof() && fn(c.peek()) {
		c = c.advance()
	}
	return c.src[start:c.pos], c
}

func (c cursor) token(t TokenType, text string) Token {
	return Token{Type: t, Text: text, Line: c.line, Column: c.col}
}

// errorToken reports unexpected input at c. expected describes what the
// lexer was looking for and is stored in Value.
func (c cursor) errorToken(got, expected string) Token {
	tok := c.token(ErrorToken, got)
	tok.Value = expected
	return tok
}

// lexState is one state of the lexer.
type lexState func(c cursor) (Token, cursor)

// nextToken runs the lexer from c until one token has been produced.
func nextToken(c cursor) (Token, cursor) {
	return scanUnknown(c)
}

// scanUnknown skips layout and dispatches on the class of the next byte.
func scanUnknown(c cursor) (Token, cursor) {
	for {
		if c.eof() {
			return c.token(EOFToken, ""), c
		}
		ch := c.peek()
		switch chTab[ch] {
		case classWhitespace, classDot:
			c = c.advance()
			continue
		case classPercent:
			if c.col != 1 {
				return c.errorToken("%", "escape at line start"), c.advance()
			}
			_, c = c.advanceWhile(func(b byte) bool { return b != '\n' })
			continue
		}
		return stateFor(ch)(c)
	}
}

func stateFor(ch byte) lexState {
	switch chTab[ch] {
	case classTagStart:
		return scanTag
	case classCommentStart, classLineComment:
		return scanComment
	case classNAG, classAnnotate:
		return scanAnnotation
	case classDigit:
		return scanMoveCount
	case classAlpha:
		return scanToken
	case classStar:
		return func(c cursor) (Token, cursor) {
			return c.token(TerminatingResult, "*"), c.advance()
		}
	case classRAVStart:
		return func(c cursor) (Token, cursor) {
			return c.token(RAVStart, "("), c.advance()
		}
	case classRAVEnd:
		return func(c cursor) (Token, cursor) {
			return c.token(RAVEnd, ")"), c.advance()
		}
	}
	return func(c cursor) (Token, cursor) {
		return c.errorToken(string(c.peek()), "movetext"), c.advance()
	}
}

func isSpace(b byte) bool { return chTab[b] == classWhitespace }

func isTagNameChar(b byte) bool {
	return chTab[b] == classAlpha || chTab[b] == classDigit || b == '_'
}

// scanTag reads [Name "Value"].
func scanTag(c cursor) (Token, cursor) {
	tok := c.token(TagToken, "")
	c = c.advance()
	_, c = c.advanceWhile(isSpace)

	tok.Text, c = c.advanceWhile(isTagNameChar)
	if tok.Text == "" {
		return c.errorToken(string(c.peek()), "tag name"), c
	}
	_, c = c.advanceWhile(isSpace)

	if c.peek() != '"' {
		return c.errorToken(string(c.peek()), "tag value"), c
	}
	value, c, ok := scanString(c)
	if !ok {
		return c.errorToken("end of input", `closing '"'`), c
	}
	tok.Value = value
	_, c = c.advanceWhile(isSpace)

	if c.peek() != ']' {
		return c.errorToken(string(c.peek()), "']'"), c
	}
	return tok, c.advance()
}

// scanString reads a quoted string starting at the opening quote,
// processing \" and \\ escapes.
func scanString(c cursor) (string, cursor, bool) {
	var sb strings.Builder
	c = c.advance()
	for !c.eof() {
		ch := c.peek()
		switch ch {
		case '"':
			return sb.String(), c.advance(), true
		case '\\':
			c = c.advance()
			if next := c.peek(); next == '"' || next == '\\' {
				sb.WriteByte(next)
				c = c.advance()
				continue
			}
			sb.WriteByte('\\')
			continue
		case '\n':
			return "", c, false
		}
		sb.WriteByte(ch)
		c = c.advance()
	}
	return "", c, false
}

// scanComment reads a {brace} comment or a ; comment running to the end
// of the line.
func scanComment(c cursor) (Token, cursor) {
	tok := c.token(CommentToken, "")
	if c.peek() == ';' {
		var text string
		text, c = c.advance().advanceWhile(func(b byte) bool { return b != '\n' })
		tok.Text = strings.TrimSpace(text)
		return tok, c
	}

	open := c
	text, c := c.advance().advanceWhile(func(b byte) bool { return b != '}' })
	if c.eof() {
		return open.errorToken("{", "'}' closing comment"), c
	}
	tok.Text = strings.TrimSpace(text)
	return tok, c.advance()
}

// scanAnnotation reads $n or a run of ! and ? suffixes.
func scanAnnotation(c cursor) (Token, cursor) {
	tok := c.token(NAGToken, "")
	if c.peek() == '$' {
		digits, next := c.advance().advanceWhile(func(b byte) bool { return chTab[b] == classDigit })
		n, err := strconv.Atoi(digits)
		if err != nil || n > 255 {
			return c.errorToken("$"+digits, "NAG number"), next
		}
		tok.Text = "$" + digits
		tok.NAG = n
		return tok, next
	}

	text, next := c.advanceWhile(func(b byte) bool { return chTab[b] == classAnnotate })
	n, ok := annotationNAGs[text]
	if !ok {
		return c.errorToken(text, "move annotation"), next
	}
	tok.Text = text
	tok.NAG = n
	return tok, next
}

func isCountChar(b byte) bool {
	return chTab[b] == classDigit || b == '-' || b == '/'
}

// scanMoveCount reads a move number with its dots, a result token, or
// hands zero-based castling over to the token state.
func scanMoveCount(c cursor) (Token, cursor) {
	start := c
	word, next := c.advanceWhile(isCountChar)

	switch word {
	case "1-0", "0-1", "1/2-1/2":
		return start.token(TerminatingResult, word), next
	}
	if strings.HasPrefix(word, "0-0") {
		return scanToken(start)
	}

	n, err := strconv.Atoi(word)
	if err != nil {
		return start.errorToken(word, "move number or result"), next
	}
	tok := start.token(MoveNumber, word)
	tok.Number = n
	_, next = next.advanceWhile(func(b byte) bool { return b == '.' })
	return tok, next
}

// scanToken reads a move in algebraic notation.
func scanToken(c cursor) (Token, cursor) {
	text, next := c.advanceWhile(func(b byte) bool { return moveChars[b] })
	if text == "" {
		junk, after := c.advanceWhile(func(b byte) bool { return chTab[b] == classAlpha })
		return c.errorToken(junk, "move"), after
	}
	tok := c.token(MoveToken, text)
	if len(text) > 1 && strings.HasSuffix(text, "e") && strings.HasPrefix(next.src[next.pos:], ".p.") {
		// fxg3e.p.: the mark's "e" was read as part of the move.
		tok.Text = text[:len(text)-1]
		return tok, advanceN(next, len(".p."))
	}
	return tok, skipEnPassantMark(next)
}

// skipEnPassantMark consumes an " e.p." written after a capture.
func skipEnPassantMark(c cursor) cursor {
	_, after := c.advanceWhile(func(b byte) bool { return b == ' ' || b == '\t' })
	if !strings.HasPrefix(after.src[after.pos:], "e.p.") {
		return c
	}
	return advanceN(after, len("e.p."))
}

func advanceN(c cursor, n int) cursor {
	for i := 0; i < n; i++ {
		c = c.advance()
	}
	return c
}

// Lexer tokenizes PGN input.
type Lexer struct {
	cur    cursor
	peeked *Token
}

// NewLexer creates a lexer over the full text of one or more games.
func NewLexer(text string) *Lexer {
	return &Lexer{cur: newCursor(text)}
}

// NextToken returns the next token. It returns EOFToken indefinitely at
// the end of input.
func (l *Lexer) NextToken() Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	var tok Token
	tok, l.cur = nextToken(l.cur)
	return tok
}

// PeekToken returns the next token without consuming it.
func (l *Lexer) PeekToken() Token {
	if l.peeked == nil {
		tok := l.NextToken()
		l.peeked = &tok
	}
	return *l.peeked
}
