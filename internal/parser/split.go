package parser

import (
	"bufio"
	"io"
	"strings"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1 << 20

// GameScanner splits a stream of PGN text into the text of each game.
// A game ends after the line holding its result token, or where a tag line
// follows movetext. Brace comments may span lines and are never split.
type GameScanner struct {
	scanner *bufio.Scanner
	lineNum int

	buf       strings.Builder
	seenMoves bool
	inComment bool
	depth     int  // open RAVs
	finished  bool // a top-level result token was seen

	// held is a tag line read past the end of the previous game.
	held     string
	heldLine int
	hasHeld  bool

	startLine int

	text string
	err  error
}

// NewGameScanner creates a scanner reading from r.
func NewGameScanner(r io.Reader) *GameScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &GameScanner{scanner: s}
}

// Scan advances to the next game. It returns false at the end of input or
// on a read error.
func (g *GameScanner) Scan() bool {
	g.buf.Reset()
	g.seenMoves = false
	g.inComment = false
	g.depth = 0
	g.finished = false
	g.startLine = 0
	if g.hasHeld {
		g.appendLine(g.held, g.heldLine)
		g.hasHeld = false
	}

	for g.scanner.Scan() {
		g.lineNum++
		line := g.scanner.Text()
		if !g.inComment && g.seenMoves && isTagLine(line) {
			g.held, g.heldLine, g.hasHeld = line, g.lineNum, true
			break
		}
		g.appendLine(line, g.lineNum)
		if g.finished {
			break
		}
	}
	if err := g.scanner.Err(); err != nil {
		g.err = err
		return false
	}

	g.text = strings.TrimSpace(g.buf.String())
	return g.text != ""
}

func isTagLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "[")
}

func (g *GameScanner) appendLine(line string, num int) {
	if g.startLine == 0 && strings.TrimSpace(line) != "" {
		g.startLine = num
	}
	g.buf.WriteString(line)
	g.buf.WriteByte('\n')
	if !g.inComment && (isTagLine(line) || strings.HasPrefix(line, "%")) {
		return
	}
	word := -1 // start of the current movetext word
	for i := 0; i <= len(line); i++ {
		ch := byte(' ')
		if i < len(line) {
			ch = line[i]
		}
		if g.inComment {
			if ch == '}' {
				g.inComment = false
			}
			continue
		}
		if ch == '{' || ch == '(' || ch == ')' || ch == ';' || chTab[ch] == classWhitespace {
			if word >= 0 {
				g.endWord(line[word:i])
				word = -1
			}
		} else if word < 0 {
			word = i
		}
		switch ch {
		case '{':
			g.inComment = true
		case '(':
			g.depth++
		case ')':
			if g.depth > 0 {
				g.depth--
			}
		case ';':
			return
		}
		if ch != '{' && chTab[ch] != classWhitespace {
			g.seenMoves = true
		}
	}
}

func (g *GameScanner) endWord(w string) {
	if g.depth > 0 {
		return
	}
	switch w {
	case "1-0", "0-1", "1/2-1/2", "*":
		g.finished = true
	}
}

// Text returns the game found by the last call to Scan.
func (g *GameScanner) Text() string {
	return g.text
}

// Line returns the number of input lines consumed so far.
func (g *GameScanner) Line() int {
	return g.lineNum
}

// StartLine returns the input line on which the last game starts.
func (g *GameScanner) StartLine() int {
	return g.startLine
}

// Err returns the first read error.
func (g *GameScanner) Err() error {
	return g.err
}

// SplitGames returns the text of each game in text.
func SplitGames(text string) []string {
	var games []string
	s := NewGameScanner(strings.NewReader(text))
	for s.Scan() {
		games = append(games, s.Text())
	}
	return games
}
