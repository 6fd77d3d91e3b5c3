package parser

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/engine"
	"github.com/lgbarn/chesstree/internal/errors"
	"github.com/lgbarn/chesstree/internal/tree"
)

// Parser parses PGN text into games.
type Parser struct {
	logger *zap.SugaredLogger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a parser. Without WithLogger diagnostics are discarded.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseGame parses the text of a single game with a default parser.
func ParseGame(text string, opts ...Option) (*Game, error) {
	return NewParser(opts...).ParseGame(text)
}

// ParseGames parses every game in text with a default parser.
func ParseGames(text string, opts ...Option) ([]*Game, error) {
	return NewParser(opts...).ParseGames(text)
}

// ParseGames splits text into games and parses each of them. The first
// failure is returned as a *errors.GameError carrying the game number.
func (p *Parser) ParseGames(text string) ([]*Game, error) {
	var games []*Game
	for i, chunk := range SplitGames(text) {
		game, err := p.ParseGame(chunk)
		if err != nil {
			return games, &errors.GameError{Err: err, GameNum: i + 1}
		}
		games = append(games, game)
	}
	return games, nil
}

// ParseGame parses one game: optional tag pairs followed by movetext.
// Any token that cannot be resolved aborts the whole game with an error
// wrapping errors.ErrInvalidPGN and a *errors.ParseError.
func (p *Parser) ParseGame(text string) (*Game, error) {
	b := &builder{logger: p.logger, lex: NewLexer(text)}
	if err := b.parseTags(); err != nil {
		return nil, err
	}
	if err := b.parseMovetext(); err != nil {
		return nil, err
	}
	return b.game, nil
}

// returnPoint is where parsing resumes after a variation closes.
type returnPoint struct {
	parent tree.Key
	last   tree.Key
}

// builder holds the state of one game being parsed.
type builder struct {
	logger *zap.SugaredLogger
	lex    *Lexer
	game   *Game

	// parent is the node the next move is played from; last is the most
	// recent move at the current level, which annotations attach to.
	parent tree.Key
	last   tree.Key
	stack  []returnPoint

	// pending collects comments seen before the first move of a line.
	pending   string
	hasResult bool
}

func fail(tok Token, expected, got string, cause error) error {
	err := errors.ErrInvalidPGN
	if cause != nil {
		err = fmt.Errorf("%w: %w", errors.ErrInvalidPGN, cause)
	}
	return &errors.ParseError{
		Err:      err,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      got,
	}
}

func (b *builder) parseTags() error {
	var tags chess.Tags
	for {
		tok := b.lex.PeekToken()
		if tok.Type == ErrorToken {
			return fail(tok, tok.Value, strconv.Quote(tok.Text), nil)
		}
		if tok.Type != TagToken {
			break
		}
		b.lex.NextToken()
		tags.Set(tok.Text, tok.Value)
	}

	start := engine.InitialState()
	if fen := tags.Get("FEN"); fen != "" {
		state, err := engine.DecodeFEN(fen)
		if err != nil {
			return fail(Token{}, "FEN tag", strconv.Quote(fen), err)
		}
		start = state
	}
	b.game = NewGame(start)
	b.game.Tags = tags
	return nil
}

func (b *builder) parseMovetext() error {
	for {
		tok := b.lex.NextToken()
		switch tok.Type {
		case EOFToken:
			return b.finish(tok)
		case ErrorToken:
			return fail(tok, tok.Value, strconv.Quote(tok.Text), nil)
		case TagToken:
			return fail(tok, "movetext", "tag "+tok.Text, nil)
		case MoveNumber:
			b.checkMoveNumber(tok)
		case MoveToken:
			if err := b.addMove(tok); err != nil {
				return err
			}
		case NAGToken:
			b.addNAG(tok)
		case CommentToken:
			b.addComment(tok)
		case RAVStart:
			if b.last.IsZero() {
				return fail(tok, "move before variation", "'('", nil)
			}
			b.stack = append(b.stack, returnPoint{parent: b.parent, last: b.last})
			b.parent, _ = b.game.Tree.Parent(b.last)
			b.last = tree.Key{}
		case RAVEnd:
			if len(b.stack) == 0 {
				return fail(tok, "'(' before ')'", "')'", nil)
			}
			if b.last.IsZero() {
				return fail(tok, "move in variation", "')'", nil)
			}
			top := b.stack[len(b.stack)-1]
			b.stack = b.stack[:len(b.stack)-1]
			b.parent, b.last = top.parent, top.last
		case TerminatingResult:
			if len(b.stack) > 0 {
				return fail(tok, "')'", tok.Text, nil)
			}
			b.game.Result = chess.ResultFromToken(tok.Text)
			b.hasResult = true
			if next := b.lex.NextToken(); next.Type != EOFToken {
				return fail(next, "end of game", next.Type.String(), nil)
			}
			return b.finish(tok)
		}
	}
}

func (b *builder) checkMoveNumber(tok Token) {
	state, err := b.game.StateAt(b.parent)
	if err != nil {
		return
	}
	if tok.Number != state.FullMoveNumber {
		b.logger.Debugw("move number does not match position",
			"line", tok.Line, "got", tok.Number, "want", state.FullMoveNumber)
	}
}

func (b *builder) addMove(tok Token) error {
	before, err := b.game.StateAt(b.parent)
	if err != nil {
		return fail(tok, "move", strconv.Quote(tok.Text), err)
	}
	move, err := engine.ResolveSAN(engine.LegalMoves(before), tok.Text)
	if err != nil {
		return fail(tok, "legal move", strconv.Quote(tok.Text), err)
	}
	node, err := nodeFor(before, move, b.game.plyAfter(b.parent))
	if err != nil {
		return fail(tok, "legal move", strconv.Quote(tok.Text), err)
	}

	if b.pending != "" {
		if len(b.stack) == 0 && b.parent.IsZero() {
			b.game.Comment = joinComment(b.game.Comment, b.pending)
		} else {
			applyComment(b.pending, &node)
		}
		b.pending = ""
	}

	k, err := b.game.Tree.Add(node, b.parent)
	if err != nil {
		return fail(tok, "move", strconv.Quote(tok.Text), err)
	}
	b.parent, b.last = k, k
	return nil
}

func (b *builder) addNAG(tok Token) {
	if b.last.IsZero() {
		b.logger.Debugw("annotation before any move ignored", "line", tok.Line, "nag", tok.Text)
		return
	}
	_ = b.game.Tree.Update(b.last, func(d *chess.NodeData) {
		d.NAGs = append(d.NAGs, tok.NAG)
	})
}

func (b *builder) addComment(tok Token) {
	if tok.Text == "" {
		return
	}
	if b.last.IsZero() {
		b.pending = joinComment(b.pending, tok.Text)
		return
	}
	_ = b.game.Tree.Update(b.last, func(d *chess.NodeData) {
		applyComment(tok.Text, d)
	})
}

func (b *builder) finish(tok Token) error {
	if len(b.stack) > 0 {
		return fail(tok, "')'", "end of input", nil)
	}
	if b.pending != "" {
		b.game.Comment = joinComment(b.game.Comment, b.pending)
		b.pending = ""
	}

	tag := b.game.Tags.Get("Result")
	switch {
	case !b.hasResult && tag != "":
		b.logger.Debugw("missing result token, using Result tag", "result", tag)
		b.game.Result = chess.ResultFromToken(tag)
	case b.hasResult && tag != "" && tag != b.game.Result.String():
		b.logger.Warnw("result token disagrees with Result tag",
			"token", b.game.Result.String(), "tag", tag,
			"white", b.game.Tags.Get("White"), "black", b.game.Tags.Get("Black"))
	}
	return nil
}

func joinComment(existing, text string) string {
	if existing == "" {
		return text
	}
	return existing + " " + text
}
