// Package errors defines the failure conditions of the rules engine, the
// PGN and FEN codecs and the variation tree. Callers match them with Is and
// As; this package re-exports both so it can be imported as errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFEN indicates a malformed or inconsistent FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal-move set
	// of the position it was played in.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPGN indicates movetext that cannot be resolved against the
	// position, or malformed bracket/comment nesting.
	ErrInvalidPGN = errors.New("invalid PGN")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNodeNotFound indicates a tree key that does not refer to a live node.
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError locates a failure within a batch of games.
type GameError struct {
	Err      error
	GameNum  int    // 1-based position in the input
	PlyNum   int    // 0 when the failure is not tied to a ply
	MoveText string // offending token, if any
	File     string
}

func (e *GameError) Error() string {
	at := make([]string, 0, 4)
	if e.File != "" {
		at = append(at, e.File)
	}
	at = append(at, fmt.Sprintf("game %d", e.GameNum))
	if e.PlyNum > 0 {
		at = append(at, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		at = append(at, fmt.Sprintf("move %q", e.MoveText))
	}
	return withCause(strings.Join(at, ", "), e.Err)
}

func (e *GameError) Unwrap() error { return e.Err }

// ParseError locates a failure within one PGN or FEN text. Line and
// Column are 1-based; zero means unknown.
type ParseError struct {
	Err      error
	Line     int
	Column   int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var at []string
	switch {
	case e.Line > 0 && e.Column > 0:
		at = append(at, fmt.Sprintf("line %d, column %d", e.Line, e.Column))
	case e.Line > 0:
		at = append(at, fmt.Sprintf("line %d", e.Line))
	}
	switch {
	case e.Expected != "" && e.Got != "":
		at = append(at, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		at = append(at, "expected "+e.Expected)
	case e.Got != "":
		at = append(at, "unexpected "+e.Got)
	}
	if len(at) == 0 && e.Err == nil {
		return "parse error"
	}
	return withCause(strings.Join(at, ": "), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// withCause appends cause to a location prefix; either may be empty.
func withCause(at string, cause error) string {
	switch {
	case cause == nil:
		return at
	case at == "":
		return cause.Error()
	}
	return at + ": " + cause.Error()
}

// Wrap prefixes err with context. It returns nil for a nil err.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
