package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGameErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *GameError
		want string
	}{
		{
			name: "all fields",
			err:  &GameError{Err: ErrIllegalMove, GameNum: 5, PlyNum: 12, MoveText: "Nxe5", File: "games.pgn"},
			want: `games.pgn, game 5, ply 12, move "Nxe5": illegal move`,
		},
		{
			name: "game only",
			err:  &GameError{Err: ErrInvalidPGN, GameNum: 1},
			want: "game 1: invalid PGN",
		},
		{
			name: "no cause",
			err:  &GameError{GameNum: 2, MoveText: "O-O-O"},
			want: `game 2, move "O-O-O"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "location and tokens",
			err:  &ParseError{Err: ErrInvalidPGN, Line: 100, Column: 15, Expected: "move", Got: `")"`},
			want: `line 100, column 15: expected move, got ")": invalid PGN`,
		},
		{
			name: "line only",
			err:  &ParseError{Err: ErrInvalidFEN, Line: 3, Expected: "rank"},
			want: "line 3: expected rank: invalid FEN string",
		},
		{
			name: "unexpected token",
			err:  &ParseError{Got: `"Qh9"`},
			want: `unexpected "Qh9"`,
		},
		{
			name: "cause only",
			err:  &ParseError{Err: ErrIllegalMove},
			want: "illegal move",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrapChains(t *testing.T) {
	parseErr := &ParseError{Err: ErrIllegalMove, Line: 7, Got: `"Ke3"`}
	gameErr := &GameError{Err: Wrap(parseErr, "movetext"), GameNum: 4}
	outer := fmt.Errorf("batch: %w", gameErr)

	for _, sentinel := range []error{ErrIllegalMove} {
		if !Is(outer, sentinel) {
			t.Errorf("Is(outer, %v) = false", sentinel)
		}
	}
	if Is(outer, ErrInvalidFEN) {
		t.Error("Is(outer, ErrInvalidFEN) = true")
	}

	var ge *GameError
	if !As(outer, &ge) || ge.GameNum != 4 {
		t.Fatalf("As(*GameError) failed: %v", ge)
	}
	var pe *ParseError
	if !As(outer, &pe) || pe.Line != 7 {
		t.Fatalf("As(*ParseError) failed: %v", pe)
	}
	if errors.Unwrap(gameErr) == nil {
		t.Error("GameError.Unwrap returned nil")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil || Wrapf(nil, "game %d", 1) != nil {
		t.Fatal("wrapping nil should give nil")
	}

	wrapped := Wrapf(ErrNodeNotFound, "key %d:%d", 3, 1)
	if got, want := wrapped.Error(), "key 3:1: node not found"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
	if !Is(Wrap(wrapped, "delete"), ErrNodeNotFound) {
		t.Error("nested Wrap lost the sentinel")
	}
}

func TestSentinelsDistinct(t *testing.T) {
	all := []error{ErrInvalidFEN, ErrIllegalMove, ErrInvalidPGN, ErrGameOver, ErrNodeNotFound, ErrInvalidConfig}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}
