package parser

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesstree/internal/chess"
)

func TestSplitGames(t *testing.T) {
	games := SplitGames(multiplePGN)
	if len(games) != 3 {
		t.Fatalf("len(games) = %d, want 3", len(games))
	}
	for i, g := range games {
		if !strings.HasPrefix(g, "[Event \"Game ") {
			t.Errorf("game %d starts with %q", i+1, g[:20])
		}
	}
	if !strings.HasSuffix(games[2], "1/2-1/2") {
		t.Errorf("last game = %q", games[2])
	}
}

func TestSplitGamesKeepsBracketsInComments(t *testing.T) {
	pgn := `[Event "A"]

1. e4 {a comment that carries on
[onto a line starting with a bracket]} e5 *
[Event "B"]

1. d4 *
`
	games := SplitGames(pgn)
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2: %q", len(games), games)
	}
	if !strings.Contains(games[0], "bracket]} e5 *") {
		t.Errorf("first game was cut: %q", games[0])
	}
	if _, err := ParseGame(games[0]); err != nil {
		t.Errorf("first game does not parse: %v", err)
	}
}

func TestSplitGamesWithoutTags(t *testing.T) {
	games := SplitGames("1. e4 e5 *\n\n\n")
	if len(games) != 1 || games[0] != "1. e4 e5 *" {
		t.Errorf("games = %q", games)
	}
	if got := SplitGames("  \n\n"); len(got) != 0 {
		t.Errorf("blank input gave %q", got)
	}
}

func TestGameScannerLines(t *testing.T) {
	s := NewGameScanner(strings.NewReader(multiplePGN))
	n := 0
	for s.Scan() {
		n++
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("scanned %d games, want 3", n)
	}
	if s.Line() != strings.Count(multiplePGN, "\n") {
		t.Errorf("Line = %d, want %d", s.Line(), strings.Count(multiplePGN, "\n"))
	}
}

func TestGameScannerStartLine(t *testing.T) {
	pgn := "\n[Event \"A\"]\n\n1. e4 *\n[Event \"B\"]\n\n1. d4 *\n\n\n[Event \"C\"]\n\n1. c4 *\n"
	s := NewGameScanner(strings.NewReader(pgn))
	var starts []int
	for s.Scan() {
		starts = append(starts, s.StartLine())
	}
	want := []int{2, 5, 10}
	if len(starts) != len(want) {
		t.Fatalf("StartLine values %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("game %d starts on line %d, want %d", i+1, starts[i], want[i])
		}
	}
}

func TestSplitGamesEndsAtResult(t *testing.T) {
	tests := []struct {
		name string
		pgn  string
		want []string
	}{
		{
			name: "tagless games",
			pgn:  "1. e4 *\n\n1. d4 *\n",
			want: []string{"1. e4 *", "1. d4 *"},
		},
		{
			name: "no blank line between games",
			pgn:  "1. e4 e5 1-0\n1. d4 d5 0-1\n1. c4 1/2-1/2\n",
			want: []string{"1. e4 e5 1-0", "1. d4 d5 0-1", "1. c4 1/2-1/2"},
		},
		{
			name: "result inside a comment",
			pgn:  "1. e4 {White later won 1-0 *}\ne5 *\n\n1. d4 *\n",
			want: []string{"1. e4 {White later won 1-0 *}\ne5 *", "1. d4 *"},
		},
		{
			name: "result inside a variation",
			pgn:  "1. e4 (1. f3 e5 2. g4 Qh4# 0-1\n) 1... e5 *\n1. d4 *\n",
			want: []string{"1. e4 (1. f3 e5 2. g4 Qh4# 0-1\n) 1... e5 *", "1. d4 *"},
		},
		{
			name: "result after rest of line comment",
			pgn:  "1. e4 ; wins 1-0\ne5 *\n1. d4 *\n",
			want: []string{"1. e4 ; wins 1-0\ne5 *", "1. d4 *"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := SplitGames(tt.pgn)
			if len(games) != len(tt.want) {
				t.Fatalf("SplitGames = %q, want %q", games, tt.want)
			}
			for i := range tt.want {
				if games[i] != tt.want[i] {
					t.Errorf("game %d = %q, want %q", i+1, games[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseGamesWithoutTags(t *testing.T) {
	games, err := ParseGames("1. e4 *\n\n1. d4 d5 1-0\n")
	if err != nil {
		t.Fatalf("ParseGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}
	if games[1].Result != chess.WhiteWins || len(games[1].Mainline()) != 2 {
		t.Errorf("second game: result %v, %d plies", games[1].Result, len(games[1].Mainline()))
	}
}
