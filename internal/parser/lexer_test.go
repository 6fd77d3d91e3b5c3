package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type lexed struct {
	Type  TokenType
	Text  string
	Value string
	NAG   int
}

func lexAll(input string) []lexed {
	l := NewLexer(input)
	var out []lexed
	for {
		tok := l.NextToken()
		if tok.Type == EOFToken {
			return out
		}
		out = append(out, lexed{tok.Type, tok.Text, tok.Value, tok.NAG})
		if tok.Type == ErrorToken {
			return out
		}
	}
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexed
	}{
		{
			name:  "tag with escapes",
			input: `[Event "The \"Big\" One \\ 2"]`,
			want:  []lexed{{Type: TagToken, Text: "Event", Value: `The "Big" One \ 2`}},
		},
		{
			name:  "move numbers and moves",
			input: "1. e4 e5 2.Nf3 2... Nc6",
			want: []lexed{
				{Type: MoveNumber, Text: "1"},
				{Type: MoveToken, Text: "e4"},
				{Type: MoveToken, Text: "e5"},
				{Type: MoveNumber, Text: "2"},
				{Type: MoveToken, Text: "Nf3"},
				{Type: MoveNumber, Text: "2"},
				{Type: MoveToken, Text: "Nc6"},
			},
		},
		{
			name:  "legacy pawn forms",
			input: "exd6 e.p. Pe4 fxg3e.p.",
			want: []lexed{
				{Type: MoveToken, Text: "exd6"},
				{Type: MoveToken, Text: "Pe4"},
				{Type: MoveToken, Text: "fxg3"},
			},
		},
		{
			name:  "annotations",
			input: "e4!? $14 Nf3??",
			want: []lexed{
				{Type: MoveToken, Text: "e4"},
				{Type: NAGToken, Text: "!?", NAG: 5},
				{Type: NAGToken, Text: "$14", NAG: 14},
				{Type: MoveToken, Text: "Nf3"},
				{Type: NAGToken, Text: "??", NAG: 4},
			},
		},
		{
			name:  "comments and variations",
			input: "e4 { a comment } (d4 ; rest of line\n)",
			want: []lexed{
				{Type: MoveToken, Text: "e4"},
				{Type: CommentToken, Text: "a comment"},
				{Type: RAVStart, Text: "("},
				{Type: MoveToken, Text: "d4"},
				{Type: CommentToken, Text: "rest of line"},
				{Type: RAVEnd, Text: ")"},
			},
		},
		{
			name:  "results",
			input: "1-0 0-1 1/2-1/2 *",
			want: []lexed{
				{Type: TerminatingResult, Text: "1-0"},
				{Type: TerminatingResult, Text: "0-1"},
				{Type: TerminatingResult, Text: "1/2-1/2"},
				{Type: TerminatingResult, Text: "*"},
			},
		},
		{
			name:  "castling with zeros and checks",
			input: "0-0 O-O-O+ 0-0-0# exd8=Q+",
			want: []lexed{
				{Type: MoveToken, Text: "0-0"},
				{Type: MoveToken, Text: "O-O-O+"},
				{Type: MoveToken, Text: "0-0-0#"},
				{Type: MoveToken, Text: "exd8=Q+"},
			},
		},
		{
			name:  "escape line",
			input: "% skipped [not a tag]\ne4",
			want:  []lexed{{Type: MoveToken, Text: "e4"}},
		},
		{
			name:  "unterminated comment",
			input: "e4 {open",
			want: []lexed{
				{Type: MoveToken, Text: "e4"},
				{Type: ErrorToken, Text: "{", Value: "'}' closing comment"},
			},
		},
		{
			name:  "unknown character",
			input: "e4 @",
			want: []lexed{
				{Type: MoveToken, Text: "e4"},
				{Type: ErrorToken, Text: "@", Value: "movetext"},
			},
		},
		{
			name:  "bad number",
			input: "1-1",
			want:  []lexed{{Type: ErrorToken, Text: "1-1", Value: "move number or result"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, lexAll(tt.input)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	l := NewLexer("[White \"A\"]\n\n1. e4\n  {c}")
	var got [][2]int
	for tok := l.NextToken(); tok.Type != EOFToken; tok = l.NextToken() {
		got = append(got, [2]int{tok.Line, tok.Column})
	}
	want := [][2]int{{1, 1}, {3, 1}, {3, 4}, {4, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerPeek(t *testing.T) {
	l := NewLexer("e4 e5")
	if got := l.PeekToken().Text; got != "e4" {
		t.Errorf("PeekToken = %q, want e4", got)
	}
	if got := l.NextToken().Text; got != "e4" {
		t.Errorf("NextToken after peek = %q, want e4", got)
	}
	if got := l.NextToken().Text; got != "e5" {
		t.Errorf("NextToken = %q, want e5", got)
	}
	if l.NextToken().Type != EOFToken || l.NextToken().Type != EOFToken {
		t.Error("EOF should repeat")
	}
}

func TestCursorIsAValue(t *testing.T) {
	start := newCursor("Nf3 e5")
	tok, next := nextToken(start)
	if tok.Text != "Nf3" {
		t.Fatalf("token = %q", tok.Text)
	}
	// Re-running from the saved cursor yields the same token.
	again, _ := nextToken(start)
	if again != tok {
		t.Errorf("re-lexing gave %+v, want %+v", again, tok)
	}
	if next.pos != 3 || start.pos != 0 {
		t.Errorf("cursor positions %d, %d", start.pos, next.pos)
	}
}

func TestTokenTypeString(t *testing.T) {
	if MoveToken.String() != "MOVE" || TokenType(99).String() != "UNKNOWN" {
		t.Errorf("unexpected names %q %q", MoveToken, TokenType(99))
	}
}
