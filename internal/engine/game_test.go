package engine_test

import (
	"testing"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/engine"
	"github.com/lgbarn/chesstree/internal/errors"
	"github.com/lgbarn/chesstree/internal/testutil"
)

func playAll(t *testing.T, g *engine.Game, sans ...string) {
	t.Helper()
	for _, san := range sans {
		if err := g.PlaySAN(san); err != nil {
			t.Fatalf("PlaySAN(%q): %v", san, err)
		}
	}
}

func TestGame_CheckIsNotMate(t *testing.T) {
	g := engine.NewGame()
	playAll(t, g, "e4", "e5", "Qh5", "Nc6", "Qxf7+")

	last, ok := g.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last.SAN, "Qxf7+")
	testutil.AssertTrue(t, last.Check)
	testutil.AssertFalse(t, last.Checkmate)
	testutil.AssertTrue(t, g.InCheck())
	testutil.AssertNil(t, g.Outcome())
}

func TestGame_Checkmate(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  chess.Result
	}{
		{"scholar's mate", []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"}, chess.WhiteWins},
		{"fool's mate", []string{"f3", "e5", "g4", "Qh4#"}, chess.BlackWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.NewGame()
			playAll(t, g, tt.moves...)

			outcome := g.Outcome()
			if outcome == nil {
				t.Fatal("expected an outcome")
			}
			testutil.AssertEqual(t, *outcome, chess.Outcome{Result: tt.want, By: chess.Checkmate})
			testutil.AssertEqual(t, len(g.LegalMoves()), 0)

			err := g.PlaySAN("a3")
			testutil.AssertErrorIs(t, err, errors.ErrGameOver)
		})
	}
}

func TestGame_Stalemate(t *testing.T) {
	g, err := engine.NewGameFromFEN("7k/8/4Q1K1/8/8/8/8/8 w - - 0 1")
	testutil.AssertNoError(t, err)
	playAll(t, g, "Qf7")
	testutil.AssertEqual(t, g.Outcome(), &chess.Outcome{Result: chess.Draw, By: chess.Stalemate})
}

func TestGame_OutcomeAtStart(t *testing.T) {
	g, err := engine.NewGameFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Outcome(), &chess.Outcome{Result: chess.Draw, By: chess.Stalemate})
}

func TestGame_InsufficientMaterial(t *testing.T) {
	g, err := engine.NewGameFromFEN("4k3/8/8/8/8/8/3p4/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertNil(t, g.Outcome())
	playAll(t, g, "Kxd2")
	testutil.AssertEqual(t, g.Outcome(), &chess.Outcome{Result: chess.Draw, By: chess.InsufficientMaterial})
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K+N vs K+B", "4kb2/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+B+N vs K", "4k3/8/8/8/8/8/8/2N1KB2 w - - 0 1", false},
		{"starting position", engine.InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := testutil.MustDecodeFEN(t, tt.fen)
			if got := engine.HasInsufficientMaterial(&state.Position); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGame_ThreefoldRepetition(t *testing.T) {
	g := engine.NewGame()
	testutil.AssertEqual(t, g.RepetitionCount(), 1)

	playAll(t, g, "Nf3", "Nf6", "Ng1", "Ng8")
	testutil.AssertEqual(t, g.RepetitionCount(), 2)
	testutil.AssertNil(t, g.Outcome())

	playAll(t, g, "Nf3", "Nf6", "Ng1")
	testutil.AssertNil(t, g.Outcome())

	playAll(t, g, "Ng8")
	testutil.AssertEqual(t, g.RepetitionCount(), 3)
	testutil.AssertEqual(t, g.Outcome(), &chess.Outcome{Result: chess.Draw, By: chess.Repetition})
}

func TestGame_FiftyMoveRule(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantOver bool
	}{
		{"clock reaches 100", "4k3/8/8/8/8/8/8/R3K3 w - - 99 60", true},
		{"clock reaches 99", "4k3/8/8/8/8/8/8/R3K3 w - - 98 60", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := engine.NewGameFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			playAll(t, g, "Ra2")

			if !tt.wantOver {
				testutil.AssertNil(t, g.Outcome())
				return
			}
			testutil.AssertEqual(t, g.Outcome(), &chess.Outcome{Result: chess.Draw, By: chess.FiftyMoveRule})
		})
	}
}

func TestGame_ResignAndAgreeDraw(t *testing.T) {
	g := engine.NewGame()
	playAll(t, g, "e4")
	testutil.AssertNoError(t, g.Resign(chess.Black))
	testutil.AssertEqual(t, g.Outcome(), &chess.Outcome{Result: chess.WhiteWins, By: chess.Resignation})
	testutil.AssertErrorIs(t, g.AgreeDraw(), errors.ErrGameOver)

	g = engine.NewGame()
	testutil.AssertNoError(t, g.AgreeDraw())
	testutil.AssertEqual(t, g.Outcome(), &chess.Outcome{Result: chess.Draw, By: chess.Agreement})
	testutil.AssertErrorIs(t, g.PlayUCI("e2e4"), errors.ErrGameOver)
}

func TestGame_PlayRejectsIllegal(t *testing.T) {
	g := engine.NewGame()
	testutil.AssertErrorIs(t, g.PlaySAN("e5"), errors.ErrIllegalMove)
	testutil.AssertErrorIs(t, g.PlayUCI("e1e2"), errors.ErrIllegalMove)
	testutil.AssertErrorIs(t, g.Play(chess.Move{}), errors.ErrIllegalMove)
	testutil.AssertEqual(t, len(g.Moves()), 0)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
}

func TestGame_PlayUCICastling(t *testing.T) {
	g, err := engine.NewGameFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.PlayUCI("e1h1"))
	testutil.AssertEqual(t, g.FEN(), "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1")
}

func TestGame_MovePairs(t *testing.T) {
	t.Run("white starts", func(t *testing.T) {
		g := engine.NewGame()
		playAll(t, g, "e4", "e5", "Nf3")
		pairs := g.MovePairs()
		testutil.AssertEqual(t, len(pairs), 2)
		testutil.AssertEqual(t, pairs[0].Number, 1)
		testutil.AssertEqual(t, pairs[0].White.SAN, "e4")
		testutil.AssertEqual(t, pairs[0].Black.SAN, "e5")
		testutil.AssertEqual(t, pairs[1].Number, 2)
		testutil.AssertEqual(t, pairs[1].White.SAN, "Nf3")
		testutil.AssertNil(t, pairs[1].Black)
	})

	t.Run("black starts", func(t *testing.T) {
		g, err := engine.NewGameFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
		testutil.AssertNoError(t, err)
		playAll(t, g, "e5", "Nf3")
		pairs := g.MovePairs()
		testutil.AssertEqual(t, len(pairs), 2)
		testutil.AssertNil(t, pairs[0].White)
		testutil.AssertEqual(t, pairs[0].Black.SAN, "e5")
		testutil.AssertEqual(t, pairs[1].Number, 2)
		testutil.AssertEqual(t, pairs[1].White.SAN, "Nf3")
	})
}

func TestGame_StartStateIsKept(t *testing.T) {
	g := engine.NewGame()
	playAll(t, g, "d4")
	testutil.AssertEqual(t, engine.EncodeFEN(g.StartState()), engine.InitialFEN)
	testutil.AssertEqual(t, g.State().ActiveColour, chess.Black)
}
