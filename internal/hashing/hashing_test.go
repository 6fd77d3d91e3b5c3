package hashing

import (
	"testing"

	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/engine"
	"github.com/lgbarn/chesstree/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(engine.InitialState())
	hash2 := GenerateZobristHash(engine.InitialState())
	if hash1 != hash2 {
		t.Errorf("Identical states produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	start := engine.InitialState()
	after := testutil.MustPlay(t, start, "e4")
	if GenerateZobristHash(start) == GenerateZobristHash(after) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashTransposition(t *testing.T) {
	start := engine.InitialState()
	a := testutil.MustPlay(t, start, "Nf3", "Nf6", "Nc3", "Nc6")
	b := testutil.MustPlay(t, start, "Nc3", "Nc6", "Nf3", "Nf6")
	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("Transposed move orders should reach the same hash")
	}
}

func TestZobristHashIgnoresClocks(t *testing.T) {
	state := engine.InitialState()
	other := state
	other.HalfMoveClock = 12
	other.FullMoveNumber = 30
	if GenerateZobristHash(state) != GenerateZobristHash(other) {
		t.Error("Move counters should not affect the hash")
	}
}

func TestHashStateComponents(t *testing.T) {
	base := testutil.MustDecodeFEN(t, "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1")

	tests := []struct {
		name   string
		modify func(*chess.GameState)
	}{
		{"side to move", func(s *chess.GameState) { s.ActiveColour = chess.Black }},
		{"white king side", func(s *chess.GameState) { s.Castling.White.KingSide = false }},
		{"black queen side", func(s *chess.GameState) { s.Castling.Black.QueenSide = false }},
		{"en passant", func(s *chess.GameState) { s.EnPassant = chess.NoSquare }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := base
			tt.modify(&changed)
			if GenerateZobristHash(base) == GenerateZobristHash(changed) {
				t.Errorf("changing %s did not change the hash", tt.name)
			}
		})
	}
}

func TestWeakHashConsistency(t *testing.T) {
	if WeakHash(engine.InitialState()) != WeakHash(engine.InitialState()) {
		t.Error("Identical states produced different weak hashes")
	}
	if WeakHash(engine.InitialState()) == WeakHash(testutil.MustPlay(t, engine.InitialState(), "e4")) {
		t.Error("Moving a pawn should change the weak hash")
	}
}

func TestGameHasher(t *testing.T) {
	a := testutil.MustParseGame(t, "1. Nf3 Nf6 2. Nc3 Nc6 *")
	b := testutil.MustParseGame(t, "1. Nc3 Nc6 2. Nf3 Nf6 *")

	final := NewGameHasher(HashFinalPosition)
	if final.HashGame(a) != final.HashGame(b) {
		t.Error("final position hashes should match for transpositions")
	}
	for _, ht := range []HashType{HashAllPositions, HashMoveSequence} {
		h := NewGameHasher(ht)
		if h.HashGame(a) == h.HashGame(b) {
			t.Errorf("hash type %d should tell move orders apart", ht)
		}
		if h.HashGame(a) != h.HashGame(testutil.MustParseGame(t, "1. Nf3 Nf6 2. Nc3 Nc6 1-0")) {
			t.Errorf("hash type %d should ignore the result", ht)
		}
	}
}

func TestGameHasherIgnoresVariations(t *testing.T) {
	plain := testutil.MustParseGame(t, "1. e4 e5 *")
	annotated := testutil.MustParseGame(t, "1. e4 {best} (1. d4 d5) 1... e5 $1 *")
	for _, ht := range []HashType{HashFinalPosition, HashAllPositions, HashMoveSequence} {
		h := NewGameHasher(ht)
		if h.HashGame(plain) != h.HashGame(annotated) {
			t.Errorf("hash type %d depends on annotations", ht)
		}
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(HashFinalPosition, false)
	game := testutil.MustParseGame(t, "[White \"A\"]\n\n1. e4 e5 *")

	if detector.CheckAndAdd(game) {
		t.Error("First game was marked as duplicate")
	}
	if !detector.CheckAndAdd(testutil.MustParseGame(t, "[White \"B\"]\n\n1. e4 e5 1-0")) {
		t.Error("Duplicate game was not detected")
	}
	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", detector.DuplicateCount())
	}
}

func TestDuplicateDetectorDifferentGames(t *testing.T) {
	detector := NewDuplicateDetector(HashFinalPosition, false)

	if detector.CheckAndAdd(testutil.MustParseGame(t, "1. e4 *")) {
		t.Error("Game 1 was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(testutil.MustParseGame(t, "1. d4 *")) {
		t.Error("Game 2 was incorrectly marked as duplicate")
	}
	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("Expected 2 unique games, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	// Both reach the start position with White to move: the knights go
	// out and back in different numbers of moves.
	short := testutil.MustParseGame(t, "1. Nf3 Nf6 2. Ng1 Ng8 *")
	long := testutil.MustParseGame(t, "1. Nf3 Nf6 2. Nd4 Nd5 3. Nf3 Nf6 4. Ng1 Ng8 *")

	loose := NewDuplicateDetector(HashFinalPosition, false)
	loose.CheckAndAdd(short)
	if !loose.CheckAndAdd(long) {
		t.Error("same final position should be a duplicate without exact matching")
	}

	exact := NewDuplicateDetector(HashFinalPosition, true)
	exact.CheckAndAdd(short)
	if exact.CheckAndAdd(long) {
		t.Error("different move counts should not match with exact matching")
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(HashMoveSequence, false)
	game := testutil.MustParseGame(t, "1. e4 *")

	detector.CheckAndAdd(game)
	detector.CheckAndAdd(game)
	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()
	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates after reset, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("Expected 0 unique games after reset, got %d", detector.UniqueCount())
	}
}
