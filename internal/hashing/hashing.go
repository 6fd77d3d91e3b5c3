// Package hashing provides position hashing and duplicate detection for
// parsed games.
package hashing

import (
	"github.com/lgbarn/chesstree/internal/chess"
	"github.com/lgbarn/chesstree/internal/parser"
)

// Zobrist keys, drawn from a fixed-seed generator so hashes are stable
// across runs.
var (
	pieceKeys    [2][6][64]uint64
	sideKey      uint64
	castleKeys   [4]uint64
	enPassantKey [8]uint64
)

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for sq := range pieceKeys[c][t] {
				pieceKeys[c][t][sq] = next()
			}
		}
	}
	sideKey = next()
	for i := range castleKeys {
		castleKeys[i] = next()
	}
	for i := range enPassantKey {
		enPassantKey[i] = next()
	}
}

// GenerateZobristHash hashes the parts of a state that decide repetition:
// placement, side to move, castling rights and the en passant file.
func GenerateZobristHash(state chess.GameState) uint64 {
	var hash uint64
	for _, pp := range state.Position.Pieces() {
		hash ^= pieceKeys[pp.Piece.Colour][pp.Piece.Type-chess.Pawn][pp.Square]
	}
	if state.ActiveColour == chess.Black {
		hash ^= sideKey
	}
	rights := [4]bool{
		state.Castling.White.KingSide, state.Castling.White.QueenSide,
		state.Castling.Black.KingSide, state.Castling.Black.QueenSide,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castleKeys[i]
		}
	}
	if state.EnPassant != chess.NoSquare {
		hash ^= enPassantKey[state.EnPassant.X()]
	}
	return hash
}

// WeakHash is a cheap additive checksum of the piece placement, used as a
// second opinion when Zobrist hashes collide.
func WeakHash(state chess.GameState) uint32 {
	var sum uint32
	for _, pp := range state.Position.Pieces() {
		v := uint32(pp.Piece.Type) + 8*uint32(pp.Piece.Colour)
		sum += v * uint32(pp.Square+1)
	}
	return sum
}

// HashType specifies what to hash for duplicate detection.
type HashType int

const (
	// HashFinalPosition hashes only the final mainline position
	HashFinalPosition HashType = iota
	// HashAllPositions hashes every mainline position in order
	HashAllPositions
	// HashMoveSequence hashes the mainline SAN sequence
	HashMoveSequence
)

// GameHasher provides different hashing strategies for games.
type GameHasher struct {
	hashType HashType
}

// NewGameHasher creates a new game hasher with the specified strategy.
func NewGameHasher(ht HashType) *GameHasher {
	return &GameHasher{hashType: ht}
}

// HashGame generates a hash for the game's mainline.
func (gh *GameHasher) HashGame(game *parser.Game) uint64 {
	switch gh.hashType {
	case HashAllPositions:
		hash := GenerateZobristHash(game.Start)
		for _, node := range game.Mainline() {
			hash = hash*31 ^ GenerateZobristHash(node.State)
		}
		return hash
	case HashMoveSequence:
		return hashMoveSequence(game)
	default:
		return GenerateZobristHash(game.FinalState())
	}
}

// hashMoveSequence creates a hash from the move texts.
func hashMoveSequence(game *parser.Game) uint64 {
	var hash uint64
	const multiplier = 31
	for _, node := range game.Mainline() {
		for _, c := range node.Move.SAN {
			hash = hash*multiplier + uint64(c)
		}
		hash = hash*multiplier + ' '
	}
	return hash
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the GameHasher hash of the mainline
	Hash uint64
	// MoveCount is the number of mainline half-moves
	MoveCount int
	// WeakHash of the final position for quick comparison
	WeakHash uint32
}

// DuplicateDetector tracks seen games for duplicate detection.
type DuplicateDetector struct {
	hasher    *GameHasher
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal move counts
	useExactMatch  bool
	duplicateCount int
}

// NewDuplicateDetector creates a detector using the given hash strategy.
func NewDuplicateDetector(ht HashType, exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hasher:        NewGameHasher(ht),
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// Signature computes the signature of a game.
func (d *DuplicateDetector) Signature(game *parser.Game) GameSignature {
	return GameSignature{
		Hash:      d.hasher.HashGame(game),
		MoveCount: len(game.MainlineKeys()),
		WeakHash:  WeakHash(game.FinalState()),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(game *parser.Game) bool {
	sig := d.Signature(game)
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// signaturesMatch checks if two game signatures match. Equal Hash is
// implied by the table lookup.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
