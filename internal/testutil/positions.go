package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Well-known test positions.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// PerftCase is a position with its known node counts, indexed by depth-1.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// PerftCases are the standard perft reference positions. Counts beyond what
// runs quickly are omitted.
var PerftCases = []PerftCase{
	{"start", StartFEN, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", KiwipeteFEN, []uint64{48, 2039, 97862}},
	{"position3", Position3FEN, []uint64{14, 191, 2812, 43238}},
	{"position4", Position4FEN, []uint64{6, 264, 9467}},
	{"position5", Position5FEN, []uint64{44, 1486, 62379}},
}

// MustParseMoves parses coordinate moves, failing the test on the first
// malformed one.
func MustParseMoves(t *testing.T, moves ...string) []chess.Move {
	t.Helper()
	out := make([]chess.Move, 0, len(moves))
	for _, s := range moves {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", s, err)
		}
		out = append(out, m)
	}
	return out
}
