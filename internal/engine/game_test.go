package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var (
	ongoing   = chess.GameState{Status: chess.Ongoing}
	draw      = chess.GameState{Status: chess.Draw}
	whiteWins = chess.GameState{Status: chess.Checkmate, Winner: chess.White}
	blackWins = chess.GameState{Status: chess.Checkmate, Winner: chess.Black}
)

const foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// playAll makes each move in turn and returns the state after the last one.
func playAll(t *testing.T, g *Game, moves ...string) chess.GameState {
	t.Helper()
	state := g.State()
	for _, m := range testutil.MustParseMoves(t, moves...) {
		var err error
		if state, err = g.MakeMove(m, nil); err != nil {
			t.Fatalf("MakeMove(%s) error: %v", m, err)
		}
	}
	return state
}

func TestGame_ScriptedOpening(t *testing.T) {
	g := NewDefaultGame()
	steps := []struct {
		move string
		fen  string
	}{
		{"e2e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"c7c5", "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"},
		{"g1f3", "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"},
	}

	for _, s := range steps {
		state := playAll(t, g, s.move)
		testutil.AssertEqual(t, state, ongoing, "state after %s", s.move)
		testutil.AssertEqual(t, g.FEN(), s.fen, "FEN after %s", s.move)
	}
}

func TestGame_RejectedMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		move   string
		reason error
	}{
		{"opponent's piece", InitialFEN, "e7e5", errors.ErrOtherPlayersTurn},
		{"empty square", InitialFEN, "e4e5", errors.ErrNoPieceToMove},
		{"pawn too far", InitialFEN, "e2e5", errors.ErrDisallowedMovement},
		{"onto own piece", InitialFEN, "d1d2", errors.ErrDisallowedMovement},
		{"bishop through pawn", InitialFEN, "c1e3", errors.ErrDisallowedMovement},
		{"null move", InitialFEN, "e2e2", errors.ErrDisallowedMovement},
		{"ignores check", "4k3/8/8/8/8/8/P7/r3K3 w - - 0 1", "a2a3", errors.ErrDisallowedMovement},
		{"castles through check", "r3k2r/8/8/8/8/7b/8/R3K2R w KQkq - 0 1", "e1g1", errors.ErrDisallowedMovement},
		{"after checkmate", foolsMateFEN, "e2e4", errors.ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			before := g.FEN()
			stateBefore := g.State()

			state, err := g.MakeMove(chess.MustParseMove(tt.move), nil)
			if err == nil {
				t.Fatalf("MakeMove(%s) succeeded; want %v", tt.move, tt.reason)
			}
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertErrorIs(t, err, tt.reason)
			testutil.AssertContains(t, err.Error(), tt.move)
			testutil.AssertEqual(t, state, stateBefore, "returned state")
			testutil.AssertEqual(t, g.FEN(), before, "position after rejected move")
		})
	}
}

func TestGame_Outcomes(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  chess.GameState
	}{
		{
			name:  "fool's mate",
			fen:   InitialFEN,
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			want:  blackWins,
		},
		{
			name:  "back rank mate",
			fen:   "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1",
			moves: []string{"d1d8"},
			want:  whiteWins,
		},
		{
			name:  "stalemate",
			fen:   "7k/8/6K1/8/8/8/8/5Q2 w - - 0 1",
			moves: []string{"f1f7"},
			want:  draw,
		},
		{
			name:  "fiftieth quiet move",
			fen:   "4k3/8/8/8/8/8/8/4KR2 w - - 99 80",
			moves: []string{"f1f2"},
			want:  draw,
		},
		{
			name:  "capture on the fiftieth move resets the count",
			fen:   "4k3/8/8/8/8/8/8/4KR1r w - - 99 80",
			moves: []string{"f1h1"},
			want:  ongoing,
		},
		{
			name:  "pawn move on the fiftieth move resets the count",
			fen:   "4k3/8/8/8/8/8/4P3/4KR2 w - - 99 80",
			moves: []string{"e2e3"},
			want:  ongoing,
		},
		{
			name:  "check is not mate",
			fen:   InitialFEN,
			moves: []string{"e2e4", "f7f6", "d1h5"},
			want:  ongoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			testutil.AssertEqual(t, playAll(t, g, tt.moves...), tt.want)
			testutil.AssertEqual(t, g.State(), tt.want)
		})
	}
}

func TestGame_FiftyMoveCounter(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/8/4KR2 w - - 98 80")
	testutil.AssertEqual(t, playAll(t, g, "f1f2"), ongoing)
	testutil.AssertEqual(t, g.Board().HalfmoveCounter(), 99)
	testutil.AssertEqual(t, playAll(t, g, "e8d8"), draw)
	testutil.AssertEqual(t, g.Board().HalfmoveCounter(), 100)

	_, err := g.MakeMove(chess.MustParseMove("f2f1"), nil)
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestNewGame_ClassifiesStart(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.GameState
	}{
		{"starting position", InitialFEN, ongoing},
		{"already mated", foolsMateFEN, blackWins},
		{"already stalemated", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", draw},
		{"past the fifty-move limit", "4k3/8/8/8/8/8/8/4KR2 w - - 100 80", draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, mustGame(t, tt.fen).State(), tt.want)
		})
	}
}

func TestGame_Promotion(t *testing.T) {
	const fen = "k7/4P3/8/8/8/8/8/4K3 w - - 0 1"
	tests := []struct {
		name      string
		promotion PromotionFunc
		want      chess.Piece
	}{
		{"nil supplier", nil, chess.W(chess.Queen)},
		{"knight", func() chess.Kind { return chess.Knight }, chess.W(chess.Knight)},
		{"rook", func() chess.Kind { return chess.Rook }, chess.W(chess.Rook)},
		{"bishop", func() chess.Kind { return chess.Bishop }, chess.W(chess.Bishop)},
		{"king falls back to queen", func() chess.Kind { return chess.King }, chess.W(chess.Queen)},
		{"pawn falls back to queen", func() chess.Kind { return chess.Pawn }, chess.W(chess.Queen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, fen)
			if _, err := g.MakeMove(chess.MustParseMove("e7e8"), tt.promotion); err != nil {
				t.Fatalf("MakeMove error: %v", err)
			}
			board := g.Board()
			testutil.AssertEqual(t, board.At(sq("e8")), tt.want)
			testutil.AssertEqual(t, board.At(sq("e7")), chess.NoPiece)
			testutil.AssertEqual(t, board.HalfmoveCounter(), 0)
		})
	}
}

func TestGame_PromotionSupplierOnlyAskedForPromotions(t *testing.T) {
	g := NewDefaultGame()
	asked := 0
	if _, err := g.MakeMove(chess.MustParseMove("e2e4"), func() chess.Kind {
		asked++
		return chess.Knight
	}); err != nil {
		t.Fatal(err)
	}
	if asked != 0 {
		t.Errorf("promotion supplier called %d times for a pawn push", asked)
	}
}

func TestGame_PromotionWithCaptureGivesCheck(t *testing.T) {
	g := mustGame(t, "3rk3/2P5/8/8/8/8/8/4K3 w - - 0 1")
	playAll(t, g, "c7d8")
	board := g.Board()
	testutil.AssertEqual(t, board.At(sq("d8")), chess.W(chess.Queen))
	testutil.AssertEqual(t, board.CheckingPieces(), 1)
}

func TestGame_SpecialMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "white castles kingside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:  "white castles queenside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1c1"},
			want:  "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:  "black castles queenside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"e8c8"},
			want:  "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:  "king move drops both rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1e2"},
			want:  "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:  "rook move drops its right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1h2"},
			want:  "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:  "rook capture drops both corners' rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:  "en passant removes the passed pawn",
			fen:   "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			moves: []string{"e5d6"},
			want:  "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:  "en passant expires after one move",
			fen:   "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			moves: []string{"e1d1", "e8d8"},
			want:  "3k4/8/8/3pP3/8/8/8/3K4 w - - 2 2",
		},
		{
			name:  "black double push records the passed square",
			fen:   "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1",
			moves: []string{"d7d5"},
			want:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			playAll(t, g, tt.moves...)
			testutil.AssertEqual(t, g.FEN(), tt.want)
		})
	}
}

func TestGame_CheckCounter(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{"quiet move", InitialFEN, "e2e4", 0},
		{"direct check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", 1},
		{"discovered check", "4k3/8/8/8/8/8/4N3/4R1K1 w - - 0 1", "e2c3", 1},
		{"double check", "4k3/8/8/8/8/8/4B3/4R1K1 w - - 0 1", "e2b5", 2},
		{"castling rook gives check", "5k2/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", 1},
		{"en passant opens a rank", "8/8/8/8/K2pP2r/8/8/7k b - e3 0 1", "d4e3", 1},
		{"en passant capture gives check", "8/2k5/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", 1},
		{"knight check", "4k3/8/8/8/6N1/8/8/4K3 w - - 0 1", "g4f6", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			playAll(t, g, tt.move)
			board := g.Board()
			testutil.AssertEqual(t, board.CheckingPieces(), tt.want)
			testutil.AssertEqual(t, mustBoard(t, g.FEN()).CheckingPieces(), tt.want, "recounted from FEN")
		})
	}
}

func TestGame_BoardIsACopy(t *testing.T) {
	g := NewDefaultGame()
	board := g.Board()
	board.Take(sq("e1"))
	if g.Board().At(sq("e1")) != chess.W(chess.King) {
		t.Error("modifying Board() result changed the game")
	}

	src := NewInitialBoard()
	g = NewGame(src)
	src.Take(sq("e1"))
	if g.Board().At(sq("e1")) != chess.W(chess.King) {
		t.Error("modifying the board passed to NewGame changed the game")
	}
}

func TestGame_LegalMoves(t *testing.T) {
	g := mustGame(t, "k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	var promotions int
	for _, m := range g.LegalMoves() {
		if m.From == sq("e7") {
			promotions++
		}
	}
	if promotions != 1 {
		t.Errorf("e7e8 listed %d times, want once", promotions)
	}
	testutil.AssertEqual(t, len(g.LegalMoves()), 6)
}
