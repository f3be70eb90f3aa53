// processor.go - Position loading, move replay and perft
package main

import (
	stderrors "errors"
	"io"
	"log"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perftstore"
)

// Report is everything one run produces.
type Report struct {
	StartFEN string                 `json:"start_fen,omitempty"`
	Moves    []string               `json:"moves,omitempty"`
	FEN      string                 `json:"fen,omitempty"`
	State    string                 `json:"state,omitempty"`
	InCheck  bool                   `json:"in_check,omitempty"`
	Draw     *engine.DrawRuleResult `json:"draw_rules,omitempty"`
	Board    string                 `json:"board,omitempty"`
	Perft    *PerftReport           `json:"perft,omitempty"`
	Cached   []perftstore.Result    `json:"cached,omitempty"`
}

// PerftReport holds a perft or divide result.
type PerftReport struct {
	Depth   int                  `json:"depth"`
	Nodes   uint64               `json:"nodes"`
	Cached  bool                 `json:"cached"`
	Elapsed time.Duration        `json:"elapsed_ns"`
	Divide  []engine.DivideEntry `json:"divide,omitempty"`
}

// run carries out the work described by cfg.
func run(cfg *config.Config) (*Report, error) {
	if cfg.Perft.ListCache {
		return listCache(cfg)
	}

	board, err := loadBoard(cfg.FEN)
	if err != nil {
		return nil, err
	}

	report := &Report{StartFEN: engine.BoardToFEN(board)}
	game := engine.NewGame(board)

	rec := newRecorder(cfg, cfg.Moves)
	if _, err := game.Play(rec); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, err
	}
	if n := rec.Played(); n < len(cfg.Moves) && cfg.Verbosity > 0 {
		log.Printf("game ended after %d of %d moves", n, len(cfg.Moves))
	}

	final := game.Board()
	draw := engine.AnalyzeDrawRules(final)
	report.Moves = rec.played
	report.FEN = game.FEN()
	report.State = game.State().String()
	report.InCheck = final.InCheck()
	report.Draw = &draw
	if cfg.Output.ShowBoard {
		report.Board = final.String()
	}

	if cfg.Perft.Depth > 0 {
		if report.Perft, err = runPerft(cfg, final); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// loadBoard parses fen, or sets up the standard position if it is empty.
func loadBoard(fen string) (*chess.Board, error) {
	if fen == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(fen)
}

// recorder replays the scripted moves and keeps their notation.
type recorder struct {
	*engine.ScriptedDecider
	san     bool
	verbose bool
	played  []string
}

func newRecorder(cfg *config.Config, moves []string) *recorder {
	return &recorder{
		ScriptedDecider: engine.NewScriptedDecider(moves...),
		san:             cfg.Output.SAN,
		verbose:         cfg.Verbosity > 1,
	}
}

// NextMove returns the next scripted move, recording it if it is legal.
// Illegal moves end the replay, so they are never recorded.
func (r *recorder) NextMove(board *chess.Board) (chess.Move, error) {
	m, err := r.ScriptedDecider.NextMove(board)
	if err != nil {
		return m, err
	}

	piece := board.At(m.From)
	if piece.IsEmpty() || piece.Color != board.NextToMove() || !engine.CanMove(board, m) {
		return m, nil
	}

	text := m.String()
	promotion := r.Promotion()
	switch {
	case r.san:
		text = engine.Algebraic(board, m, promotion)
	case engine.IsPromotion(board, m) && promotion.IsPromotion():
		text += string(promotion.Letter() + 'a' - 'A')
	}
	r.played = append(r.played, text)

	if r.verbose {
		if board.NextToMove() == chess.White {
			log.Printf("%d. %s", board.MoveNumber(), text)
		} else {
			log.Printf("%d... %s", board.MoveNumber(), text)
		}
	}
	return m, nil
}

// runPerft counts the move tree below board, consulting the cache when one
// is configured. Divide results are always searched, and their total is
// stored.
func runPerft(cfg *config.Config, board *chess.Board) (*PerftReport, error) {
	depth := cfg.Perft.Depth
	fen := engine.BoardToFEN(board)
	report := &PerftReport{Depth: depth}
	start := time.Now()

	count := func() uint64 {
		if cfg.Perft.Divide {
			report.Divide = engine.Divide(board, depth, cfg.Perft.Workers)
			return engine.Total(report.Divide)
		}
		return engine.Perft(board, depth)
	}

	if cfg.Perft.CacheDir == "" {
		report.Nodes = count()
		report.Elapsed = time.Since(start)
		return report, nil
	}

	store, err := perftstore.Open(cfg.Perft.CacheDir)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if cfg.Perft.Divide {
		report.Nodes = count()
		report.Elapsed = time.Since(start)
		err = store.Put(perftstore.Result{
			FEN:        fen,
			Depth:      depth,
			Nodes:      report.Nodes,
			Elapsed:    report.Elapsed,
			ComputedAt: time.Now(),
		})
		return report, err
	}

	report.Nodes, report.Cached, err = store.Count(fen, depth, count)
	report.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}
	if report.Cached && cfg.Verbosity > 0 {
		log.Printf("perft(%d) answered from cache %s", depth, cfg.Perft.CacheDir)
	}
	return report, nil
}

// listCache reports every result in the cache.
func listCache(cfg *config.Config) (*Report, error) {
	store, err := perftstore.Open(cfg.Perft.CacheDir)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	results, err := store.List()
	if err != nil {
		return nil, err
	}
	return &Report{Cached: results}, nil
}
