package engine

import (
	"cmp"
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// ply is a fully specified move: promotions carry their piece.
type ply struct {
	move      chess.Move
	promotion chess.Kind
}

func (p ply) String() string {
	if p.promotion == chess.Empty {
		return p.move.String()
	}
	return p.move.String() + string(p.promotion.Letter()+'a'-'A')
}

// plies expands the legal moves on board, listing each promotion once per
// promotion piece.
func plies(board *chess.Board) []ply {
	var out []ply
	for _, m := range LegalMoves(board) {
		if !IsPromotion(board, m) {
			out = append(out, ply{move: m})
			continue
		}
		for _, k := range promotionKinds {
			out = append(out, ply{move: m, promotion: k})
		}
	}
	return out
}

// play returns the position after p.
func (p ply) play(board *chess.Board) chess.Board {
	child := *board
	kind := p.promotion
	applyMove(&child, p.move, func() chess.Kind { return kind })
	return child
}

// Perft counts the leaf nodes of the legal move tree depth plies deep.
// Promotions count once per promotion piece. Game-ending rules other than
// running out of moves are not applied.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := plies(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, p := range moves {
		child := p.play(board)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Divide splits Perft(board, depth) by root move, searching each subtree on
// its own worker. Entries are sorted by move text.
func Divide(board *chess.Board, depth, workers int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	roots := plies(board)

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index:     item.Index,
			Move:      item.Move,
			Promotion: item.Promotion,
			Nodes:     Perft(&item.Board, item.Depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(roots)+1))
	pool.Start()

	for i, p := range roots {
		pool.Submit(worker.WorkItem{
			Index:     i,
			Board:     p.play(board),
			Move:      p.move,
			Promotion: p.promotion,
			Depth:     depth - 1,
		})
	}
	go pool.Close()

	entries := make([]DivideEntry, 0, len(roots))
	for r := range pool.Results() {
		entries = append(entries, DivideEntry{
			Move:  ply{move: r.Move, promotion: r.Promotion}.String(),
			Nodes: r.Nodes,
		})
	}
	slices.SortFunc(entries, func(a, b DivideEntry) int {
		return cmp.Compare(a.Move, b.Move)
	})
	return entries
}

// Total sums the node counts of entries.
func Total(entries []DivideEntry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}
