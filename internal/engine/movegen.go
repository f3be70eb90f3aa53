package engine

import (
	"iter"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Destinations returns the legal destination squares of the piece on from.
// The sequence is lazy and reads the board when iterated, so it must not be
// consumed after the board has changed. An empty square yields nothing.
func Destinations(board *chess.Board, from chess.Position) iter.Seq[chess.Position] {
	switch board.At(from).Kind {
	case chess.Pawn:
		return pawnDestinations(board, from)
	case chess.Knight:
		return knightDestinations(board, from)
	case chess.Bishop:
		return slidingDestinations(board, from, bishopDirections)
	case chess.Rook:
		return slidingDestinations(board, from, rookDirections)
	case chess.Queen:
		return slidingDestinations(board, from, queenDirections)
	case chess.King:
		return kingDestinations(board, from)
	}
	return func(func(chess.Position) bool) {}
}

// CanMove reports whether the piece on m.From may legally move to m.To.
func CanMove(board *chess.Board, m chess.Move) bool {
	for to := range Destinations(board, m.From) {
		if to == m.To {
			return true
		}
	}
	return false
}

// legality holds what the current position demands of a non-king move.
type legality struct {
	board  *chess.Board
	from   chess.Position
	color  chess.Color
	pinned bool
	pin    pin
}

func newLegality(board *chess.Board, from chess.Position) legality {
	color := board.At(from).Color
	p, pinned := positionHidesCheck(board, from, color)
	return legality{board: board, from: from, color: color, pinned: pinned, pin: p}
}

// allows reports whether moving to to leaves the mover's king safe.
func (l legality) allows(to chess.Position) bool {
	if l.pinned && !l.pin.dir.parallel(l.from, to) {
		return false
	}
	if !l.board.InCheck() {
		return true
	}
	king, ok := l.board.KingPosition(l.color)
	if !ok {
		return true
	}
	return !threatenedAt(l.board, king, []chess.Position{l.from}, []chess.Position{to}, l.color)
}

// allowsEnPassant checks an en passant capture landing on to. Two pieces
// leave the capturing rank, so the pin test alone is not enough.
func (l legality) allowsEnPassant(to chess.Position) bool {
	king, ok := l.board.KingPosition(l.color)
	if !ok {
		return true
	}
	victim := chess.Pos(to.File(), l.from.Rank())
	return !threatenedAt(l.board, king, []chess.Position{l.from, victim}, []chess.Position{to}, l.color)
}

func pawnDestinations(board *chess.Board, from chess.Position) iter.Seq[chess.Position] {
	return func(yield func(chess.Position) bool) {
		if board.InDoubleCheck() {
			return
		}
		l := newLegality(board, from)
		forwards := l.color.Forwards()

		if one, ok := from.Offset(0, forwards); ok && board.At(one).IsEmpty() {
			if l.allows(one) && !yield(one) {
				return
			}
			if from.Rank() == l.color.PawnRank() {
				two := chess.Pos(from.File(), from.Rank()+2*forwards)
				if board.At(two).IsEmpty() && l.allows(two) && !yield(two) {
					return
				}
			}
		}

		ep, hasEnPassant := board.EnPassantSquare()
		for _, df := range []int{-1, 1} {
			to, ok := from.Offset(df, forwards)
			if !ok {
				continue
			}
			target := board.At(to)
			switch {
			case !target.IsEmpty() && target.Color != l.color:
				if !l.allows(to) {
					continue
				}
			case hasEnPassant && to == ep:
				if !l.allowsEnPassant(to) {
					continue
				}
			default:
				continue
			}
			if !yield(to) {
				return
			}
		}
	}
}

func knightDestinations(board *chess.Board, from chess.Position) iter.Seq[chess.Position] {
	return func(yield func(chess.Position) bool) {
		if board.InDoubleCheck() {
			return
		}
		l := newLegality(board, from)
		for _, o := range knightOffsets {
			to, ok := from.Offset(o.df, o.dr)
			if !ok {
				continue
			}
			if target := board.At(to); !target.IsEmpty() && target.Color == l.color {
				continue
			}
			if l.allows(to) && !yield(to) {
				return
			}
		}
	}
}

func slidingDestinations(board *chess.Board, from chess.Position, dirs []direction) iter.Seq[chess.Position] {
	return func(yield func(chess.Position) bool) {
		if board.InDoubleCheck() {
			return
		}
		l := newLegality(board, from)
		for _, d := range dirs {
			// A pinned slider may only travel along the pin.
			if l.pinned && d != l.pin.dir && d != l.pin.dir.reverse() {
				continue
			}
			for to, ok := from.Offset(d.df, d.dr); ok; to, ok = to.Offset(d.df, d.dr) {
				target := board.At(to)
				if !target.IsEmpty() && target.Color == l.color {
					break
				}
				if l.allows(to) && !yield(to) {
					return
				}
				if !target.IsEmpty() {
					break
				}
			}
		}
	}
}

func kingDestinations(board *chess.Board, from chess.Position) iter.Seq[chess.Position] {
	return func(yield func(chess.Position) bool) {
		color := board.At(from).Color
		vacated := []chess.Position{from}

		for _, o := range kingOffsets {
			to, ok := from.Offset(o.df, o.dr)
			if !ok {
				continue
			}
			if target := board.At(to); !target.IsEmpty() && target.Color == color {
				continue
			}
			if !threatenedAt(board, to, vacated, nil, color) && !yield(to) {
				return
			}
		}

		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if to, ok := castlingDestination(board, from, color, side); ok && !yield(to) {
				return
			}
		}
	}
}

// castlingDestination returns the king's landing square if color may castle
// on side right now.
func castlingDestination(board *chess.Board, from chess.Position, color chess.Color, side chess.CastleSide) (chess.Position, bool) {
	home := color.HomeRank()
	if !board.CanCastle(color, side) || from != chess.Pos(chess.KingFile, home) {
		return chess.Position{}, false
	}
	rookFile := side.RookFile()
	if !board.At(chess.Pos(rookFile, home)).Is(color, chess.Rook) {
		return chess.Position{}, false
	}

	step := sign(rookFile - chess.KingFile)
	for file := chess.KingFile + step; file != rookFile; file += step {
		if !board.At(chess.Pos(file, home)).IsEmpty() {
			return chess.Position{}, false
		}
	}

	// Neither the king's square nor the two it crosses may be attacked.
	for i := 0; i <= 2; i++ {
		if threatenedAt(board, chess.Pos(chess.KingFile+i*step, home), nil, nil, color) {
			return chess.Position{}, false
		}
	}
	return chess.Pos(chess.KingFile+2*step, home), true
}
