package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// direction is a single step in file and rank.
type direction struct {
	df, dr int
}

// reverse returns the opposite direction.
func (d direction) reverse() direction {
	return direction{-d.df, -d.dr}
}

// straight reports whether d runs along a rank or file.
func (d direction) straight() bool {
	return d.df == 0 || d.dr == 0
}

// parallel reports whether the step from -> to lies on the line through d.
func (d direction) parallel(from, to chess.Position) bool {
	dx := to.File() - from.File()
	dy := to.Rank() - from.Rank()
	return dx*d.dr-dy*d.df == 0
}

var (
	rookDirections   = []direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirections = []direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenDirections  = []direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	knightOffsets    = []direction{{2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}, {1, 2}, {2, 1}}
	kingOffsets      = queenDirections
)

// slidesAlong reports whether a piece of kind k attacks along d.
func slidesAlong(k chess.Kind, d direction) bool {
	switch k {
	case chess.Queen:
		return true
	case chess.Rook:
		return d.straight()
	case chess.Bishop:
		return !d.straight()
	}
	return false
}

// threatenedAt reports whether a piece of the given color standing on pos
// would be attacked by the opposing side. Squares in empty are looked
// through as if vacant; squares in occupied block rays and never hold an
// attacker. Together they let callers ask about hypothetical positions
// without mutating the board.
func threatenedAt(board *chess.Board, pos chess.Position, empty, occupied []chess.Position, color chess.Color) bool {
	enemy := color.Other()

	// pieceAt ignores hypothetically moved squares.
	pieceAt := func(p chess.Position) chess.Piece {
		if slices.Contains(empty, p) || slices.Contains(occupied, p) {
			return chess.NoPiece
		}
		return board.At(p)
	}

	for _, o := range knightOffsets {
		if p, ok := pos.Offset(o.df, o.dr); ok && pieceAt(p).Is(enemy, chess.Knight) {
			return true
		}
	}

	for _, d := range queenDirections {
		for p, ok := pos.Offset(d.df, d.dr); ok; p, ok = p.Offset(d.df, d.dr) {
			if slices.Contains(empty, p) {
				continue
			}
			if slices.Contains(occupied, p) {
				break
			}
			piece := board.At(p)
			if piece.IsEmpty() {
				continue
			}
			if piece.Color == enemy && slidesAlong(piece.Kind, d) {
				return true
			}
			break
		}
	}

	// An enemy pawn attacks pos from one rank ahead of us.
	for _, df := range []int{-1, 1} {
		if p, ok := pos.Offset(df, color.Forwards()); ok && pieceAt(p).Is(enemy, chess.Pawn) {
			return true
		}
	}

	for _, o := range kingOffsets {
		if p, ok := pos.Offset(o.df, o.dr); ok && pieceAt(p).Is(enemy, chess.King) {
			return true
		}
	}

	return false
}

// firstPiece walks from pos in direction d and returns the first occupied
// square, if any.
func firstPiece(board *chess.Board, pos chess.Position, d direction) (chess.Piece, chess.Position, bool) {
	for p, ok := pos.Offset(d.df, d.dr); ok; p, ok = p.Offset(d.df, d.dr) {
		if piece := board.At(p); !piece.IsEmpty() {
			return piece, p, true
		}
	}
	return chess.NoPiece, chess.Position{}, false
}

// pin describes a line through a square that connects a king with an enemy
// slider.
type pin struct {
	dir      direction // from the square towards the attacker
	attacker chess.Position
}

// positionHidesCheck reports whether pos lies between color's king and an
// enemy slider with nothing else in the way. A piece of color on pos is then
// pinned along pin.dir; if pos is empty, color's king is in check along it.
func positionHidesCheck(board *chess.Board, pos chess.Position, color chess.Color) (pin, bool) {
	for _, d := range queenDirections {
		piece, _, found := firstPiece(board, pos, d)
		if !found || !piece.Is(color, chess.King) {
			continue
		}
		back := d.reverse()
		attacker, at, found := firstPiece(board, pos, back)
		if found && attacker.Color != color && slidesAlong(attacker.Kind, back) {
			return pin{dir: back, attacker: at}, true
		}
		// Only one direction can lead to the king.
		return pin{}, false
	}
	return pin{}, false
}

// givesCheck reports whether piece, standing on at, attacks the enemy king.
func givesCheck(board *chess.Board, at chess.Position, piece chess.Piece) bool {
	enemyKing := chess.NewPiece(piece.Color.Other(), chess.King)

	switch piece.Kind {
	case chess.Pawn:
		for _, df := range []int{-1, 1} {
			if p, ok := at.Offset(df, piece.Color.Forwards()); ok && board.At(p) == enemyKing {
				return true
			}
		}
	case chess.Knight:
		for _, o := range knightOffsets {
			if p, ok := at.Offset(o.df, o.dr); ok && board.At(p) == enemyKing {
				return true
			}
		}
	case chess.Rook, chess.Bishop, chess.Queen:
		for _, d := range queenDirections {
			if !slidesAlong(piece.Kind, d) {
				continue
			}
			if target, _, found := firstPiece(board, at, d); found && target == enemyKing {
				return true
			}
		}
	}
	// A king never gives check.
	return false
}

// countCheckers scans the whole board for pieces attacking color's king.
func countCheckers(board *chess.Board, color chess.Color) int {
	n := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			pos := chess.Pos(file, rank)
			piece := board.At(pos)
			if !piece.IsEmpty() && piece.Color != color && givesCheck(board, pos, piece) {
				n++
			}
		}
	}
	return n
}

// IsInCheck reports whether color's king is attacked. It scans the board
// rather than trusting the board's checking piece count.
func IsInCheck(board *chess.Board, color chess.Color) bool {
	king, ok := board.KingPosition(color)
	if !ok {
		return false
	}
	return threatenedAt(board, king, nil, nil, color)
}
