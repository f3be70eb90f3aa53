package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PromotionFunc chooses the piece a pawn promotes to. It is only called when
// a pawn reaches the last rank; a nil func, or one returning a kind that is
// not a valid promotion, promotes to a queen.
type PromotionFunc func() chess.Kind

// promotionKinds lists the pieces a pawn may become.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// IsPromotion reports whether m moves a pawn onto its last rank.
func IsPromotion(board *chess.Board, m chess.Move) bool {
	piece := board.At(m.From)
	return piece.Kind == chess.Pawn && m.To.Rank() == piece.Color.LastRank()
}

// applyMove plays a move already known to be legal. It updates every part
// of the board state except the game outcome, which the caller decides.
func applyMove(board *chess.Board, m chess.Move, promote PromotionFunc) {
	mover := board.Take(m.From)
	color := mover.Color
	captured := board.Take(m.To)
	board.Set(m.To, mover)

	// Squares whose occupant may now give check directly, and squares that
	// were emptied and may uncover a slider.
	placed := []chess.Position{m.To}
	vacated := []chess.Position{m.From}

	if mover.Kind == chess.Pawn && m.To.Rank() == color.LastRank() {
		kind := chess.Queen
		if promote != nil {
			if k := promote(); k.IsPromotion() {
				kind = k
			}
		}
		board.Set(m.To, chess.NewPiece(color, kind))
	}

	if df := m.To.File() - m.From.File(); mover.Kind == chess.King && abs(df) == 2 {
		side := chess.Kingside
		if df < 0 {
			side = chess.Queenside
		}
		rookFrom := chess.Pos(side.RookFile(), m.From.Rank())
		rookTo := chess.Pos(m.From.File()+sign(df), m.From.Rank())
		board.Set(rookTo, board.Take(rookFrom))
		placed = append(placed, rookTo)
		vacated = append(vacated, rookFrom)
	}

	if ep, ok := board.EnPassantSquare(); ok && mover.Kind == chess.Pawn && m.To == ep {
		victim := chess.Pos(m.To.File(), m.From.Rank())
		captured = board.Take(victim)
		vacated = append(vacated, victim)
	}

	updateCastlingRights(board, mover, m, captured)

	if mover.Kind == chess.Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		board.SetEnPassantSquare(chess.Pos(m.From.File(), m.From.Rank()+color.Forwards()))
	} else {
		board.ClearEnPassantSquare()
	}

	board.SetCheckingPieces(checksAfter(board, color, placed, vacated))

	board.SwitchTurn()
	if !captured.IsEmpty() || mover.Kind == chess.Pawn {
		board.ResetHalfmoveCounter()
	} else {
		board.IncrementHalfmoveCounter()
	}
}

// updateCastlingRights clears rights lost by moving the king, moving a rook
// off its corner or having a rook captured on its corner.
func updateCastlingRights(board *chess.Board, mover chess.Piece, m chess.Move, captured chess.Piece) {
	switch mover.Kind {
	case chess.King:
		board.ClearCastlingRights(mover.Color)
	case chess.Rook:
		clearRookRight(board, mover.Color, m.From)
	}
	if captured.Kind == chess.Rook {
		clearRookRight(board, captured.Color, m.To)
	}
}

func clearRookRight(board *chess.Board, color chess.Color, corner chess.Position) {
	if corner.Rank() != color.HomeRank() {
		return
	}
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if corner.File() == side.RookFile() {
			board.ClearCastlingRight(color, side)
		}
	}
}

// checksAfter counts the pieces of mover attacking the enemy king once the
// move is on the board. Only moved pieces and sliders behind a vacated
// square can be new attackers, because the enemy king was safe before.
func checksAfter(board *chess.Board, mover chess.Color, placed, vacated []chess.Position) int {
	var attackers []chess.Position

	for _, pos := range placed {
		if givesCheck(board, pos, board.At(pos)) {
			attackers = append(attackers, pos)
		}
	}
	for _, pos := range vacated {
		p, ok := positionHidesCheck(board, pos, mover.Other())
		if ok && !slices.Contains(attackers, p.attacker) {
			attackers = append(attackers, p.attacker)
		}
	}

	if len(attackers) > 2 {
		panic("engine: move produced more than two checking pieces")
	}
	return len(attackers)
}
