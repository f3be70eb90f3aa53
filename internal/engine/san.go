package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Algebraic renders a legal move in standard algebraic notation, e.g.
// "Nbd7", "exd6", "e8=Q+" or "O-O". promotion is ignored unless the move
// promotes; Empty means a queen. Moves from an empty square fall back to
// coordinate notation.
func Algebraic(board *chess.Board, m chess.Move, promotion chess.Kind) string {
	piece := board.At(m.From)
	if piece.IsEmpty() {
		return m.String()
	}

	var sb strings.Builder
	df := m.To.File() - m.From.File()

	switch {
	case piece.Kind == chess.King && df == 2:
		sb.WriteString("O-O")
	case piece.Kind == chess.King && df == -2:
		sb.WriteString("O-O-O")
	case piece.Kind == chess.Pawn:
		// Pawns only change file when capturing, en passant included.
		if df != 0 {
			sb.WriteByte(byte('a' + m.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if IsPromotion(board, m) {
			if !promotion.IsPromotion() {
				promotion = chess.Queen
			}
			sb.WriteByte('=')
			sb.WriteByte(promotion.Letter())
		}
	default:
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(board, m))
		if !board.At(m.To).IsEmpty() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	child := *board
	applyMove(&child, m, func() chess.Kind { return promotion })
	if child.InCheck() {
		if HasLegalMoves(&child, child.NextToMove()) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell m apart
// from moves of identical pieces to the same square.
func disambiguation(board *chess.Board, m chess.Move) string {
	piece := board.At(m.From)
	sameFile, sameRank, others := false, false, false

	forEachPiece(board, piece.Color, func(from chess.Position) bool {
		if from == m.From || board.At(from) != piece || !CanMove(board, chess.NewMove(from, m.To)) {
			return true
		}
		others = true
		if from.File() == m.From.File() {
			sameFile = true
		}
		if from.Rank() == m.From.Rank() {
			sameRank = true
		}
		return true
	})

	square := m.From.String()
	switch {
	case !others:
		return ""
	case !sameFile:
		return square[:1]
	case !sameRank:
		return square[1:]
	}
	return square
}
