package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DrawRuleResult describes the draw conditions that hold in a position.
// InsufficientMaterial is informational and never ends a game.
type DrawRuleResult struct {
	// FiftyMoveRule is true once 50 moves (100 halfmoves) have passed
	// without a pawn move or capture.
	FiftyMoveRule bool `json:"fifty_move_rule"`

	// Stalemate is true if the side to move has no legal move and is not
	// in check.
	Stalemate bool `json:"stalemate"`

	// InsufficientMaterial is true if neither side can possibly mate.
	InsufficientMaterial bool `json:"insufficient_material"`
}

// AnalyzeDrawRules reports which draw conditions hold on board.
func AnalyzeDrawRules(board *chess.Board) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        board.HalfmoveCounter() >= FiftyMoveLimit,
		Stalemate:            IsStalemate(board),
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			pos := chess.Pos(file, rank)
			piece := board.At(pos)

			// Kings don't count for material
			if piece.IsEmpty() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}

			if piece.Color == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(pos)
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(pos)
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare reports whether pos is a light square. a1 is dark.
func isLightSquare(pos chess.Position) bool {
	return (pos.File()+pos.Rank())%2 == 0
}
