package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FiftyMoveLimit is the halfmove count at which the game is drawn.
const FiftyMoveLimit = 100

// Game owns a board and enforces the rules as moves are played on it.
// A Game is not safe for concurrent use; see SyncGame.
type Game struct {
	board chess.Board
	state chess.GameState
}

// NewGame starts a game from a copy of board. A position that is already
// checkmate, stalemate or past the fifty-move limit starts out finished.
func NewGame(board *chess.Board) *Game {
	g := &Game{board: *board}
	g.state = classify(&g.board)
	return g
}

// NewDefaultGame starts a game from the standard starting position.
func NewDefaultGame() *Game {
	return NewGame(NewInitialBoard())
}

// NewGameFromFEN starts a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGame(board), nil
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// State returns the outcome of the most recent move.
func (g *Game) State() chess.GameState {
	return g.state
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return BoardToFEN(&g.board)
}

// MakeMove validates and plays m for the side to move. Rejected moves leave
// the game untouched and return an *errors.IllegalMoveError.
func (g *Game) MakeMove(m chess.Move, promotion PromotionFunc) (chess.GameState, error) {
	if g.state.Terminal() {
		return g.state, &errors.IllegalMoveError{Reason: errors.ErrGameOver, Move: m.String()}
	}

	piece := g.board.At(m.From)
	switch {
	case piece.IsEmpty():
		return g.state, &errors.IllegalMoveError{Reason: errors.ErrNoPieceToMove, Move: m.String()}
	case piece.Color != g.board.NextToMove():
		return g.state, &errors.IllegalMoveError{Reason: errors.ErrOtherPlayersTurn, Move: m.String()}
	case !CanMove(&g.board, m):
		return g.state, &errors.IllegalMoveError{Reason: errors.ErrDisallowedMovement, Move: m.String()}
	}

	applyMove(&g.board, m, promotion)
	g.state = classify(&g.board)
	return g.state, nil
}

// LegalMoves lists every legal move for the side to move. A promotion is
// listed once; the piece is chosen when the move is made.
func (g *Game) LegalMoves() []chess.Move {
	return LegalMoves(&g.board)
}

// LegalMoves lists every legal move for the side to move on board.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	forEachPiece(board, board.NextToMove(), func(from chess.Position) bool {
		for to := range Destinations(board, from) {
			moves = append(moves, chess.NewMove(from, to))
		}
		return true
	})
	return moves
}

// forEachPiece calls fn with the square of each piece of color until fn
// returns false.
func forEachPiece(board *chess.Board, color chess.Color, fn func(chess.Position) bool) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			pos := chess.Pos(file, rank)
			if piece := board.At(pos); !piece.IsEmpty() && piece.Color == color {
				if !fn(pos) {
					return
				}
			}
		}
	}
}

// HasLegalMoves reports whether color has at least one legal move.
func HasLegalMoves(board *chess.Board, color chess.Color) bool {
	found := false
	forEachPiece(board, color, func(from chess.Position) bool {
		for range Destinations(board, from) {
			found = true
			return false
		}
		return true
	})
	return found
}

// classify decides the outcome for the side to move.
func classify(board *chess.Board) chess.GameState {
	side := board.NextToMove()
	if !HasLegalMoves(board, side) {
		if IsInCheck(board, side) {
			return chess.GameState{Status: chess.Checkmate, Winner: side.Other()}
		}
		return chess.GameState{Status: chess.Draw}
	}
	if board.HalfmoveCounter() >= FiftyMoveLimit {
		return chess.GameState{Status: chess.Draw}
	}
	return chess.GameState{Status: chess.Ongoing}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	side := board.NextToMove()
	return IsInCheck(board, side) && !HasLegalMoves(board, side)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	side := board.NextToMove()
	return !IsInCheck(board, side) && !HasLegalMoves(board, side)
}
