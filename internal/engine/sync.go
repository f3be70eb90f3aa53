package engine

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SyncGame serializes access to a Game so that several goroutines, such as
// connection handlers for two players, can share it.
type SyncGame struct {
	mu   sync.Mutex
	game *Game
}

// NewSyncGame wraps g. The caller must not use g directly afterwards.
func NewSyncGame(g *Game) *SyncGame {
	return &SyncGame{game: g}
}

// MakeMove plays m under the lock.
func (s *SyncGame) MakeMove(m chess.Move, promotion PromotionFunc) (chess.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MakeMove(m, promotion)
}

// Board returns a copy of the current position.
func (s *SyncGame) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board()
}

// State returns the current game state.
func (s *SyncGame) State() chess.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// FEN returns the current position as a FEN string.
func (s *SyncGame) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.FEN()
}

// Do runs fn with exclusive access to the game.
func (s *SyncGame) Do(fn func(g *Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}
