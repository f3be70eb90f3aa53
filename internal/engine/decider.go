package engine

import (
	stderrors "errors"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Decider supplies moves for whoever is to move: a human front end, a
// remote peer or a script. The engine never chooses moves itself.
type Decider interface {
	// NextMove returns the move to play on board, which is a copy.
	NextMove(board *chess.Board) (chess.Move, error)

	// Promotion is asked for the promotion piece when NextMove's move
	// promotes a pawn.
	Promotion() chess.Kind
}

// Retrier is implemented by deciders that want another attempt after an
// illegal move instead of ending the game.
type Retrier interface {
	Rejected(m chess.Move, err error)
}

// Run plays a game from board, asking d for every move until the game ends
// or d fails. The final state is returned in either case.
func Run(d Decider, board *chess.Board) (chess.GameState, error) {
	return NewGame(board).Play(d)
}

// Play asks d for moves until the game ends. An illegal move ends play with
// an error unless d implements Retrier. Errors are *errors.GameError values
// carrying the ply number.
func (g *Game) Play(d Decider) (chess.GameState, error) {
	retrier, canRetry := d.(Retrier)

	for ply := 1; !g.state.Terminal(); {
		m, err := d.NextMove(g.Board())
		if err != nil {
			return g.state, &errors.GameError{Err: err, Ply: ply}
		}

		if _, err := g.MakeMove(m, d.Promotion); err != nil {
			if canRetry && stderrors.Is(err, errors.ErrIllegalMove) {
				retrier.Rejected(m, err)
				continue
			}
			return g.state, &errors.GameError{Err: err, Ply: ply, MoveText: m.String()}
		}
		ply++
	}
	return g.state, nil
}

// ScriptedDecider plays a fixed list of moves in coordinate notation, with
// an optional promotion letter ("e7e8n"). Once the script runs out NextMove
// returns io.EOF.
type ScriptedDecider struct {
	moves     []string
	next      int
	promotion chess.Kind
}

// NewScriptedDecider creates a decider that plays moves in order.
func NewScriptedDecider(moves ...string) *ScriptedDecider {
	return &ScriptedDecider{moves: moves}
}

// NextMove parses and returns the next scripted move.
func (s *ScriptedDecider) NextMove(*chess.Board) (chess.Move, error) {
	if s.next >= len(s.moves) {
		return chess.Move{}, io.EOF
	}
	text := s.moves[s.next]
	s.next++

	m, kind, err := chess.ParseMoveWithPromotion(text)
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move %q", text)
	}
	s.promotion = kind
	return m, nil
}

// Promotion returns the piece named by the last move, if any.
func (s *ScriptedDecider) Promotion() chess.Kind {
	return s.promotion
}

// Played returns how many scripted moves have been handed out.
func (s *ScriptedDecider) Played() int {
	return s.next
}
