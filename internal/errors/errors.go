// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOtherPlayersTurn indicates an attempt to move the opponent's piece.
	ErrOtherPlayersTurn = errors.New("other player's turn")

	// ErrNoPieceToMove indicates an empty source square.
	ErrNoPieceToMove = errors.New("no piece to move")

	// ErrDisallowedMovement indicates a destination the piece cannot legally reach.
	ErrDisallowedMovement = errors.New("disallowed movement")

	// ErrGameOver indicates a move attempted after checkmate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidNotation indicates a malformed square or coordinate move.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrUnknownPiece indicates a piece letter outside pnbrqk.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrInvalidGameState indicates a position that cannot occur in a game,
	// such as one missing a king.
	ErrInvalidGameState = errors.New("invalid game state")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IllegalMoveError reports why a move was rejected. It matches both
// ErrIllegalMove and its Reason with errors.Is().
type IllegalMoveError struct {
	Reason error  // One of ErrOtherPlayersTurn, ErrNoPieceToMove, ErrDisallowedMovement, ErrGameOver
	Move   string // Coordinate notation of the rejected move
}

// Error returns e.g. `illegal move "e2e5": disallowed movement`.
func (e *IllegalMoveError) Error() string {
	if e.Move == "" {
		return fmt.Sprintf("%v: %v", ErrIllegalMove, e.Reason)
	}
	return fmt.Sprintf("%v %q: %v", ErrIllegalMove, e.Move, e.Reason)
}

// Is reports whether target is ErrIllegalMove.
func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// Unwrap returns the reason, so errors.Is(err, ErrDisallowedMovement) works.
func (e *IllegalMoveError) Unwrap() error {
	return e.Reason
}

// GameError wraps errors with game context, including the ply and move
// text. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply at which the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "game error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for FEN, square, move and piece parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // FEN field name, empty for notation errors
	Column   int    // 0-based character index within the field or string
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	loc := fmt.Sprintf("column %d", e.Column)
	if e.Field != "" {
		loc = fmt.Sprintf("%s field, %s", e.Field, loc)
	}
	parts = append(parts, loc)

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
	}
	return "parse error: " + strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
