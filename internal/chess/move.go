package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Position identifies a square. Rank 0 is the eighth rank as written in
// algebraic notation; rank 7 is the first.
type Position struct {
	file uint8
	rank uint8
}

// NewPosition returns the position at file and rank, or false if either is
// outside 0..7.
func NewPosition(file, rank int) (Position, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Position{}, false
	}
	return Position{file: uint8(file), rank: uint8(rank)}, true
}

// Pos returns the position at file and rank without range checks. Callers
// must have already established 0 <= file, rank < 8.
func Pos(file, rank int) Position {
	return Position{file: uint8(file), rank: uint8(rank)}
}

// File returns the file index, 0 for the a-file.
func (p Position) File() int {
	return int(p.file)
}

// Rank returns the rank index, 0 for the eighth rank.
func (p Position) Rank() int {
	return int(p.rank)
}

// Offset returns the position shifted by df files and dr ranks, or false if
// that falls off the board.
func (p Position) Offset(df, dr int) (Position, bool) {
	return NewPosition(int(p.file)+df, int(p.rank)+dr)
}

// String returns the algebraic square name, e.g. "e4".
func (p Position) String() string {
	return string([]byte{'a' + p.file, '8' - p.rank})
}

// ParsePosition parses an algebraic square name such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) < 2 {
		return Position{}, notationError(len(s), "more data", "end of input")
	}
	if len(s) > 2 {
		return Position{}, notationError(2, "end of input", s[2:])
	}
	return parseSquare(s, 0)
}

// parseSquare parses the two characters of s starting at offset.
func parseSquare(s string, offset int) (Position, error) {
	f, r := s[offset], s[offset+1]
	if f < 'a' || f > 'h' {
		return Position{}, notationError(offset, "a to h", string(f))
	}
	if r < '1' || r > '8' {
		return Position{}, notationError(offset+1, "1 to 8", string(r))
	}
	return Pos(int(f-'a'), int('8'-r)), nil
}

func notationError(column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// Move is a source-destination square pair. Promotion, castling and en
// passant are inferred from the board when the move is applied.
type Move struct {
	From Position
	To   Position
}

// NewMove creates a move between two squares.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// String returns the coordinate notation of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a move in coordinate notation: exactly four characters,
// two squares, e.g. "e2e4".
func ParseMove(s string) (Move, error) {
	switch {
	case len(s) < 4:
		return Move{}, notationError(len(s), "more data", "end of input")
	case len(s) > 4:
		return Move{}, notationError(4, "end of input", s[4:])
	}
	from, err := parseSquare(s, 0)
	if err != nil {
		return Move{}, err
	}
	to, err := parseSquare(s, 2)
	if err != nil {
		return Move{}, err
	}
	return NewMove(from, to), nil
}

// MustParseMove is like ParseMove but panics on malformed input. It is
// intended for literals in tests and tables.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoveWithPromotion parses coordinate notation optionally followed by a
// promotion letter, e.g. "e7e8n". The returned kind is Empty when no letter
// is given.
func ParseMoveWithPromotion(s string) (Move, Kind, error) {
	if len(s) != 5 {
		m, err := ParseMove(s)
		return m, Empty, err
	}
	m, err := ParseMove(s[:4])
	if err != nil {
		return Move{}, Empty, err
	}
	piece, err := ParsePiece(s[4])
	if err != nil || !piece.Kind.IsPromotion() {
		return Move{}, Empty, notationError(4, "one of q r b n", string(s[4]))
	}
	return m, piece.Kind, nil
}
