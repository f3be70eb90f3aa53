// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Color represents the color of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a color.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Forwards returns the rank delta a pawn of this color advances by.
// Rank index 0 is the eighth rank, so White moves towards lower indices.
func (c Color) Forwards() int {
	if c == White {
		return -1
	}
	return 1
}

// Backwards returns the rank delta opposite to Forwards.
func (c Color) Backwards() int {
	return -c.Forwards()
}

// HomeRank returns the rank index of the color's back rank.
func (c Color) HomeRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRank returns the rank index pawns of this color start on.
func (c Color) PawnRank() int {
	return c.HomeRank() + c.Forwards()
}

// LastRank returns the rank index on which pawns of this color promote.
func (c Color) LastRank() int {
	return c.Other().HomeRank()
}

// Letter returns the FEN side-to-move letter.
func (c Color) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Kind represents a chess piece type. The zero value is Empty.
type Kind int

const (
	Empty Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotion reports whether a pawn may promote to this kind.
func (k Kind) IsPromotion() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// Piece is a colored piece. The zero value is an empty square.
type Piece struct {
	Color Color
	Kind  Kind
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// NewPiece creates a piece of the given color and kind.
func NewPiece(color Color, kind Kind) Piece {
	return Piece{Color: color, Kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty returns true if no piece occupies the square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether p is a piece of the given color and kind.
func (p Piece) Is(color Color, kind Kind) bool {
	return p.Kind == kind && p.Color == color
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Color == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

// ParsePiece parses a FEN piece letter; uppercase letters are White.
func ParsePiece(c byte) (Piece, error) {
	color := White
	lower := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else if c >= 'A' && c <= 'Z' {
		lower = c + 'a' - 'A'
	}

	var kind Kind
	switch lower {
	case 'p':
		kind = Pawn
	case 'r':
		kind = Rook
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return NoPiece, &errors.ParseError{
			Err:      errors.ErrUnknownPiece,
			Expected: "one of pnbrqk",
			Got:      fmt.Sprintf("%q", c),
		}
	}
	return NewPiece(color, kind), nil
}

// GameStatus distinguishes ongoing and finished games.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Draw
)

// GameState is the outcome of the latest move. Winner is only meaningful
// for Checkmate.
type GameState struct {
	Status GameStatus
	Winner Color
}

// Terminal reports whether no further moves may be played.
func (s GameState) Terminal() bool {
	return s.Status != Ongoing
}

// String returns a human readable state.
func (s GameState) String() string {
	switch s.Status {
	case Checkmate:
		return "checkmate, " + s.Winner.String() + " wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
