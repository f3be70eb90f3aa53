package chess

import (
	"errors"
	"testing"

	cerrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		file, rank int
		ok         bool
	}{
		{0, 0, true},
		{7, 7, true},
		{-1, 0, false},
		{0, 8, false},
		{8, 3, false},
		{3, -2, false},
	}
	for _, tt := range tests {
		p, ok := NewPosition(tt.file, tt.rank)
		if ok != tt.ok {
			t.Errorf("NewPosition(%d, %d) ok = %v; want %v", tt.file, tt.rank, ok, tt.ok)
		}
		if ok && (p.File() != tt.file || p.Rank() != tt.rank) {
			t.Errorf("NewPosition(%d, %d) = (%d, %d)", tt.file, tt.rank, p.File(), p.Rank())
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input      string
		file, rank int
	}{
		{"a1", 0, 7},
		{"a8", 0, 0},
		{"h1", 7, 7},
		{"e4", 4, 4},
		{"d5", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePosition(tt.input)
			if err != nil {
				t.Fatalf("ParsePosition(%q) error: %v", tt.input, err)
			}
			if p.File() != tt.file || p.Rank() != tt.rank {
				t.Errorf("ParsePosition(%q) = (%d, %d); want (%d, %d)", tt.input, p.File(), p.Rank(), tt.file, tt.rank)
			}
			if got := p.String(); got != tt.input {
				t.Errorf("String() = %q; want %q", got, tt.input)
			}
		})
	}
}

func TestPositionOffset(t *testing.T) {
	e4 := Pos(4, 4)
	if p, ok := e4.Offset(1, -1); !ok || p.String() != "f5" {
		t.Errorf("e4.Offset(1, -1) = %v, %v; want f5", p, ok)
	}
	if _, ok := Pos(7, 0).Offset(1, 0); ok {
		t.Error("h8.Offset(1, 0) stayed on the board")
	}
}

// TestMoveRoundTrip checks every square pair survives formatting and
// parsing.
func TestMoveRoundTrip(t *testing.T) {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			m := NewMove(Pos(from%8, from/8), Pos(to%8, to/8))
			got, err := ParseMove(m.String())
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", m.String(), err)
			}
			if got != m {
				t.Fatalf("ParseMove(%q) = %v; want %v", m.String(), got, m)
			}
		}
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		input  string
		column int
	}{
		{"", 0},
		{"e2", 2},
		{"e2e", 3},
		{"e2e4q", 4},
		{"e2e4e5", 4},
		{"i2e4", 0},
		{"e9e4", 1},
		{"e2z4", 2},
		{"e2e0", 3},
		{"E2E4", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMove(tt.input)
			if err == nil {
				t.Fatalf("ParseMove(%q) succeeded; want error", tt.input)
			}
			if !errors.Is(err, cerrors.ErrInvalidNotation) {
				t.Errorf("error = %v; want ErrInvalidNotation", err)
			}
			var pe *cerrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if pe.Column != tt.column {
				t.Errorf("Column = %d; want %d", pe.Column, tt.column)
			}
		})
	}
}

func TestParseMoveWithPromotion(t *testing.T) {
	tests := []struct {
		input   string
		kind    Kind
		wantErr bool
	}{
		{"e2e4", Empty, false},
		{"e7e8q", Queen, false},
		{"e7e8N", Knight, false},
		{"a2a1r", Rook, false},
		{"b7a8b", Bishop, false},
		{"e7e8k", Empty, true},
		{"e7e8p", Empty, true},
		{"e7e8x", Empty, true},
		{"e7e8qq", Empty, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, kind, err := ParseMoveWithPromotion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMoveWithPromotion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if kind != tt.kind {
				t.Errorf("kind = %v; want %v", kind, tt.kind)
			}
			if m.String() != tt.input[:4] {
				t.Errorf("move = %v; want %s", m, tt.input[:4])
			}
		})
	}
}
