// Package engine implements the rules of chess on top of the board model:
// FEN encoding, legal move generation, move application and game outcome.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names, used to identify the offending field in parse errors.
var fenFields = []string{"placement", "side to move", "castling", "en passant", "halfmove clock", "move number"}

func fenError(field string, column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    field,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// NewBoardFromFEN creates a board from a FEN string. All six fields are
// required. The resulting position must hold exactly one king per side, and
// the side that just moved must not be left in check.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < len(fenFields) {
		return nil, fenError(fenFields[len(parts)], 0, "a value", "end of input")
	}
	if len(parts) > len(fenFields) {
		return nil, fenError(fenFields[len(fenFields)-1], len(parts[5]), "end of input", fmt.Sprintf("%q", parts[6]))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}
	if err := validatePosition(board); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	const field = "placement"
	rank, file := 0, 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fenError(field, i, "8 files in rank", strconv.Itoa(file))
			}
			rank++
			file = 0
			if rank >= chess.BoardSize {
				return fenError(field, i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fenError(field, i, "8 files in rank", strconv.Itoa(file))
			}
		default:
			piece, err := chess.ParsePiece(c)
			if err != nil {
				return fenError(field, i, "a piece letter or digit", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fenError(field, i, "8 files in rank", "more")
			}
			board.Set(chess.Pos(file, rank), piece)
			file++
		}
	}

	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return fenError(field, len(positions), "8 ranks of 8 files", "end of input")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.SetNextToMove(chess.White)
	case "b":
		board.SetNextToMove(chess.Black)
	default:
		return fenError("side to move", 0, "w or b", fmt.Sprintf("%q", side))
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, rights string) error {
	const field = "castling"
	if rights == "-" {
		return nil
	}

	for i := 0; i < len(rights); i++ {
		var color chess.Color
		var side chess.CastleSide
		switch rights[i] {
		case 'K':
			color, side = chess.White, chess.Kingside
		case 'Q':
			color, side = chess.White, chess.Queenside
		case 'k':
			color, side = chess.Black, chess.Kingside
		case 'q':
			color, side = chess.Black, chess.Queenside
		default:
			return fenError(field, i, "one of KQkq or -", fmt.Sprintf("%q", rights[i]))
		}
		if board.CanCastle(color, side) {
			return fenError(field, i, "each right at most once", fmt.Sprintf("%q", rights[i]))
		}
		board.SetCastlingRight(color, side)
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target must
// be the vacant square behind a pawn that could just have advanced two
// squares.
func parseEnPassant(board *chess.Board, square string) error {
	const field = "en passant"
	if square == "-" {
		return nil
	}

	pos, err := chess.ParsePosition(square)
	if err != nil {
		return fenError(field, 0, "a square or -", fmt.Sprintf("%q", square))
	}

	pusher := board.NextToMove().Other()
	pawn, ok := pos.Offset(0, pusher.Forwards())
	if pos.Rank() != pusher.PawnRank()+pusher.Forwards() || !ok ||
		!board.At(pos).IsEmpty() || !board.At(pawn).Is(pusher, chess.Pawn) {
		return fenError(field, 0, "the square behind a double-advanced pawn", square)
	}

	board.SetEnPassantSquare(pos)
	return nil
}

// parseClocks parses the halfmove clock and move number fields.
func parseClocks(board *chess.Board, halfmove, moveNumber string) error {
	n, err := strconv.Atoi(halfmove)
	if err != nil || n < 0 {
		return fenError("halfmove clock", 0, "a non-negative integer", fmt.Sprintf("%q", halfmove))
	}
	board.SetHalfmoveCounter(n)

	n, err = strconv.Atoi(moveNumber)
	if err != nil || n < 1 {
		return fenError("move number", 0, "a positive integer", fmt.Sprintf("%q", moveNumber))
	}
	board.SetMoveNumber(n)
	return nil
}

// validatePosition rejects positions that legal play cannot reach and
// records how many pieces give check.
func validatePosition(board *chess.Board) error {
	for _, color := range []chess.Color{chess.White, chess.Black} {
		kings := 0
		for _, row := range board.Tiles() {
			for _, piece := range row {
				if piece.Is(color, chess.King) {
					kings++
				}
			}
		}
		if kings != 1 {
			return errors.Wrapf(errors.ErrInvalidGameState, "%s has %d kings", color, kings)
		}
	}

	side := board.NextToMove()
	if countCheckers(board, side.Other()) > 0 {
		return errors.Wrapf(errors.ErrInvalidGameState, "%s is in check but not to move", side.Other())
	}

	checkers := countCheckers(board, side)
	if checkers > 2 {
		return errors.Wrapf(errors.ErrInvalidGameState, "%s is checked by %d pieces", side, checkers)
	}
	board.SetCheckingPieces(checkers)
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.NextToMove().Letter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveCounter(), board.MoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Pos(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range []struct {
		color  chess.Color
		side   chess.CastleSide
		letter byte
	}{
		{chess.White, chess.Kingside, 'K'},
		{chess.White, chess.Queenside, 'Q'},
		{chess.Black, chess.Kingside, 'k'},
		{chess.Black, chess.Queenside, 'q'},
	} {
		if board.CanCastle(right.color, right.side) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if pos, ok := board.EnPassantSquare(); ok {
		sb.WriteString(pos.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return board
}
