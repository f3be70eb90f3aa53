package chess

import "strings"

// CastleSide selects the king's or queen's wing.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// RookFile returns the file of the rook's home square on this wing.
func (s CastleSide) RookFile() int {
	if s == Kingside {
		return BoardSize - 1
	}
	return 0
}

// KingFile is the file of both kings' home squares.
const KingFile = 4

// Board represents a chess board with all state needed for the game.
// Boards are plain values: assigning one copies it, and two boards compare
// equal with == when every square and every counter matches.
type Board struct {
	// tiles[rank][file], rank 0 being the eighth rank.
	tiles [BoardSize][BoardSize]Piece

	// Who has the next move.
	nextToMove Color

	// castle[color][side] is true while that castling right is retained.
	castle [2][2]bool

	// The square passed over by a pawn that has just advanced two squares.
	enPassant    Position
	hasEnPassant bool

	// Halfmoves since the last capture or pawn move.
	halfmoveCounter int

	// The current move number, incremented after Black moves.
	moveNumber int

	// Number of enemy pieces attacking the side to move's king.
	checkingPieces int
}

// NewBoard creates an empty board with White to move on move 1.
func NewBoard() *Board {
	return &Board{
		nextToMove: White,
		moveNumber: 1,
	}
}

// NewDefaultBoard creates a board with the standard starting position.
func NewDefaultBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{nextToMove: White, moveNumber: 1}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.tiles[Black.HomeRank()][file] = B(backRank[file])
		b.tiles[Black.PawnRank()][file] = B(Pawn)
		b.tiles[White.PawnRank()][file] = W(Pawn)
		b.tiles[White.HomeRank()][file] = W(backRank[file])
	}

	b.castle = [2][2]bool{{true, true}, {true, true}}
}

// At returns the piece at pos.
func (b *Board) At(pos Position) Piece {
	return b.tiles[pos.rank][pos.file]
}

// Set places a piece at pos. Setting NoPiece clears the square.
func (b *Board) Set(pos Position, piece Piece) {
	b.tiles[pos.rank][pos.file] = piece
}

// Take removes and returns the piece at pos.
func (b *Board) Take(pos Position) Piece {
	p := b.tiles[pos.rank][pos.file]
	b.tiles[pos.rank][pos.file] = NoPiece
	return p
}

// Tiles returns a snapshot of the grid, indexed [rank][file].
func (b *Board) Tiles() [BoardSize][BoardSize]Piece {
	return b.tiles
}

// NextToMove returns the color whose turn it is.
func (b *Board) NextToMove() Color {
	return b.nextToMove
}

// SetNextToMove sets the side to move without touching the move number.
func (b *Board) SetNextToMove(c Color) {
	b.nextToMove = c
}

// SwitchTurn passes the move to the other side, incrementing the move
// number when Black has just moved.
func (b *Board) SwitchTurn() {
	if b.nextToMove == Black {
		b.moveNumber++
	}
	b.nextToMove = b.nextToMove.Other()
}

// EnPassantSquare returns the en passant target square, if any.
func (b *Board) EnPassantSquare() (Position, bool) {
	return b.enPassant, b.hasEnPassant
}

// SetEnPassantSquare records the square passed over by a double pawn push.
func (b *Board) SetEnPassantSquare(pos Position) {
	b.enPassant = pos
	b.hasEnPassant = true
}

// ClearEnPassantSquare removes the en passant target.
func (b *Board) ClearEnPassantSquare() {
	b.enPassant = Position{}
	b.hasEnPassant = false
}

// CanCastle reports whether color retains the castling right on side.
func (b *Board) CanCastle(color Color, side CastleSide) bool {
	return b.castle[color][side]
}

// SetCastlingRight grants a castling right. Only board construction uses
// this; during play rights are only ever cleared.
func (b *Board) SetCastlingRight(color Color, side CastleSide) {
	b.castle[color][side] = true
}

// ClearCastlingRight permanently removes a castling right.
func (b *Board) ClearCastlingRight(color Color, side CastleSide) {
	b.castle[color][side] = false
}

// ClearCastlingRights removes both castling rights of color.
func (b *Board) ClearCastlingRights(color Color) {
	b.castle[color] = [2]bool{}
}

// HalfmoveCounter returns the number of halfmoves since the last capture or
// pawn move.
func (b *Board) HalfmoveCounter() int {
	return b.halfmoveCounter
}

// SetHalfmoveCounter sets the halfmove counter.
func (b *Board) SetHalfmoveCounter(n int) {
	b.halfmoveCounter = n
}

// IncrementHalfmoveCounter counts one more quiet halfmove.
func (b *Board) IncrementHalfmoveCounter() {
	b.halfmoveCounter++
}

// ResetHalfmoveCounter restarts the fifty-move count.
func (b *Board) ResetHalfmoveCounter() {
	b.halfmoveCounter = 0
}

// MoveNumber returns the current full move number.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// SetMoveNumber sets the full move number.
func (b *Board) SetMoveNumber(n int) {
	b.moveNumber = n
}

// CheckingPieces returns how many enemy pieces attack the side to move's king.
func (b *Board) CheckingPieces() int {
	return b.checkingPieces
}

// SetCheckingPieces records the number of pieces giving check. More than two
// simultaneous checks cannot arise from legal play.
func (b *Board) SetCheckingPieces(n int) {
	if n < 0 || n > 2 {
		panic("chess: impossible number of checking pieces")
	}
	b.checkingPieces = n
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.checkingPieces > 0
}

// InDoubleCheck reports whether two pieces give check at once.
func (b *Board) InDoubleCheck() bool {
	return b.checkingPieces == 2
}

// KingPosition scans the board for color's king.
func (b *Board) KingPosition(color Color) (Position, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.tiles[rank][file].Is(color, King) {
				return Pos(file, rank), true
			}
		}
	}
	return Position{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board rank by rank from the eighth rank down, using
// FEN letters and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		sb.WriteByte(byte('8' - rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.tiles[rank][file].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
