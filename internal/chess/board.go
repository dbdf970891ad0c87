package chess

import "strings"

// Board is an 8x8 grid of pieces. The zero Piece marks an empty square.
// Board is a plain value type: copying the struct copies the whole
// position, which keeps speculative apply-and-test cheap.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard returns a board with the standard starting position.
func NewInitialBoard() *Board {
	b := &Board{}
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition resets the board to the standard starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]Piece{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < BoardSize; x++ {
		b.squares[0][x] = Piece{Kind: backRank[x], Color: Black}
		b.squares[1][x] = Piece{Kind: Pawn, Color: Black}
		b.squares[BoardSize-2][x] = Piece{Kind: Pawn, Color: White}
		b.squares[BoardSize-1][x] = Piece{Kind: backRank[x], Color: White}
	}
}

// IsOnBoard reports whether the square lies within the board.
func (b *Board) IsOnBoard(sq Square) bool {
	return sq.X >= 0 && sq.X < BoardSize && sq.Y >= 0 && sq.Y < BoardSize
}

// At returns the piece at sq. Off-board squares read as empty; the
// board never fails a read.
func (b *Board) At(sq Square) Piece {
	if !b.IsOnBoard(sq) {
		return Piece{}
	}
	return b.squares[sq.Y][sq.X]
}

// Set places a piece at sq. Off-board writes are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if b.IsOnBoard(sq) {
		b.squares[sq.Y][sq.X] = p
	}
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.IsOnBoard(sq) && b.squares[sq.Y][sq.X].IsNone()
}

// IsEnemy reports whether sq holds a piece of the colour opposing color.
func (b *Board) IsEnemy(sq Square, color Color) bool {
	p := b.At(sq)
	return !p.IsNone() && p.Color != color
}

// MovePiece relocates the piece at m.From to m.To, clearing m.From.
// If the move carries a promotion and the moving piece is a pawn, the
// pawn is replaced by a fresh piece of the promoted kind. The resulting
// piece is marked as having moved. No legality checking is performed;
// this is the raw transition used by both real play and speculative
// search.
func (b *Board) MovePiece(m Move) {
	piece := b.At(m.From)
	b.Set(m.From, Piece{})
	if m.Promotion != NoPiece && piece.Kind == Pawn {
		piece = Piece{Kind: m.Promotion, Color: piece.Color}
	}
	if !piece.IsNone() {
		piece.HasMoved = true
	}
	b.Set(m.To, piece)
}

// Clone returns a deep copy of the board. Each piece is reconstructed
// with its kind and colour only; the HasMoved flag is reset on the
// copy. That loss of history is deliberate and relied upon by the
// legality filter.
func (b *Board) Clone() *Board {
	nb := *b
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			nb.squares[y][x].HasMoved = false
		}
	}
	return &nb
}

// FindKing returns the square of the king of the given colour. The
// second result is false if no such king is on the board.
func (b *Board) FindKing(color Color) (Square, bool) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := b.squares[y][x]
			if p.Kind == King && p.Color == color {
				return Square{X: x, Y: y}, true
			}
		}
	}
	return Square{}, false
}

// String returns an ASCII rendering of the board, White at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for y := 0; y < BoardSize; y++ {
		sb.WriteByte(byte('0' + BoardSize - y))
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(' ')
			p := b.squares[y][x]
			c := p.Kind.Letter()
			if p.Color == Black && !p.IsNone() {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
