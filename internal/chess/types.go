// Package chess provides the core board-game types and the chess board model.
package chess

import (
	"fmt"

	"github.com/lmeyer/gamehall/internal/errors"
)

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Direction returns the rank delta a pawn of this colour advances by.
// White advances toward rank index 0, Black toward rank index 7.
func (c Color) Direction() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRank returns the rank index pawns of this colour start on.
func (c Color) PawnStartRank() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// PieceKind identifies a kind of chess piece. The zero value NoPiece
// marks an empty square.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a piece on the board. The zero value is an empty square.
type Piece struct {
	Kind     PieceKind
	Color    Color
	HasMoved bool
}

// IsNone reports whether p marks an empty square.
func (p Piece) IsNone() bool {
	return p.Kind == NoPiece
}

// BoardSize is the width and height of the board.
const BoardSize = 8

// Square is a board coordinate. X is the file index (0 = file a) and
// Y the rank index (0 = Black's back rank, 7 = White's).
type Square struct {
	X, Y int
}

// Offset returns the square displaced by (dx, dy). The result may be
// off the board.
func (s Square) Offset(dx, dy int) Square {
	return Square{s.X + dx, s.Y + dy}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.X, BoardSize-s.Y)
}

// ParseSquare parses an algebraic square name like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("parse square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{X: int(s[0] - 'a'), Y: BoardSize - int(s[1]-'0')}, nil
}

// Move is a transition from one square to another. Promotion is set to
// the piece kind a pawn becomes when the move reaches the back rank,
// and NoPiece otherwise.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// ParseMove parses a long algebraic move like "e2e4" or "a7a8q".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("parse move %q: %w", s, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promotion = Queen
		case 'r':
			m.Promotion = Rook
		case 'b':
			m.Promotion = Bishop
		case 'n':
			m.Promotion = Knight
		default:
			return Move{}, fmt.Errorf("parse move %q: unknown promotion: %w", s, errors.ErrInvalidSquare)
		}
	}
	return m, nil
}
