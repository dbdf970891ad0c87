package testutil

import (
	"testing"

	"github.com/lmeyer/gamehall/internal/chess"
)

// MustSquare parses an algebraic square name like "e4".
// It calls t.Fatal on malformed input.
func MustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("bad test square %q: %v", s, err)
	}
	return sq
}

// MustMove parses a long algebraic move like "e2e4" or "a7a8q".
// It calls t.Fatal on malformed input.
func MustMove(t *testing.T, s string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("bad test move %q: %v", s, err)
	}
	return m
}

// BoardWith builds a board holding exactly the given pieces, keyed by
// algebraic square name. Use it to construct sparse test positions.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for name, p := range pieces {
		b.Set(MustSquare(t, name), p)
	}
	return b
}

// Wh returns a white piece of the given kind.
func Wh(kind chess.PieceKind) chess.Piece {
	return chess.Piece{Kind: kind, Color: chess.White}
}

// Bl returns a black piece of the given kind.
func Bl(kind chess.PieceKind) chess.Piece {
	return chess.Piece{Kind: kind, Color: chess.Black}
}

// Destinations extracts the target squares of a move list, preserving
// order. Handy for comparing generated moves against expected squares.
func Destinations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.To.String()
	}
	return out
}
