package engine

import "github.com/lmeyer/gamehall/internal/chess"

// InCheck returns true if the given colour's king is attacked, that is,
// some enemy piece has a pseudo-legal move ending on the king's square.
// A board without a king of that colour is never in check.
func InCheck(b *chess.Board, color chess.Color) bool {
	kingSq, ok := b.FindKing(color)
	if !ok {
		return false
	}
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			sq := chess.Square{X: x, Y: y}
			p := b.At(sq)
			if p.IsNone() || p.Color == color {
				continue
			}
			for _, m := range PseudoLegalMoves(b, sq) {
				if m.To == kingSq {
					return true
				}
			}
		}
	}
	return false
}

// LegalMoves returns every move of the given colour that does not leave
// its own king in check. This is the only move-generation entry point
// real play should use. Moves are produced in rank-major board scan
// order, preserving each piece's generation order.
func LegalMoves(b *chess.Board, color chess.Color) []chess.Move {
	var moves []chess.Move
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			sq := chess.Square{X: x, Y: y}
			p := b.At(sq)
			if p.IsNone() || p.Color != color {
				continue
			}
			for _, m := range PseudoLegalMoves(b, sq) {
				if !MovePutsInCheck(b, m, color) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// MovePutsInCheck reports whether applying m would leave color's own
// king in check. The move is applied speculatively on a clone; the
// receiver board is never mutated.
func MovePutsInCheck(b *chess.Board, m chess.Move, color chess.Color) bool {
	clone := b.Clone()
	clone.MovePiece(m)
	return InCheck(clone, color)
}

// HasLegalMoves returns true if the given colour has at least one legal
// move. It short-circuits on the first one found.
func HasLegalMoves(b *chess.Board, color chess.Color) bool {
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			sq := chess.Square{X: x, Y: y}
			p := b.At(sq)
			if p.IsNone() || p.Color != color {
				continue
			}
			for _, m := range PseudoLegalMoves(b, sq) {
				if !MovePutsInCheck(b, m, color) {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate returns true if color is in check with no legal moves.
func IsCheckmate(b *chess.Board, color chess.Color) bool {
	return InCheck(b, color) && !HasLegalMoves(b, color)
}

// IsStalemate returns true if color has no legal moves but is not in check.
func IsStalemate(b *chess.Board, color chess.Color) bool {
	return !InCheck(b, color) && !HasLegalMoves(b, color)
}
