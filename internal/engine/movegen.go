// Package engine provides chess move generation, legality checking and
// the game state machine.
package engine

import "github.com/lmeyer/gamehall/internal/chess"

// Move offset tables. The orders are fixed: move lists are order-stable
// and the search engine breaks ties by first occurrence.
var (
	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
)

// PseudoLegalMoves returns every geometrically valid move for the piece
// at sq, ignoring whether the mover's own king is left in check.
// It returns nil if sq is empty or off the board.
func PseudoLegalMoves(b *chess.Board, sq chess.Square) []chess.Move {
	piece := b.At(sq)
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(b, sq, piece.Color)
	case chess.Knight:
		return offsetMoves(b, sq, piece.Color, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(b, sq, piece.Color, bishopDirs[:])
	case chess.Rook:
		return slidingMoves(b, sq, piece.Color, rookDirs[:])
	case chess.Queen:
		moves := slidingMoves(b, sq, piece.Color, rookDirs[:])
		return append(moves, slidingMoves(b, sq, piece.Color, bishopDirs[:])...)
	case chess.King:
		return offsetMoves(b, sq, piece.Color, kingOffsets[:])
	case chess.NoPiece:
		return nil
	}
	return nil
}

// pawnMoves generates pawn pushes and diagonal captures. Any move
// landing on the farthest rank carries a queen promotion; there is no
// underpromotion choice.
func pawnMoves(b *chess.Board, sq chess.Square, color chess.Color) []chess.Move {
	var moves []chess.Move
	dir := color.Direction()

	forward := sq.Offset(0, dir)
	if b.IsEmpty(forward) {
		moves = append(moves, pawnMove(sq, forward))
		twoForward := sq.Offset(0, 2*dir)
		if sq.Y == color.PawnStartRank() && b.IsEmpty(twoForward) {
			moves = append(moves, chess.Move{From: sq, To: twoForward})
		}
	}
	for _, dx := range [2]int{-1, 1} {
		target := sq.Offset(dx, dir)
		if b.IsEnemy(target, color) {
			moves = append(moves, pawnMove(sq, target))
		}
	}
	return moves
}

// pawnMove builds a pawn move, tagging back-rank destinations with the
// forced queen promotion.
func pawnMove(from, to chess.Square) chess.Move {
	m := chess.Move{From: from, To: to}
	if to.Y == 0 || to.Y == chess.BoardSize-1 {
		m.Promotion = chess.Queen
	}
	return m
}

// offsetMoves generates the fixed-offset moves of knights and kings:
// each target is valid when empty or enemy-occupied.
func offsetMoves(b *chess.Board, sq chess.Square, color chess.Color, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, o := range offsets {
		target := sq.Offset(o[0], o[1])
		if b.IsEmpty(target) || b.IsEnemy(target, color) {
			moves = append(moves, chess.Move{From: sq, To: target})
		}
	}
	return moves
}

// slidingMoves walks each ray outward one square at a time, appending a
// move for every empty square, a capture when an enemy piece is hit,
// and stopping at the first occupied square.
func slidingMoves(b *chess.Board, sq chess.Square, color chess.Color, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		for step := 1; ; step++ {
			target := sq.Offset(d[0]*step, d[1]*step)
			if !b.IsOnBoard(target) {
				break
			}
			if b.IsEmpty(target) {
				moves = append(moves, chess.Move{From: sq, To: target})
				continue
			}
			if b.IsEnemy(target, color) {
				moves = append(moves, chess.Move{From: sq, To: target})
			}
			break
		}
	}
	return moves
}
