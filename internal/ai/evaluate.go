// Package ai implements the computer opponent: a material evaluator and
// three move-selection policies keyed by difficulty.
package ai

import "github.com/lmeyer/gamehall/internal/chess"

// Material values in centipawns. The king's value only matters as a
// dominating term; material is never summed across a capture of it.
var pieceValues = map[chess.PieceKind]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// MateScore is the terminal-node score magnitude for checkmate.
const MateScore = 10000

// Evaluate returns the material balance of the board from pov's
// perspective: the sum of pov's piece values minus the opponent's.
// There are no positional terms.
func Evaluate(b *chess.Board, pov chess.Color) int {
	score := 0
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			p := b.At(chess.Square{X: x, Y: y})
			if p.IsNone() {
				continue
			}
			if p.Color == pov {
				score += pieceValues[p.Kind]
			} else {
				score -= pieceValues[p.Kind]
			}
		}
	}
	return score
}
