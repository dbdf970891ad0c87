package tictactoe

import "github.com/lmeyer/gamehall/internal/ai"

// chooseMove picks the computer's reply for the configured difficulty.
// The board is expected to have at least one empty cell.
func (g *Game) chooseMove() Cell {
	switch g.difficulty {
	case ai.Medium:
		return g.heuristicMove()
	case ai.Hard:
		return g.minimaxMove()
	default:
		return g.randomMove()
	}
}

func (g *Game) randomMove() Cell {
	moves := g.AvailableMoves()
	return moves[g.rng.Intn(len(moves))]
}

// heuristicMove tries, in order: win now, block the human's win, take
// the center, take a random free corner, and otherwise a random cell.
func (g *Game) heuristicMove() Cell {
	if cell, ok := g.winningMove(O); ok {
		return cell
	}
	if cell, ok := g.winningMove(X); ok {
		return cell
	}
	if g.board[1][1] == None {
		return Cell{1, 1}
	}
	var corners []Cell
	for _, c := range []Cell{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		if g.board[c.Row][c.Col] == None {
			corners = append(corners, c)
		}
	}
	if len(corners) > 0 {
		return corners[g.rng.Intn(len(corners))]
	}
	return g.randomMove()
}

// winningMove finds a cell that completes a line for mark, if one exists.
func (g *Game) winningMove(mark Mark) (Cell, bool) {
	for _, cell := range g.AvailableMoves() {
		g.board[cell.Row][cell.Col] = mark
		won := g.cellWins(cell)
		g.board[cell.Row][cell.Col] = None
		if won {
			return cell, true
		}
	}
	return Cell{}, false
}

// minimaxMove searches the remaining game tree exhaustively. Nine cells
// keep the tree small enough that no depth cutoff is needed. Ties go to
// the first move encountered in row-major order, so among several
// forced wins the earliest cell is kept even when a later one wins
// sooner.
func (g *Game) minimaxMove() Cell {
	best := Cell{}
	bestScore := 0
	for i, cell := range g.AvailableMoves() {
		g.board[cell.Row][cell.Col] = O
		score := g.minimax(cell, X)
		g.board[cell.Row][cell.Col] = None
		if i == 0 || score > bestScore {
			best = cell
			bestScore = score
		}
	}
	return best
}

// minimax scores the position after a move at last, with toMove next:
// +1 for a win by O, -1 for a win by X, 0 for a full board.
func (g *Game) minimax(last Cell, toMove Mark) int {
	if g.cellWins(last) {
		if g.board[last.Row][last.Col] == O {
			return 1
		}
		return -1
	}
	moves := g.AvailableMoves()
	if len(moves) == 0 {
		return 0
	}

	best := 0
	for i, cell := range moves {
		g.board[cell.Row][cell.Col] = toMove
		var next Mark
		if toMove == O {
			next = X
		} else {
			next = O
		}
		score := g.minimax(cell, next)
		g.board[cell.Row][cell.Col] = None
		if i == 0 || (toMove == O && score > best) || (toMove == X && score < best) {
			best = score
		}
	}
	return best
}
