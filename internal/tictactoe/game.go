// Package tictactoe implements the 3x3 game with a three-tier computer
// opponent: random, heuristic, and full-depth minimax.
package tictactoe

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lmeyer/gamehall/internal/ai"
	"github.com/lmeyer/gamehall/internal/errors"
)

// Mark is the content of one cell.
type Mark int

const (
	None Mark = iota
	X         // the human side
	O         // the computer side
)

// String returns "X", "O" or "".
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return ""
}

// Cell is a board coordinate, row and column in [0,3).
type Cell struct {
	Row, Col int
}

// Game is a single-player tic-tac-toe game. The human plays X and
// moves first; the computer replies as O.
type Game struct {
	board      [3][3]Mark
	current    Mark
	winner     Mark
	draw       bool
	difficulty ai.Difficulty
	rng        *rand.Rand
}

// NewGame starts a game at the given difficulty, human to move.
func NewGame(difficulty ai.Difficulty, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{current: X, difficulty: difficulty, rng: rng}
}

// Board returns a copy of the grid.
func (g *Game) Board() [3][3]Mark {
	return g.board
}

// Winner returns the winning mark, or None.
func (g *Game) Winner() Mark {
	return g.winner
}

// IsDraw reports whether the game ended with a full board and no winner.
func (g *Game) IsDraw() bool {
	return g.draw
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.winner != None || g.draw
}

// AvailableMoves returns the empty cells in row-major order.
func (g *Game) AvailableMoves() []Cell {
	var moves []Cell
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if g.board[r][c] == None {
				moves = append(moves, Cell{r, c})
			}
		}
	}
	return moves
}

// PlayHuman places the human's X at cell and, if the game continues,
// plays the computer's reply. Returns ErrGameOver on a finished game
// and ErrIllegalMove for an occupied or out-of-range cell.
func (g *Game) PlayHuman(cell Cell) error {
	if g.IsOver() {
		return fmt.Errorf("cell %d,%d: %w", cell.Row, cell.Col, errors.ErrGameOver)
	}
	if cell.Row < 0 || cell.Row > 2 || cell.Col < 0 || cell.Col > 2 || g.board[cell.Row][cell.Col] != None {
		return fmt.Errorf("cell %d,%d: %w", cell.Row, cell.Col, errors.ErrIllegalMove)
	}

	g.board[cell.Row][cell.Col] = X
	if g.settle(cell) {
		return nil
	}

	g.current = O
	reply := g.chooseMove()
	g.board[reply.Row][reply.Col] = O
	if g.settle(reply) {
		return nil
	}
	g.current = X
	return nil
}

// settle updates winner/draw state after a move at cell and reports
// whether the game ended.
func (g *Game) settle(cell Cell) bool {
	if g.cellWins(cell) {
		g.winner = g.board[cell.Row][cell.Col]
		return true
	}
	if len(g.AvailableMoves()) == 0 {
		g.draw = true
		return true
	}
	return false
}

// cellWins reports whether the mark just placed at cell completed a line.
func (g *Game) cellWins(cell Cell) bool {
	mark := g.board[cell.Row][cell.Col]
	row, col := cell.Row, cell.Col

	winRow := g.board[row][0] == mark && g.board[row][1] == mark && g.board[row][2] == mark
	winCol := g.board[0][col] == mark && g.board[1][col] == mark && g.board[2][col] == mark
	diag1 := row == col &&
		g.board[0][0] == mark && g.board[1][1] == mark && g.board[2][2] == mark
	diag2 := row+col == 2 &&
		g.board[0][2] == mark && g.board[1][1] == mark && g.board[2][0] == mark
	return winRow || winCol || diag1 || diag2
}
