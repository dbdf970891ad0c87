package tictactoe

import (
	"testing"

	"github.com/lmeyer/gamehall/internal/ai"
)

func TestHeuristicTakesWin(t *testing.T) {
	g := gameWithBoard(ai.Medium, [3][3]Mark{
		{O, O, None},
		{X, X, O},
		{X, None, None},
	})
	if got := g.heuristicMove(); got != (Cell{0, 2}) {
		t.Errorf("heuristic played %+v, want the winning 0,2", got)
	}
}

func TestHeuristicBlocksLoss(t *testing.T) {
	g := gameWithBoard(ai.Medium, [3][3]Mark{
		{X, X, None},
		{O, None, None},
		{None, None, None},
	})
	if got := g.heuristicMove(); got != (Cell{0, 2}) {
		t.Errorf("heuristic played %+v, want the blocking 0,2", got)
	}
}

func TestHeuristicPrefersWinOverBlock(t *testing.T) {
	// Both sides threaten a line; taking the win beats blocking.
	g := gameWithBoard(ai.Medium, [3][3]Mark{
		{X, X, None},
		{O, O, None},
		{X, None, None},
	})
	if got := g.heuristicMove(); got != (Cell{1, 2}) {
		t.Errorf("heuristic played %+v, want the winning 1,2", got)
	}
}

func TestHeuristicTakesCenter(t *testing.T) {
	g := gameWithBoard(ai.Medium, [3][3]Mark{
		{X, None, None},
		{None, None, None},
		{None, None, None},
	})
	if got := g.heuristicMove(); got != (Cell{1, 1}) {
		t.Errorf("heuristic played %+v, want the center", got)
	}
}

func TestHeuristicFallsBackToCorner(t *testing.T) {
	g := gameWithBoard(ai.Medium, [3][3]Mark{
		{None, None, None},
		{None, X, None},
		{None, None, None},
	})
	got := g.heuristicMove()
	corners := map[Cell]bool{{0, 0}: true, {0, 2}: true, {2, 0}: true, {2, 2}: true}
	if !corners[got] {
		t.Errorf("heuristic played %+v, want a corner", got)
	}
}

func TestMinimaxTakesImmediateWin(t *testing.T) {
	g := gameWithBoard(ai.Hard, [3][3]Mark{
		{O, O, None},
		{X, X, O},
		{X, None, None},
	})
	if got := g.minimaxMove(); got != (Cell{0, 2}) {
		t.Errorf("minimax played %+v, want the winning 0,2", got)
	}
}

func TestMinimaxBlocksLoss(t *testing.T) {
	g := gameWithBoard(ai.Hard, [3][3]Mark{
		{X, None, None},
		{None, X, None},
		{O, None, None},
	})
	// X threatens the main diagonal; only 2,2 stops it.
	if got := g.minimaxMove(); got != (Cell{2, 2}) {
		t.Errorf("minimax played %+v, want the blocking 2,2", got)
	}
}

func TestMinimaxKeepsFirstForcedWin(t *testing.T) {
	// Two winning choices: 0,1 forks (column and diagonal threats)
	// and 2,2 completes the diagonal at once. Both score +1, so the
	// row-major-first fork is kept rather than the immediate win.
	g := gameWithBoard(ai.Hard, [3][3]Mark{
		{O, None, X},
		{None, O, None},
		{X, None, None},
	})
	if got := g.minimaxMove(); got != (Cell{0, 1}) {
		t.Errorf("minimax played %+v, want the first forced win 0,1", got)
	}
}

func TestHardNeverLosesFromStart(t *testing.T) {
	// Play every human opening against the full-depth search and let
	// the human continue with a simple first-free-cell policy. The
	// computer must never lose.
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g := NewGame(ai.Hard, nil)
			cell := Cell{r, c}
			for !g.IsOver() {
				if err := g.PlayHuman(cell); err != nil {
					t.Fatalf("opening %d,%d: %v", r, c, err)
				}
				if g.IsOver() {
					break
				}
				cell = g.AvailableMoves()[0]
			}
			if g.Winner() == X {
				t.Errorf("hard computer lost to opening %d,%d", r, c)
			}
		}
	}
}
