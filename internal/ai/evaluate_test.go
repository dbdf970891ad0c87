package ai

import (
	"testing"

	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/testutil"
)

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	b := chess.NewInitialBoard()
	testutil.AssertEqual(t, Evaluate(b, chess.White), 0)
	testutil.AssertEqual(t, Evaluate(b, chess.Black), 0)
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	b := chess.NewInitialBoard()
	// Remove the black queen.
	b.Set(testutil.MustSquare(t, "d8"), chess.Piece{})

	testutil.AssertEqual(t, Evaluate(b, chess.White), 900)
	testutil.AssertEqual(t, Evaluate(b, chess.Black), -900)
}

func TestEvaluateIsSymmetric(t *testing.T) {
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"e1": testutil.Wh(chess.King),
		"e8": testutil.Bl(chess.King),
		"a1": testutil.Wh(chess.Rook),
		"h8": testutil.Bl(chess.Knight),
		"c3": testutil.Bl(chess.Pawn),
	})

	white := Evaluate(b, chess.White)
	black := Evaluate(b, chess.Black)
	testutil.AssertEqual(t, white, -black)
	// Rook 500 against knight 320 and pawn 100.
	testutil.AssertEqual(t, white, 80)
}
