package ai

import (
	"math/rand"
	"testing"

	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/engine"
	"github.com/lmeyer/gamehall/internal/errors"
	"github.com/lmeyer/gamehall/internal/testutil"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{input: "easy", want: Easy},
		{input: "medium", want: Medium},
		{input: "hard", want: Hard},
		{input: "impossible", wantErr: true},
		{input: "", wantErr: true},
		{input: "Easy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidDifficulty)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestEasyReturnsLegalMove(t *testing.T) {
	b := chess.NewInitialBoard()
	eng := NewEngine(WithRand(rand.New(rand.NewSource(7))))

	move, err := eng.ChooseMove(b, chess.White, Easy)
	testutil.AssertNoError(t, err)

	legal := false
	for _, m := range engine.LegalMoves(b, chess.White) {
		if m == move {
			legal = true
			break
		}
	}
	testutil.AssertTrue(t, legal, "easy engine played %s which is not legal", move)
}

func TestEasyIsReproducibleWithSeed(t *testing.T) {
	b := chess.NewInitialBoard()
	a := NewEngine(WithRand(rand.New(rand.NewSource(42))))
	c := NewEngine(WithRand(rand.New(rand.NewSource(42))))

	for i := 0; i < 5; i++ {
		m1, err := a.ChooseMove(b, chess.White, Easy)
		testutil.AssertNoError(t, err)
		m2, err := c.ChooseMove(b, chess.White, Easy)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, m1, m2)
	}
}

func TestMediumTakesHangingQueen(t *testing.T) {
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"a1": testutil.Wh(chess.Rook),
		"h1": testutil.Wh(chess.King),
		"a8": testutil.Bl(chess.Queen),
		"h8": testutil.Bl(chess.King),
	})
	eng := NewEngine()

	move, err := eng.ChooseMove(b, chess.White, Medium)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.String(), "a1a8")
}

func TestMediumPrefersBiggestCapture(t *testing.T) {
	// The rook can take a pawn on a7 or the rook on h1 pinned to
	// nothing; material says the rook.
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"a1": testutil.Wh(chess.Rook),
		"e4": testutil.Wh(chess.King),
		"a7": testutil.Bl(chess.Pawn),
		"h1": testutil.Bl(chess.Rook),
		"h8": testutil.Bl(chess.King),
	})
	eng := NewEngine()

	move, err := eng.ChooseMove(b, chess.White, Medium)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.String(), "a1h1")
}

func TestHardFindsBackRankMate(t *testing.T) {
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"a1": testutil.Wh(chess.Rook),
		"h1": testutil.Wh(chess.King),
		"h8": testutil.Bl(chess.King),
		"g7": testutil.Bl(chess.Pawn),
		"h7": testutil.Bl(chess.Pawn),
	})
	eng := NewEngine()

	move, err := eng.ChooseMove(b, chess.White, Hard)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.String(), "a1a8")
}

func TestHardSeesOneMoveAhead(t *testing.T) {
	// A greedy engine would be happy grabbing material anywhere; at
	// depth two the only move that survives the reply is taking the
	// rook, every other queen move loses the queen or stays behind.
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"d1": testutil.Wh(chess.Queen),
		"a1": testutil.Wh(chess.King),
		"d8": testutil.Bl(chess.Rook),
		"h8": testutil.Bl(chess.King),
	})
	eng := NewEngine()

	move, err := eng.ChooseMove(b, chess.White, Hard)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.String(), "d1d8")
}

func TestMinimaxMateAndStalemateScores(t *testing.T) {
	eng := NewEngine()

	// Back-rank mate, Black to move with no legal moves.
	mate := testutil.BoardWith(t, map[string]chess.Piece{
		"h8": testutil.Bl(chess.King),
		"g7": testutil.Bl(chess.Pawn),
		"h7": testutil.Bl(chess.Pawn),
		"a8": testutil.Wh(chess.Rook),
		"a1": testutil.Wh(chess.King),
	})

	// The sign follows the searching side fixed at the root, not the
	// side to move: the mated side scores -MateScore from its own
	// perspective and +MateScore from its opponent's.
	testutil.AssertEqual(t, eng.minimax(mate, chess.Black, chess.Black, 2), -MateScore)
	testutil.AssertEqual(t, eng.minimax(mate, chess.Black, chess.White, 2), MateScore)

	// Mate outranks the depth cutoff: the score is the same when the
	// node sits at the search horizon.
	testutil.AssertEqual(t, eng.minimax(mate, chess.Black, chess.White, 0), MateScore)
	testutil.AssertEqual(t, eng.minimax(mate, chess.Black, chess.Black, 0), -MateScore)

	// Stalemate scores zero for both perspectives.
	stalemate := testutil.BoardWith(t, map[string]chess.Piece{
		"a8": testutil.Bl(chess.King),
		"b6": testutil.Wh(chess.Queen),
		"h1": testutil.Wh(chess.King),
	})
	testutil.AssertEqual(t, eng.minimax(stalemate, chess.Black, chess.White, 2), 0)
	testutil.AssertEqual(t, eng.minimax(stalemate, chess.Black, chess.Black, 0), 0)
}

func TestNoMovesAvailable(t *testing.T) {
	// Stalemated side to move.
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"a8": testutil.Bl(chess.King),
		"b6": testutil.Wh(chess.Queen),
		"h1": testutil.Wh(chess.King),
	})
	eng := NewEngine()

	_, err := eng.ChooseMove(b, chess.Black, Easy)
	testutil.AssertErrorIs(t, err, errors.ErrNoMovesAvailable)
}

func TestParallelSearchMatchesSerial(t *testing.T) {
	positions := []*chess.Board{
		chess.NewInitialBoard(),
		testutil.BoardWith(t, map[string]chess.Piece{
			"a1": testutil.Wh(chess.Rook),
			"h1": testutil.Wh(chess.King),
			"h8": testutil.Bl(chess.King),
			"g7": testutil.Bl(chess.Pawn),
			"h7": testutil.Bl(chess.Pawn),
		}),
	}

	serial := NewEngine(WithWorkers(1))
	parallel := NewEngine(WithWorkers(4))

	for i, b := range positions {
		want, err := serial.ChooseMove(b, chess.White, Hard)
		testutil.AssertNoError(t, err)
		got, err := parallel.ChooseMove(b, chess.White, Hard)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, want, "position %d", i)
	}
}

func TestWithDepthRejectsNonPositive(t *testing.T) {
	eng := NewEngine(WithDepth(0))
	testutil.AssertEqual(t, eng.depth, 2)
	eng = NewEngine(WithDepth(3))
	testutil.AssertEqual(t, eng.depth, 3)
}
