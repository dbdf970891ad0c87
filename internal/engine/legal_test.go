package engine

import (
	"testing"

	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/testutil"
)

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	b := chess.NewInitialBoard()
	for _, color := range []chess.Color{chess.White, chess.Black} {
		if got := len(LegalMoves(b, color)); got != 20 {
			t.Errorf("%v has %d legal moves in the starting position, want 20", color, got)
		}
	}
}

func TestInCheck(t *testing.T) {
	tests := []struct {
		name  string
		board map[string]chess.Piece
		color chess.Color
		want  bool
	}{
		{
			name: "rook gives check along open file",
			board: map[string]chess.Piece{
				"e8": testutil.Bl(chess.King),
				"e1": testutil.Wh(chess.Rook),
			},
			color: chess.Black,
			want:  true,
		},
		{
			name: "check blocked by interposed piece",
			board: map[string]chess.Piece{
				"e8": testutil.Bl(chess.King),
				"e4": testutil.Bl(chess.Pawn),
				"e1": testutil.Wh(chess.Rook),
			},
			color: chess.Black,
			want:  false,
		},
		{
			name: "knight check",
			board: map[string]chess.Piece{
				"e8": testutil.Bl(chess.King),
				"f6": testutil.Wh(chess.Knight),
			},
			color: chess.Black,
			want:  true,
		},
		{
			name: "pawn checks diagonally",
			board: map[string]chess.Piece{
				"e8": testutil.Bl(chess.King),
				"d7": testutil.Wh(chess.Pawn),
			},
			color: chess.Black,
			want:  true,
		},
		{
			name: "pawn does not check straight ahead",
			board: map[string]chess.Piece{
				"e8": testutil.Bl(chess.King),
				"e7": testutil.Wh(chess.Pawn),
			},
			color: chess.Black,
			want:  false,
		},
		{
			name:  "no king means no check",
			board: map[string]chess.Piece{"e1": testutil.Wh(chess.Rook)},
			color: chess.Black,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BoardWith(t, tt.board)
			if got := InCheck(b, tt.color); got != tt.want {
				t.Errorf("InCheck = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// The knight on e2 shields its king from the rook on e8. Every
	// knight move exposes the king, so none is legal.
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"e1": testutil.Wh(chess.King),
		"e2": testutil.Wh(chess.Knight),
		"e8": testutil.Bl(chess.Rook),
	})

	for _, m := range LegalMoves(b, chess.White) {
		if m.From == testutil.MustSquare(t, "e2") {
			t.Errorf("pinned knight move %s generated as legal", m)
		}
	}
	testutil.AssertTrue(t, MovePutsInCheck(b, testutil.MustMove(t, "e2c3"), chess.White))
}

func TestKingMustLeaveCheck(t *testing.T) {
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"e1": testutil.Wh(chess.King),
		"e8": testutil.Bl(chess.Rook),
	})

	for _, m := range LegalMoves(b, chess.White) {
		if m.To.X == 4 {
			t.Errorf("move %s stays on the attacked file", m)
		}
	}
	if len(LegalMoves(b, chess.White)) == 0 {
		t.Error("king should have escape squares")
	}
}

func TestIsCheckmate(t *testing.T) {
	// Back-rank mate: the rook on a8 covers the whole rank and the
	// king's own pawns block the escape.
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"h8": testutil.Bl(chess.King),
		"g7": testutil.Bl(chess.Pawn),
		"h7": testutil.Bl(chess.Pawn),
		"a8": testutil.Wh(chess.Rook),
		"a1": testutil.Wh(chess.King),
	})

	testutil.AssertTrue(t, IsCheckmate(b, chess.Black))
	testutil.AssertFalse(t, IsStalemate(b, chess.Black))
	testutil.AssertFalse(t, IsCheckmate(b, chess.White))
}

func TestIsStalemate(t *testing.T) {
	// Classic corner stalemate: the black king is not in check but
	// every adjacent square is covered by the queen.
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"a8": testutil.Bl(chess.King),
		"b6": testutil.Wh(chess.Queen),
		"h1": testutil.Wh(chess.King),
	})

	testutil.AssertTrue(t, IsStalemate(b, chess.Black))
	testutil.AssertFalse(t, IsCheckmate(b, chess.Black))
}

func TestKingsAloneBothHaveMoves(t *testing.T) {
	b := testutil.BoardWith(t, map[string]chess.Piece{
		"e1": testutil.Wh(chess.King),
		"e8": testutil.Bl(chess.King),
	})

	testutil.AssertTrue(t, HasLegalMoves(b, chess.White))
	testutil.AssertTrue(t, HasLegalMoves(b, chess.Black))
}

func TestLegalMovesDoesNotMutateBoard(t *testing.T) {
	b := chess.NewInitialBoard()
	before := *b
	LegalMoves(b, chess.White)
	testutil.AssertEqual(t, b.String(), before.String())
}
