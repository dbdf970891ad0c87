package ai

import (
	"testing"

	"github.com/lmeyer/gamehall/internal/chess"
)

func BenchmarkHardSearchSerial(b *testing.B) {
	board := chess.NewInitialBoard()
	eng := NewEngine(WithWorkers(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.ChooseMove(board, chess.White, Hard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHardSearchParallel(b *testing.B) {
	board := chess.NewInitialBoard()
	eng := NewEngine(WithWorkers(4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.ChooseMove(board, chess.White, Hard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Evaluate(board, chess.White)
	}
}
