package ai

import (
	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/worker"
)

// scoreRootParallel fans the root moves out over a worker pool. Every
// invocation clones the root board, so workers never share a mutable
// position. Results arrive out of order; scores are reassembled by
// index so that tie-breaking matches the serial search exactly.
func (e *Engine) scoreRootParallel(b *chess.Board, color chess.Color, moves []chess.Move) []int {
	pool := worker.NewPool(func(item worker.WorkItem) worker.ScoreResult {
		return worker.ScoreResult{
			Move:  item.Move,
			Index: item.Index,
			Score: e.scoreRootMove(b, color, item.Move),
		}
	}, worker.WithWorkers(e.workers), worker.WithBufferSize(len(moves)))

	pool.Start()
	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{Move: m, Index: i})
		}
		pool.Close()
	}()

	scores := make([]int, len(moves))
	for res := range pool.Results() {
		scores[res.Index] = res.Score
	}
	return scores
}
