package ai

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/engine"
	"github.com/lmeyer/gamehall/internal/errors"
)

// Difficulty selects the move-selection policy.
type Difficulty int

const (
	Easy   Difficulty = iota // uniform random over legal moves
	Medium                   // greedy one-ply material maximisation
	Hard                     // two-ply minimax
)

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidDifficulty)
}

// Engine chooses moves for the computer side. It is stateless between
// calls apart from its random source; a single Engine may serve many
// games sequentially.
type Engine struct {
	depth   int
	workers int
	rng     *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithDepth sets the minimax search depth in plies.
func WithDepth(plies int) Option {
	return func(e *Engine) {
		if plies >= 1 {
			e.depth = plies
		}
	}
}

// WithWorkers sets the number of goroutines used to score root moves.
// With one worker the search runs serially on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// WithRand sets the random source used by the Easy policy. Tests pass a
// seeded source for reproducible play.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// NewEngine creates an Engine with a two-ply search depth and a serial
// root search by default.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		depth:   2,
		workers: 1,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ChooseMove picks a move for color using the given difficulty's
// policy. It returns ErrNoMovesAvailable if color has no legal moves;
// the caller must run its termination check before asking for a move.
func (e *Engine) ChooseMove(b *chess.Board, color chess.Color, d Difficulty) (chess.Move, error) {
	moves := engine.LegalMoves(b, color)
	if len(moves) == 0 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrNoMovesAvailable, Turn: color.String()}
	}

	switch d {
	case Easy:
		return moves[e.rng.Intn(len(moves))], nil
	case Medium:
		return e.greedyMove(b, color, moves), nil
	case Hard:
		return e.minimaxMove(b, color, moves), nil
	}
	return chess.Move{}, fmt.Errorf("difficulty %d: %w", d, errors.ErrInvalidDifficulty)
}

// greedyMove applies each candidate on a clone and keeps the first move
// with the maximal resulting material balance.
func (e *Engine) greedyMove(b *chess.Board, color chess.Color, moves []chess.Move) chess.Move {
	best := moves[0]
	bestScore := 0
	for i, m := range moves {
		clone := b.Clone()
		clone.MovePiece(m)
		score := Evaluate(clone, color)
		if i == 0 || score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best
}

// minimaxMove runs the fixed-depth minimax over every root move and
// keeps the first move with the maximal score. Root moves are scored in
// parallel when the engine has more than one worker; ties still resolve
// to the lowest generation index, so the parallel search picks the same
// move as the serial one.
func (e *Engine) minimaxMove(b *chess.Board, color chess.Color, moves []chess.Move) chess.Move {
	var scores []int
	if e.workers > 1 {
		scores = e.scoreRootParallel(b, color, moves)
	} else {
		scores = make([]int, len(moves))
		for i, m := range moves {
			scores[i] = e.scoreRootMove(b, color, m)
		}
	}

	bestIdx := 0
	for i, s := range scores {
		if s > scores[bestIdx] {
			bestIdx = i
		}
	}
	return moves[bestIdx]
}

// scoreRootMove applies one root move and evaluates the opponent's best
// reply down to the configured depth.
func (e *Engine) scoreRootMove(b *chess.Board, color chess.Color, m chess.Move) int {
	clone := b.Clone()
	clone.MovePiece(m)
	return e.minimax(clone, color.Opposite(), color, e.depth-1)
}

// minimax returns the score of the position from pov's perspective with
// toMove to play. Mate and stalemate are detected at every node, before
// the depth cutoff: a side with no legal moves scores -MateScore when
// it is pov in check, +MateScore when it is pov's opponent in check,
// and 0 for stalemate. The sign convention is fixed at pov for the
// whole search, independent of depth parity.
func (e *Engine) minimax(b *chess.Board, toMove, pov chess.Color, depth int) int {
	moves := engine.LegalMoves(b, toMove)
	if len(moves) == 0 {
		if engine.InCheck(b, toMove) {
			if toMove == pov {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}
	if depth <= 0 {
		return Evaluate(b, pov)
	}

	maximizing := toMove == pov
	var best int
	for i, m := range moves {
		clone := b.Clone()
		clone.MovePiece(m)
		score := e.minimax(clone, toMove.Opposite(), pov, depth-1)
		if i == 0 || (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}
	return best
}
