package engine

import (
	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/errors"
)

// Outcome is the terminal result of a game. The zero value means the
// game is still in progress.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// Winner returns the winning colour for a decisive outcome. The second
// result is false for draws and games still in progress.
func (o Outcome) Winner() (chess.Color, bool) {
	switch o {
	case WhiteWins:
		return chess.White, true
	case BlackWins:
		return chess.Black, true
	}
	return 0, false
}

// ResultSink receives the terminal outcome of a game. Persistence of
// match results is an external concern injected here rather than owned
// by the state machine.
type ResultSink interface {
	RecordOutcome(o Outcome)
}

// Game tracks whose turn it is, applies validated moves, and detects
// checkmate and stalemate. Terminal outcomes are absorbing: once set,
// MakeMove fails until Reset.
type Game struct {
	board   *chess.Board
	turn    chess.Color
	outcome Outcome
	sink    ResultSink
}

// NewGame returns a game at the standard starting position, White to move.
func NewGame() *Game {
	return &Game{board: chess.NewInitialBoard(), turn: chess.White}
}

// NewGameFromBoard returns a game over a prepared position with the
// given side to move. Used by tests and by search setups.
func NewGameFromBoard(b *chess.Board, turn chess.Color) *Game {
	return &Game{board: b, turn: turn}
}

// SetResultSink registers a sink notified once when the game reaches a
// terminal outcome.
func (g *Game) SetResultSink(s ResultSink) {
	g.sink = s
}

// Board returns the live board. Callers that need to mutate speculative
// positions must Clone it first.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Color {
	return g.turn
}

// Outcome returns the game's result, or InProgress.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// IsOver reports whether a terminal outcome has been reached.
func (g *Game) IsOver() bool {
	return g.outcome != InProgress
}

// LegalMoves returns the legal moves for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return LegalMoves(g.board, g.turn)
}

// InCheck reports whether the side to move is currently in check.
func (g *Game) InCheck() bool {
	return InCheck(g.board, g.turn)
}

// MakeMove validates and applies a move for the side to move. The
// candidate is matched against the legal-move set by source and
// destination; the matched move's promotion is adopted, so callers need
// not set it. On success the turn flips and the termination check runs:
// a side left with no legal moves loses if in check and draws
// otherwise. Returns ErrGameOver on a finished game and ErrIllegalMove
// when the candidate is not legal; the game state is unchanged on error.
func (g *Game) MakeMove(m chess.Move) error {
	if g.outcome != InProgress {
		return &errors.MoveError{Err: errors.ErrGameOver, Move: m.String(), Turn: g.turn.String()}
	}

	legal, ok := g.findLegal(m)
	if !ok {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Move: m.String(), Turn: g.turn.String()}
	}

	// Belt and braces: a pawn reaching the back rank always promotes
	// to a queen, whether or not the candidate said so.
	piece := g.board.At(legal.From)
	if piece.Kind == chess.Pawn && (legal.To.Y == 0 || legal.To.Y == chess.BoardSize-1) &&
		legal.Promotion == chess.NoPiece {
		legal.Promotion = chess.Queen
	}

	g.board.MovePiece(legal)
	g.turn = g.turn.Opposite()

	if !HasLegalMoves(g.board, g.turn) {
		if InCheck(g.board, g.turn) {
			if g.turn == chess.White {
				g.outcome = BlackWins
			} else {
				g.outcome = WhiteWins
			}
		} else {
			g.outcome = Draw
		}
		if g.sink != nil {
			g.sink.RecordOutcome(g.outcome)
		}
	}
	return nil
}

// findLegal matches a candidate move against the legal-move set by
// source and destination square.
func (g *Game) findLegal(m chess.Move) (chess.Move, bool) {
	for _, lm := range LegalMoves(g.board, g.turn) {
		if lm.From == m.From && lm.To == m.To {
			return lm, true
		}
	}
	return chess.Move{}, false
}

// Reset reinitialises the board to the standard starting position and
// clears the turn and outcome.
func (g *Game) Reset() {
	g.board = chess.NewInitialBoard()
	g.turn = chess.White
	g.outcome = InProgress
}
