// Package server exposes the game engines over HTTP. One process hosts
// many concurrent games, each addressed by a generated id.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lmeyer/gamehall/internal/ai"
	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/engine"
	"github.com/lmeyer/gamehall/internal/errors"
	"github.com/lmeyer/gamehall/internal/tictactoe"
	"github.com/lmeyer/gamehall/internal/trophy"
)

// chessSession pairs a game with the engine playing the computer side.
type chessSession struct {
	game       *engine.Game
	eng        *ai.Engine
	difficulty ai.Difficulty
	human      chess.Color
	lastAIMove string
}

// trophySink feeds terminal outcomes into the trophy hall. It is
// registered on each game as its result sink, so win recording rides
// the state machine's own termination hook.
type trophySink struct {
	hall       *trophy.Hall
	game       string
	difficulty ai.Difficulty
	human      chess.Color
}

func (t *trophySink) RecordOutcome(o engine.Outcome) {
	winner, ok := o.Winner()
	if !ok || winner != t.human {
		return
	}
	// Best effort: a storage failure never fails the move that won.
	_ = t.hall.AddWin(t.game, "singleplayer", t.difficulty.String(), "checkmate")
}

type tttSession struct {
	game       *tictactoe.Game
	difficulty ai.Difficulty
}

// Service holds the live game sessions and the trophy hall. All methods
// are safe for concurrent use.
type Service struct {
	mu      sync.Mutex
	chess   map[string]*chessSession
	ttt     map[string]*tttSession
	hall    *trophy.Hall
	workers int
}

// NewService creates a service backed by hall, which must not be nil;
// callers that do not want durable trophies pass a hall over an
// in-memory store. workers sets the search parallelism for
// hard-difficulty chess games.
func NewService(hall *trophy.Hall, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		chess:   make(map[string]*chessSession),
		ttt:     make(map[string]*tttSession),
		hall:    hall,
		workers: workers,
	}
}

// NewChessGame starts a chess game at the requested difficulty. The
// human plays colorStr ("white" when empty); when the human takes
// Black the engine makes the opening move before the state is returned.
func (s *Service) NewChessGame(difficulty, colorStr string) (ChessStateResponse, error) {
	diff, err := ai.ParseDifficulty(difficulty)
	if err != nil {
		return ChessStateResponse{}, err
	}
	human := chess.White
	if colorStr == "black" {
		human = chess.Black
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	sess := &chessSession{
		game:       engine.NewGame(),
		eng:        ai.NewEngine(ai.WithWorkers(s.workers)),
		difficulty: diff,
		human:      human,
	}
	sess.game.SetResultSink(&trophySink{
		hall:       s.hall,
		game:       "chess",
		difficulty: diff,
		human:      human,
	})
	s.chess[id] = sess

	if human == chess.Black {
		if err := s.aiReply(sess); err != nil {
			return ChessStateResponse{}, err
		}
	}
	return s.chessState(id, sess), nil
}

// aiReply lets the engine move for the side to move.
func (s *Service) aiReply(sess *chessSession) error {
	reply, err := sess.eng.ChooseMove(sess.game.Board(), sess.game.Turn(), sess.difficulty)
	if err != nil {
		return err
	}
	if err := sess.game.MakeMove(reply); err != nil {
		return err
	}
	sess.lastAIMove = reply.String()
	return nil
}

// ChessState returns the current state of the game with the given id.
func (s *Service) ChessState(id string) (ChessStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.chess[id]
	if !ok {
		return ChessStateResponse{}, fmt.Errorf("chess game %q: %w", id, errors.ErrGameNotFound)
	}
	return s.chessState(id, sess), nil
}

// ChessLegalMoves returns the legal moves of the side to move.
func (s *Service) ChessLegalMoves(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.chess[id]
	if !ok {
		return nil, fmt.Errorf("chess game %q: %w", id, errors.ErrGameNotFound)
	}
	moves := sess.game.LegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out, nil
}

// PlayChessMove applies the human's move and, if the game continues,
// the engine's reply. A human win is recorded in the trophy hall.
func (s *Service) PlayChessMove(id, moveStr string) (ChessStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.chess[id]
	if !ok {
		return ChessStateResponse{}, fmt.Errorf("chess game %q: %w", id, errors.ErrGameNotFound)
	}

	move, err := chess.ParseMove(moveStr)
	if err != nil {
		return ChessStateResponse{}, err
	}
	if err := sess.game.MakeMove(move); err != nil {
		return ChessStateResponse{}, err
	}
	sess.lastAIMove = ""

	if !sess.game.IsOver() {
		if err := s.aiReply(sess); err != nil {
			return ChessStateResponse{}, err
		}
	}
	return s.chessState(id, sess), nil
}

// ResetChess restarts the game in place, keeping its id, difficulty and
// colours. When the human plays Black the engine opens again.
func (s *Service) ResetChess(id string) (ChessStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.chess[id]
	if !ok {
		return ChessStateResponse{}, fmt.Errorf("chess game %q: %w", id, errors.ErrGameNotFound)
	}

	sess.game.Reset()
	sess.lastAIMove = ""
	if sess.human == chess.Black {
		if err := s.aiReply(sess); err != nil {
			return ChessStateResponse{}, err
		}
	}
	return s.chessState(id, sess), nil
}

// NewTTTGame starts a tic-tac-toe game, human as X.
func (s *Service) NewTTTGame(difficulty string) (TTTStateResponse, error) {
	diff, err := ai.ParseDifficulty(difficulty)
	if err != nil {
		return TTTStateResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.ttt[id] = &tttSession{game: tictactoe.NewGame(diff, nil), difficulty: diff}
	return s.tttState(id, s.ttt[id]), nil
}

// TTTState returns the current state of a tic-tac-toe game.
func (s *Service) TTTState(id string) (TTTStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.ttt[id]
	if !ok {
		return TTTStateResponse{}, fmt.Errorf("tic-tac-toe game %q: %w", id, errors.ErrGameNotFound)
	}
	return s.tttState(id, sess), nil
}

// PlayTTTMove places the human's mark; the computer replies in the same
// call. A human win is recorded in the trophy hall.
func (s *Service) PlayTTTMove(id string, cell tictactoe.Cell) (TTTStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.ttt[id]
	if !ok {
		return TTTStateResponse{}, fmt.Errorf("tic-tac-toe game %q: %w", id, errors.ErrGameNotFound)
	}
	if err := sess.game.PlayHuman(cell); err != nil {
		return TTTStateResponse{}, err
	}
	if sess.game.Winner() == tictactoe.X {
		// Best effort, as with chess wins.
		_ = s.hall.AddWin("tictactoe", "singleplayer", sess.difficulty.String(), "three in a row")
	}
	return s.tttState(id, sess), nil
}

// Trophies summarizes the trophy hall.
func (s *Service) Trophies() (TrophyResponse, error) {
	trophies, err := s.hall.Trophies()
	if err != nil {
		return TrophyResponse{}, err
	}
	league, err := s.hall.LeagueName()
	if err != nil {
		return TrophyResponse{}, err
	}
	progress, needed, err := s.hall.ProgressToNextLeague()
	if err != nil {
		return TrophyResponse{}, err
	}

	entries, err := s.hall.RecentEntries()
	if err != nil {
		return TrophyResponse{}, err
	}
	recent := make([]TrophyEntry, len(entries))
	for i, e := range entries {
		recent[i] = TrophyEntry{
			Game:       e.Game,
			Mode:       e.Mode,
			Difficulty: e.Difficulty,
			Result:     e.Result,
			WonAt:      e.WonAtUTC.Format(time.RFC3339),
		}
	}
	return TrophyResponse{
		Wins:     trophies / trophy.TrophiesPerWin,
		Trophies: trophies,
		League:   league,
		Progress: progress,
		Needed:   needed,
		Recent:   recent,
	}, nil
}

func (s *Service) chessState(id string, sess *chessSession) ChessStateResponse {
	g := sess.game
	return ChessStateResponse{
		ID:         id,
		Difficulty: sess.difficulty.String(),
		HumanColor: sess.human.String(),
		Board:      g.Board().String(),
		Turn:       g.Turn().String(),
		InCheck:    g.InCheck(),
		Outcome:    g.Outcome().String(),
		Over:       g.IsOver(),
		AIMove:     sess.lastAIMove,
	}
}

func (s *Service) tttState(id string, sess *tttSession) TTTStateResponse {
	g := sess.game
	return TTTStateResponse{
		ID:         id,
		Difficulty: sess.difficulty.String(),
		Board:      marksToStrings(g.Board()),
		Winner:     g.Winner().String(),
		Draw:       g.IsDraw(),
		Over:       g.IsOver(),
	}
}
