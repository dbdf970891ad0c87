package server

import "github.com/lmeyer/gamehall/internal/tictactoe"

// NewGameRequest starts a chess or tic-tac-toe game. Color picks the
// human's side in chess and defaults to white; tic-tac-toe ignores it.
type NewGameRequest struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Color      string `json:"color" validate:"omitempty,oneof=white black"`
}

// ChessMoveRequest plays one human move in coordinate notation.
type ChessMoveRequest struct {
	Move string `json:"move" validate:"required,min=4,max=5"`
}

// TTTMoveRequest places the human's mark.
type TTTMoveRequest struct {
	Row int `json:"row" validate:"min=0,max=2"`
	Col int `json:"col" validate:"min=0,max=2"`
}

// ChessStateResponse is the full state of one chess game.
type ChessStateResponse struct {
	ID         string `json:"id"`
	Difficulty string `json:"difficulty"`
	HumanColor string `json:"human_color"`
	Board      string `json:"board"`
	Turn       string `json:"turn"`
	InCheck    bool   `json:"in_check"`
	Outcome    string `json:"outcome"`
	Over       bool   `json:"over"`
	AIMove     string `json:"ai_move,omitempty"`
}

// TTTStateResponse is the full state of one tic-tac-toe game.
type TTTStateResponse struct {
	ID         string      `json:"id"`
	Difficulty string      `json:"difficulty"`
	Board      [3][3]string `json:"board"`
	Winner     string      `json:"winner,omitempty"`
	Draw       bool        `json:"draw"`
	Over       bool        `json:"over"`
}

// TrophyResponse summarizes the player's trophy hall.
type TrophyResponse struct {
	Wins     int           `json:"wins"`
	Trophies int           `json:"trophies"`
	League   string        `json:"league"`
	Progress int           `json:"progress"`
	Needed   int           `json:"needed"`
	Recent   []TrophyEntry `json:"recent"`
}

// TrophyEntry is one recorded win.
type TrophyEntry struct {
	Game       string `json:"game"`
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
	Result     string `json:"result"`
	WonAt      string `json:"won_at"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func marksToStrings(board [3][3]tictactoe.Mark) [3][3]string {
	var out [3][3]string
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = board[r][c].String()
		}
	}
	return out
}
