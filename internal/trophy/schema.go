// Package trophy persists match results and ranks the player on a
// trophy ladder.
package trophy

import "time"

// Entry is one recorded win.
type Entry struct {
	Game       string    // which game was won, e.g. "chess"
	Mode       string    // "singleplayer" or "multiplayer"
	Difficulty string    // difficulty name, or "friendly" for multiplayer
	Result     string    // free-form result text, e.g. "winner: white"
	WonAtUTC   time.Time `json:"-"`
}

// Schema defines the SQLite database structure.
const Schema = `
CREATE TABLE IF NOT EXISTS wins (
	win_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game TEXT NOT NULL,
	mode TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	result TEXT NOT NULL,
	won_at_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_wins_game ON wins(game);
`
