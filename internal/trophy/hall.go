package trophy

// TrophiesPerWin is awarded for every recorded win.
const TrophiesPerWin = 10

// trophiesPerLeague is the ladder step between leagues.
const trophiesPerLeague = 50

// recentLimit caps the recent-history view.
const recentLimit = 15

// leagueNames is the ladder, lowest league first.
var leagueNames = []string{
	"Arcade Beginner",
	"Highscore Hunter",
	"Neon Champion",
	"Retro Legend",
	"Synthwave Icon",
}

// Hall ranks the player on the trophy ladder backed by a Store.
type Hall struct {
	store *Store
}

// NewHall creates a hall over the given store.
func NewHall(store *Store) *Hall {
	return &Hall{store: store}
}

// AddWin records a win worth TrophiesPerWin trophies.
func (h *Hall) AddWin(game, mode, difficulty, result string) error {
	return h.store.AddWin(Entry{Game: game, Mode: mode, Difficulty: difficulty, Result: result})
}

// Trophies returns the current trophy total.
func (h *Hall) Trophies() (int, error) {
	wins, err := h.store.CountWins()
	if err != nil {
		return 0, err
	}
	return wins * TrophiesPerWin, nil
}

// LeagueName returns the name of the player's current league.
func (h *Hall) LeagueName() (string, error) {
	trophies, err := h.Trophies()
	if err != nil {
		return "", err
	}
	idx := trophies / trophiesPerLeague
	if idx >= len(leagueNames) {
		idx = len(leagueNames) - 1
	}
	return leagueNames[idx], nil
}

// ProgressToNextLeague returns the trophies gathered within the current
// league and the league's size.
func (h *Hall) ProgressToNextLeague() (current, total int, err error) {
	trophies, err := h.Trophies()
	if err != nil {
		return 0, 0, err
	}
	return trophies % trophiesPerLeague, trophiesPerLeague, nil
}

// RecentEntries returns the latest wins, newest first.
func (h *Hall) RecentEntries() ([]Entry, error) {
	return h.store.RecentEntries(recentLimit)
}
