package appearance

import "fmt"

// MinMinutesForCleanSheet is the eligibility bar: a clean sheet only counts
// for a player who started and played at least this many minutes.
const MinMinutesForCleanSheet = 60

// Appearance is one (match, player) row from a source snapshot. Inserted by
// the importer in a placeholder state (derived flags false, fantasy position
// unknown) and mutated by the propagator once match-level flags are known.
type Appearance struct {
	ID       int64
	MatchID  int64
	TeamID   int64
	PlayerID int64
	InSquad  bool
	Started  bool
	Minutes  *int
	NpxG     float64
	XAG      float64
	// ExpectedGoalInvolvement is npxG + xAG, computed at import time.
	ExpectedGoalInvolvement float64
	ExpectedClean           bool
	ExpectedNonBlank        bool
	FantasyPosition         string
}

func (a Appearance) Validate() error {
	if a.MatchID <= 0 {
		return fmt.Errorf("appearance match id is required")
	}
	if a.TeamID <= 0 {
		return fmt.Errorf("appearance team id is required")
	}
	if a.PlayerID <= 0 {
		return fmt.Errorf("appearance player id is required")
	}
	if a.Minutes != nil && *a.Minutes < 0 {
		return fmt.Errorf("appearance minutes cannot be negative")
	}

	return nil
}
