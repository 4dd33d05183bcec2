package fixture

import "fmt"

// Match is one played or scheduled fixture. Created once by the match
// importer; the expected-goals updater later fills npxG and the per-side
// expected-clean flags in place. Rows are never deleted.
type Match struct {
	ID           int64
	SeasonID     int64
	Gameweek     *int
	HomeTeamID   int64
	AwayTeamID   int64
	HomeTeamName string
	AwayTeamName string
	HomeNpxG     *float64
	AwayNpxG     *float64
	// HomeExpectedClean means the home side is expected to keep a clean
	// sheet, i.e. the away side's npxG is at or below the threshold.
	HomeExpectedClean bool
	AwayExpectedClean bool
	// ReportURL is the absolute match-report URL, the natural join key
	// against snapshot data.
	ReportURL string
}

func (m Match) Validate() error {
	if m.SeasonID <= 0 {
		return fmt.Errorf("match season id is required")
	}
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match cannot pair a team with itself")
	}

	return nil
}
