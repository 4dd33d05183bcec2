package standings

import "fmt"

// Row is one team's materialized expected-clean-sheet total for a season.
// Recomputed wholesale per run: replace, never patch.
type Row struct {
	SeasonID            int64
	TeamID              int64
	TeamName            string
	ExpectedCleanSheets int
}

func (r Row) Validate() error {
	if r.SeasonID <= 0 {
		return fmt.Errorf("standings season id is required")
	}
	if r.TeamID <= 0 {
		return fmt.Errorf("standings team id is required")
	}
	if r.ExpectedCleanSheets < 0 {
		return fmt.Errorf("standings total cannot be negative")
	}

	return nil
}
