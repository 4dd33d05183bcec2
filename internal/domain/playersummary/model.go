package playersummary

import "fmt"

// Summary is one player's aggregated season line: squad/start/minute counts
// plus expected non-blank totals and the derived per-appearance ratios.
type Summary struct {
	SeasonID     int64
	PlayerID     int64
	PlayerName   string
	TimesInSquad int
	TimesStarted int
	TotalMinutes int
	NonBlanks    int
	// Ratios are defined as 0 when the denominator is 0.
	NonBlanksPerSquad float64
	NonBlanksPerStart float64
}

func (s Summary) Validate() error {
	if s.SeasonID <= 0 {
		return fmt.Errorf("summary season id is required")
	}
	if s.PlayerID <= 0 {
		return fmt.Errorf("summary player id is required")
	}

	return nil
}
