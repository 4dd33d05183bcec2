package postgres

import "time"

type playerSummaryTableModel struct {
	SeasonID          int64     `db:"season_id"`
	PlayerID          int64     `db:"player_id"`
	PlayerName        string    `db:"player_name"`
	TimesInSquad      int       `db:"times_in_squad"`
	TimesStarted      int       `db:"times_started"`
	TotalMinutes      int       `db:"total_minutes"`
	NonBlanks         int       `db:"non_blanks"`
	NonBlanksPerSquad float64   `db:"non_blanks_per_squad"`
	NonBlanksPerStart float64   `db:"non_blanks_per_start"`
	UpdatedAt         time.Time `db:"updated_at"`
}
