package postgres

import "time"

type standingsTableModel struct {
	SeasonID            int64     `db:"season_id"`
	TeamID              int64     `db:"team_id"`
	TeamName            string    `db:"team_name"`
	ExpectedCleanSheets int       `db:"expected_clean_sheets"`
	UpdatedAt           time.Time `db:"updated_at"`
}
