package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                int64           `db:"id"`
	SeasonID          int64           `db:"season_id"`
	Gameweek          sql.NullInt64   `db:"gameweek"`
	HomeTeamID        int64           `db:"home_team_id"`
	AwayTeamID        int64           `db:"away_team_id"`
	HomeTeamName      string          `db:"home_team_name"`
	AwayTeamName      string          `db:"away_team_name"`
	HomeNpxG          sql.NullFloat64 `db:"home_npxg"`
	AwayNpxG          sql.NullFloat64 `db:"away_npxg"`
	HomeExpectedClean bool            `db:"home_expected_clean"`
	AwayExpectedClean bool            `db:"away_expected_clean"`
	ReportURL         string          `db:"report_url"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

type matchInsertModel struct {
	SeasonID     int64  `db:"season_id"`
	Gameweek     *int   `db:"gameweek"`
	HomeTeamID   int64  `db:"home_team_id"`
	AwayTeamID   int64  `db:"away_team_id"`
	HomeTeamName string `db:"home_team_name"`
	AwayTeamName string `db:"away_team_name"`
	ReportURL    string `db:"report_url"`
}
