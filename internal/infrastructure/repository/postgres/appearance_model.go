package postgres

import (
	"database/sql"
	"time"

	"github.com/fplstats/cleansheets/internal/domain/appearance"
)

type appearanceTableModel struct {
	ID                      int64         `db:"id"`
	MatchID                 int64         `db:"match_id"`
	TeamID                  int64         `db:"team_id"`
	PlayerID                int64         `db:"player_id"`
	InSquad                 bool          `db:"in_squad"`
	Started                 bool          `db:"started"`
	Minutes                 sql.NullInt64 `db:"minutes"`
	NpxG                    float64       `db:"npxg"`
	XAG                     float64       `db:"xag"`
	ExpectedGoalInvolvement float64       `db:"expected_goal_involvement"`
	ExpectedClean           bool          `db:"expected_clean"`
	ExpectedNonBlank        bool          `db:"expected_non_blank"`
	FantasyPosition         string        `db:"fantasy_position"`
	CreatedAt               time.Time     `db:"created_at"`
	UpdatedAt               time.Time     `db:"updated_at"`
}

// appearanceInsertModel carries only the columns the importer writes, so
// it can feed the reflective multi-row insert helper directly.
type appearanceInsertModel struct {
	MatchID                 int64         `db:"match_id"`
	TeamID                  int64         `db:"team_id"`
	PlayerID                int64         `db:"player_id"`
	InSquad                 bool          `db:"in_squad"`
	Started                 bool          `db:"started"`
	Minutes                 sql.NullInt64 `db:"minutes"`
	NpxG                    float64       `db:"npxg"`
	XAG                     float64       `db:"xag"`
	ExpectedGoalInvolvement float64       `db:"expected_goal_involvement"`
	ExpectedClean           bool          `db:"expected_clean"`
	ExpectedNonBlank        bool          `db:"expected_non_blank"`
	FantasyPosition         string        `db:"fantasy_position"`
}

func appearanceInsertFromDomain(item appearance.Appearance) appearanceInsertModel {
	row := appearanceInsertModel{
		MatchID:                 item.MatchID,
		TeamID:                  item.TeamID,
		PlayerID:                item.PlayerID,
		InSquad:                 item.InSquad,
		Started:                 item.Started,
		NpxG:                    item.NpxG,
		XAG:                     item.XAG,
		ExpectedGoalInvolvement: item.ExpectedGoalInvolvement,
		ExpectedClean:           item.ExpectedClean,
		ExpectedNonBlank:        item.ExpectedNonBlank,
		FantasyPosition:         item.FantasyPosition,
	}
	if item.Minutes != nil {
		row.Minutes = sql.NullInt64{Int64: int64(*item.Minutes), Valid: true}
	}
	return row
}

func appearanceFromRow(row appearanceTableModel) appearance.Appearance {
	out := appearance.Appearance{
		ID:                      row.ID,
		MatchID:                 row.MatchID,
		TeamID:                  row.TeamID,
		PlayerID:                row.PlayerID,
		InSquad:                 row.InSquad,
		Started:                 row.Started,
		NpxG:                    row.NpxG,
		XAG:                     row.XAG,
		ExpectedGoalInvolvement: row.ExpectedGoalInvolvement,
		ExpectedClean:           row.ExpectedClean,
		ExpectedNonBlank:        row.ExpectedNonBlank,
		FantasyPosition:         row.FantasyPosition,
	}
	if row.Minutes.Valid {
		minutes := int(row.Minutes.Int64)
		out.Minutes = &minutes
	}
	return out
}
