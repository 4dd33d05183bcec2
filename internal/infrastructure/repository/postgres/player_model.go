package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	TeamID          int64           `db:"team_id"`
	Position        sql.NullString  `db:"position"`
	FantasyPosition string          `db:"fantasy_position"`
	Price           sql.NullFloat64 `db:"price"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type playerInsertModel struct {
	Name            string `db:"name"`
	TeamID          int64  `db:"team_id"`
	FantasyPosition string `db:"fantasy_position"`
}
