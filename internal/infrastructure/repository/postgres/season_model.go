package postgres

import "time"

type seasonTableModel struct {
	ID        int64     `db:"id"`
	Label     string    `db:"label"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type seasonInsertModel struct {
	Label string `db:"label"`
}
