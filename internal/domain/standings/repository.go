package standings

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Row, error)
	// Replace deletes the existing rows for (season, team) and inserts the
	// fresh ones inside a single transaction, so a partial replace is
	// never observable.
	Replace(ctx context.Context, seasonID int64, rows []Row) error
}
