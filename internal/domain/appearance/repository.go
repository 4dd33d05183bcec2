package appearance

import "context"

// Repository describes appearance persistence needs from use cases.
type Repository interface {
	BulkInsert(ctx context.Context, items []Appearance) error
	ListBySeason(ctx context.Context, seasonID int64) ([]Appearance, error)
	// MarkExpectedClean flags every eligible appearance of (match, team):
	// started and minutes at or above minMinutes. Idempotent. Returns the
	// number of rows touched by the update.
	MarkExpectedClean(ctx context.Context, matchID, teamID int64, minMinutes int) (int64, error)
	// MarkExpectedNonBlank flags season appearances that are expected to
	// return fantasy points: already expected-clean, or expected goal
	// involvement at or above minXGI. Idempotent.
	MarkExpectedNonBlank(ctx context.Context, seasonID int64, minXGI float64) (int64, error)
}
