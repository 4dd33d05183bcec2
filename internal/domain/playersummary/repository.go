package playersummary

import "context"

// Repository describes player-summary persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Summary, error)
	// Replace recomputes the whole season wholesale inside one transaction.
	Replace(ctx context.Context, seasonID int64, items []Summary) error
}
