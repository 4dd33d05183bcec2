package fixture

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Match, error)
	Exists(ctx context.Context, seasonID, homeTeamID, awayTeamID int64) (bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	// UpdateExpectedGoals locates the match by exact report URL and sets
	// npxG plus the derived per-side clean flags. Returns the number of
	// rows updated so the caller can report an unmatched URL.
	UpdateExpectedGoals(ctx context.Context, reportURL string, homeNpxG, awayNpxG float64, homeClean, awayClean bool) (int64, error)
}
