package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Player, error)
	Create(ctx context.Context, item Player) (Player, error)
	UpdatePricing(ctx context.Context, playerID int64, position string, fantasyPosition FantasyPosition, price float64) error
}
