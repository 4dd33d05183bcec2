package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	GetByLabel(ctx context.Context, label string) (Season, bool, error)
	Create(ctx context.Context, label string) (Season, error)
}
