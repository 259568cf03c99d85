package ports

import (
	"context"

	"inventify-hub/internal/domain"
)

// ShopRepository defines the interface for shop persistence
type ShopRepository interface {
	Create(ctx context.Context, shop domain.Shop) (string, error)
	List(ctx context.Context) ([]domain.Shop, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Shop, error)
}
