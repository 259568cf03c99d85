package ports

import (
	"context"

	"inventify-hub/internal/domain"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (string, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Product, error)

	// Get returns the product with the given id, or nil if none exists
	Get(ctx context.Context, id string) (domain.Product, error)

	Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
