package application

import (
	"context"

	"inventify-hub/internal/domain"
	"inventify-hub/internal/ports"

	"github.com/rs/zerolog"
)

// ProductService handles product persistence
type ProductService struct {
	productRepo ports.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProduct inserts a product as given
func (s *ProductService) CreateProduct(ctx context.Context, product domain.Product) (*domain.InsertResult, error) {
	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("productId", id).Str("email", product.Email()).Msg("Created product")
	return domain.NewInsertResult(id), nil
}

// ListProducts returns the products owned by email.
// email comes from the query string and is not checked against the caller.
func (s *ProductService) ListProducts(ctx context.Context, email string) ([]domain.Product, error) {
	s.logger.Debug().Str("email", email).Msg("Listing products by unverified owner email")
	return s.productRepo.ListByOwner(ctx, email)
}

// GetProduct returns the product with id, or nil when it does not exist
func (s *ProductService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.productRepo.Get(ctx, id)
}

// UpdateProduct overwrites the mutable fields of the product with id with
// the values in update, as sent
func (s *ProductService) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (*domain.UpdateResult, error) {
	result, err := s.productRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("productId", id).Int64("modified", result.ModifiedCount).Msg("Updated product")
	return result, nil
}

// DeleteProduct removes the product with id
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*domain.DeleteResult, error) {
	result, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("productId", id).Int64("deleted", result.DeletedCount).Msg("Deleted product")
	return result, nil
}
