package application

import (
	"context"

	"inventify-hub/internal/domain"
	"inventify-hub/internal/ports"

	"github.com/rs/zerolog"
)

// ShopService handles shop persistence
type ShopService struct {
	shopRepo ports.ShopRepository
	logger   zerolog.Logger
}

// NewShopService creates a new shop service
func NewShopService(shopRepo ports.ShopRepository, logger zerolog.Logger) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// CreateShop inserts a shop as given
func (s *ShopService) CreateShop(ctx context.Context, shop domain.Shop) (*domain.InsertResult, error) {
	id, err := s.shopRepo.Create(ctx, shop)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("shopId", id).Str("ownerEmail", shop.OwnerEmail()).Msg("Created shop")
	return domain.NewInsertResult(id), nil
}

// ListShops returns all shops, or only those owned by ownerEmail when it is set.
// ownerEmail comes from the query string and is not checked against the caller.
func (s *ShopService) ListShops(ctx context.Context, ownerEmail string) ([]domain.Shop, error) {
	if ownerEmail == "" {
		return s.shopRepo.List(ctx)
	}

	s.logger.Debug().Str("ownerEmail", ownerEmail).Msg("Listing shops by unverified owner email")
	return s.shopRepo.ListByOwner(ctx, ownerEmail)
}
