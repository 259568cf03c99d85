package application

import (
	"context"

	"inventify-hub/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) SetRole(ctx context.Context, id string, role string) (*domain.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	result, _ := args.Get(0).(*domain.UpdateResult)
	return result, args.Error(1)
}

type mockShopRepository struct {
	mock.Mock
}

func (m *mockShopRepository) Create(ctx context.Context, shop domain.Shop) (string, error) {
	args := m.Called(ctx, shop)
	return args.String(0), args.Error(1)
}

func (m *mockShopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	shops, _ := args.Get(0).([]domain.Shop)
	return shops, args.Error(1)
}

func (m *mockShopRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Shop, error) {
	args := m.Called(ctx, ownerEmail)
	shops, _ := args.Get(0).([]domain.Shop)
	return shops, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product domain.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *mockProductRepository) ListByOwner(ctx context.Context, email string) ([]domain.Product, error) {
	args := m.Called(ctx, email)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(domain.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.UpdateResult, error) {
	args := m.Called(ctx, id, update)
	result, _ := args.Get(0).(*domain.UpdateResult)
	return result, args.Error(1)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*domain.DeleteResult)
	return result, args.Error(1)
}
