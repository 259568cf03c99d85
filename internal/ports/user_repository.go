package ports

import (
	"context"

	"inventify-hub/internal/domain"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// List returns every user record
	List(ctx context.Context) ([]domain.User, error)

	// GetByEmail returns the user with the given email, or nil if none exists
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a user and returns the new id
	Create(ctx context.Context, user domain.User) (string, error)

	// SetRole sets the role of the user with the given id
	SetRole(ctx context.Context, id string, role string) (*domain.UpdateResult, error)
}
