package application

import (
	"context"
	"fmt"
	"strings"

	"inventify-hub/internal/domain"
	"inventify-hub/internal/ports"

	"github.com/rs/zerolog"
)

// UserService handles user registration and role management
type UserService struct {
	userRepo ports.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns every user record
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// CreateUser registers a user unless one with the same email already exists,
// in which case the no-insert sentinel is returned and nothing is written.
// The document is stored as sent apart from role.
func (s *UserService) CreateUser(ctx context.Context, user domain.User) (*domain.InsertResult, error) {
	email := user.Email()
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email", domain.ErrMissingField)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", email).Msg("User already exists, skipping insert")
		return domain.UserExistsResult(), nil
	}

	// Role is only ever granted through PromoteToAdmin.
	delete(user, domain.FieldRole)

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("userId", id).Msg("Created new user")
	return domain.NewInsertResult(id), nil
}

// IsAdmin reports whether the stored user with email holds the admin role.
// A missing user is not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user role: %w", err)
	}
	return user.IsAdmin(), nil
}

// CheckAdmin answers "is email an admin" on behalf of callerEmail.
// Callers may only ask about themselves.
func (s *UserService) CheckAdmin(ctx context.Context, callerEmail, email string) (bool, error) {
	if email != callerEmail {
		s.logger.Warn().
			Str("caller", callerEmail).
			Str("requested", email).
			Msg("Admin check for another user's email rejected")
		return false, domain.ErrForbidden
	}
	return s.IsAdmin(ctx, email)
}

// PromoteToAdmin grants the admin role to the user with the given id
func (s *UserService) PromoteToAdmin(ctx context.Context, id string) (*domain.UpdateResult, error) {
	result, err := s.userRepo.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", id).
		Int64("matched", result.MatchedCount).
		Int64("modified", result.ModifiedCount).
		Msg("Promoted user to admin")
	return result, nil
}
