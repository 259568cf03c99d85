package ports

import "inventify-hub/internal/domain"

// TokenService issues and verifies signed identity tokens
type TokenService interface {
	Issue(claim domain.Claim) (string, error)
	Verify(token string) (domain.Claim, error)
}
