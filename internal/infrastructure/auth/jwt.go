package auth

import (
	"errors"
	"fmt"
	"time"

	"inventify-hub/internal/domain"
	"inventify-hub/internal/ports"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued token
const TokenTTL = time.Hour

// JWTService signs and verifies HS256 identity tokens
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a token service keyed by secret
func NewJWTService(secret string) ports.TokenService {
	return newJWTService(secret, time.Now)
}

func newJWTService(secret string, now func() time.Time) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    now,
	}
}

// Issue signs the claim with a one hour expiry. The claim is not validated;
// any exp or iat it carries is replaced.
func (s *JWTService) Issue(claim domain.Claim) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{}
	for k, v := range claim {
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns its claim.
// Every failure wraps domain.ErrUnauthorized.
func (s *JWTService) Verify(tokenString string) (domain.Claim, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errors.New("token is not valid"))
	}

	return domain.Claim(claims), nil
}
