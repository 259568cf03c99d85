package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"inventify-hub/internal/domain"
	"inventify-hub/internal/ports"

	"github.com/rs/zerolog"
)

// RoleChecker reports whether the user with email holds the admin role
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// VerifyToken rejects requests without a valid bearer token and stores the
// decoded claim in the request context for downstream handlers.
func VerifyToken(tokens ports.TokenService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeMessage(w, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
				return
			}

			claim, err := tokens.Verify(bearerToken(header))
			if err != nil {
				logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Token verification failed")
				writeMessage(w, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
				return
			}

			ctx := domain.WithClaim(r.Context(), claim)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VerifyTokenWhen applies VerifyToken only to requests matching cond;
// other requests pass through unauthenticated.
func VerifyTokenWhen(cond func(*http.Request) bool, tokens ports.TokenService, logger zerolog.Logger) func(http.Handler) http.Handler {
	verify := VerifyToken(tokens, logger)
	return func(next http.Handler) http.Handler {
		verified := verify(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cond(r) {
				verified.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasQueryParam matches requests carrying a non-empty query parameter name
func HasQueryParam(name string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return r.URL.Query().Get(name) != ""
	}
}

// VerifyAdmin must be mounted after VerifyToken. It takes the email from the
// verified claim, never from the request, and re-reads the role on every call.
func VerifyAdmin(roles RoleChecker, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claim := domain.GetClaimFromContext(r.Context())
			if claim == nil {
				logger.Error().Str("path", r.URL.Path).Msg("VerifyAdmin reached without a verified claim")
				writeMessage(w, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
				return
			}

			isAdmin, err := roles.IsAdmin(r.Context(), claim.Email())
			if err != nil {
				logger.Error().Err(err).Str("email", claim.Email()).Msg("Failed to check admin role")
				writeMessage(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !isAdmin {
				logger.Warn().Str("email", claim.Email()).Str("path", r.URL.Path).Msg("Admin access denied")
				writeMessage(w, http.StatusForbidden, domain.ErrForbidden.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken returns the second whitespace-delimited segment of header
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
