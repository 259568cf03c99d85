package api

import (
	"net/http"

	"inventify-hub/internal/domain"
	"inventify-hub/internal/ports"

	"github.com/rs/zerolog"
)

// AuthHandler issues tokens
type AuthHandler struct {
	tokens ports.TokenService
	logger zerolog.Logger
}

// NewAuthHandler creates a new token issuing handler
func NewAuthHandler(tokens ports.TokenService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, logger: logger}
}

// IssueToken handles POST /jwt. The body is signed as-is.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	claim := domain.Claim{}
	if err := decodeJSON(r, &claim); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(claim)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Debug().Str("email", claim.Email()).Msg("Issued token")
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
