package api

import (
	"net/http"
	"net/url"

	"inventify-hub/internal/application"
	"inventify-hub/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// UserHandler serves the /users routes
type UserHandler struct {
	users  *application.UserService
	logger zerolog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *application.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := domain.User{}
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.users.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CheckAdmin handles GET /users/admin/{email}
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, h.logger, errInvalidBody)
		return
	}

	claim := domain.GetClaimFromContext(r.Context())
	if claim == nil {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	admin, err := h.users.CheckAdmin(r.Context(), claim.Email(), email)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

// Promote handles PATCH /users/admin/{id}
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	result, err := h.users.PromoteToAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
