package api

import (
	"net/http"

	"inventify-hub/internal/application"
	"inventify-hub/internal/domain"

	"github.com/rs/zerolog"
)

// ShopHandler serves the /shops routes
type ShopHandler struct {
	shops  *application.ShopService
	logger zerolog.Logger
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shops *application.ShopService, logger zerolog.Logger) *ShopHandler {
	return &ShopHandler{shops: shops, logger: logger}
}

// Create handles POST /shops
func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	shop := domain.Shop{}
	if err := decodeJSON(r, &shop); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.shops.CreateShop(r.Context(), shop)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// List handles GET /shops and GET /shops?email=
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shops.ListShops(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}
