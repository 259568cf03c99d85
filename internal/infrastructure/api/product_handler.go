package api

import (
	"net/http"

	"inventify-hub/internal/application"
	"inventify-hub/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler serves the /products routes
type ProductHandler struct {
	products *application.ProductService
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *application.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	product := domain.Product{}
	if err := decodeJSON(r, &product); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.products.CreateProduct(r.Context(), product)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// List handles GET /products?email=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}. A missing product is encoded as null.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Update handles PATCH /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	update := domain.NewProductUpdate(body)
	result, err := h.products.UpdateProduct(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.products.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
