package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goldcrust/storefront/internal/service"
)

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	catalog *service.CatalogService
	log     *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *service.CatalogService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     log,
	}
}

// ListProducts handles GET /api/products
// Query params: category (optional), available_only (default true).
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	availableOnly := true
	if v := r.URL.Query().Get("available_only"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid available_only value")
			return
		}
		availableOnly = parsed
	}

	products, degraded, err := h.catalog.ListProducts(r.Context(), r.URL.Query().Get("category"), availableOnly)
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		writeError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
		return
	}

	markFallback(w, degraded)
	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{productId}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error("failed to get product", "product_id", productID, "error", err)
		writeError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
		return
	}

	writeJSON(w, http.StatusOK, product)
}
