package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goldcrust/storefront/internal/cart"
	"github.com/goldcrust/storefront/internal/middleware"
	"github.com/goldcrust/storefront/internal/service"
	"github.com/shopspring/decimal"
)

// CartHandler exposes the session cart.
type CartHandler struct {
	catalog *service.CatalogService
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(catalog *service.CatalogService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		log:     log,
	}
}

// cartView is the cart as the UI renders it; totals are derived from the
// lines on every request.
type cartView struct {
	Lines     []cart.Line     `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{
		Lines:     c.Lines(),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"` // omitted means 1
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, viewOf(sess.Cart))
}

// AddItem handles POST /api/cart/items. An existing line for the product has
// the quantity merged in; a new product appends a line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error("failed to resolve product for cart", "product_id", req.ProductID, "error", err)
		writeError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
		return
	}

	if !product.Available {
		writeError(w, http.StatusConflict, "Product is not available")
		return
	}

	if err := sess.Cart.AddItem(*product, quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			writeError(w, http.StatusBadRequest, "Quantity must be positive")
			return
		}
		h.log.Error("failed to add cart item", "product_id", req.ProductID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, viewOf(sess.Cart))
}

// SetQuantity handles PUT /api/cart/items/{productId}. A quantity of zero or
// below removes the line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	productID := chi.URLParam(r, "productId")

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Cart.SetQuantity(productID, req.Quantity)
	writeJSON(w, http.StatusOK, viewOf(sess.Cart))
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	sess.Cart.RemoveItem(chi.URLParam(r, "productId"))
	writeJSON(w, http.StatusOK, viewOf(sess.Cart))
}
