package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// promoValidator is the interface for promo code validation
type promoValidator interface {
	IsValid(ctx context.Context, code string) bool
	Enabled() bool
	GetStats() map[string]interface{}
}

// PromoHandler handles HTTP requests for promo code validation
type PromoHandler struct {
	validator promoValidator
}

// NewPromoHandler creates a new PromoHandler
func NewPromoHandler(validator promoValidator) *PromoHandler {
	return &PromoHandler{
		validator: validator,
	}
}

// ValidateCode handles GET /api/promo/{promoCode}. Validity is advisory for
// the UI; it never changes what gets submitted with an order.
func (h *PromoHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "promoCode")

	if h.validator.IsValid(r.Context(), code) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid": true,
			"code":  code,
		})
		return
	}

	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"valid":   false,
		"code":    code,
		"message": "Promo code not found or invalid",
	})
}

// GetStats handles GET /api/promo/stats (admin, for monitoring the loaded lists)
func (h *PromoHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.validator.GetStats()
	stats["enabled"] = h.validator.Enabled()
	writeJSON(w, http.StatusOK, stats)
}
