package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goldcrust/storefront/internal/backend"
	"github.com/goldcrust/storefront/internal/service"
)

// AdminHandler serves the back-office routes, all API-key protected.
type AdminHandler struct {
	admin *service.AdminService
	log   *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin *service.AdminService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		log:   log,
	}
}

// ListOrders handles GET /api/orders, optionally filtered by ?status=.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.admin.Orders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		writeError(w, http.StatusBadGateway, "Orders are temporarily unavailable")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// ApproveReview handles PUT /api/reviews/{reviewId}/approve
func (h *AdminHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewId")

	review, err := h.admin.ApproveReview(r.Context(), reviewID)
	if err != nil {
		h.writeModerationError(w, "approve review", reviewID, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/reviews/{reviewId}
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewId")

	if err := h.admin.DeleteReview(r.Context(), reviewID); err != nil {
		h.writeModerationError(w, "delete review", reviewID, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}

// Dashboard handles GET /api/analytics/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, degraded, err := h.admin.Dashboard(r.Context())
	if err != nil {
		h.log.Error("failed to fetch dashboard stats", "error", err)
		writeError(w, http.StatusBadGateway, "Dashboard is temporarily unavailable")
		return
	}

	markFallback(w, degraded)
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) writeModerationError(w http.ResponseWriter, op, reviewID string, err error) {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}

	h.log.Error("failed to "+op, "review_id", reviewID, "error", err)
	writeError(w, http.StatusBadGateway, "Review moderation is temporarily unavailable")
}
