package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goldcrust/storefront/internal/models"
	"github.com/goldcrust/storefront/internal/service"
)

// ReviewHandler serves the public review surface.
type ReviewHandler struct {
	reviews *service.ReviewService
	log     *slog.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *service.ReviewService, log *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		log:     log,
	}
}

// ListReviews handles GET /api/reviews. Only approved reviews are served to
// the public surface; moderation lives behind the admin routes.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, degraded, err := h.reviews.ListApproved(r.Context(), r.URL.Query().Get("product_id"))
	if err != nil {
		h.log.Error("failed to list reviews", "error", err)
		writeError(w, http.StatusBadGateway, "Reviews are temporarily unavailable")
		return
	}

	markFallback(w, degraded)
	writeJSON(w, http.StatusOK, reviews)
}

// SubmitReview handles POST /api/reviews. The created review is unapproved
// and invisible until an admin approves it.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviews.Submit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingReviewName),
			errors.Is(err, service.ErrMissingComment),
			errors.Is(err, service.ErrInvalidRating):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("failed to submit review", "error", err)
			writeError(w, http.StatusBadGateway, "Error submitting review. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, review)
}
