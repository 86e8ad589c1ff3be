package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/goldcrust/storefront/internal/demo"
	"github.com/goldcrust/storefront/internal/models"
)

var (
	ErrMissingReviewName = errors.New("reviewer name is required")
	ErrMissingComment    = errors.New("review comment is required")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// BackendReviews is the slice of the backend client the review flow needs.
type BackendReviews interface {
	ListReviews(ctx context.Context, approvedOnly bool, productID string) ([]models.Review, error)
	SubmitReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error)
}

// ReviewService lists approved reviews for display and submits new ones.
// Listing gets the same demo fallback as the catalog; submission never falls
// back because a fabricated acknowledgement would be a lie.
type ReviewService struct {
	backend  BackendReviews
	fallback bool
	log      *slog.Logger
}

// NewReviewService creates a review service.
func NewReviewService(b BackendReviews, fallback bool, log *slog.Logger) *ReviewService {
	return &ReviewService{
		backend:  b,
		fallback: fallback,
		log:      log,
	}
}

// ListApproved returns the approved reviews, optionally for one product. The
// degraded flag is true when served from the sample dataset.
func (s *ReviewService) ListApproved(ctx context.Context, productID string) ([]models.Review, bool, error) {
	reviews, err := s.backend.ListReviews(ctx, true, productID)
	if err == nil {
		return reviews, false, nil
	}

	if !s.fallback {
		return nil, false, err
	}

	s.log.Warn("review fetch failed, serving demo fallback data", "error", err)

	sample := demo.Reviews()
	if productID == "" {
		return sample, true, nil
	}
	filtered := make([]models.Review, 0, len(sample))
	for _, r := range sample {
		if r.ProductID == productID {
			filtered = append(filtered, r)
		}
	}
	return filtered, true, nil
}

// Submit validates and forwards a new review. The backend stores it
// unapproved; it only appears publicly after admin approval.
func (s *ReviewService) Submit(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, ErrMissingReviewName
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrMissingComment
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	return s.backend.SubmitReview(ctx, req)
}
