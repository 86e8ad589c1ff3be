package service

import (
	"context"
	"log/slog"

	"github.com/goldcrust/storefront/internal/demo"
	"github.com/goldcrust/storefront/internal/models"
)

// BackendAdmin is the slice of the backend client the back-office needs.
type BackendAdmin interface {
	ListOrders(ctx context.Context, status string) ([]models.Order, error)
	ApproveReview(ctx context.Context, id string) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// AdminService passes back-office operations through to the backend. Only the
// dashboard aggregate participates in the demo fallback; moderation and order
// listing surface real failures so an admin never acts on fabricated state.
type AdminService struct {
	backend  BackendAdmin
	fallback bool
	log      *slog.Logger
}

// NewAdminService creates an admin service.
func NewAdminService(b BackendAdmin, fallback bool, log *slog.Logger) *AdminService {
	return &AdminService{
		backend:  b,
		fallback: fallback,
		log:      log,
	}
}

// Orders lists orders, optionally filtered by status.
func (s *AdminService) Orders(ctx context.Context, status string) ([]models.Order, error) {
	return s.backend.ListOrders(ctx, status)
}

// ApproveReview marks a review as approved for public display.
func (s *AdminService) ApproveReview(ctx context.Context, id string) (*models.Review, error) {
	return s.backend.ApproveReview(ctx, id)
}

// DeleteReview removes a review.
func (s *AdminService) DeleteReview(ctx context.Context, id string) error {
	return s.backend.DeleteReview(ctx, id)
}

// Dashboard returns the aggregate stats. The degraded flag is true when
// served from the sample dataset.
func (s *AdminService) Dashboard(ctx context.Context) (*models.DashboardStats, bool, error) {
	stats, err := s.backend.DashboardStats(ctx)
	if err == nil {
		return stats, false, nil
	}

	if !s.fallback {
		return nil, false, err
	}

	s.log.Warn("dashboard fetch failed, serving demo fallback data", "error", err)
	return demo.DashboardStats(), true, nil
}
