package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goldcrust/storefront/internal/backend"
	"github.com/goldcrust/storefront/internal/demo"
	"github.com/goldcrust/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// BackendCatalog is the slice of the backend client the catalog needs.
type BackendCatalog interface {
	ListProducts(ctx context.Context, category string, availableOnly bool) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// CatalogService serves the product catalog from the backend. When the
// backend is unreachable and the demo fallback is enabled, it substitutes the
// built-in sample dataset so the storefront stays usable in a degraded,
// non-authoritative mode. Callers receive a degraded flag so the mode is
// never silent.
type CatalogService struct {
	backend  BackendCatalog
	fallback bool
	log      *slog.Logger
}

// NewCatalogService creates a catalog service. fallback enables the demo
// dataset substitution on backend failure.
func NewCatalogService(b BackendCatalog, fallback bool, log *slog.Logger) *CatalogService {
	return &CatalogService{
		backend:  b,
		fallback: fallback,
		log:      log,
	}
}

// ListProducts returns the catalog. The degraded flag is true when the
// response was served from the sample dataset.
func (s *CatalogService) ListProducts(ctx context.Context, category string, availableOnly bool) ([]models.Product, bool, error) {
	products, err := s.backend.ListProducts(ctx, category, availableOnly)
	if err == nil {
		return products, false, nil
	}

	if !s.fallback {
		return nil, false, err
	}

	s.log.Warn("catalog fetch failed, serving demo fallback data", "error", err)
	return filterProducts(demo.Products(), category, availableOnly), true, nil
}

// GetProduct returns a single product. A backend 404 maps to
// ErrProductNotFound; other failures fall back to the sample dataset when
// enabled so items shown in degraded mode can still be added to the cart.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.backend.GetProduct(ctx, id)
	if err == nil {
		return product, nil
	}

	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}

	if !s.fallback {
		return nil, err
	}

	s.log.Warn("product fetch failed, consulting demo fallback data", "product_id", id, "error", err)
	for _, p := range demo.Products() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func filterProducts(products []models.Product, category string, availableOnly bool) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if availableOnly && !p.Available {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
