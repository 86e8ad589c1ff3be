package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goldcrust/storefront/internal/backend"
	"github.com/goldcrust/storefront/internal/cart"
	"github.com/goldcrust/storefront/internal/checkout"
	"github.com/goldcrust/storefront/internal/middleware"
	"github.com/goldcrust/storefront/internal/models"
	"github.com/goldcrust/storefront/internal/service"
	"github.com/goldcrust/storefront/internal/session"
	"github.com/goldcrust/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

// fakeBakery is an in-process stand-in for the backend collaborator.
type fakeBakery struct {
	products   []models.Product
	reviews    []models.Review
	orders     []models.Order
	failOrders bool

	createdOrders []models.OrderRequest
}

func defaultBakery() *fakeBakery {
	return &fakeBakery{
		products: []models.Product{
			{ID: "prod_001", Name: "Classic Chocolate Chip Cookies", Price: decimal.NewFromFloat(18.99), Category: "cookies", Available: true, PrepTimeHours: 24},
			{ID: "prod_002", Name: "Red Velvet Cupcakes (6 pack)", Price: decimal.NewFromFloat(24.99), Category: "cupcakes", Available: true, PrepTimeHours: 24},
			{ID: "prod_003", Name: "Artisan Sourdough Bread", Price: decimal.NewFromFloat(8.99), Category: "bread", Available: true, PrepTimeHours: 48},
			{ID: "prod_900", Name: "Seasonal Special", Price: decimal.NewFromFloat(29.99), Category: "pies", Available: false, PrepTimeHours: 72},
		},
		reviews: []models.Review{
			{ID: "rev_001", CustomerName: "Sarah Johnson", Rating: 5, Comment: "Amazing!", ProductID: "prod_001", Approved: true},
		},
	}
}

func (f *fakeBakery) hasReview(id string) bool {
	for _, r := range f.reviews {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (f *fakeBakery) server() *httptest.Server {
	r := chi.NewRouter()

	r.Get("/api/products", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(f.products)
	})
	r.Get("/api/products/{productId}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "productId")
		for _, p := range f.products {
			if p.ID == id {
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		http.Error(w, `{"detail":"Product not found"}`, http.StatusNotFound)
	})
	r.Get("/api/reviews", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(f.reviews)
	})
	r.Post("/api/reviews", func(w http.ResponseWriter, req *http.Request) {
		var body models.ReviewRequest
		json.NewDecoder(req.Body).Decode(&body)
		json.NewEncoder(w).Encode(models.Review{
			ID:           "rev_new",
			CustomerName: body.CustomerName,
			Rating:       body.Rating,
			Comment:      body.Comment,
			ProductID:    body.ProductID,
			Approved:     false,
		})
	})
	r.Put("/api/reviews/{reviewId}/approve", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "reviewId")
		if !f.hasReview(id) {
			http.Error(w, `{"detail":"Review not found"}`, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(models.Review{ID: id, Approved: true})
	})
	r.Delete("/api/reviews/{reviewId}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "reviewId")
		if !f.hasReview(id) {
			http.Error(w, `{"detail":"Review not found"}`, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Review deleted successfully"})
	})
	r.Get("/api/orders", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(f.orders)
	})
	r.Post("/api/orders", func(w http.ResponseWriter, req *http.Request) {
		if f.failOrders {
			http.Error(w, `{"detail":"order storage unavailable"}`, http.StatusInternalServerError)
			return
		}
		var body models.OrderRequest
		json.NewDecoder(req.Body).Decode(&body)
		f.createdOrders = append(f.createdOrders, body)
		json.NewEncoder(w).Encode(models.Order{
			ID:           "ord_test_001",
			CustomerName: body.CustomerName,
			Items:        body.Items,
			Status:       models.OrderStatusPending,
			DeliveryDate: body.DeliveryDate,
		})
	})
	r.Get("/api/analytics/dashboard", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(models.DashboardStats{
			Products: models.ProductStats{Total: len(f.products), Available: len(f.products) - 1},
			Reviews:  models.ReviewStats{Total: len(f.reviews), Approved: len(f.reviews)},
		})
	})

	return httptest.NewServer(r)
}

// storefront bundles a wired router and its collaborators for tests.
type storefront struct {
	router chi.Router
	store  *session.Store
	bakery *fakeBakery
}

// newStorefront wires the handler stack against backendURL the same way
// cmd/server does.
func newStorefront(backendURL string, bakery *fakeBakery, fallback bool) *storefront {
	log := logger.New("error")

	client := backend.New(backendURL, 2*time.Second, log)
	catalogService := service.NewCatalogService(client, fallback, log)
	reviewService := service.NewReviewService(client, fallback, log)
	adminService := service.NewAdminService(client, fallback, log)

	store := session.NewStore(time.Minute, log, func(id string) *session.Session {
		c := cart.New()
		return &session.Session{
			ID:       id,
			Cart:     c,
			Checkout: checkout.New(c, client, time.Second),
		}
	})

	catalogHandler := NewCatalogHandler(catalogService, log)
	cartHandler := NewCartHandler(catalogService, log)
	checkoutHandler := NewCheckoutHandler(log)
	reviewHandler := NewReviewHandler(reviewService, log)
	adminHandler := NewAdminHandler(adminService, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{productId}", catalogHandler.GetProduct)
		r.Get("/reviews", reviewHandler.ListReviews)
		r.Post("/reviews", reviewHandler.SubmitReview)

		r.Group(func(r chi.Router) {
			r.Use(middleware.WithSession(store))

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{productId}", cartHandler.SetQuantity)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

			r.Get("/checkout", checkoutHandler.GetState)
			r.Post("/checkout", checkoutHandler.Submit)
			r.Post("/checkout/confirm", checkoutHandler.Confirm)
		})

		r.Get("/orders", adminHandler.ListOrders)
		r.Put("/admin/reviews/{reviewId}/approve", adminHandler.ApproveReview)
		r.Delete("/admin/reviews/{reviewId}", adminHandler.DeleteReview)
		r.Get("/analytics/dashboard", adminHandler.Dashboard)
	})

	return &storefront{router: r, store: store, bakery: bakery}
}
