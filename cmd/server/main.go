package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goldcrust/storefront/internal/backend"
	"github.com/goldcrust/storefront/internal/cart"
	"github.com/goldcrust/storefront/internal/checkout"
	"github.com/goldcrust/storefront/internal/config"
	"github.com/goldcrust/storefront/internal/handlers"
	"github.com/goldcrust/storefront/internal/middleware"
	"github.com/goldcrust/storefront/internal/promo"
	"github.com/goldcrust/storefront/internal/service"
	"github.com/goldcrust/storefront/internal/session"
	"github.com/goldcrust/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting bakery storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"backend", cfg.Backend.BaseURL,
		"demo_fallback", cfg.Demo.Fallback,
		"log_level", cfg.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Backend collaborator client
	backendClient := backend.New(cfg.Backend.BaseURL, time.Duration(cfg.Backend.RequestTimeout)*time.Second, log)

	// Promo code validator; the feature is optional marketing surface, so a
	// failed load disables it rather than aborting startup.
	promoValidator := promo.NewValidator()
	if len(cfg.Promo.ListURLs) > 0 {
		log.Info("loading promo code lists...", "lists", len(cfg.Promo.ListURLs))
		if err := promoValidator.LoadFromURLs(ctx, cfg.Promo.ListURLs); err != nil {
			log.Error("failed to load promo code lists, promo validation disabled", "error", err)
		} else {
			stats := promoValidator.GetStats()
			log.Info("promo code lists loaded",
				"total_lists", stats["total_lists"],
				"total_codes", stats["total_codes"],
			)
		}
	}

	// Services
	catalogService := service.NewCatalogService(backendClient, cfg.Demo.Fallback, log)
	reviewService := service.NewReviewService(backendClient, cfg.Demo.Fallback, log)
	adminService := service.NewAdminService(backendClient, cfg.Demo.Fallback, log)

	// Session store: one cart + one checkout orchestrator per visitor
	submitTimeout := time.Duration(cfg.Backend.SubmitTimeout) * time.Second
	sessionStore := session.NewStore(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		log,
		func(id string) *session.Session {
			c := cart.New()
			return &session.Session{
				ID:       id,
				Cart:     c,
				Checkout: checkout.New(c, backendClient, submitTimeout),
			}
		},
	)
	go sessionStore.Run(ctx)

	// Handlers
	healthHandler := handlers.NewHealthHandler(log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	cartHandler := handlers.NewCartHandler(catalogService, log)
	checkoutHandler := handlers.NewCheckoutHandler(log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	adminHandler := handlers.NewAdminHandler(adminService, log)
	promoHandler := handlers.NewPromoHandler(promoValidator)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link", "X-Fallback-Data"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{productId}", catalogHandler.GetProduct)

		// Public reviews
		r.Get("/reviews", reviewHandler.ListReviews)
		r.Post("/reviews", reviewHandler.SubmitReview)

		// Promo codes
		r.Get("/promo/{promoCode}", promoHandler.ValidateCode)

		// Session-scoped cart and checkout
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithSession(sessionStore))

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{productId}", cartHandler.SetQuantity)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

			r.Get("/checkout", checkoutHandler.GetState)
			r.Post("/checkout", checkoutHandler.Submit)
			r.Post("/checkout/confirm", checkoutHandler.Confirm)
		})

		// Admin back-office
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Get("/orders", adminHandler.ListOrders)
			r.Put("/reviews/{reviewId}/approve", adminHandler.ApproveReview)
			r.Delete("/reviews/{reviewId}", adminHandler.DeleteReview)
			r.Get("/analytics/dashboard", adminHandler.Dashboard)
			r.Get("/promo/stats", promoHandler.GetStats)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
