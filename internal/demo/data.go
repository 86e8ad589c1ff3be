// Package demo holds the built-in sample dataset served when the backend is
// unreachable and the demo fallback is enabled. The data is fabricated and
// clearly non-authoritative; responses built from it are marked as fallback
// data by the handlers.
package demo

import (
	"github.com/goldcrust/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Products returns the sample catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:            "prod_001",
			Name:          "Classic Chocolate Chip Cookies",
			Description:   "Fresh-baked cookies with premium chocolate chips. Made with organic flour and real vanilla extract.",
			Price:         decimal.NewFromFloat(18.99),
			Category:      "cookies",
			ImageURL:      "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=500&h=400&fit=crop",
			Ingredients:   []string{"organic flour", "premium chocolate chips", "organic butter", "brown sugar", "vanilla extract", "eggs"},
			Allergens:     []string{"gluten", "dairy", "eggs"},
			Available:     true,
			PrepTimeHours: 24,
		},
		{
			ID:            "prod_002",
			Name:          "Red Velvet Cupcakes (6 pack)",
			Description:   "Moist red velvet cupcakes topped with cream cheese frosting. Perfect for celebrations.",
			Price:         decimal.NewFromFloat(24.99),
			Category:      "cupcakes",
			ImageURL:      "https://images.unsplash.com/photo-1587668178277-295251f900ce?w=500&h=400&fit=crop",
			Ingredients:   []string{"organic flour", "cocoa powder", "cream cheese", "organic butter", "eggs", "red food coloring", "vanilla"},
			Allergens:     []string{"gluten", "dairy", "eggs"},
			Available:     true,
			PrepTimeHours: 24,
		},
		{
			ID:            "prod_003",
			Name:          "Artisan Sourdough Bread",
			Description:   "Traditional sourdough with a crispy crust and soft, tangy interior. Made with our 7-day fermented starter.",
			Price:         decimal.NewFromFloat(8.99),
			Category:      "bread",
			ImageURL:      "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=500&h=400&fit=crop",
			Ingredients:   []string{"organic bread flour", "sourdough starter", "sea salt", "water"},
			Allergens:     []string{"gluten"},
			Available:     true,
			PrepTimeHours: 48,
		},
		{
			ID:            "prod_004",
			Name:          "Lemon Blueberry Muffins (6 pack)",
			Description:   "Light and fluffy muffins bursting with fresh blueberries and bright lemon zest.",
			Price:         decimal.NewFromFloat(16.99),
			Category:      "muffins",
			ImageURL:      "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=500&h=400&fit=crop",
			Ingredients:   []string{"organic flour", "fresh blueberries", "lemon zest", "organic butter", "eggs", "baking powder"},
			Allergens:     []string{"gluten", "dairy", "eggs"},
			Available:     true,
			PrepTimeHours: 24,
		},
		{
			ID:            "prod_005",
			Name:          "Double Chocolate Brownies",
			Description:   "Rich, fudgy brownies loaded with dark chocolate chunks.",
			Price:         decimal.NewFromFloat(22.99),
			Category:      "brownies",
			ImageURL:      "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=500&h=400&fit=crop",
			Ingredients:   []string{"dark chocolate", "organic butter", "eggs", "organic flour", "cocoa powder", "chocolate chunks"},
			Allergens:     []string{"gluten", "dairy", "eggs"},
			Available:     true,
			PrepTimeHours: 24,
		},
		{
			ID:            "prod_006",
			Name:          "Apple Cinnamon Pie",
			Description:   "Classic homemade apple pie with tender spiced apples in a flaky butter crust.",
			Price:         decimal.NewFromFloat(32.99),
			Category:      "pies",
			ImageURL:      "https://images.unsplash.com/photo-1535920527002-b35e96722be9?w=500&h=400&fit=crop",
			Ingredients:   []string{"organic apples", "organic flour", "organic butter", "cinnamon", "sugar", "pie spice"},
			Allergens:     []string{"gluten", "dairy"},
			Available:     true,
			PrepTimeHours: 48,
		},
	}
}

// Reviews returns the sample approved reviews.
func Reviews() []models.Review {
	return []models.Review{
		{
			ID:           "rev_001",
			CustomerName: "Sarah Johnson",
			Rating:       5,
			Comment:      "The chocolate chip cookies were absolutely amazing! My family loved them. Will definitely order again!",
			ProductID:    "prod_001",
			Approved:     true,
		},
		{
			ID:           "rev_002",
			CustomerName: "Mike Chen",
			Rating:       5,
			Comment:      "Best sourdough bread I've had in years! The crust was perfect and the flavor was incredible.",
			ProductID:    "prod_003",
			Approved:     true,
		},
		{
			ID:           "rev_003",
			CustomerName: "Emily Rodriguez",
			Rating:       5,
			Comment:      "The red velvet cupcakes were a hit at our birthday party. Beautiful presentation and delicious!",
			ProductID:    "prod_002",
			Approved:     true,
		},
		{
			ID:           "rev_004",
			CustomerName: "David Wilson",
			Rating:       4,
			Comment:      "Great brownies! Very rich and chocolatey. Maybe a bit too sweet for my taste, but still excellent quality.",
			ProductID:    "prod_005",
			Approved:     true,
		},
	}
}

// DashboardStats returns sample aggregates consistent with the demo catalog
// and reviews.
func DashboardStats() *models.DashboardStats {
	products := Products()
	reviews := Reviews()

	available := 0
	for _, p := range products {
		if p.Available {
			available++
		}
	}

	return &models.DashboardStats{
		Products: models.ProductStats{Total: len(products), Available: available},
		Orders:   models.OrderStats{},
		Reviews: models.ReviewStats{
			Total:    len(reviews),
			Approved: len(reviews),
		},
		RecentOrders:   []models.Order{},
		PendingReviews: []models.Review{},
	}
}
