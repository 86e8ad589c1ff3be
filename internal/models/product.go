package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend serializes prices as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a bakery product from the catalog.
// Schema matches the backend API; products are read-only to this service.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"image_url"`
	Ingredients   []string        `json:"ingredients"`
	Allergens     []string        `json:"allergens"`
	Available     bool            `json:"available"`
	PrepTimeHours int             `json:"prep_time_hours"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at,omitempty"`
}
