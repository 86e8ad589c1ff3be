package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a snapshot of one cart line at submission time.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderRequest is the payload submitted to the backend order-creation
// endpoint. Items are copied from the cart so later cart mutations cannot
// alter a submitted order.
type OrderRequest struct {
	CustomerName        string      `json:"customer_name"`
	CustomerEmail       string      `json:"customer_email,omitempty"`
	CustomerPhone       string      `json:"customer_phone"`
	DeliveryAddress     string      `json:"delivery_address"`
	DeliveryNotes       string      `json:"delivery_notes,omitempty"`
	Items               []OrderItem `json:"items"`
	DeliveryDate        time.Time   `json:"delivery_date"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
}

// Order is a confirmed order as stored by the backend.
type Order struct {
	ID                  string          `json:"id"`
	CustomerName        string          `json:"customer_name"`
	CustomerEmail       string          `json:"customer_email,omitempty"`
	CustomerPhone       string          `json:"customer_phone"`
	DeliveryAddress     string          `json:"delivery_address"`
	DeliveryNotes       string          `json:"delivery_notes,omitempty"`
	Items               []OrderItem     `json:"items"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Status              string          `json:"status"`
	OrderDate           time.Time       `json:"order_date"`
	DeliveryDate        time.Time       `json:"delivery_date"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// Order statuses used by the backend.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)
