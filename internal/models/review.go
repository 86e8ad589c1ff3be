package models

import "time"

// Review is a customer review owned by the backend. The approved flag is
// controlled exclusively by the admin moderation endpoints; this service only
// reads the approved subset or emits new unapproved instances.
type Review struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ProductID     string    `json:"product_id,omitempty"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReviewRequest is the payload for submitting a new review.
type ReviewRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	ProductID     string `json:"product_id,omitempty"`
}
