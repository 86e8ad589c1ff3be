package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/goldcrust/storefront/internal/checkout"
	"github.com/goldcrust/storefront/internal/middleware"
	"github.com/goldcrust/storefront/internal/models"
)

// CheckoutHandler drives the session's checkout orchestrator.
type CheckoutHandler struct {
	log *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{log: log}
}

type checkoutRequest struct {
	CustomerName        string    `json:"customer_name"`
	CustomerEmail       string    `json:"customer_email"`
	CustomerPhone       string    `json:"customer_phone"`
	DeliveryAddress     string    `json:"delivery_address"`
	DeliveryNotes       string    `json:"delivery_notes"`
	DeliveryDate        time.Time `json:"delivery_date"`
	SpecialInstructions string    `json:"special_instructions"`
}

type checkoutStateResponse struct {
	State           string        `json:"state"`
	Order           *models.Order `json:"order,omitempty"`
	MinDeliveryDate *time.Time    `json:"min_delivery_date,omitempty"`
}

// GetState handles GET /api/checkout: the current state, the confirmed order
// if any, and the delivery-date floor for the current cart.
func (h *CheckoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	resp := checkoutStateResponse{
		State: sess.Checkout.State().String(),
		Order: sess.Checkout.Order(),
	}
	if min, ok := sess.Checkout.MinDeliveryDate(); ok {
		resp.MinDeliveryDate = &min
	}

	writeJSON(w, http.StatusOK, resp)
}

// Submit handles POST /api/checkout. Validation failures come back as 400
// and never reach the backend; backend failures come back as 502 with the
// form left editable and the cart untouched.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form := checkout.Form{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		DeliveryAddress:     req.DeliveryAddress,
		DeliveryNotes:       req.DeliveryNotes,
		DeliveryDate:        req.DeliveryDate,
		SpecialInstructions: req.SpecialInstructions,
	}

	order, err := sess.Checkout.Submit(r.Context(), form)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	h.log.Info("order confirmed",
		"order_id", order.ID,
		"items_count", len(order.Items),
	)
	writeJSON(w, http.StatusOK, checkoutStateResponse{
		State: sess.Checkout.State().String(),
		Order: order,
	})
}

// Confirm handles POST /api/checkout/confirm, the explicit "continue
// shopping" acknowledgment: it clears the cart and resets the checkout.
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	if err := sess.Checkout.Acknowledge(); err != nil {
		writeError(w, http.StatusConflict, "No confirmed order to acknowledge")
		return
	}

	writeJSON(w, http.StatusOK, checkoutStateResponse{
		State: sess.Checkout.State().String(),
	})
}

func (h *CheckoutHandler) writeSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, checkout.ErrMissingCustomerName),
		errors.Is(err, checkout.ErrMissingPhone),
		errors.Is(err, checkout.ErrMissingAddress),
		errors.Is(err, checkout.ErrMissingDeliveryDate):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrDeliveryTooSoon):
		writeError(w, http.StatusBadRequest, "Delivery date does not allow enough preparation time")
	case errors.Is(err, checkout.ErrSubmitInProgress):
		writeError(w, http.StatusConflict, "An order submission is already in progress")
	case errors.Is(err, checkout.ErrAlreadyConfirmed):
		writeError(w, http.StatusConflict, "Order already confirmed")
	default:
		h.log.Error("order submission failed", "error", err)
		writeError(w, http.StatusBadGateway, "There was an error submitting your order. Please try again.")
	}
}
