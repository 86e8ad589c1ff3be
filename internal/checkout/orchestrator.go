package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goldcrust/storefront/internal/cart"
	"github.com/goldcrust/storefront/internal/models"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrMissingPhone        = errors.New("customer phone is required")
	ErrMissingAddress      = errors.New("delivery address is required")
	ErrMissingDeliveryDate = errors.New("delivery date is required")
	ErrDeliveryTooSoon     = errors.New("delivery date is before the minimum preparation lead time")
	ErrSubmitInProgress    = errors.New("an order submission is already in progress")
	ErrAlreadyConfirmed    = errors.New("order already confirmed")
	ErrNotConfirmed        = errors.New("no confirmed order to acknowledge")
)

// State is the explicit checkout state. The booleans of an ad-hoc form flow
// collapse into one tag so invalid combinations cannot be represented.
type State int

const (
	StateCollecting State = iota
	StateSubmitting
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateCollecting:
		return "collecting"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Form holds the customer and delivery details collected before submission.
type Form struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	DeliveryAddress     string
	DeliveryNotes       string
	DeliveryDate        time.Time
	SpecialInstructions string
}

// Validate checks the required fields: name, phone and address must be
// non-blank after trimming, and a delivery date must be selected. Email,
// notes and special instructions are unconstrained.
func (f Form) Validate() error {
	if strings.TrimSpace(f.CustomerName) == "" {
		return ErrMissingCustomerName
	}
	if strings.TrimSpace(f.CustomerPhone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(f.DeliveryAddress) == "" {
		return ErrMissingAddress
	}
	if f.DeliveryDate.IsZero() {
		return ErrMissingDeliveryDate
	}
	return nil
}

// OrderSubmitter is the backend order-creation collaborator.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
}

// Orchestrator drives one session's checkout: Collecting -> Submitting ->
// Confirmed, with failures re-entering Collecting so the form stays
// retryable. Each session owns exactly one orchestrator.
type Orchestrator struct {
	mu            sync.Mutex
	state         State
	order         *models.Order
	cart          *cart.Cart
	submitter     OrderSubmitter
	submitTimeout time.Duration
	now           func() time.Time
}

// New creates an orchestrator over the session's cart.
func New(c *cart.Cart, submitter OrderSubmitter, submitTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		state:         StateCollecting,
		cart:          c,
		submitter:     submitter,
		submitTimeout: submitTimeout,
		now:           time.Now,
	}
}

// State returns the current checkout state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Order returns the confirmed order, or nil before confirmation.
func (o *Orchestrator) Order() *models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.order
}

// MinDeliveryDate computes the earliest allowed delivery date for the current
// cart: today plus the lead time of the slowest-to-prepare item, rounded up
// to whole days. The second return is false when the cart is empty.
func (o *Orchestrator) MinDeliveryDate() (time.Time, bool) {
	lines := o.cart.Lines()
	if len(lines) == 0 {
		return time.Time{}, false
	}
	return minDeliveryDate(lines, o.now()), true
}

func minDeliveryDate(lines []cart.Line, now time.Time) time.Time {
	maxPrepHours := 0
	for _, line := range lines {
		if line.Product.PrepTimeHours > maxPrepHours {
			maxPrepHours = line.Product.PrepTimeHours
		}
	}

	days := (maxPrepHours + 23) / 24
	return startOfDay(now).AddDate(0, 0, days)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Submit validates the form against the current cart and submits an order.
// Only one submission may be in flight per orchestrator; a second concurrent
// call fails with ErrSubmitInProgress rather than blocking. On success the
// orchestrator is Confirmed and the cart is intentionally left intact so the
// confirmation screen still reflects the purchase; clearing happens in
// Acknowledge. On any failure the orchestrator returns to Collecting with the
// cart unchanged.
func (o *Orchestrator) Submit(ctx context.Context, form Form) (*models.Order, error) {
	o.mu.Lock()
	switch o.state {
	case StateSubmitting:
		o.mu.Unlock()
		return nil, ErrSubmitInProgress
	case StateConfirmed:
		o.mu.Unlock()
		return nil, ErrAlreadyConfirmed
	}

	lines := o.cart.Lines()
	if len(lines) == 0 {
		o.mu.Unlock()
		return nil, ErrEmptyCart
	}

	if err := form.Validate(); err != nil {
		o.mu.Unlock()
		return nil, err
	}

	if startOfDay(form.DeliveryDate).Before(minDeliveryDate(lines, o.now())) {
		o.mu.Unlock()
		return nil, ErrDeliveryTooSoon
	}

	req := buildOrderRequest(form, lines)
	o.state = StateSubmitting
	o.mu.Unlock()

	// Bound the backend call so a hung submission cannot wedge the session.
	sctx, cancel := context.WithTimeout(ctx, o.submitTimeout)
	defer cancel()

	order, err := o.submitter.CreateOrder(sctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.state = StateCollecting
		return nil, fmt.Errorf("submit order: %w", err)
	}

	o.state = StateConfirmed
	o.order = order
	return order, nil
}

// Acknowledge completes a confirmed checkout: the cart is cleared and the
// orchestrator resets to a blank Collecting state.
func (o *Orchestrator) Acknowledge() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateConfirmed {
		return ErrNotConfirmed
	}

	o.cart.Clear()
	o.order = nil
	o.state = StateCollecting
	return nil
}

// buildOrderRequest snapshots the cart lines into an immutable order payload.
func buildOrderRequest(form Form, lines []cart.Line) models.OrderRequest {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
		})
	}

	return models.OrderRequest{
		CustomerName:        strings.TrimSpace(form.CustomerName),
		CustomerEmail:       strings.TrimSpace(form.CustomerEmail),
		CustomerPhone:       strings.TrimSpace(form.CustomerPhone),
		DeliveryAddress:     strings.TrimSpace(form.DeliveryAddress),
		DeliveryNotes:       form.DeliveryNotes,
		Items:               items,
		DeliveryDate:        form.DeliveryDate,
		SpecialInstructions: form.SpecialInstructions,
	}
}
