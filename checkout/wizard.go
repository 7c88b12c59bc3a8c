// Package checkout implements the three-step checkout flow: delivery
// address, payment details, then review and order placement.
package checkout

import (
	"context"
	"errors"

	"github.com/wirix/market-sfu/cart"
	"github.com/wirix/market-sfu/models"
)

// Stage is the wizard's current step.
type Stage string

const (
	StageAddress Stage = "address"
	StagePayment Stage = "payment"
	StageReview  Stage = "review"
)

var (
	ErrNoAddress   = errors.New("please select a delivery address")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNotAtReview = errors.New("order can only be placed from the review step")
)

// OrderRequest is everything the order service needs to record a
// placed order.
type OrderRequest struct {
	OrderRef      string
	Owner         string
	Address       models.Address
	PaymentMethod models.PaymentMethod
	Lines         []cart.LineItem
	Quote         Quote
}

// OrderPlacer is the external order-creation service the wizard hands
// off to at the end of the flow.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req OrderRequest) error
}

// Wizard walks one shopper through checkout. Forward progress is gated
// per stage: no payment step without an address, no review without a
// valid payment form. Back transitions are always allowed.
type Wizard struct {
	cart   *cart.Cart
	owner  string
	placer OrderPlacer
	newRef func() string

	stage   Stage
	address *models.Address
	method  models.PaymentMethod
	card    CardDetails
}

// NewWizard starts a checkout at the address stage with card payment
// pre-selected, mirroring the storefront's default.
func NewWizard(owner string, c *cart.Cart, placer OrderPlacer, newRef func() string) *Wizard {
	return &Wizard{
		cart:   c,
		owner:  owner,
		placer: placer,
		newRef: newRef,
		stage:  StageAddress,
		method: models.PaymentMethodCard,
	}
}

func (w *Wizard) Stage() Stage { return w.stage }

// SelectAddress records the delivery address for the address step.
func (w *Wizard) SelectAddress(a *models.Address) { w.address = a }

// SetPayment records the chosen method and, for cards, the draft form
// fields. Validation happens on the forward transition, not here.
func (w *Wizard) SetPayment(method models.PaymentMethod, card CardDetails) {
	w.method = method
	w.card = card
}

// Next advances one stage. A refused transition returns the guard error
// and leaves the stage unchanged.
func (w *Wizard) Next() error {
	switch w.stage {
	case StageAddress:
		if w.address == nil {
			return ErrNoAddress
		}
		w.stage = StagePayment
	case StagePayment:
		if w.method == models.PaymentMethodCard {
			if err := w.card.Validate(); err != nil {
				return err
			}
		}
		w.stage = StageReview
	case StageReview:
		return ErrNotAtReview
	}
	return nil
}

// Back steps to the previous stage; a no-op at the address stage.
func (w *Wizard) Back() {
	switch w.stage {
	case StagePayment:
		w.stage = StageAddress
	case StageReview:
		w.stage = StagePayment
	}
}

// Quote prices the cart as the review step shows it.
func (w *Wizard) Quote() Quote {
	return QuoteFor(w.cart.TotalPrice())
}

// PlaceOrder hands the order to the order service and clears the cart.
// Only reachable from the review stage. The returned reference is the
// order's identity from here on.
func (w *Wizard) PlaceOrder(ctx context.Context) (string, error) {
	if w.stage != StageReview {
		return "", ErrNotAtReview
	}

	lines := w.cart.Lines()
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	req := OrderRequest{
		OrderRef:      w.newRef(),
		Owner:         w.owner,
		Address:       *w.address,
		PaymentMethod: w.method,
		Lines:         lines,
		Quote:         w.Quote(),
	}
	if err := w.placer.PlaceOrder(ctx, req); err != nil {
		return "", err
	}

	if err := w.cart.ClearCart(ctx); err != nil {
		return "", err
	}
	return req.OrderRef, nil
}
