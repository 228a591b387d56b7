// Package checkout is the 3-step checkout wizard: contact, address,
// payment. The draft lives in memory only; completing step 3 places the
// order through the backend and clears the cart.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shophub-io/storefront/cart"
	"github.com/shophub-io/storefront/models"
)

// Wizard steps.
const (
	StepContact = 1
	StepAddress = 2
	StepPayment = 3
)

var (
	ErrEmptyCart     = errors.New("checkout: cart is empty")
	ErrWrongStep     = errors.New("checkout: submission does not match the current step")
	ErrCannotGoBack  = errors.New("checkout: cannot go back from the first step")
	ErrFlowCompleted = errors.New("checkout: flow already completed")
)

// ValidationError names the first missing required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: %s is required", e.Field)
}

// Cart is the slice of the cart manager the wizard needs.
type Cart interface {
	Lines() []models.CartLine
	CartTotal() float64
	ClearCart(ctx context.Context) cart.Notice
}

// OrderPlacer submits the final order to the backend.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, userID int64, req models.OrderRequest) (*models.Order, error)
}

// Flow holds only the draft, never a cart: each request rebinds its own
// cart manager at submit time, so mutations from other requests in the
// same browser context are always visible. Concurrent requests share
// one Flow per context, so every access takes the lock.
type Flow struct {
	orders OrderPlacer
	userID int64

	mu        sync.Mutex
	draft     models.CheckoutDraft
	completed bool
}

// NewFlow starts a wizard. An empty cart short-circuits the flow before
// any step renders.
func NewFlow(c Cart, orders OrderPlacer, userID int64) (*Flow, error) {
	if len(c.Lines()) == 0 {
		return nil, ErrEmptyCart
	}
	return &Flow{
		orders: orders,
		userID: userID,
		draft:  models.CheckoutDraft{Step: StepContact},
	}, nil
}

func (f *Flow) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Step
}

func (f *Flow) Completed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completed
}

func (f *Flow) Draft() models.CheckoutDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SubmitContact validates step 1 and advances to the address step.
func (f *Flow) SubmitContact(info models.ContactInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expectStep(StepContact); err != nil {
		return err
	}
	if err := requireFields(map[string]string{
		"fullName": info.FullName,
		"email":    info.Email,
		"phone":    info.Phone,
	}); err != nil {
		return err
	}
	f.draft.Contact = info
	f.draft.Step = StepAddress
	return nil
}

// SubmitAddress validates step 2 and advances to the payment step.
func (f *Flow) SubmitAddress(addr models.ShippingAddress) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expectStep(StepAddress); err != nil {
		return err
	}
	if err := requireFields(map[string]string{
		"address": addr.Address,
		"city":    addr.City,
		"state":   addr.State,
		"pincode": addr.Pincode,
	}); err != nil {
		return err
	}
	f.draft.Address = addr
	f.draft.Step = StepPayment
	return nil
}

// SubmitPayment validates step 3, places the order from the caller's
// cart and clears it. The cart is read at submit time, never from the
// request that started the flow, so a cart emptied or changed mid-flow
// is honored. On failure the cart and the step are left untouched so
// the user can retry.
func (f *Flow) SubmitPayment(ctx context.Context, c Cart, payment models.PaymentDetails) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expectStep(StepPayment); err != nil {
		return nil, err
	}
	if err := requireFields(map[string]string{
		"cardNumber": payment.CardNumber,
		"cardName":   payment.CardName,
		"expiry":     payment.Expiry,
		"cvv":        payment.CVV,
	}); err != nil {
		return nil, err
	}

	lines := c.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	f.draft.Payment = payment

	order, err := f.orders.CreateOrder(ctx, f.userID, f.buildOrderRequest(lines, c.CartTotal()))
	if err != nil {
		return nil, err
	}

	c.ClearCart(ctx)
	f.completed = true
	return order, nil
}

// Back moves one step backwards, keeping everything entered so far.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}
	if f.draft.Step <= StepContact {
		return ErrCannotGoBack
	}
	f.draft.Step--
	return nil
}

func (f *Flow) buildOrderRequest(lines []models.CartLine, total float64) models.OrderRequest {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     line.Name,
			ProductImageURL: line.ImageURL,
			Quantity:        line.Quantity,
			UnitPrice:       line.Price,
			TotalPrice:      line.Price * float64(line.Quantity),
		})
	}
	addr := f.draft.Address
	return models.OrderRequest{
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: fmt.Sprintf("%s, %s, %s %s", addr.Address, addr.City, addr.State, addr.Pincode),
		PaymentMethod:   "CARD",
	}
}

// expectStep and requireFields run with the lock held.
func (f *Flow) expectStep(step int) error {
	if f.completed {
		return ErrFlowCompleted
	}
	if f.draft.Step != step {
		return ErrWrongStep
	}
	return nil
}

func requireFields(fields map[string]string) error {
	// Deterministic order keeps error messages stable.
	order := []string{"fullName", "email", "phone", "address", "city", "state", "pincode", "cardNumber", "cardName", "expiry", "cvv"}
	for _, name := range order {
		if v, ok := fields[name]; ok && strings.TrimSpace(v) == "" {
			return &ValidationError{Field: name}
		}
	}
	return nil
}
