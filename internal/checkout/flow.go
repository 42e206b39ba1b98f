// Package checkout drives the two-step order flow: reviewing the cart and
// entering customer details. Submission composes the order message and
// yields the WhatsApp dispatch link; the dispatch is the order, there is no
// server-side order record.
package checkout

import (
	"context"
	"strings"
	"sync"

	"babyheaven-storefront/internal/cart"
	"babyheaven-storefront/internal/delivery"
	"babyheaven-storefront/internal/domain"
)

type Step string

const (
	StepReviewing Step = "cart"
	StepDetails   Step = "checkout"
)

// Flow binds the checkout state machine to one session's cart store.
type Flow struct {
	mu    sync.Mutex
	store *cart.Store
	step  Step
}

func NewFlow(store *cart.Store) *Flow {
	return &Flow{store: store, step: StepReviewing}
}

// Open shows the cart view. Reopening always lands on the review step.
func (f *Flow) Open() {
	f.mu.Lock()
	f.step = StepReviewing
	f.mu.Unlock()
	f.store.OpenView()
}

// Close dismisses the view. The store wipes the modal-scoped address and
// coordinates; the next quote falls back to the outside-zone fee.
func (f *Flow) Close(ctx context.Context) {
	f.mu.Lock()
	f.step = StepReviewing
	f.mu.Unlock()
	f.store.CloseView(ctx)
}

// ToDetails advances to the details form. Only reachable with a non-empty
// cart.
func (f *Flow) ToDetails() error {
	if f.store.TotalItems() == 0 {
		return domain.ErrEmptyCart
	}
	f.mu.Lock()
	f.step = StepDetails
	f.mu.Unlock()
	return nil
}

// Back returns to the review step. Always available.
func (f *Flow) Back() {
	f.mu.Lock()
	f.step = StepReviewing
	f.mu.Unlock()
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// DeliveryFee quotes the current draft: priced from coordinates when
// present, otherwise the outside-zone fee applies as the policy default.
func (f *Flow) DeliveryFee() float64 {
	draft := f.store.Draft()
	if draft.DeliveryCoords != nil {
		return delivery.PriceFor(draft.DeliveryCoords.Lat, draft.DeliveryCoords.Lng)
	}
	return delivery.FeeOutside
}

// Submit validates the draft as a batch and composes the dispatch link.
// It only runs from the details step; every failing field is reported
// together and submission stays blocked until all pass.
func (f *Flow) Submit(settings domain.SiteSettings) (string, error) {
	if f.Step() != StepDetails {
		return "", domain.NewValidationError("step", "complete el carrito antes de enviar")
	}
	// The cart may have been emptied after reaching the details step.
	if f.store.TotalItems() == 0 {
		return "", domain.ErrEmptyCart
	}

	draft := f.store.Draft()
	if errs := validateDraft(draft); len(errs) > 0 {
		return "", &domain.ValidationError{Fields: errs}
	}

	order := Order{
		Customer:    draft,
		Lines:       f.store.Lines(),
		Subtotal:    f.store.TotalPrice(),
		DeliveryFee: f.DeliveryFee(),
		Bank:        settings.BankByName(draft.SelectedBank),
	}

	return WhatsAppURL(settings.Phone, ComposeMessage(order)), nil
}

// validateDraft collects every failing required field instead of stopping at
// the first.
func validateDraft(draft domain.CustomerDraft) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(draft.Name) == "" {
		errs["name"] = "El nombre completo es requerido"
	}
	if strings.TrimSpace(draft.Phone) == "" {
		errs["phone"] = "El teléfono es requerido"
	}
	if draft.State == "" {
		errs["state"] = "Seleccione el departamento"
	}
	if draft.City == "" {
		errs["city"] = "Seleccione la ciudad"
	}
	if strings.TrimSpace(draft.Address) == "" {
		errs["address"] = "La dirección es requerida"
	}
	switch draft.PaymentMethod {
	case domain.PaymentCash:
	case domain.PaymentTransfer:
		if draft.ReceiptURL == "" {
			errs["transferImage"] = "Suba el comprobante de transferencia"
		}
	default:
		errs["paymentMethod"] = "Seleccione un método de pago"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
