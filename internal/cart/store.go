// Package cart owns the line items and customer draft for one shopper
// session. All mutation goes through the Store; every mutation writes the
// current state through to durable storage in transition order.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"babyheaven-storefront/internal/domain"
)

// Storage keys. The line array and the customer projection are kept under
// separate keys; an empty cart removes its key instead of storing [].
const (
	cartKey     = "baby-heaven-cart"
	customerKey = "baby-heaven-customer"
)

// Store holds one session's cart state. It is the single writer for that
// state; the mutex serializes concurrent requests on the same session.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *log.Logger

	lines []domain.CartLine
	draft domain.CustomerDraft
	open  bool
}

// New builds a Store and hydrates it from storage. Malformed stored content
// is discarded as if absent.
func New(ctx context.Context, storage Storage, logger *log.Logger) *Store {
	s := &Store{storage: storage, logger: logger}

	if data, err := storage.Get(ctx, cartKey); err == nil {
		var lines []domain.CartLine
		if err := json.Unmarshal(data, &lines); err != nil {
			s.logf("discarding stored cart: %v", err)
		} else {
			s.lines = lines
		}
	} else if !errors.Is(err, ErrKeyMissing) {
		s.logf("read stored cart: %v", err)
	}

	if data, err := storage.Get(ctx, customerKey); err == nil {
		var saved struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		}
		if err := json.Unmarshal(data, &saved); err != nil {
			s.logf("discarding stored customer: %v", err)
		} else {
			// Only name and phone survive across sessions.
			s.draft.Name = saved.Name
			s.draft.Phone = saved.Phone
		}
	} else if !errors.Is(err, ErrKeyMissing) {
		s.logf("read stored customer: %v", err)
	}

	return s
}

// LineID derives the merge key for a line: identical product and identical
// option selections collapse into one line, differing selections stay
// distinct. json.Marshal sorts map keys, so the serialization is
// deterministic.
func LineID(productID string, selectedOptions map[string][]string) string {
	optionsKey := ""
	if len(selectedOptions) > 0 {
		if raw, err := json.Marshal(selectedOptions); err == nil {
			optionsKey = string(raw)
		}
	}
	return productID + "-" + optionsKey
}

// AddItem merges the candidate into the cart. If a line with the same merge
// key exists the quantities are summed; a sum past the stock ceiling rejects
// the whole addition and leaves the cart unchanged. Adding opens the cart
// view.
func (s *Store) AddItem(ctx context.Context, candidate domain.CartLine, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := LineID(candidate.ProductID, candidate.SelectedOptions)
	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		max := s.lines[i].MaxStock
		if max == 0 {
			max = domain.UnboundedStock
		}
		if s.lines[i].Quantity+quantity > max {
			return &domain.StockError{Max: max}
		}
		s.lines[i].Quantity += quantity
		s.open = true
		s.persistLines(ctx)
		return nil
	}

	candidate.ID = id
	candidate.Quantity = quantity
	s.lines = append(s.lines, candidate)
	s.open = true
	s.persistLines(ctx)
	return nil
}

// RemoveItem deletes the line unconditionally.
func (s *Store) RemoveItem(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persistLines(ctx)
}

// SetQuantity changes a line's quantity. Below 1 removes the line; past the
// stock ceiling it is a no-op.
func (s *Store) SetQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity < 1 {
		s.RemoveItem(ctx, lineID)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != lineID {
			continue
		}
		if s.lines[i].MaxStock > 0 && quantity > s.lines[i].MaxStock {
			return nil
		}
		s.lines[i].Quantity = quantity
		s.persistLines(ctx)
		return nil
	}
	return domain.ErrLineNotFound
}

// Clear empties all lines.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persistLines(ctx)
}

// Lines returns a copy of the current line items.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all lines.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// DraftPatch is a shallow merge into the customer draft. Nil fields are left
// untouched.
type DraftPatch struct {
	Name          *string               `json:"name,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	State         *string               `json:"state,omitempty"`
	City          *string               `json:"city,omitempty"`
	Address       *string               `json:"address,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod,omitempty"`
	CashChange    *string               `json:"cashChange,omitempty"`
	SelectedBank  *string               `json:"selectedBank,omitempty"`
	ReceiptURL    *string               `json:"receiptUrl,omitempty"`
}

// UpdateDraft merges the patch into the draft. Selecting a state clears
// city, address and coordinates; selecting a city clears address and
// coordinates. Downstream fields are invalidated before the new values
// apply.
func (s *Store) UpdateDraft(ctx context.Context, patch DraftPatch) domain.CustomerDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.State != nil {
		s.draft.City = ""
		s.draft.Address = ""
		s.draft.DeliveryCoords = nil
	}
	if patch.City != nil {
		s.draft.Address = ""
		s.draft.DeliveryCoords = nil
	}

	if patch.Name != nil {
		s.draft.Name = *patch.Name
	}
	if patch.Phone != nil {
		s.draft.Phone = *patch.Phone
	}
	if patch.State != nil {
		s.draft.State = *patch.State
	}
	if patch.City != nil {
		s.draft.City = *patch.City
	}
	if patch.Address != nil {
		s.draft.Address = *patch.Address
	}
	if patch.Notes != nil {
		s.draft.Notes = *patch.Notes
	}
	if patch.PaymentMethod != nil {
		s.draft.PaymentMethod = *patch.PaymentMethod
	}
	if patch.CashChange != nil {
		s.draft.CashChange = *patch.CashChange
	}
	if patch.SelectedBank != nil {
		s.draft.SelectedBank = *patch.SelectedBank
	}
	if patch.ReceiptURL != nil {
		s.draft.ReceiptURL = *patch.ReceiptURL
	}

	s.persistCustomer(ctx)
	return s.draft
}

// SetDeliveryLocation stores the picked address and coordinates together.
func (s *Store) SetDeliveryLocation(ctx context.Context, address string, coords domain.Coordinates) domain.CustomerDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Address = address
	s.draft.DeliveryCoords = &coords
	s.persistCustomer(ctx)
	return s.draft
}

// Draft returns the current customer draft.
func (s *Store) Draft() domain.CustomerDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// OpenView marks the cart view open.
func (s *Store) OpenView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

// CloseView dismisses the cart view and wipes the modal-scoped address and
// coordinates. Name and phone are retained.
func (s *Store) CloseView(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.draft.Address = ""
	s.draft.DeliveryCoords = nil
	s.persistCustomer(ctx)
}

// IsOpen reports whether the cart view is open.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// persistLines writes the full line collection, removing the key when the
// cart is empty. Callers hold the mutex.
func (s *Store) persistLines(ctx context.Context) {
	if len(s.lines) == 0 {
		if err := s.storage.Delete(ctx, cartKey); err != nil {
			s.logf("delete stored cart: %v", err)
		}
		return
	}
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.logf("marshal cart: %v", err)
		return
	}
	if err := s.storage.Set(ctx, cartKey, data); err != nil {
		s.logf("persist cart: %v", err)
	}
}

// persistCustomer writes the {name, phone} projection, removing the key when
// both are empty. Callers hold the mutex.
func (s *Store) persistCustomer(ctx context.Context) {
	if s.draft.Name == "" && s.draft.Phone == "" {
		if err := s.storage.Delete(ctx, customerKey); err != nil {
			s.logf("delete stored customer: %v", err)
		}
		return
	}
	data, err := json.Marshal(map[string]string{
		"name":  s.draft.Name,
		"phone": s.draft.Phone,
	})
	if err != nil {
		s.logf("marshal customer: %v", err)
		return
	}
	if err := s.storage.Set(ctx, customerKey, data); err != nil {
		s.logf("persist customer: %v", err)
	}
}

func (s *Store) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
