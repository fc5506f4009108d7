// Package wizard implements the three-step invoice creation flow: select a
// type, fill the form, show the generated invoice.
package wizard

import (
	"invoicegen/internal/domain"
)

// Step identifies the wizard's current screen.
type Step int

const (
	StepSelectType Step = iota + 1
	StepFillForm
	StepSuccess
)

// Store holds the wizard's mutable state. It is owned by the CLI controller
// and only ever touched from the interactive loop, so it carries no locking.
//
// Invariants: StepFillForm requires a selected invoice type; StepSuccess
// requires a generated invoice. Both are enforced by the transition methods.
type Store struct {
	step        Step
	invoiceType domain.InvoiceType
	items       []domain.InvoiceItem
	generated   *domain.Invoice
}

// NewStore returns a store at the type-selection step with no items.
func NewStore() *Store {
	return &Store{step: StepSelectType}
}

// Step returns the current step.
func (s *Store) Step() Step { return s.step }

// InvoiceType returns the selected type, or "" before selection.
func (s *Store) InvoiceType() domain.InvoiceType { return s.invoiceType }

// Generated returns the created invoice, or nil before submission succeeds.
func (s *Store) Generated() *domain.Invoice { return s.generated }

// Items returns a copy of the accumulated line items in order.
func (s *Store) Items() []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, len(s.items))
	copy(items, s.items)
	return items
}

// SelectType records the chosen invoice type and advances to the form step.
func (s *Store) SelectType(t domain.InvoiceType) error {
	if !t.Valid() {
		return domain.ErrInvalidInvoiceType
	}
	s.invoiceType = t
	s.step = StepFillForm
	return nil
}

// AddItem appends an item after checking all four fields are filled and
// positive. A rejected item never mutates the list.
func (s *Store) AddItem(item domain.InvoiceItem) error {
	if item.Description == "" || item.HSNSAC == "" || item.Quantity <= 0 || item.UnitPrice <= 0 {
		return domain.ErrInvalidItem
	}
	s.items = append(s.items, item)
	return nil
}

// RemoveItem deletes the item at index i, preserving order. Out-of-range
// indexes are a no-op.
func (s *Store) RemoveItem(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// complete records the backend-created invoice and advances to the success
// step. Refused when no type was selected, which also guards against a
// submission result landing after a reset.
func (s *Store) complete(inv *domain.Invoice) error {
	if s.step != StepFillForm || !s.invoiceType.Valid() {
		return domain.ErrTypeNotSelected
	}
	s.generated = inv
	s.step = StepSuccess
	return nil
}

// Reset returns the store to its initial state from any step.
func (s *Store) Reset() {
	s.step = StepSelectType
	s.invoiceType = ""
	s.items = nil
	s.generated = nil
}
