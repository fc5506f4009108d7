package wizard

import (
	"context"
	"errors"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"invoicegen/internal/api"
	"invoicegen/internal/domain"
	"invoicegen/internal/port"
	"invoicegen/internal/validate"
)

// HSNTooLongMessage replaces the backend's raw column-length error on
// items[0].hsn_sac, which is unreadable as returned.
const HSNTooLongMessage = "HSN/SAC Code is too long. Please enter a code with maximum 15 characters."

// Wizard drives the invoice creation flow against the backend API.
type Wizard struct {
	store    *Store
	api      port.InvoiceAPI
	validate *playground.Validate
	userID   string
}

// New returns a wizard at the type-selection step.
func New(client port.InvoiceAPI, userID string) *Wizard {
	return &Wizard{
		store:    NewStore(),
		api:      client,
		validate: validate.New(),
		userID:   userID,
	}
}

// Store exposes the wizard state for rendering.
func (w *Wizard) Store() *Store { return w.store }

// SelectType advances from the type-selection step to the form.
func (w *Wizard) SelectType(t domain.InvoiceType) error {
	return w.store.SelectType(t)
}

// AddItem appends a line item; see Store.AddItem for validation.
func (w *Wizard) AddItem(item domain.InvoiceItem) error {
	return w.store.AddItem(item)
}

// RemoveItem deletes the line item at index i.
func (w *Wizard) RemoveItem(i int) {
	w.store.RemoveItem(i)
}

// Reset returns the wizard to the type-selection step from any step.
func (w *Wizard) Reset() {
	w.store.Reset()
}

// Submit validates the form, posts the invoice, and on success stores the
// created invoice and advances to the success step. An empty items list is
// rejected before any network call. On failure the step does not advance.
func (w *Wizard) Submit(ctx context.Context, form FormData) (*domain.Invoice, error) {
	if w.store.Step() != StepFillForm {
		return nil, domain.ErrTypeNotSelected
	}

	items := w.store.Items()
	if len(items) == 0 {
		return nil, domain.ErrNoItems
	}

	form.InvoiceType = w.store.InvoiceType()
	if err := w.validate.Struct(&form); err != nil {
		return nil, formError(err)
	}

	created, err := w.api.Create(ctx, form.buildInvoice(w.userID, items))
	if err != nil {
		return nil, rewriteCreateError(err)
	}
	if err := w.store.complete(created); err != nil {
		return nil, err
	}
	return created, nil
}

// DownloadPDF fetches the generated invoice's PDF bytes.
func (w *Wizard) DownloadPDF(ctx context.Context) ([]byte, error) {
	inv := w.store.Generated()
	if inv == nil {
		return nil, domain.ErrNoGeneratedInvoice
	}
	return w.api.DownloadPDF(ctx, inv.ID)
}

// ShareWhatsApp sends the generated invoice over WhatsApp. An empty phone
// falls back to the buyer's phone from the form.
func (w *Wizard) ShareWhatsApp(ctx context.Context, phone string) (*domain.WhatsAppShare, error) {
	inv := w.store.Generated()
	if inv == nil {
		return nil, domain.ErrNoGeneratedInvoice
	}
	if phone == "" {
		phone = inv.BuyerPhone
	}
	return w.api.ShareWhatsApp(ctx, inv.ID, phone)
}

// ShareEmail emails the generated invoice. An empty email falls back to the
// buyer's email from the form.
func (w *Wizard) ShareEmail(ctx context.Context, email string) (*domain.EmailShare, error) {
	inv := w.store.Generated()
	if inv == nil {
		return nil, domain.ErrNoGeneratedInvoice
	}
	if email == "" {
		email = inv.BuyerEmail
	}
	return w.api.ShareEmail(ctx, inv.ID, email)
}

// rewriteCreateError special-cases the backend's HSN/SAC length violation
// into a readable message. Everything else propagates unchanged.
func rewriteCreateError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if msg := apiErr.ItemError(0, "hsn_sac"); strings.Contains(msg, "no more than") {
			return errors.New(HSNTooLongMessage)
		}
	}
	return err
}
