package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"invoicegen/internal/api"
	"invoicegen/internal/domain"
	"invoicegen/internal/wizard"
)

func newCreateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a single invoice interactively",
		Long: `Walks through the three-step creation flow: pick the invoice type,
fill in the parties and line items, then download or share the generated
invoice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := wizard.New(app.API, app.Config.API.UserID)
			p := NewPrompter(app.In, app.Out)
			return runWizard(cmd.Context(), app, w, p)
		},
	}
}

// runWizard loops over the wizard steps until the user quits. Every screen
// renders from the store, mirroring its step invariants.
func runWizard(ctx context.Context, app *App, w *wizard.Wizard, p *Prompter) error {
	for {
		switch w.Store().Step() {
		case wizard.StepSelectType:
			done, err := selectTypeScreen(app, w, p)
			if err != nil || done {
				return err
			}
		case wizard.StepFillForm:
			done, err := formScreen(ctx, app, w, p)
			if err != nil || done {
				return err
			}
		case wizard.StepSuccess:
			done, err := successScreen(ctx, app, w, p)
			if err != nil || done {
				return err
			}
		}
	}
}

func selectTypeScreen(app *App, w *wizard.Wizard, p *Prompter) (done bool, err error) {
	fmt.Fprintln(app.Out, app.Styles.Title.Render("Invoice Generator"))
	fmt.Fprintln(app.Out, app.Styles.Muted.Render("Create professional GST-compliant invoices in seconds"))
	fmt.Fprintln(app.Out)

	choice, err := p.Choose("Which invoice do you want to create?", []string{
		"Topmate Invoice (Topmate is the seller)",
		"Personal Invoice (your own business)",
		"Quit",
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		return false, w.SelectType(domain.InvoiceTypeTopmate)
	case 1:
		return false, w.SelectType(domain.InvoiceTypeUser)
	default:
		return true, nil
	}
}

// formScreen collects the form, runs the item loop, and submits. On a
// failed submission the step does not advance; the user can adjust items
// and resubmit, or start over.
func formScreen(ctx context.Context, app *App, w *wizard.Wizard, p *Prompter) (done bool, err error) {
	title := "Topmate Invoice"
	if w.Store().InvoiceType() == domain.InvoiceTypeUser {
		title = "Personal Invoice"
	}
	fmt.Fprintln(app.Out, app.Styles.Title.Render("Create Invoice — "+title))

	form, err := promptFormFields(app, w.Store().InvoiceType(), p)
	if err != nil {
		return false, err
	}
	if err := itemLoop(app, w, p); err != nil {
		return false, err
	}

	for w.Store().Step() == wizard.StepFillForm {
		inv, err := w.Submit(ctx, *form)
		if err == nil {
			fmt.Fprintln(app.Out, app.Styles.Success.Render("Invoice "+inv.InvoiceNumber+" generated."))
			return false, nil
		}

		fmt.Fprintln(app.Out, app.Styles.Error.Render("Error: "+err.Error()))
		choice, cerr := p.Choose("What next?", []string{
			"Edit items and resubmit",
			"Start over",
			"Quit",
		})
		if cerr != nil {
			return false, cerr
		}
		switch choice {
		case 0:
			if err := itemLoop(app, w, p); err != nil {
				return false, err
			}
		case 1:
			w.Reset()
			return false, nil
		default:
			return true, nil
		}
	}
	return false, nil
}

func promptFormFields(app *App, t domain.InvoiceType, p *Prompter) (*wizard.FormData, error) {
	form := &wizard.FormData{}
	var err error

	if t == domain.InvoiceTypeUser {
		fmt.Fprintln(app.Out, app.Styles.Accent.Render("Your Business Details"))
		if form.SellerName, err = p.Required("Business Name"); err != nil {
			return nil, err
		}
		if form.SellerGSTIN, err = p.Required("GSTIN (e.g. 29ABCDE1234F1Z5)"); err != nil {
			return nil, err
		}
		if form.SellerState, err = promptState(app, p, "State"); err != nil {
			return nil, err
		}
		if form.SellerAddress, err = p.Required("Address"); err != nil {
			return nil, err
		}
		if form.SellerPincode, err = p.Required("Pincode"); err != nil {
			return nil, err
		}
		if form.GSTRate, err = promptGSTRate(app, p); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(app.Out, app.Styles.Accent.Render("Client Details"))
	if form.BuyerName, err = p.Required("Client Name"); err != nil {
		return nil, err
	}
	if form.BuyerGSTIN, err = p.Line("Client GSTIN (optional)"); err != nil {
		return nil, err
	}
	if form.BuyerState, err = promptState(app, p, "State"); err != nil {
		return nil, err
	}
	if form.BuyerAddress, err = p.Required("Address"); err != nil {
		return nil, err
	}
	if form.BuyerPincode, err = p.Required("Pincode"); err != nil {
		return nil, err
	}
	if form.BuyerPhone, err = p.Line("Phone (optional)"); err != nil {
		return nil, err
	}
	if form.BuyerEmail, err = p.Line("Email (optional)"); err != nil {
		return nil, err
	}
	if form.Notes, err = p.Line("Notes / Terms & Conditions (optional)"); err != nil {
		return nil, err
	}

	return form, nil
}

// promptState asks for a two-letter state code, listing the valid codes on
// a wrong answer.
func promptState(app *App, p *Prompter, label string) (string, error) {
	for {
		code, err := p.Required(label + " code (e.g. KA)")
		if err != nil {
			return "", err
		}
		code = strings.ToUpper(code)
		if domain.IsValidState(code) {
			fmt.Fprintln(app.Out, app.Styles.Muted.Render(domain.StateName(code)))
			return code, nil
		}
		fmt.Fprintln(app.Out, app.Styles.Error.Render("Unknown state code. Valid codes:"))
		for _, s := range domain.IndianStates {
			fmt.Fprintf(app.Out, "  %s  %s\n", s.Code, s.Name)
		}
	}
}

func promptGSTRate(app *App, p *Prompter) (float64, error) {
	for {
		rate, err := p.Float("GST Rate (%)", domain.DefaultGSTRate)
		if err != nil {
			return 0, err
		}
		if domain.IsValidGSTRate(rate) {
			return rate, nil
		}
		fmt.Fprintln(app.Out, app.Styles.Error.Render("Pick one of the selectable rates:"))
		for _, r := range domain.GSTRates {
			fmt.Fprintf(app.Out, "  %s\n", r.Label)
		}
	}
}

// itemLoop shows the accumulated items and lets the user add or remove
// until done.
func itemLoop(app *App, w *wizard.Wizard, p *Prompter) error {
	for {
		renderItems(app, w.Store().Items())

		choice, err := p.Choose("Invoice items", []string{
			"Add item",
			"Remove item",
			"Done",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			item, err := promptItem(p)
			if err != nil {
				return err
			}
			if err := w.AddItem(item); err != nil {
				fmt.Fprintln(app.Out, app.Styles.Error.Render("Please fill all item fields"))
			}
		case 1:
			items := w.Store().Items()
			if len(items) == 0 {
				fmt.Fprintln(app.Out, app.Styles.Muted.Render("Nothing to remove."))
				continue
			}
			idx, err := p.Float("Item number to remove", 1)
			if err != nil {
				return err
			}
			w.RemoveItem(int(idx) - 1)
		default:
			return nil
		}
	}
}

func promptItem(p *Prompter) (domain.InvoiceItem, error) {
	var item domain.InvoiceItem
	var err error
	if item.Description, err = p.Line("Description"); err != nil {
		return item, err
	}
	if item.HSNSAC, err = p.Line("HSN/SAC Code"); err != nil {
		return item, err
	}
	if item.Quantity, err = p.Float("Quantity", 1); err != nil {
		return item, err
	}
	if item.UnitPrice, err = p.Float("Unit Price", 0); err != nil {
		return item, err
	}
	return item, nil
}

func renderItems(app *App, items []domain.InvoiceItem) {
	if len(items) == 0 {
		fmt.Fprintln(app.Out, app.Styles.Muted.Render("No items yet."))
		return
	}
	for i, item := range items {
		fmt.Fprintf(app.Out, "  %d) %s — HSN %s, %s × ₹%.2f = ₹%.2f\n",
			i+1, item.Description, item.HSNSAC,
			formatQuantity(item.Quantity), item.UnitPrice, item.Amount())
	}
}

// successScreen renders the generated invoice and drives the share actions.
func successScreen(ctx context.Context, app *App, w *wizard.Wizard, p *Prompter) (done bool, err error) {
	inv := w.Store().Generated()

	panel := fmt.Sprintf(
		"Invoice Generated!\n\nInvoice Number  %s\nBuyer           %s\nSubtotal        ₹%s\nGST             ₹%s\nTotal           %s",
		inv.InvoiceNumber,
		inv.BuyerName,
		formatAmount(inv.Subtotal),
		formatAmount(inv.TotalGST()),
		app.Styles.Total.Render("₹"+formatAmount(inv.Total)),
	)
	fmt.Fprintln(app.Out, app.Styles.Panel.Render(panel))

	choice, err := p.Choose("What next?", []string{
		"Download PDF",
		"Share via WhatsApp",
		"Share via Email",
		"Create another invoice",
		"Quit",
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		data, err := w.DownloadPDF(ctx)
		if err != nil {
			fmt.Fprintln(app.Out, app.Styles.Error.Render("Error: "+err.Error()))
			return false, nil
		}
		path, err := api.SavePDF(app.Config.Download.Dir, inv.ID, data)
		if err != nil {
			fmt.Fprintln(app.Out, app.Styles.Error.Render("Error: "+err.Error()))
			return false, nil
		}
		fmt.Fprintln(app.Out, app.Styles.Success.Render("Saved "+path))
	case 1:
		if err := shareWhatsApp(ctx, app, w, p, inv); err != nil {
			return false, err
		}
	case 2:
		if err := shareEmail(ctx, app, w, p, inv); err != nil {
			return false, err
		}
	case 3:
		w.Reset()
	default:
		return true, nil
	}
	return false, nil
}

func shareWhatsApp(ctx context.Context, app *App, w *wizard.Wizard, p *Prompter, inv *domain.Invoice) error {
	phone := inv.BuyerPhone
	if phone != "" {
		use, err := p.YesNo(fmt.Sprintf("Send to %s?", phone), true)
		if err != nil {
			return err
		}
		if !use {
			phone = ""
		}
	}
	if phone == "" {
		var err error
		phone, err = p.Line("Enter WhatsApp number (with country code, e.g. 919876543210)")
		if err != nil {
			return err
		}
	}
	if phone == "" {
		return nil
	}

	share, err := w.ShareWhatsApp(ctx, phone)
	if err != nil {
		fmt.Fprintln(app.Out, app.Styles.Error.Render("Failed to share via WhatsApp: "+err.Error()))
		return nil
	}

	switch share.Delivery {
	case domain.WhatsAppDeliveryDirect:
		fmt.Fprintln(app.Out, app.Styles.Success.Render("✓ Invoice PDF sent directly to WhatsApp!"))
	case domain.WhatsAppDeliveryLink:
		note := share.Note
		if note == "" {
			note = "Open this link to share the invoice details"
		}
		fmt.Fprintln(app.Out, app.Styles.Accent.Render(share.Link))
		fmt.Fprintln(app.Out, app.Styles.Muted.Render(note))
	}
	return nil
}

func shareEmail(ctx context.Context, app *App, w *wizard.Wizard, p *Prompter, inv *domain.Invoice) error {
	email := inv.BuyerEmail
	if email == "" {
		var err error
		email, err = p.Line("Enter email address")
		if err != nil {
			return err
		}
	}
	if email == "" {
		return nil
	}

	if _, err := w.ShareEmail(ctx, email); err != nil {
		fmt.Fprintln(app.Out, app.Styles.Error.Render("Failed to send email: "+err.Error()))
		return nil
	}
	fmt.Fprintf(app.Out, "%s\n", app.Styles.Success.Render(fmt.Sprintf("✓ Invoice PDF sent successfully to %s!", email)))
	return nil
}

func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%g", q)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
