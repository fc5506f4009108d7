package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"invoicegen/internal/bulk"
	"invoicegen/internal/domain"
)

func newBulkCommand(app *App) *cobra.Command {
	req := &bulk.Request{}
	var invoiceType string

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Create invoices in bulk from a CSV file",
		Long: `Uploads a CSV of invoice rows and creates one invoice per row in a
single request. Run "invoicegen sample-csv" first to get the expected
column layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.InvoiceType = domain.InvoiceType(invoiceType)
			if req.UserID == "" {
				req.UserID = app.Config.API.UserID
			}

			svc := bulk.NewService(app.API, &app.Config.Bulk)
			result, err := svc.Upload(cmd.Context(), req)
			if err != nil {
				return err
			}
			renderBulkResult(app, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.FilePath, "file", "f", "", "path to the CSV file (required)")
	cmd.Flags().StringVarP(&invoiceType, "type", "t", string(domain.InvoiceTypeTopmate), "invoice type: topmate or user")
	cmd.Flags().StringVar(&req.UserID, "user-id", "", "user the invoices belong to (defaults to configured user)")
	cmd.Flags().BoolVar(&req.CreateAsDraft, "draft", false, "create invoices as drafts instead of sending them")
	cmd.Flags().BoolVar(&req.SendEmail, "send-email", true, "email each invoice PDF to the buyer")
	cmd.Flags().BoolVar(&req.SendWhatsApp, "send-whatsapp", false, "send each invoice PDF over WhatsApp")
	cmd.Flags().Float64Var(&req.GSTRate, "gst-rate", domain.DefaultGSTRate, "GST rate percentage for user invoices")
	cmd.Flags().StringVar(&req.SellerName, "seller-name", "", "seller business name (user invoices)")
	cmd.Flags().StringVar(&req.SellerGSTIN, "seller-gstin", "", "seller GSTIN (user invoices)")
	cmd.Flags().StringVar(&req.SellerAddress, "seller-address", "", "seller address (user invoices)")
	cmd.Flags().StringVar(&req.SellerPincode, "seller-pincode", "", "seller pincode (user invoices)")
	cmd.Flags().StringVar(&req.SellerState, "seller-state", "", "seller state code, e.g. KA (user invoices)")
	cmd.Flags().StringVar(&req.SellerPhone, "seller-phone", "", "seller phone (user invoices)")
	cmd.Flags().StringVar(&req.SellerEmail, "seller-email", "", "seller email (user invoices)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func renderBulkResult(app *App, result *domain.BulkResult) {
	s := result.Summary

	lines := []string{
		result.Message,
		"",
		fmt.Sprintf("Total rows   %d", s.TotalRows),
		fmt.Sprintf("Successful   %d", s.Successful),
		fmt.Sprintf("Failed       %d", s.Failed),
	}
	if s.EmailsSent != nil {
		lines = append(lines, fmt.Sprintf("Emails sent  %d", *s.EmailsSent))
	}
	if s.WhatsAppSent != nil {
		lines = append(lines, fmt.Sprintf("WhatsApp sent %d", *s.WhatsAppSent))
	}
	fmt.Fprintln(app.Out, app.Styles.Panel.Render(strings.Join(lines, "\n")))

	if len(result.Successes) > 0 {
		fmt.Fprintln(app.Out, app.Styles.Success.Render("Created invoices"))
		for _, row := range result.Successes {
			fmt.Fprintf(app.Out, "  row %d: %s — %s, ₹%s%s\n",
				row.Row, row.InvoiceNumber, row.BuyerName,
				formatAmount(row.Total), successFlags(row))
		}

		drafts := lo.CountBy(result.Successes, func(row domain.BulkRowSuccess) bool {
			return row.IsDraft
		})
		if drafts > 0 {
			fmt.Fprintln(app.Out, app.Styles.Muted.Render(fmt.Sprintf("%d created as drafts", drafts)))
		}
	}

	if len(result.Failures) > 0 {
		fmt.Fprintln(app.Out, app.Styles.Error.Render("Failed rows"))
		for _, row := range result.Failures {
			fmt.Fprintf(app.Out, "  row %d: %s\n", row.Row, row.Error)
		}
	}
}

// successFlags summarises the per-row delivery outcome for the report line.
func successFlags(row domain.BulkRowSuccess) string {
	flags := lo.Compact([]string{
		lo.Ternary(row.EmailSent, "email sent", ""),
		lo.Ternary(row.WhatsAppSent, "whatsapp sent", ""),
		lo.Ternary(row.EmailError != "", "email failed: "+row.EmailError, ""),
		lo.Ternary(row.WhatsAppError != "", "whatsapp failed: "+row.WhatsAppError, ""),
	})
	if len(flags) == 0 {
		return ""
	}
	return " (" + strings.Join(flags, ", ") + ")"
}
