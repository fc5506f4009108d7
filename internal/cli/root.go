// Package cli wires the invoicegen commands: the interactive creation
// wizard, bulk CSV upload, the sample template, and PDF download.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"invoicegen/internal/config"
	"invoicegen/internal/port"
)

// App carries the shared dependencies for every command.
type App struct {
	Config *config.Config
	API    port.InvoiceAPI
	Styles Styles
	In     io.Reader
	Out    io.Writer
}

// NewRootCmd builds the invoicegen command tree.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "invoicegen",
		Short: "Create GST-compliant invoices against the invoicing backend",
		Long: `invoicegen is a client for the invoicing backend: an interactive wizard
for creating single GST invoices, plus bulk generation from a CSV file.

All GST computation, invoice numbering, PDF rendering, and email/WhatsApp
dispatch happen on the backend; this tool collects the inputs and renders
the results.`,
		Example: `  invoicegen create
  invoicegen bulk --file invoices.csv --type user --seller-name "Acme Pvt Ltd" \
      --seller-gstin 29ABCDE1234F1Z5 --seller-address "1 MG Road, Bangalore" \
      --seller-pincode 560001 --seller-state KA
  invoicegen sample-csv
  invoicegen download 42`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCreateCommand(app))
	rootCmd.AddCommand(newBulkCommand(app))
	rootCmd.AddCommand(newSampleCSVCommand(app))
	rootCmd.AddCommand(newDownloadCommand(app))

	return rootCmd
}
