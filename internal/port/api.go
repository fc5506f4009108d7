package port

import (
	"context"
	"io"

	"invoicegen/internal/domain"
)

// BulkUploadInput encapsulates the multipart fields for a bulk CSV upload.
// Seller is nil for topmate invoices; required for user invoices.
type BulkUploadInput struct {
	FileName string
	File     io.Reader

	InvoiceType   domain.InvoiceType
	UserID        string
	CreateAsDraft bool
	SendEmail     bool
	SendWhatsApp  bool
	GSTRate       float64
	Seller        *domain.Party
}

// InvoiceAPI defines the contract with the remote invoicing backend. All
// computation (GST splits, numbering, PDF rendering, message dispatch)
// happens server-side; implementations only move requests and responses.
type InvoiceAPI interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	DownloadPDF(ctx context.Context, id int64) ([]byte, error)
	ShareWhatsApp(ctx context.Context, id int64, phone string) (*domain.WhatsAppShare, error)
	ShareEmail(ctx context.Context, id int64, email string) (*domain.EmailShare, error)
	BulkUpload(ctx context.Context, in BulkUploadInput) (*domain.BulkResult, error)
}
