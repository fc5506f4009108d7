// Package bulk implements the CSV bulk-upload flow. It is self-contained
// and does not touch the wizard state.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"invoicegen/internal/config"
	"invoicegen/internal/domain"
	"invoicegen/internal/port"
	"invoicegen/internal/validate"
)

// Fixed user-facing validation messages. Tests and the CLI rely on the
// exact wording.
var (
	ErrFileRequired          = errors.New("Please select a CSV file")
	ErrNotCSV                = errors.New("File must be a CSV")
	ErrFileTooLarge          = errors.New("File size cannot exceed 5MB")
	ErrSellerDetailsRequired = errors.New("Please fill in all seller details for user invoices")
	ErrDraftSendConflict     = errors.New("Cannot send email or WhatsApp for draft invoices. Set create_as_draft=false to send invoices.")
)

// Request is the bulk-upload form. File, when set, takes precedence over
// FilePath; FilePath is the normal CLI path.
type Request struct {
	FilePath string
	FileName string
	File     io.Reader

	InvoiceType   domain.InvoiceType `validate:"required"`
	UserID        string             `validate:"required"`
	CreateAsDraft bool
	SendEmail     bool
	SendWhatsApp  bool
	GSTRate       float64 `validate:"gstrate"`

	SellerName    string `validate:"omitempty"`
	SellerGSTIN   string `validate:"omitempty,gstin"`
	SellerAddress string
	SellerPincode string `validate:"omitempty,pincode"`
	SellerState   string `validate:"omitempty,statecode"`
	SellerPhone   string `validate:"omitempty,phonenum"`
	SellerEmail   string `validate:"omitempty,email"`
}

// seller returns the seller block for user invoices, nil otherwise.
func (r *Request) seller() *domain.Party {
	if r.InvoiceType != domain.InvoiceTypeUser {
		return nil
	}
	return &domain.Party{
		Name:    r.SellerName,
		GSTIN:   r.SellerGSTIN,
		Address: r.SellerAddress,
		Pincode: r.SellerPincode,
		State:   r.SellerState,
		Phone:   r.SellerPhone,
		Email:   r.SellerEmail,
	}
}

// Service validates and submits bulk uploads.
type Service struct {
	api      port.InvoiceAPI
	validate *playground.Validate
	maxBytes int64
}

// NewService builds a bulk upload service. The file size cap comes from
// config and mirrors the backend's own limit.
func NewService(client port.InvoiceAPI, cfg *config.BulkConfig) *Service {
	return &Service{
		api:      client,
		validate: validate.New(),
		maxBytes: cfg.MaxFileSizeMB * 1024 * 1024,
	}
}

// Validate runs every client-side check; nothing reaches the network when
// it fails. Draft exclusivity with the send options is re-validated here,
// not just reflected in the UI, so the invalid combination can never be
// submitted.
func (s *Service) Validate(req *Request) error {
	if req.File == nil && req.FilePath == "" {
		return ErrFileRequired
	}

	name := req.FileName
	if name == "" {
		name = filepath.Base(req.FilePath)
	}
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		return ErrNotCSV
	}

	if req.FilePath != "" && req.File == nil {
		info, err := os.Stat(req.FilePath)
		if err != nil {
			return fmt.Errorf("csv file: %w", err)
		}
		if info.Size() > s.maxBytes {
			return ErrFileTooLarge
		}
	}

	if req.CreateAsDraft && (req.SendEmail || req.SendWhatsApp) {
		return ErrDraftSendConflict
	}

	if req.InvoiceType == domain.InvoiceTypeUser {
		if req.SellerName == "" || req.SellerGSTIN == "" || req.SellerAddress == "" ||
			req.SellerPincode == "" || req.SellerState == "" {
			return ErrSellerDetailsRequired
		}
	}

	return s.validate.Struct(req)
}

// Upload validates the request, then posts the CSV and options as one
// multipart request. The backend processes every row synchronously and the
// full report comes back in this single response.
func (s *Service) Upload(ctx context.Context, req *Request) (*domain.BulkResult, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	file := req.File
	name := req.FileName
	if file == nil {
		f, err := os.Open(req.FilePath)
		if err != nil {
			return nil, fmt.Errorf("open csv file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		file = f
		name = filepath.Base(req.FilePath)
	}

	return s.api.BulkUpload(ctx, port.BulkUploadInput{
		FileName:      name,
		File:          file,
		InvoiceType:   req.InvoiceType,
		UserID:        req.UserID,
		CreateAsDraft: req.CreateAsDraft,
		SendEmail:     req.SendEmail,
		SendWhatsApp:  req.SendWhatsApp,
		GSTRate:       req.GSTRate,
		Seller:        req.seller(),
	})
}
