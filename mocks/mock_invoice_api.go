package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicegen/internal/domain"
	"invoicegen/internal/port"
)

// MockInvoiceAPI is a mock implementation of port.InvoiceAPI.
type MockInvoiceAPI struct {
	mock.Mock
}

func (m *MockInvoiceAPI) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceAPI) DownloadPDF(ctx context.Context, id int64) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockInvoiceAPI) ShareWhatsApp(ctx context.Context, id int64, phone string) (*domain.WhatsAppShare, error) {
	args := m.Called(ctx, id, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WhatsAppShare), args.Error(1)
}

func (m *MockInvoiceAPI) ShareEmail(ctx context.Context, id int64, email string) (*domain.EmailShare, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailShare), args.Error(1)
}

func (m *MockInvoiceAPI) BulkUpload(ctx context.Context, in port.BulkUploadInput) (*domain.BulkResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkResult), args.Error(1)
}
