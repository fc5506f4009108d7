package domain

import "errors"

var (
	ErrNoItems            = errors.New("invoice has no items")
	ErrInvalidItem        = errors.New("item fields must be filled and positive")
	ErrInvalidInvoiceType = errors.New("unknown invoice type")
	ErrTypeNotSelected    = errors.New("invoice type not selected")
	ErrNoGeneratedInvoice = errors.New("no generated invoice")
)
