package wizard

import (
	"errors"
	"fmt"

	playground "github.com/go-playground/validator/v10"

	"invoicegen/internal/domain"
)

// FormData enumerates every create-form field and its optionality. The
// seller block is required only for user invoices; topmate invoices carry
// the platform's own seller details server-side.
//
// InvoiceType is filled from the store on submission, not by the caller.
type FormData struct {
	InvoiceType domain.InvoiceType `validate:"required"`

	SellerName    string `validate:"required_if=InvoiceType user"`
	SellerGSTIN   string `validate:"required_if=InvoiceType user,omitempty,gstin"`
	SellerAddress string `validate:"required_if=InvoiceType user"`
	SellerPincode string `validate:"required_if=InvoiceType user,omitempty,pincode"`
	SellerState   string `validate:"required_if=InvoiceType user,omitempty,statecode"`
	SellerPhone   string `validate:"omitempty,phonenum"`
	SellerEmail   string `validate:"omitempty,email"`

	BuyerName    string `validate:"required"`
	BuyerGSTIN   string `validate:"omitempty,gstin"`
	BuyerAddress string `validate:"required"`
	BuyerPincode string `validate:"required,pincode"`
	BuyerState   string `validate:"required,statecode"`
	BuyerPhone   string `validate:"omitempty,phonenum"`
	BuyerEmail   string `validate:"omitempty,email"`

	GSTRate float64 `validate:"omitempty,gstrate"`
	Notes   string
}

// formFieldLabels maps FormData fields to the labels the prompts use.
var formFieldLabels = map[string]string{
	"SellerName":    "Business Name",
	"SellerGSTIN":   "Business GSTIN",
	"SellerAddress": "Business Address",
	"SellerPincode": "Business Pincode",
	"SellerState":   "Business State",
	"SellerPhone":   "Business Phone",
	"SellerEmail":   "Business Email",
	"BuyerName":     "Client Name",
	"BuyerGSTIN":    "Client GSTIN",
	"BuyerAddress":  "Client Address",
	"BuyerPincode":  "Client Pincode",
	"BuyerState":    "Client State",
	"BuyerPhone":    "Client Phone",
	"BuyerEmail":    "Client Email",
	"GSTRate":       "GST Rate",
}

// formError rewrites go-playground's technical validation error into the
// field message shown to the user. Non-validation errors pass through.
func formError(err error) error {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	label := formFieldLabels[fe.StructField()]
	if label == "" {
		label = fe.StructField()
	}
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s is required", label)
	case "gstin":
		return fmt.Errorf("%s must be a valid 15-character GSTIN", label)
	case "pincode":
		return fmt.Errorf("%s must be a 6-digit pincode", label)
	case "statecode":
		return fmt.Errorf("%s must be a valid state code", label)
	case "phonenum":
		return fmt.Errorf("%s must be a valid phone number", label)
	case "email":
		return fmt.Errorf("%s must be a valid email address", label)
	case "gstrate":
		return fmt.Errorf("%s must be one of the selectable GST rates", label)
	}
	return fmt.Errorf("%s is invalid", label)
}

// buildInvoice assembles the create payload from the form, the accumulated
// items, and the configured user id.
func (f *FormData) buildInvoice(userID string, items []domain.InvoiceItem) *domain.Invoice {
	return &domain.Invoice{
		InvoiceType: f.InvoiceType,
		UserID:      userID,

		SellerName:    f.SellerName,
		SellerGSTIN:   f.SellerGSTIN,
		SellerAddress: f.SellerAddress,
		SellerPincode: f.SellerPincode,
		SellerState:   f.SellerState,
		SellerPhone:   f.SellerPhone,
		SellerEmail:   f.SellerEmail,

		BuyerName:    f.BuyerName,
		BuyerGSTIN:   f.BuyerGSTIN,
		BuyerAddress: f.BuyerAddress,
		BuyerPincode: f.BuyerPincode,
		BuyerState:   f.BuyerState,
		BuyerPhone:   f.BuyerPhone,
		BuyerEmail:   f.BuyerEmail,

		Items: items,

		GSTRate: f.GSTRate,
		Notes:   f.Notes,
	}
}
