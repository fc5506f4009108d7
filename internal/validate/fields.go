// Package validate holds the client-side field format checks shared by the
// wizard form and the bulk upload request.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"invoicegen/internal/domain"
)

var (
	gstinPattern   = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	phonePattern   = regexp.MustCompile(`^\+?\d{10,15}$`)
)

// MaxHSNSACLen is the backend's column limit for HSN/SAC codes.
const MaxHSNSACLen = 15

// GSTIN reports whether s is a well-formed 15-character GSTIN.
func GSTIN(s string) bool {
	return gstinPattern.MatchString(s)
}

// Pincode reports whether s is a 6-digit Indian pincode.
func Pincode(s string) bool {
	return pincodePattern.MatchString(s)
}

// Phone reports whether s looks like a dialable phone number.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// HSNSAC reports whether s fits the backend's HSN/SAC column.
func HSNSAC(s string) bool {
	return s != "" && len(s) <= MaxHSNSACLen
}

// StateCode reports whether s is a known two-letter state code.
func StateCode(s string) bool {
	return domain.IsValidState(s)
}

// New returns a validator with the invoice-specific validations registered.
// Fields tagged omitempty skip the check when blank, matching the optional
// GSTIN/phone/email fields on the form.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return GSTIN(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return Pincode(fl.Field().String())
	})
	_ = v.RegisterValidation("statecode", func(fl validator.FieldLevel) bool {
		return StateCode(fl.Field().String())
	})
	_ = v.RegisterValidation("hsnsac", func(fl validator.FieldLevel) bool {
		return HSNSAC(fl.Field().String())
	})
	_ = v.RegisterValidation("gstrate", func(fl validator.FieldLevel) bool {
		return domain.IsValidGSTRate(fl.Field().Float())
	})
	_ = v.RegisterValidation("phonenum", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	})
	return v
}
