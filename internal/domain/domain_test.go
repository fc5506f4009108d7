package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicegen/internal/domain"
)

func TestInvoiceType_Valid(t *testing.T) {
	assert.True(t, domain.InvoiceTypeTopmate.Valid())
	assert.True(t, domain.InvoiceTypeUser.Valid())
	assert.False(t, domain.InvoiceType("").Valid())
	assert.False(t, domain.InvoiceType("corporate").Valid())
}

func TestIndianStates(t *testing.T) {
	assert.Len(t, domain.IndianStates, 36)

	assert.Equal(t, "Karnataka", domain.StateName("KA"))
	assert.Equal(t, "Maharashtra", domain.StateName("MH"))
	assert.Equal(t, "Delhi", domain.StateName("DL"))
	assert.Empty(t, domain.StateName("XX"))

	assert.True(t, domain.IsValidState("WB"))
	assert.False(t, domain.IsValidState("wb"))
}

func TestGSTRates(t *testing.T) {
	for _, rate := range []float64{0, 5, 12, 18, 28} {
		assert.True(t, domain.IsValidGSTRate(rate), "%v", rate)
	}
	assert.False(t, domain.IsValidGSTRate(19))
	assert.False(t, domain.IsValidGSTRate(-5))
	assert.True(t, domain.IsValidGSTRate(domain.DefaultGSTRate))
}

func TestInvoiceItem_Amount(t *testing.T) {
	item := domain.InvoiceItem{Quantity: 2, UnitPrice: 5000}
	assert.Equal(t, 10000.0, item.Amount())
}

func TestInvoice_TotalGST(t *testing.T) {
	intra := domain.Invoice{CGST: 900, SGST: 900}
	assert.Equal(t, 1800.0, intra.TotalGST())

	inter := domain.Invoice{IGST: 1800}
	assert.Equal(t, 1800.0, inter.TotalGST())
}

func TestInvoice_Parties(t *testing.T) {
	inv := domain.Invoice{
		SellerName:    "Acme Pvt Ltd",
		SellerGSTIN:   "29ABCDE1234F1Z5",
		SellerState:   "KA",
		SellerPincode: "560001",
		BuyerName:     "John Doe",
		BuyerState:    "MH",
		BuyerPincode:  "400001",
		BuyerAddress:  "456 Park Avenue",
	}

	seller := inv.Seller()
	assert.Equal(t, "Acme Pvt Ltd", seller.Name)
	assert.Equal(t, "29ABCDE1234F1Z5", seller.GSTIN)

	buyer := inv.Buyer()
	assert.Equal(t, "John Doe", buyer.Name)
	assert.Equal(t, "MH", buyer.State)
}
