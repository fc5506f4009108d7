package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicegen/internal/validate"
)

func TestGSTIN(t *testing.T) {
	cases := []struct {
		gstin string
		want  bool
	}{
		{"29ABCDE1234F1Z5", true},
		{"27ABCDE1234F1Z5", true},
		{"07AAACI1234A2Z9", true},
		{"", false},
		{"29ABCDE1234F1Z", false},   // too short
		{"29ABCDE1234F1Z55", false}, // too long
		{"2AABCDE1234F1Z5", false},  // letter in state digits
		{"29abcde1234f1z5", false},  // lowercase
		{"29ABCDE1234F0Z5", false},  // entity digit 0
		{"29ABCDE1234F1X5", false},  // missing Z
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validate.GSTIN(tc.gstin), tc.gstin)
	}
}

func TestPincode(t *testing.T) {
	assert.True(t, validate.Pincode("560001"))
	assert.True(t, validate.Pincode("110001"))
	assert.False(t, validate.Pincode(""))
	assert.False(t, validate.Pincode("56001"))
	assert.False(t, validate.Pincode("5600011"))
	assert.False(t, validate.Pincode("56000a"))
}

func TestPhone(t *testing.T) {
	assert.True(t, validate.Phone("919876543210"))
	assert.True(t, validate.Phone("+919876543210"))
	assert.True(t, validate.Phone("9876543210"))
	assert.False(t, validate.Phone("98765"))
	assert.False(t, validate.Phone("98-7654-3210"))
	assert.False(t, validate.Phone(""))
}

func TestHSNSAC(t *testing.T) {
	assert.True(t, validate.HSNSAC("998314"))
	assert.True(t, validate.HSNSAC(strings.Repeat("9", 15)))
	assert.False(t, validate.HSNSAC(strings.Repeat("9", 16)))
	assert.False(t, validate.HSNSAC(""))
}

func TestStateCode(t *testing.T) {
	assert.True(t, validate.StateCode("KA"))
	assert.True(t, validate.StateCode("MH"))
	assert.True(t, validate.StateCode("DL"))
	assert.False(t, validate.StateCode("ka"))
	assert.False(t, validate.StateCode("XX"))
	assert.False(t, validate.StateCode(""))
}

func TestNew_RegistersCustomTags(t *testing.T) {
	v := validate.New()

	type form struct {
		GSTIN   string  `validate:"omitempty,gstin"`
		Pincode string  `validate:"required,pincode"`
		State   string  `validate:"required,statecode"`
		HSN     string  `validate:"hsnsac"`
		Rate    float64 `validate:"gstrate"`
		Phone   string  `validate:"omitempty,phonenum"`
	}

	assert.NoError(t, v.Struct(&form{
		Pincode: "560001",
		State:   "KA",
		HSN:     "998314",
		Rate:    18,
	}))

	assert.Error(t, v.Struct(&form{
		GSTIN:   "bad",
		Pincode: "560001",
		State:   "KA",
		HSN:     "998314",
		Rate:    18,
	}))

	assert.Error(t, v.Struct(&form{
		Pincode: "560001",
		State:   "KA",
		HSN:     "998314",
		Rate:    19,
	}))
}
