package bulk

import (
	"encoding/csv"
	"io"
)

// SampleFilename is the default name for the generated CSV template.
const SampleFilename = "sample_invoices.csv"

// sampleColumns is the header row the backend expects. The last four
// columns hold comma-separated values when a row carries multiple items.
var sampleColumns = []string{
	"receiver_name",
	"receiver_address",
	"pincode",
	"phone",
	"email",
	"gstin",
	"product_descriptions",
	"hsn_sac_codes",
	"quantities",
	"total_values",
}

// sampleRows documents the expected input: one multi-item row with a GSTIN
// and one single-item row without.
var sampleRows = [][]string{
	{
		"John Doe",
		"123 Main Street, Bangalore",
		"560001",
		"919876543210",
		"john@example.com",
		"29ABCDE1234F1Z5",
		"Website Development, SEO Services",
		"998314, 998316",
		"1, 2",
		"59000, 23600",
	},
	{
		"Jane Smith",
		"456 Park Avenue, Delhi",
		"110001",
		"919876543211",
		"jane@example.com",
		"",
		"Consulting Service",
		"998314",
		"5",
		"118000",
	},
}

// WriteSample writes the sample CSV template documenting the bulk-upload
// input schema.
func WriteSample(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleColumns); err != nil {
		return err
	}
	for _, row := range sampleRows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
