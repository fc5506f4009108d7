package bulk_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/bulk"
)

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bulk.WriteSample(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two example rows")

	assert.Equal(t, []string{
		"receiver_name", "receiver_address", "pincode", "phone", "email",
		"gstin", "product_descriptions", "hsn_sac_codes", "quantities", "total_values",
	}, records[0])

	multi := records[1]
	assert.Equal(t, "John Doe", multi[0])
	assert.Equal(t, "29ABCDE1234F1Z5", multi[5])
	assert.Equal(t, "Website Development, SEO Services", multi[6])
	assert.Equal(t, "998314, 998316", multi[7])

	single := records[2]
	assert.Equal(t, "Jane Smith", single[0])
	assert.Empty(t, single[5], "GSTIN is optional")
	assert.Equal(t, "Consulting Service", single[6])
}
