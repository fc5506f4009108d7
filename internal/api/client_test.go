package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/api"
	"invoicegen/internal/config"
	"invoicegen/internal/domain"
	"invoicegen/internal/port"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(&config.APIConfig{
		BaseURL: srv.URL + "/api",
		Timeout: 5 * time.Second,
	})
}

func TestClient_Create(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/invoices/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var inv domain.Invoice
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inv))
		assert.Equal(t, domain.InvoiceTypeTopmate, inv.InvoiceType)

		inv.ID = 42
		inv.InvoiceNumber = "INV-0042"
		inv.Subtotal = 10000
		inv.IGST = 1800
		inv.Total = 11800
		rw.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(rw).Encode(&inv)
	})

	created, err := client.Create(context.Background(), &domain.Invoice{
		InvoiceType: domain.InvoiceTypeTopmate,
		UserID:      "demo-user-123",
		BuyerName:   "Acme Corp",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "INV-0042", created.InvoiceNumber)
	assert.Equal(t, 1800.0, created.TotalGST())
}

func TestClient_Create_ValidationError(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusBadRequest)
		_, _ = rw.Write([]byte(`{
			"buyer_gstin": ["Enter a valid GSTIN."],
			"items": [{"hsn_sac": ["Ensure this field has no more than 15 characters."]}]
		}`))
	})

	_, err := client.Create(context.Background(), &domain.Invoice{})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "buyer_gstin: Enter a valid GSTIN.", apiErr.Message)
	assert.Equal(t, "Ensure this field has no more than 15 characters.", apiErr.ItemError(0, "hsn_sac"))
	assert.Empty(t, apiErr.ItemError(1, "hsn_sac"))
	assert.Empty(t, apiErr.ItemError(0, "description"))
}

func TestClient_Create_ErrorKey(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"error": "PDF generation failed"}`))
	})

	_, err := client.Create(context.Background(), &domain.Invoice{})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PDF generation failed", apiErr.Message)
	assert.Equal(t, "PDF generation failed", apiErr.Error())
}

func TestClient_Create_NonJSONError(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
		_, _ = rw.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.Create(context.Background(), &domain.Invoice{})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestClient_DownloadPDF(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/invoices/7/download_pdf/", r.URL.Path)
		rw.Header().Set("Content-Type", "application/pdf")
		_, _ = rw.Write(pdf)
	})

	data, err := client.DownloadPDF(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestClient_DownloadPDF_NotFound(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		_, _ = rw.Write([]byte(`{"detail": "Not found."}`))
	})

	_, err := client.DownloadPDF(context.Background(), 99)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not found.", apiErr.Message)
}

func TestClient_ShareWhatsApp_Direct(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/invoices/7/share_whatsapp/", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "919876543210", payload["phone"])

		_ = json.NewEncoder(rw).Encode(map[string]string{
			"message":      "Invoice sent",
			"whatsapp_sid": "SM123",
			"status":       "queued",
		})
	})

	share, err := client.ShareWhatsApp(context.Background(), 7, "919876543210")

	require.NoError(t, err)
	assert.Equal(t, domain.WhatsAppDeliveryDirect, share.Delivery)
	assert.Equal(t, "SM123", share.SID)
	assert.Equal(t, "queued", share.Status)
	assert.Empty(t, share.Link)
}

func TestClient_ShareWhatsApp_Link(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(rw).Encode(map[string]string{
			"whatsapp_link": "https://wa.me/919876543210?text=hello",
			"note":          "Twilio not configured; open the link to share",
		})
	})

	share, err := client.ShareWhatsApp(context.Background(), 7, "919876543210")

	require.NoError(t, err)
	assert.Equal(t, domain.WhatsAppDeliveryLink, share.Delivery)
	assert.Equal(t, "https://wa.me/919876543210?text=hello", share.Link)
	assert.NotEmpty(t, share.Note)
	assert.Empty(t, share.SID)
}

func TestClient_ShareWhatsApp_NeitherVariant(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(rw).Encode(map[string]string{"message": "ok"})
	})

	_, err := client.ShareWhatsApp(context.Background(), 7, "919876543210")

	assert.ErrorContains(t, err, "neither whatsapp_sid nor whatsapp_link")
}

func TestClient_ShareEmail(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/invoices/7/send_email/", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "buyer@acme.com", payload["email"])

		_ = json.NewEncoder(rw).Encode(map[string]string{
			"message":        "Invoice emailed successfully",
			"invoice_number": "INV-0007",
		})
	})

	share, err := client.ShareEmail(context.Background(), 7, "buyer@acme.com")

	require.NoError(t, err)
	assert.Equal(t, "INV-0007", share.InvoiceNumber)
}

func TestClient_BulkUpload(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/invoices/bulk-upload/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		file, header, err := r.FormFile("csv_file")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		assert.Equal(t, "invoices.csv", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Contains(t, string(content), "receiver_name")

		assert.Equal(t, "user", r.FormValue("invoice_type"))
		assert.Equal(t, "demo-user-123", r.FormValue("user_id"))
		assert.Equal(t, "false", r.FormValue("create_as_draft"))
		assert.Equal(t, "true", r.FormValue("send_email"))
		assert.Equal(t, "18", r.FormValue("gst_rate"))
		assert.Equal(t, "Acme Pvt Ltd", r.FormValue("seller_name"))
		assert.Equal(t, "29ABCDE1234F1Z5", r.FormValue("seller_gstin"))

		emails := 1
		_ = json.NewEncoder(rw).Encode(domain.BulkResult{
			Message: "Bulk upload processed",
			Summary: domain.BulkSummary{
				TotalRows:  2,
				Successful: 1,
				Failed:     1,
				EmailsSent: &emails,
			},
			Successes: []domain.BulkRowSuccess{
				{Row: 2, InvoiceNumber: "INV-0001", BuyerName: "John Doe", Total: 11800, EmailSent: true},
			},
			Failures: []domain.BulkRowFailure{
				{Row: 3, Error: "receiver_name is required"},
			},
		})
	})

	result, err := client.BulkUpload(context.Background(), port.BulkUploadInput{
		FileName:    "invoices.csv",
		File:        strings.NewReader("receiver_name,receiver_address\n"),
		InvoiceType: domain.InvoiceTypeUser,
		UserID:      "demo-user-123",
		SendEmail:   true,
		GSTRate:     18,
		Seller: &domain.Party{
			Name:    "Acme Pvt Ltd",
			GSTIN:   "29ABCDE1234F1Z5",
			Address: "1 MG Road, Bangalore",
			Pincode: "560001",
			State:   "KA",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Summary.TotalRows)
	assert.Equal(t, 1, result.Summary.Successful)
	require.NotNil(t, result.Summary.EmailsSent)
	assert.Equal(t, 1, *result.Summary.EmailsSent)
	require.Len(t, result.Successes, 1)
	assert.Equal(t, "INV-0001", result.Successes[0].InvoiceNumber)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, 3, result.Failures[0].Row)
}

func TestClient_BulkUpload_NoSellerFieldsForTopmate(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		_, hasSeller := r.MultipartForm.Value["seller_name"]
		assert.False(t, hasSeller)
		_ = json.NewEncoder(rw).Encode(domain.BulkResult{Message: "ok"})
	})

	_, err := client.BulkUpload(context.Background(), port.BulkUploadInput{
		FileName:    "invoices.csv",
		File:        strings.NewReader("receiver_name\n"),
		InvoiceType: domain.InvoiceTypeTopmate,
		UserID:      "demo-user-123",
		GSTRate:     18,
	})

	require.NoError(t, err)
}

func TestSavePDF(t *testing.T) {
	dir := t.TempDir()

	path, err := api.SavePDF(dir, 7, []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "invoice_7.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}
