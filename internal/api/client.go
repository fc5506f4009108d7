// Package api implements the HTTP client for the remote invoicing backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"invoicegen/internal/config"
	"invoicegen/internal/domain"
	"invoicegen/internal/port"
)

// Client wraps interactions with the invoicing API. No retries, caching, or
// client-side tax computation; every failure is terminal for that call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ port.InvoiceAPI = (*Client)(nil)

// NewClient constructs a client against cfg.BaseURL.
func NewClient(cfg *config.APIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Create submits an invoice and returns it with the server-assigned id,
// invoice number, and tax totals.
func (c *Client) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	created := &domain.Invoice{}
	if err := c.doJSON(ctx, http.MethodPost, "/invoices/", inv, created); err != nil {
		return nil, err
	}
	return created, nil
}

// DownloadPDF fetches the rendered PDF for an invoice.
func (c *Client) DownloadPDF(ctx context.Context, id int64) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/invoices/%d/download_pdf/", id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, body)
	}
	return body, nil
}

// ShareWhatsApp asks the backend to send the invoice PDF over WhatsApp.
// The backend either dispatches directly through its messaging provider or
// returns a wa.me link to open manually; the result is tagged accordingly.
func (c *Client) ShareWhatsApp(ctx context.Context, id int64, phone string) (*domain.WhatsAppShare, error) {
	var body struct {
		Message      string `json:"message"`
		WhatsAppSID  string `json:"whatsapp_sid"`
		Status       string `json:"status"`
		WhatsAppLink string `json:"whatsapp_link"`
		Note         string `json:"note"`
		PDFURL       string `json:"pdf_url"`
	}
	payload := map[string]string{"phone": phone}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/invoices/%d/share_whatsapp/", id), payload, &body); err != nil {
		return nil, err
	}

	share := &domain.WhatsAppShare{
		Message: body.Message,
		PDFURL:  body.PDFURL,
	}
	switch {
	case body.WhatsAppSID != "":
		share.Delivery = domain.WhatsAppDeliveryDirect
		share.SID = body.WhatsAppSID
		share.Status = body.Status
	case body.WhatsAppLink != "":
		share.Delivery = domain.WhatsAppDeliveryLink
		share.Link = body.WhatsAppLink
		share.Note = body.Note
	default:
		return nil, fmt.Errorf("backend returned neither whatsapp_sid nor whatsapp_link")
	}
	return share, nil
}

// ShareEmail asks the backend to email the invoice PDF.
func (c *Client) ShareEmail(ctx context.Context, id int64, email string) (*domain.EmailShare, error) {
	share := &domain.EmailShare{}
	payload := map[string]string{"email": email}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/invoices/%d/send_email/", id), payload, share); err != nil {
		return nil, err
	}
	return share, nil
}

// BulkUpload posts a CSV file plus batch options as multipart form data and
// returns the backend's per-row processing report.
func (c *Client) BulkUpload(ctx context.Context, in port.BulkUploadInput) (*domain.BulkResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("csv_file", in.FileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, in.File); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"invoice_type":    string(in.InvoiceType),
		"user_id":         in.UserID,
		"create_as_draft": strconv.FormatBool(in.CreateAsDraft),
		"send_email":      strconv.FormatBool(in.SendEmail),
		"send_whatsapp":   strconv.FormatBool(in.SendWhatsApp),
		"gst_rate":        strconv.FormatFloat(in.GSTRate, 'f', -1, 64),
	}
	if in.Seller != nil {
		fields["seller_name"] = in.Seller.Name
		fields["seller_gstin"] = in.Seller.GSTIN
		fields["seller_address"] = in.Seller.Address
		fields["seller_pincode"] = in.Seller.Pincode
		fields["seller_state"] = in.Seller.State
		fields["seller_phone"] = in.Seller.Phone
		fields["seller_email"] = in.Seller.Email
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/invoices/bulk-upload/", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, data)
	}

	result := &domain.BulkResult{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("decode bulk upload response: %w", err)
	}
	return result, nil
}

// SavePDF writes downloaded PDF bytes to dir as invoice_{id}.pdf and returns
// the written path.
func SavePDF(dir string, id int64, data []byte) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("invoice_%d.pdf", id))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

// newRequest builds a request with the shared headers. Every call carries a
// client-generated X-Request-ID for correlation in backend logs.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// doJSON issues a JSON request and decodes the response into out when the
// call succeeds, or into an *Error when the backend rejects it.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
