package domain

// InvoiceItem is a single line item on an invoice. Amounts are computed by
// the backend; Amount is provided for local display only.
type InvoiceItem struct {
	Description string  `json:"description"`
	HSNSAC      string  `json:"hsn_sac"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount returns quantity × unit price for display purposes. The backend
// recomputes and persists the authoritative figure.
func (i InvoiceItem) Amount() float64 {
	return i.Quantity * i.UnitPrice
}

// Party holds the identity of a seller or buyer.
type Party struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin,omitempty"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	State   string `json:"state"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Invoice is the create-invoice payload and, once the backend responds, the
// created invoice. ID, InvoiceNumber and the tax totals are assigned
// server-side and must be zero on submission.
type Invoice struct {
	ID            int64       `json:"id,omitempty"`
	InvoiceNumber string      `json:"invoice_number,omitempty"`
	InvoiceType   InvoiceType `json:"invoice_type"`
	UserID        string      `json:"user_id"`

	SellerName    string `json:"seller_name,omitempty"`
	SellerGSTIN   string `json:"seller_gstin,omitempty"`
	SellerAddress string `json:"seller_address,omitempty"`
	SellerPincode string `json:"seller_pincode,omitempty"`
	SellerState   string `json:"seller_state,omitempty"`
	SellerPhone   string `json:"seller_phone,omitempty"`
	SellerEmail   string `json:"seller_email,omitempty"`

	BuyerName    string `json:"buyer_name"`
	BuyerGSTIN   string `json:"buyer_gstin,omitempty"`
	BuyerAddress string `json:"buyer_address"`
	BuyerPincode string `json:"buyer_pincode"`
	BuyerState   string `json:"buyer_state"`
	BuyerPhone   string `json:"buyer_phone,omitempty"`
	BuyerEmail   string `json:"buyer_email,omitempty"`

	Items []InvoiceItem `json:"items"`

	GSTRate float64 `json:"gst_rate,omitempty"`
	Notes   string  `json:"notes,omitempty"`

	Subtotal float64 `json:"subtotal,omitempty"`
	CGST     float64 `json:"cgst,omitempty"`
	SGST     float64 `json:"sgst,omitempty"`
	IGST     float64 `json:"igst,omitempty"`
	Total    float64 `json:"total,omitempty"`
	PDFURL   string  `json:"pdf_url,omitempty"`
}

// TotalGST sums the individual GST components for display.
func (inv *Invoice) TotalGST() float64 {
	return inv.CGST + inv.SGST + inv.IGST
}

// Seller assembles the flattened seller fields into a Party.
func (inv *Invoice) Seller() Party {
	return Party{
		Name:    inv.SellerName,
		GSTIN:   inv.SellerGSTIN,
		Address: inv.SellerAddress,
		Pincode: inv.SellerPincode,
		State:   inv.SellerState,
		Phone:   inv.SellerPhone,
		Email:   inv.SellerEmail,
	}
}

// Buyer assembles the flattened buyer fields into a Party.
func (inv *Invoice) Buyer() Party {
	return Party{
		Name:    inv.BuyerName,
		GSTIN:   inv.BuyerGSTIN,
		Address: inv.BuyerAddress,
		Pincode: inv.BuyerPincode,
		State:   inv.BuyerState,
		Phone:   inv.BuyerPhone,
		Email:   inv.BuyerEmail,
	}
}

// WhatsAppDelivery tags how the backend delivered a WhatsApp share.
type WhatsAppDelivery string

const (
	// WhatsAppDeliveryDirect means the backend sent the PDF through its
	// messaging provider.
	WhatsAppDeliveryDirect WhatsAppDelivery = "direct"
	// WhatsAppDeliveryLink means the backend returned a wa.me link for the
	// user to open manually.
	WhatsAppDeliveryLink WhatsAppDelivery = "link"
)

// WhatsAppShare is the decoded result of a share-via-WhatsApp call. Exactly
// one of the two delivery shapes is populated, selected by Delivery.
type WhatsAppShare struct {
	Delivery WhatsAppDelivery

	// Direct delivery fields.
	SID    string
	Status string

	// Link delivery fields.
	Link string
	Note string

	Message string
	PDFURL  string
}

// EmailShare confirms a share-via-email call.
type EmailShare struct {
	Message       string `json:"message"`
	InvoiceNumber string `json:"invoice_number"`
}

// BulkSummary aggregates the outcome of a bulk CSV upload. EmailsSent and
// WhatsAppSent are nil when the corresponding send option was off.
type BulkSummary struct {
	TotalRows    int  `json:"total_rows"`
	Successful   int  `json:"successful"`
	Failed       int  `json:"failed"`
	EmailsSent   *int `json:"emails_sent"`
	WhatsAppSent *int `json:"whatsapp_sent"`
}

// BulkRowSuccess is one successfully processed CSV row.
type BulkRowSuccess struct {
	Row           int     `json:"row"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceID     int64   `json:"invoice_id"`
	BuyerName     string  `json:"buyer_name"`
	Total         float64 `json:"total"`
	DownloadURL   string  `json:"download_url"`
	IsDraft       bool    `json:"is_draft"`
	EmailSent     bool    `json:"email_sent"`
	WhatsAppSent  bool    `json:"whatsapp_sent"`
	EmailError    string  `json:"email_error,omitempty"`
	WhatsAppError string  `json:"whatsapp_error,omitempty"`
}

// BulkRowFailure is one rejected CSV row.
type BulkRowFailure struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// BulkResult is the full bulk-upload response.
type BulkResult struct {
	Message   string           `json:"message"`
	Summary   BulkSummary      `json:"summary"`
	Successes []BulkRowSuccess `json:"successes"`
	Failures  []BulkRowFailure `json:"failures"`
}
