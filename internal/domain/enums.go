package domain

// InvoiceType distinguishes platform invoices from personal ones.
type InvoiceType string

const (
	// InvoiceTypeTopmate is an invoice issued with Topmate as the seller.
	InvoiceTypeTopmate InvoiceType = "topmate"
	// InvoiceTypeUser is an invoice issued on behalf of the user's own business.
	InvoiceTypeUser InvoiceType = "user"
)

// Valid reports whether t is one of the known invoice types.
func (t InvoiceType) Valid() bool {
	return t == InvoiceTypeTopmate || t == InvoiceTypeUser
}

// State is a two-letter Indian state or union territory code used for GST.
type State struct {
	Code string
	Name string
}

// IndianStates lists every state and union territory code accepted by the
// invoicing backend, in its canonical order.
var IndianStates = []State{
	{"AN", "Andaman and Nicobar Islands"},
	{"AP", "Andhra Pradesh"},
	{"AR", "Arunachal Pradesh"},
	{"AS", "Assam"},
	{"BR", "Bihar"},
	{"CG", "Chhattisgarh"},
	{"CH", "Chandigarh"},
	{"DN", "Dadra and Nagar Haveli and Daman and Diu"},
	{"DL", "Delhi"},
	{"GA", "Goa"},
	{"GJ", "Gujarat"},
	{"HR", "Haryana"},
	{"HP", "Himachal Pradesh"},
	{"JK", "Jammu and Kashmir"},
	{"JH", "Jharkhand"},
	{"KA", "Karnataka"},
	{"KL", "Kerala"},
	{"LA", "Ladakh"},
	{"LD", "Lakshadweep"},
	{"MP", "Madhya Pradesh"},
	{"MH", "Maharashtra"},
	{"MN", "Manipur"},
	{"ML", "Meghalaya"},
	{"MZ", "Mizoram"},
	{"NL", "Nagaland"},
	{"OR", "Odisha"},
	{"PY", "Puducherry"},
	{"PB", "Punjab"},
	{"RJ", "Rajasthan"},
	{"SK", "Sikkim"},
	{"TN", "Tamil Nadu"},
	{"TS", "Telangana"},
	{"TR", "Tripura"},
	{"UP", "Uttar Pradesh"},
	{"UK", "Uttarakhand"},
	{"WB", "West Bengal"},
}

// stateNames maps state codes to display names.
var stateNames = func() map[string]string {
	m := make(map[string]string, len(IndianStates))
	for _, s := range IndianStates {
		m[s.Code] = s.Name
	}
	return m
}()

// StateName returns the display name for a state code, or "" if unknown.
func StateName(code string) string {
	return stateNames[code]
}

// IsValidState reports whether code is a known state code.
func IsValidState(code string) bool {
	_, ok := stateNames[code]
	return ok
}

// GSTRate is a GST percentage the backend accepts for an invoice batch.
type GSTRate struct {
	Percent float64
	Label   string
}

// GSTRates lists the selectable GST rates. DefaultGSTRate applies when the
// user picks nothing.
var GSTRates = []GSTRate{
	{0, "0% - Exempt"},
	{5, "5% - Essential Goods/Services"},
	{12, "12% - Standard Rate"},
	{18, "18% - Standard Rate (Default)"},
	{28, "28% - Luxury Goods"},
}

// DefaultGSTRate is the pre-selected GST rate.
const DefaultGSTRate = 18.0

// IsValidGSTRate reports whether rate is one of the selectable GST rates.
func IsValidGSTRate(rate float64) bool {
	for _, r := range GSTRates {
		if r.Percent == rate {
			return true
		}
	}
	return false
}
