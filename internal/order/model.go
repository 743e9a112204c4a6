package order

// Request is the caller-supplied order input. Amount is in the smallest
// currency unit and decodes as float64 so that a fractional value can be
// rejected explicitly instead of silently truncated.
type Request struct {
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Receipt       string            `json:"receipt,omitempty"`
	Notes         map[string]string `json:"notes,omitempty"`
	CustomerID    string            `json:"customer_id,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
}

// Descriptor is the sanitized view of a gateway order returned to the
// caller. Immutable once returned; the server keeps no copy.
type Descriptor struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// SupportedCurrencies is the fixed allow-list for order creation.
var SupportedCurrencies = map[string]bool{
	"INR": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
}
