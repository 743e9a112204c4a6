package payment

import (
	"time"
)

// OrderParams is what we send to the gateway when opening an order.
type OrderParams struct {
	Amount         int64
	Currency       string
	Receipt        string
	Notes          map[string]string
	PaymentCapture bool
}

// GatewayOrder is the gateway's record of a created order.
type GatewayOrder struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// GatewayPayment is the gateway's authoritative record of a payment.
type GatewayPayment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Method   string `json:"method"`
}

// Payment statuses reported by the gateway.
const (
	StatusCreated    = "created"
	StatusAuthorized = "authorized"
	StatusCaptured   = "captured"
	StatusFailed     = "failed"
	StatusRefunded   = "refunded"
)

// VerifyRequest carries the identifiers and signature posted back by the
// checkout popup after a payment attempt.
type VerifyRequest struct {
	OrderID   string
	PaymentID string
	Signature string
}

// VerificationResult is produced fresh per verification call and never persisted.
type VerificationResult struct {
	Verified           bool      `json:"verified"`
	OrderID            string    `json:"order_id"`
	PaymentID          string    `json:"payment_id"`
	GatewayStatus      string    `json:"gateway_status,omitempty"`
	Amount             int64     `json:"amount,omitempty"`
	Currency           string    `json:"currency,omitempty"`
	Method             string    `json:"method,omitempty"`
	DetailsUnavailable bool      `json:"details_unavailable,omitempty"`
	Message            string    `json:"message"`
	VerifiedAt         time.Time `json:"verified_at"`
}
