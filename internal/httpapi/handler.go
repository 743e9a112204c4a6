package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"checkout-be/internal/order"
	"checkout-be/internal/payment"
)

// Handler holds the two checkout services plus the publishable key the
// frontend needs to open the payment popup. The secret key never passes
// through here.
type Handler struct {
	OrderSvc   order.Service
	PaymentSvc payment.Service
	KeyID      string
	DevMode    bool
}

func NewHandler(orderSvc order.Service, paymentSvc payment.Service, keyID string, devMode bool) *Handler {
	return &Handler{
		OrderSvc:   orderSvc,
		PaymentSvc: paymentSvc,
		KeyID:      keyID,
		DevMode:    devMode,
	}
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CreateOrder handles POST /api/order.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	var req order.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	defer r.Body.Close()

	desc, err := h.OrderSvc.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"order":           desc,
		"razorpay_key_id": h.KeyID,
	})
}

// verifyPaymentRequest mirrors the field names the checkout popup posts back.
type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPayment handles POST /api/verify-payment.
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	defer r.Body.Close()

	res, err := h.PaymentSvc.VerifyPayment(r.Context(), payment.VerifyRequest{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	if !res.Verified {
		writeFailure(w, http.StatusBadRequest, res.Message, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": res.Message,
		"data":    res,
	})
}
