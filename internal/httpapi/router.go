package httpapi

import (
	"net/http"
)

// Routes mounts the checkout endpoints. The bare aliases match what the
// original router exposes alongside the /api prefix.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/api/order", h.CreateOrder)
	mux.HandleFunc("/order", h.CreateOrder)
	mux.HandleFunc("/api/verify-payment", h.VerifyPayment)
	mux.HandleFunc("/verify-payment", h.VerifyPayment)

	return mux
}
