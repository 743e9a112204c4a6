package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checkout-be/internal/httpapi"
	"checkout-be/internal/order"
	"checkout-be/internal/payment"

	"github.com/stretchr/testify/assert"
)

func TestBuildServer(t *testing.T) {
	signer := payment.NewSigner("s3cr3t")
	gw := payment.NewRazorpayGateway("rzp_test_key", "rzp_test_secret")

	handler := httpapi.NewHandler(
		order.NewService(gw),
		payment.NewService(gw, signer, payment.TrustSignatureOnFetchFailure),
		"rzp_test_key",
		true,
	)

	srv := buildServer(handler)

	t.Run("Health Check", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/verify-payment", nil)
		rr := httptest.NewRecorder()

		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Verify rejects malformed ids without reaching the gateway", func(t *testing.T) {
		body := `{"razorpay_order_id":"bogus","razorpay_payment_id":"pay_XYZ","razorpay_signature":"sig"}`
		req := httptest.NewRequest("POST", "/api/verify-payment", strings.NewReader(body))
		rr := httptest.NewRecorder()

		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid id format")
	})
}
