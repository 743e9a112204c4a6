package main

import (
	"log"
	"net/http"

	"checkout-be/internal/config"
	"checkout-be/internal/httpapi"
	"checkout-be/internal/logger"
	"checkout-be/internal/middleware"
	"checkout-be/internal/order"
	"checkout-be/internal/payment"
)

// buildServer wraps the checkout routes in the shared middleware chain.
func buildServer(handler *httpapi.Handler) http.Handler {
	var srv http.Handler = handler.Routes()
	srv = middleware.RateLimitMiddleware(srv)
	srv = middleware.CORS(srv)
	srv = logger.LoggingMiddleware(srv)
	srv = logger.RequestIDMiddleware(srv)
	return srv
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	signer := payment.NewSigner(cfg.RazorpayKeySecret)

	fallback := payment.TrustSignatureOnFetchFailure
	if cfg.VerifyFallback == "strict" {
		fallback = payment.FailClosed
	}

	paymentSvc := payment.NewService(gateway, signer, fallback)
	orderSvc := order.NewService(gateway)

	handler := httpapi.NewHandler(orderSvc, paymentSvc, cfg.RazorpayKeyID, !cfg.IsProduction())

	log.Printf("🚀 Checkout server running on http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, buildServer(handler)))
}
