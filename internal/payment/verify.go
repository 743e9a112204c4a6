package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"checkout-be/internal/logger"

	"go.uber.org/zap"
)

// FallbackPolicy decides what happens when the signature already matched
// but the authoritative status fetch from the gateway fails.
type FallbackPolicy int

const (
	// TrustSignatureOnFetchFailure accepts the payment on signature proof
	// alone, returning reduced detail. Trades completeness for availability.
	TrustSignatureOnFetchFailure FallbackPolicy = iota
	// FailClosed rejects the verification when the gateway is unreachable.
	FailClosed
)

const (
	msgVerified           = "Payment verified successfully"
	msgSignatureMismatch  = "Payment signature verification failed"
	msgOrderMismatch      = "Payment verification failed: order id mismatch"
	msgStatusUnconfirmed  = "Payment verification failed: unable to confirm payment status"
	msgDetailsUnavailable = "Payment verified successfully (details unavailable)"
)

type Service interface {
	VerifyPayment(ctx context.Context, req VerifyRequest) (*VerificationResult, error)
}

type service struct {
	gateway  Gateway
	signer   *Signer
	fallback FallbackPolicy
}

func NewService(gateway Gateway, signer *Signer, fallback FallbackPolicy) Service {
	return &service{
		gateway:  gateway,
		signer:   signer,
		fallback: fallback,
	}
}

// VerifyPayment checks the caller-supplied signature against a recomputed
// one and, on a match, reconciles the claimed order against the gateway's
// own record of the payment. A mismatching signature or an unsuccessful
// payment status is a negative outcome, not an error.
func (s *service) VerifyPayment(ctx context.Context, req VerifyRequest) (*VerificationResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
	)

	// 1. Input validation, before any cryptographic work.
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, ErrMissingFields
	}
	if !strings.HasPrefix(req.OrderID, "order_") || !strings.HasPrefix(req.PaymentID, "pay_") {
		return nil, ErrInvalidIDFormat
	}

	// 2+3. Recompute the signature and compare. The shared secret is known
	// only to us and the gateway, so equality proves the checkout response
	// was not forged client-side.
	if !s.signer.Verify(req.OrderID, req.PaymentID, req.Signature) {
		// Expected signature goes to the server log only, never the caller.
		log.Warn("Signature mismatch",
			zap.String("expected_signature", s.signer.Sign(req.OrderID, req.PaymentID)),
		)
		return s.result(req, false, msgSignatureMismatch), nil
	}

	// 4. Best-effort reconciliation against the gateway's record.
	p, err := s.gateway.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		if s.fallback == FailClosed {
			log.Warn("Payment fetch failed, failing closed", zap.Error(err))
			return s.result(req, false, msgStatusUnconfirmed), nil
		}

		log.Warn("Payment fetch failed, trusting signature alone", zap.Error(err))
		res := s.result(req, true, msgDetailsUnavailable)
		res.DetailsUnavailable = true
		return res, nil
	}

	if p.Status != StatusCaptured && p.Status != StatusAuthorized {
		log.Info("Payment not successful", zap.String("status", p.Status))
		return s.result(req, false, fmt.Sprintf("Payment not successful. Status: %s", p.Status)), nil
	}

	// Guards against gateway-side inconsistency: a valid signature already
	// binds the pair, but the fetched record must claim the same order.
	if p.OrderID != req.OrderID {
		log.Warn("Order id mismatch", zap.String("gateway_order_id", p.OrderID))
		return s.result(req, false, msgOrderMismatch), nil
	}

	log.Info("Payment verified", zap.String("status", p.Status))

	res := s.result(req, true, msgVerified)
	res.GatewayStatus = p.Status
	res.Amount = p.Amount
	res.Currency = p.Currency
	res.Method = p.Method
	return res, nil
}

func (s *service) result(req VerifyRequest, verified bool, message string) *VerificationResult {
	return &VerificationResult{
		Verified:   verified,
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
		Message:    message,
		VerifiedAt: time.Now().UTC(),
	}
}
