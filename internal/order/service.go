package order

import (
	"context"
	"math"
	"time"

	"checkout-be/internal/logger"
	"checkout-be/internal/payment"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, req Request) (*Descriptor, error)
}

type service struct {
	gateway payment.Gateway
}

func NewService(gateway payment.Gateway) Service {
	return &service{gateway: gateway}
}

// CreateOrder validates the request, fills in a receipt when the caller
// did not supply one, and opens an auto-captured order at the gateway.
// Validation short-circuits on the first failure, before any gateway call.
func (s *service) CreateOrder(ctx context.Context, req Request) (*Descriptor, error) {
	log := logger.FromCtx(ctx)

	if req.Amount == 0 || req.Currency == "" {
		return nil, ErrMissingFields
	}
	if req.Amount < 0 || req.Amount != math.Trunc(req.Amount) {
		return nil, ErrInvalidAmount
	}
	if !SupportedCurrencies[req.Currency] {
		return nil, ErrUnsupportedCurrency
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = GenerateReceipt()
	}

	gwOrder, err := s.gateway.CreateOrder(ctx, payment.OrderParams{
		Amount:         int64(req.Amount),
		Currency:       req.Currency,
		Receipt:        receipt,
		Notes:          buildNotes(req),
		PaymentCapture: true,
	})
	if err != nil {
		log.Error("Order creation failed at gateway", zap.Error(err))
		return nil, err
	}

	log.Info("Order created",
		zap.String("order_id", gwOrder.ID),
		zap.Int64("amount", gwOrder.Amount),
		zap.String("currency", gwOrder.Currency),
	)

	return &Descriptor{
		ID:        gwOrder.ID,
		Amount:    gwOrder.Amount,
		Currency:  gwOrder.Currency,
		Receipt:   gwOrder.Receipt,
		Status:    gwOrder.Status,
		CreatedAt: gwOrder.CreatedAt,
	}, nil
}

// buildNotes merges caller notes with server-attached audit metadata.
// Server keys are written last so callers cannot spoof them.
func buildNotes(req Request) map[string]string {
	notes := make(map[string]string, len(req.Notes)+4)
	for k, v := range req.Notes {
		notes[k] = v
	}

	notes["customer_id"] = req.CustomerID
	notes["customer_email"] = req.CustomerEmail
	notes["customer_phone"] = req.CustomerPhone
	notes["created_at"] = time.Now().UTC().Format(time.RFC3339)

	return notes
}
