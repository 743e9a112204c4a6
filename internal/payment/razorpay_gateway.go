package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"checkout-be/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com"

type razorpayGateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// razorpayErrorEnvelope is the gateway's structured error body:
// {"error": {"code": "...", "description": "..."}}
type razorpayErrorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// ----------------- CreateOrder -----------------

func (g *razorpayGateway) CreateOrder(ctx context.Context, params OrderParams) (*GatewayOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", params.Amount),
		zap.String("currency", params.Currency),
		zap.String("receipt", params.Receipt),
	)

	capture := 0
	if params.PaymentCapture {
		capture = 1
	}

	body := map[string]interface{}{
		"amount":          params.Amount,
		"currency":        params.Currency,
		"receipt":         params.Receipt,
		"payment_capture": capture,
	}
	if len(params.Notes) > 0 {
		body["notes"] = params.Notes
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal order request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/v1/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Add("Content-Type", "application/json")

	log.Info("Sending order request to Razorpay")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Razorpay request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read razorpay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, g.asGatewayError(log, resp.StatusCode, bodyBytes)
	}

	var order GatewayOrder
	if err := json.Unmarshal(bodyBytes, &order); err != nil {
		log.Error("Failed decoding Razorpay order", zap.Error(err))
		return nil, err
	}

	log.Info("Razorpay order created",
		zap.String("order_id", order.ID),
		zap.String("status", order.Status),
	)

	return &order, nil
}

// ----------------- FetchPayment -----------------

func (g *razorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error) {
	log := logger.FromCtx(ctx).With(zap.String("payment_id", paymentID))

	url := fmt.Sprintf("%s/v1/payments/%s", g.baseURL, paymentID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		log.Error("Failed building request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Request to Razorpay failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read razorpay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, g.asGatewayError(log, resp.StatusCode, bodyBytes)
	}

	var p GatewayPayment
	if err := json.Unmarshal(bodyBytes, &p); err != nil {
		log.Error("Failed decoding Razorpay payment", zap.Error(err))
		return nil, err
	}

	log.Info("Razorpay payment fetched",
		zap.String("order_id", p.OrderID),
		zap.String("status", p.Status),
	)

	return &p, nil
}

// asGatewayError turns a non-200 gateway response into a *GatewayError when
// the body carries the structured envelope, or a plain error otherwise.
func (g *razorpayGateway) asGatewayError(log *zap.Logger, status int, body []byte) error {
	log.Error("Razorpay returned non-success status",
		zap.Int("http_status", status),
		zap.ByteString("response", body),
	)

	var envelope razorpayErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Description != "" {
		return &GatewayError{
			Code:        envelope.Error.Code,
			Description: envelope.Error.Description,
		}
	}

	return fmt.Errorf("razorpay error: status %d", status)
}
