// internal/payment/payment.go
package payment

import (
	"context"
)

type Gateway interface {
	CreateOrder(ctx context.Context, params OrderParams) (*GatewayOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
}
