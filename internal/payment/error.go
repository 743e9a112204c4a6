package payment

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidIDFormat = errors.New("invalid id format")
)

// GatewayError is a structured rejection from the payment gateway
// (e.g. bad request, authentication failure at the gateway side).
type GatewayError struct {
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %s: %s", e.Code, e.Description)
}
