package order

import "errors"

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
