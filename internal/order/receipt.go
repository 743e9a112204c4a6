package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateReceipt builds an advisory order receipt of the form
// receipt_<unix-millis>_<4-digit-token>. Unique enough in practice for
// one process; receipts carry no security weight.
func GenerateReceipt() string {
	now := time.Now().UTC()

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("receipt_%d_%04d", now.UnixMilli(), n.Int64())
}
