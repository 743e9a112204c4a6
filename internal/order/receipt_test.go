package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReceipt(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		receipt := GenerateReceipt()
		// Expected format: receipt_<unix-millis>_<4-digit-token>

		assert.True(t, strings.HasPrefix(receipt, "receipt_"), "Should start with receipt_")

		parts := strings.Split(receipt, "_")
		if assert.Len(t, parts, 3, "Should have 3 parts separated by underscores") {
			assert.Equal(t, "receipt", parts[0])
			assert.Len(t, parts[1], 13, "Millis timestamp should be 13 digits")
			assert.Len(t, parts[2], 4, "Random token should be 4 chars")
		}
	})

	t.Run("Uniqueness", func(t *testing.T) {
		r1 := GenerateReceipt()
		r2 := GenerateReceipt()
		assert.NotEqual(t, r1, r2, "Consecutive receipts should be different")
	})
}
