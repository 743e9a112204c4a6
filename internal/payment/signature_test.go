package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigner_Sign(t *testing.T) {
	signer := NewSigner("s3cr3t")

	t.Run("Known vector", func(t *testing.T) {
		// hex(HMAC-SHA256("s3cr3t", "order_ABC|pay_XYZ"))
		expected := "351e840e98af7d1b6898df3a18cbf24e69b2fb0156408d1d5236ce8399596eb4"
		assert.Equal(t, expected, signer.Sign("order_ABC", "pay_XYZ"))
	})

	t.Run("Order sensitive", func(t *testing.T) {
		a := signer.Sign("order_ABC", "pay_XYZ")
		b := signer.Sign("pay_XYZ", "order_ABC")
		assert.NotEqual(t, a, b)
	})

	t.Run("Secret sensitive", func(t *testing.T) {
		other := NewSigner("another-secret")
		assert.NotEqual(t, signer.Sign("order_ABC", "pay_XYZ"), other.Sign("order_ABC", "pay_XYZ"))
	})
}

func TestSigner_Verify(t *testing.T) {
	signer := NewSigner("s3cr3t")
	sig := signer.Sign("order_ABC", "pay_XYZ")

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, signer.Verify("order_ABC", "pay_XYZ", sig))
	})

	t.Run("Single flipped character", func(t *testing.T) {
		tampered := []byte(sig)
		if tampered[0] == 'a' {
			tampered[0] = 'b'
		} else {
			tampered[0] = 'a'
		}
		assert.False(t, signer.Verify("order_ABC", "pay_XYZ", string(tampered)))
	})

	t.Run("Wrong length", func(t *testing.T) {
		assert.False(t, signer.Verify("order_ABC", "pay_XYZ", "deadbeef"))
	})

	t.Run("Empty signature", func(t *testing.T) {
		assert.False(t, signer.Verify("order_ABC", "pay_XYZ", ""))
	})
}
