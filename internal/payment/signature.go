package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Signer computes the gateway's checkout signature: an HMAC-SHA256 hex
// digest over "<orderID>|<paymentID>" keyed with the shared secret. The
// secret is injected at construction so tests can use a fixed one.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the expected signature for the given identifier pair.
// The payload is order-sensitive: orderID first, pipe, paymentID.
func (s *Signer) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares a caller-supplied signature against the recomputed one
// in constant time.
func (s *Signer) Verify(orderID, paymentID, signature string) bool {
	expected := s.Sign(orderID, paymentID)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
