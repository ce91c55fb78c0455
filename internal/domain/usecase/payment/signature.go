package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ComputeSignature returns hex(HMAC-SHA256(secret, orderID|paymentID))
func ComputeSignature(orderID, paymentID, secret string) string {
	return hex.EncodeToString(sign(orderID, paymentID, secret))
}

// VerifySignature reports whether signature was produced by the gateway for
// this order and payment. The comparison is constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	provided, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(provided) != sha256.Size {
		return false
	}
	return hmac.Equal(sign(orderID, paymentID, secret), provided)
}

func sign(orderID, paymentID, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return mac.Sum(nil)
}
