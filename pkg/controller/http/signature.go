package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// VerifySignature checks that the webhook payload was produced by a holder
// of the shared secret. The HMAC is computed over the exact raw request
// body, never a re-serialized form, to avoid serialization-order
// discrepancies. With no secret configured verification trivially succeeds
// (signature checking is opt-in).
func VerifySignature(payload []byte, signature, secret string) bool {
	if secret == "" {
		return true
	}

	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}

	provided, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	// Constant-time comparison so the check leaks nothing about the secret
	return hmac.Equal(mac.Sum(nil), provided)
}
