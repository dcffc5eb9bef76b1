package streamchat

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyWebhook validates the signature of an inbound webhook payload:
// the X-Signature header carries the hex HMAC-SHA256 of the raw
// request body keyed by the API secret. The comparison is constant
// time and fails closed on any mismatch or malformed signature.
func (c *Client) VerifyWebhook(body, signature []byte) bool {
	mac := hmac.New(sha256.New, c.apiSecret)
	mac.Write(body)

	expected := make([]byte, hex.EncodedLen(sha256.Size))
	hex.Encode(expected, mac.Sum(nil))

	return hmac.Equal(expected, signature)
}
