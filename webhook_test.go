package streamchat

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signBody(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return []byte(hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhook(t *testing.T) {
	client, err := New(testAPIKey, testAPISecret)
	require.NoError(t, err)

	body := []byte(`{"type":"message.new","message":{"id":"msg-1"}}`)

	assert.True(t, client.VerifyWebhook(body, signBody(testAPISecret, body)))
}

func TestVerifyWebhook_Rejects(t *testing.T) {
	client, err := New(testAPIKey, testAPISecret)
	require.NoError(t, err)

	body := []byte(`{"type":"message.new"}`)

	tests := []struct {
		name      string
		body      []byte
		signature []byte
	}{
		{"wrong secret", body, signBody("other-secret", body)},
		{"tampered body", []byte(`{"type":"message.deleted"}`), signBody(testAPISecret, body)},
		{"garbage signature", body, []byte("not-a-signature")},
		{"empty signature", body, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, client.VerifyWebhook(tt.body, tt.signature))
		})
	}
}

func TestVerifyWebhook_EmptyBody(t *testing.T) {
	client, err := New(testAPIKey, testAPISecret)
	require.NoError(t, err)

	assert.True(t, client.VerifyWebhook(nil, signBody(testAPISecret, nil)))
}
