package streamchat

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenConfig holds configuration for user token creation.
type tokenConfig struct {
	expiration time.Time
	issuedAt   time.Time
	claims     map[string]any
}

// TokenOption configures user token creation.
type TokenOption func(*tokenConfig)

// WithExpiration sets the token expiration (exp claim).
func WithExpiration(at time.Time) TokenOption {
	return func(c *tokenConfig) {
		c.expiration = at
	}
}

// WithIssuedAt sets the token issue time (iat claim).
func WithIssuedAt(at time.Time) TokenOption {
	return func(c *tokenConfig) {
		c.issuedAt = at
	}
}

// WithClaims adds custom claims to the token. The user_id, exp and iat
// claims always win over entries in the map.
func WithClaims(claims map[string]any) TokenOption {
	return func(c *tokenConfig) {
		c.claims = claims
	}
}

// CreateToken issues a user-scoped JWT signed with the API secret,
// suitable for handing to a client-side SDK.
func (c *Client) CreateToken(userID string, opts ...TokenOption) (string, error) {
	if err := validateRequired("user id", userID); err != nil {
		return "", err
	}

	cfg := &tokenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	claims := jwt.MapClaims{}
	for k, v := range cfg.claims {
		claims[k] = v
	}
	claims["user_id"] = userID
	if !cfg.expiration.IsZero() {
		claims["exp"] = cfg.expiration.Unix()
	}
	if !cfg.issuedAt.IsZero() {
		claims["iat"] = cfg.issuedAt.Unix()
	}

	return signToken(c.apiSecret, claims)
}

// serverToken mints the non-expiring server-wide token used as the
// bearer credential on every API request.
func serverToken(secret []byte) (string, error) {
	return signToken(secret, jwt.MapClaims{"server": true})
}

func signToken(secret []byte, claims jwt.MapClaims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
