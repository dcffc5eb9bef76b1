package streamchat

import (
	"time"

	"github.com/GetStream/stream-chat-go/internal/api"
	"github.com/rs/zerolog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL string
	timeout time.Duration
	doer    api.Doer
	logger  *zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// HTTPDoer executes a single HTTP request. *http.Client satisfies it;
// inject a double to capture requests in tests.
type HTTPDoer = api.Doer

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the request timeout for the default HTTP client.
// Ignored when WithHTTPDoer is used; configure the injected transport
// instead.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPDoer sets the transport used to execute requests.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *clientConfig) {
		c.doer = doer
	}
}

// WithLogger enables request logging through the given logger.
// Disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}
