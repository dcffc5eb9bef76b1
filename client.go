package streamchat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/GetStream/stream-chat-go/internal/api"
)

const (
	defaultBaseURL = api.DefaultBaseURL
	defaultTimeout = api.DefaultTimeout
)

const versionName = "1.0.0"

func userAgent() string {
	return "stream-go-client-" + versionName
}

// Client is a server-side Stream Chat API client. Credentials are
// immutable for the lifetime of the instance, and no method mutates
// shared state beyond the underlying HTTP connection pool, so a single
// Client is safe for concurrent use.
type Client struct {
	apiKey    string
	apiSecret []byte
	authToken string
	api       *api.Client
}

// New creates a client from an API key and secret. The server auth
// token is minted once here and reused as the bearer credential for
// every request.
func New(apiKey, apiSecret string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if apiSecret == "" {
		return nil, ErrMissingAPISecret
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	secret := []byte(apiSecret)
	authToken, err := serverToken(secret)
	if err != nil {
		return nil, fmt.Errorf("sign server token: %w", err)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithUserAgent(userAgent()),
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(*cfg.logger))
	}
	switch {
	case cfg.doer != nil:
		apiOpts = append(apiOpts, api.WithDoer(cfg.doer))
	default:
		apiOpts = append(apiOpts, api.WithDoer(&http.Client{Timeout: cfg.timeout}))
	}

	apiClient, err := api.New(apiKey, authToken, apiOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiKey:    apiKey,
		apiSecret: secret,
		authToken: authToken,
		api:       apiClient,
	}, nil
}

// NewFromEnv creates a client from the STREAM_KEY and STREAM_SECRET
// environment variables. STREAM_CHAT_URL and STREAM_CHAT_TIMEOUT
// override the base URL and request timeout when set; explicit options
// take precedence over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	var envOpts []Option
	if baseURL := os.Getenv("STREAM_CHAT_URL"); baseURL != "" {
		envOpts = append(envOpts, WithBaseURL(baseURL))
	}
	if timeout := os.Getenv("STREAM_CHAT_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("parse STREAM_CHAT_TIMEOUT: %w", err)
		}
		envOpts = append(envOpts, WithTimeout(d))
	}
	return New(os.Getenv("STREAM_KEY"), os.Getenv("STREAM_SECRET"), append(envOpts, opts...)...)
}

// AuthToken returns the server JWT sent as the bearer credential on
// every request.
func (c *Client) AuthToken() string {
	return c.authToken
}

func (c *Client) request(ctx context.Context, method, path string, params url.Values, data any) (*Response, error) {
	payload, err := c.api.Do(ctx, method, path, params, data)
	if err != nil {
		return nil, wrapError(err)
	}
	return newResponse(payload.Body, payload.Header, payload.StatusCode)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, params, nil)
}

func (c *Client) post(ctx context.Context, path string, params url.Values, data any) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, params, data)
}

func (c *Client) put(ctx context.Context, path string, params url.Values, data any) (*Response, error) {
	return c.request(ctx, http.MethodPut, path, params, data)
}

func (c *Client) patch(ctx context.Context, path string, params url.Values, data any) (*Response, error) {
	return c.request(ctx, http.MethodPatch, path, params, data)
}

func (c *Client) delete(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.request(ctx, http.MethodDelete, path, params, nil)
}

// upload sends a multipart file upload to path with the user attached
// as a JSON form field.
func (c *Client) upload(ctx context.Context, path, fileName, contentType string, content io.Reader, user map[string]any) (*Response, error) {
	payload, err := c.api.Upload(ctx, path, fileName, contentType, content, user)
	if err != nil {
		return nil, wrapError(err)
	}
	return newResponse(payload.Body, payload.Header, payload.StatusCode)
}

// jsonPayload encodes v as the single "payload" query parameter, the
// envelope the query endpoints expect.
func jsonPayload(v any) (url.Values, error) {
	if m, ok := v.(map[string]any); ok && m == nil {
		v = map[string]any{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return url.Values{"payload": []string{string(b)}}, nil
}

// queryParams stringifies an options map into query parameters.
func queryParams(options map[string]any) url.Values {
	params := url.Values{}
	for k, v := range options {
		params.Set(k, fmt.Sprintf("%v", v))
	}
	return params
}

// mergeData copies base and lays options over it.
func mergeData(base map[string]any, options map[string]any) map[string]any {
	data := make(map[string]any, len(base)+len(options))
	for k, v := range base {
		data[k] = v
	}
	for k, v := range options {
		data[k] = v
	}
	return data
}
