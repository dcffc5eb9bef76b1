package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production Stream Chat edge.
const DefaultBaseURL = "https://chat.stream-io-api.com"

// DefaultTimeout is the request timeout used when the caller does not
// supply its own HTTP client.
const DefaultTimeout = 6 * time.Second

// Doer executes a single HTTP request. *http.Client satisfies it;
// tests inject doubles.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client builds and executes signed requests against the Stream Chat
// API. It holds immutable credentials and delegates all network I/O to
// the injected Doer.
type Client struct {
	baseURL   string
	apiKey    string
	authToken string
	userAgent string
	doer      Doer
	logger    zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithDoer sets the HTTP transport used to execute requests.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// WithLogger sets the logger for request tracing. Logging is disabled
// by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent sets the X-Stream-Client header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new API client. The auth token is sent verbatim as the
// bearer credential on every request.
func New(apiKey, authToken string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if authToken == "" {
		return nil, fmt.Errorf("auth token is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		authToken: authToken,
		userAgent: "stream-go-client",
		doer:      &http.Client{Timeout: DefaultTimeout},
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Payload is the raw outcome of a successful (2xx) HTTP call.
type Payload struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// requestURL assembles the fully-addressed URL for a call. Query
// encoding is deterministic: url.Values.Encode sorts by key, so
// identical logical calls produce byte-identical URLs.
func (c *Client) requestURL(path string, params url.Values) string {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api_key", c.apiKey)
	return c.baseURL + "/" + strings.TrimPrefix(path, "/") + "?" + q.Encode()
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", c.authToken)
	req.Header.Set("Stream-Auth-Type", "jwt")
	req.Header.Set("X-Stream-Client", c.userAgent)
}

// Do builds and executes one request. A non-nil data is serialized as
// the JSON body. Non-2xx responses are returned as *Error; transport
// failures as *NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, data any) (*Payload, error) {
	var body io.Reader
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, params), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	return c.send(req)
}

// Upload executes a multipart file upload. The user object is attached
// as a JSON form field alongside the file part.
func (c *Client) Upload(ctx context.Context, path, fileName, contentType string, content io.Reader, user any) (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if user != nil {
		u, err := json.Marshal(user)
		if err != nil {
			return nil, fmt.Errorf("marshal user: %w", err)
		}
		if err := w.WriteField("user", string(u)); err != nil {
			return nil, fmt.Errorf("write user field: %w", err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(path, nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setAuthHeaders(req)

	return c.send(req)
}

func (c *Client) send(req *http.Request) (*Payload, error) {
	start := time.Now()

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: req.URL.String()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: req.URL.String()}
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("stream api request")

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseErrorResponse(resp.StatusCode, resp.Header, body)
	}

	return &Payload{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
