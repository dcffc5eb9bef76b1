package streamchat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// RateLimitInfo is the rate-limit snapshot the API reports on every
// response: the quota, what is left of it, and when it resets.
type RateLimitInfo struct {
	Limit     int64
	Remaining int64
	Reset     time.Time
}

// Response wraps a decoded JSON response body together with the
// auxiliary facets of the HTTP call: rate-limit snapshot, headers and
// status code. It behaves as a read-through view over the decoded map;
// mutating the map returned by Data mutates the response.
type Response struct {
	data       map[string]any
	raw        []byte
	headers    http.Header
	statusCode int
	rateLimit  *RateLimitInfo
}

// newResponse decodes body into a map and attaches the response
// facets. An empty body decodes to an empty map; anything else that is
// not a JSON object is a DecodingError.
func newResponse(body []byte, headers http.Header, statusCode int) (*Response, error) {
	data := map[string]any{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, &DecodingError{Err: err, Body: body}
		}
	}
	return &Response{
		data:       data,
		raw:        body,
		headers:    headers,
		statusCode: statusCode,
		rateLimit:  rateLimitFromHeaders(headers),
	}, nil
}

// Get returns the value for key and whether it was present.
func (r *Response) Get(key string) (any, bool) {
	v, ok := r.data[key]
	return v, ok
}

// Has reports whether key is present in the response body.
func (r *Response) Has(key string) bool {
	_, ok := r.data[key]
	return ok
}

// Len returns the number of top-level keys in the response body.
func (r *Response) Len() int {
	return len(r.data)
}

// Keys returns the top-level keys of the response body in sorted order.
func (r *Response) Keys() []string {
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Data returns the decoded response body.
func (r *Response) Data() map[string]any {
	return r.data
}

// UnmarshalTo decodes the raw response body into v.
func (r *Response) UnmarshalTo(v any) error {
	raw := r.raw
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodingError{Err: err, Body: r.raw}
	}
	return nil
}

// RateLimit returns the rate-limit snapshot, or nil when the response
// did not carry the rate-limit headers.
func (r *Response) RateLimit() *RateLimitInfo {
	return r.rateLimit
}

// Headers returns the raw response headers.
func (r *Response) Headers() http.Header {
	return r.headers
}

// StatusCode returns the HTTP status code of the response.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// IsOK reports whether the call completed with a 2xx status.
func (r *Response) IsOK() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// MarshalJSON marshals the response as its body, so a Response can
// stand in anywhere a plain decoded object is expected.
func (r *Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.data)
}

func (r *Response) String() string {
	b, err := json.Marshal(r.data)
	if err != nil {
		return "streamchat.Response{}"
	}
	return string(b)
}

func rateLimitFromHeaders(headers http.Header) *RateLimitInfo {
	if headers == nil {
		return nil
	}
	limit := headers.Get("X-Ratelimit-Limit")
	remaining := headers.Get("X-Ratelimit-Remaining")
	reset := headers.Get("X-Ratelimit-Reset")
	if limit == "" || remaining == "" || reset == "" {
		return nil
	}
	return &RateLimitInfo{
		Limit:     cleanRateLimitHeader(limit),
		Remaining: cleanRateLimitHeader(remaining),
		Reset:     time.Unix(cleanRateLimitHeader(reset), 0).UTC(),
	}
}

// cleanRateLimitHeader parses a rate-limit header value. Proxies may
// fold duplicate headers into a comma-joined list; take the first
// non-empty element, and fall back to zero on anything unparsable.
func cleanRateLimitHeader(value string) int64 {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0
		}
		return int64(n)
	}
	return 0
}
