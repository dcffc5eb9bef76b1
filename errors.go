package streamchat

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/GetStream/stream-chat-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingAPISecret is returned when no API secret is provided.
	ErrMissingAPISecret = errors.New("API secret is required")

	// ErrUnauthorized is returned when the credentials are invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired credentials")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// StreamError is implemented by all SDK errors.
type StreamError interface {
	error
	StreamError() // marker method
}

// APIError represents a non-2xx HTTP response from the Stream Chat
// API. Code and Message come from the decoded error body when the
// server returned JSON; Body always carries the raw bytes.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("stream-chat error code %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("stream-chat error HTTP code: %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// StreamError implements the StreamError interface.
func (e *APIError) StreamError() {}

// NetworkError represents a transport-level failure: connection reset,
// DNS failure, timeout. No request reached the API, or no response
// came back.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StreamError implements the StreamError interface.
func (e *NetworkError) StreamError() {}

// ValidationError reports arguments rejected before any network call
// was attempted.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// StreamError implements the StreamError interface.
func (e *ValidationError) StreamError() {}

// DecodingError is returned when a response body is not valid JSON.
type DecodingError struct {
	Err  error
	Body []byte
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode response body: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodingError) Unwrap() error {
	return e.Err
}

// StreamError implements the StreamError interface.
func (e *DecodingError) StreamError() {}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with the sentinels above.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}

// validateRequired checks name/value pairs and returns a
// ValidationError naming every empty value.
func validateRequired(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i]+" is required")
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Errors: missing}
	}
	return nil
}
