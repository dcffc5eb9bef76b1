package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the Stream Chat API. Code and
// Message are filled from the error envelope when the body is JSON;
// Body always carries the raw bytes.
type Error struct {
	StatusCode int
	Code       int
	Message    string
	Body       []byte
	Header     http.Header
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("stream-chat error code %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("stream-chat error HTTP code: %d", e.StatusCode)
}

// NetworkError represents a transport-level failure: connection reset,
// DNS failure, timeout. The underlying error is preserved for
// errors.Is/As checks against net and context errors.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func parseErrorResponse(status int, header http.Header, body []byte) error {
	apiErr := &Error{StatusCode: status, Body: body, Header: header}

	var envelope struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}

	return apiErr
}
