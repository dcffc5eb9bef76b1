package streamchat

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "test-api-key"
	testAPISecret = "test-api-secret"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// testServer records every request it receives and answers with a
// fixed status and body.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   string
	header http.Header
}

func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()

	ts := &testServer{status: status, body: body, header: http.Header{}}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}

		ts.mu.Lock()
		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   payload,
		})
		ts.mu.Unlock()

		for k, vs := range ts.header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		w.WriteHeader(ts.status)
		if _, err := io.WriteString(w, ts.body); err != nil {
			t.Errorf("write response body: %v", err)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) lastRequest(t *testing.T) recordedRequest {
	t.Helper()

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.requests) == 0 {
		t.Fatal("no requests recorded")
	}
	return ts.requests[len(ts.requests)-1]
}

func (ts *testServer) requestCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.requests)
}

func newTestClient(t *testing.T, ts *testServer) *Client {
	t.Helper()

	client, err := New(testAPIKey, testAPISecret, WithBaseURL(ts.URL))
	require.NoError(t, err)
	return client
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New("", testAPISecret)
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New(testAPIKey, "")
	require.ErrorIs(t, err, ErrMissingAPISecret)
}

func TestNew_MintsServerToken(t *testing.T) {
	client, err := New(testAPIKey, testAPISecret)
	require.NoError(t, err)

	token, err := jwt.Parse(client.AuthToken(), func(token *jwt.Token) (any, error) {
		return []byte(testAPISecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, true, claims["server"])
	assert.NotContains(t, claims, "exp")
}

func TestClient_RequestEnvelope(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.GetAppSettings(context.Background())
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/app", req.Path)
	assert.Equal(t, testAPIKey, req.Query.Get("api_key"))
	assert.Equal(t, client.AuthToken(), req.Header.Get("Authorization"))
	assert.Equal(t, "jwt", req.Header.Get("Stream-Auth-Type"))
	assert.Equal(t, "stream-go-client-"+versionName, req.Header.Get("X-Stream-Client"))
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.CheckPush(context.Background(), map[string]any{"message_id": "msg-1"})
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"message_id":"msg-1"}`, string(req.Body))
}

func TestClient_DeterministicEnvelope(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	filter := map[string]any{"race": true, "banned": false, "id": "user-1"}
	sort := []SortParam{{Field: "created_at", Direction: SortDescending}}

	for i := 0; i < 2; i++ {
		_, err := client.QueryUsers(context.Background(), filter, sort, nil)
		require.NoError(t, err)
	}

	require.Equal(t, 2, ts.requestCount())
	ts.mu.Lock()
	first, second := ts.requests[0], ts.requests[1]
	ts.mu.Unlock()
	assert.Equal(t, first.Query.Encode(), second.Query.Encode())
	assert.Equal(t, first.Body, second.Body)
}

func TestClient_APIError(t *testing.T) {
	ts := newTestServer(t, http.StatusTooManyRequests, `{"code": 9, "message": "rate limit exceeded"}`)
	client := newTestClient(t, ts)

	_, err := client.GetAppSettings(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, 9, apiErr.Code)
	assert.Equal(t, "rate limit exceeded", apiErr.Message)
	assert.Equal(t, "stream-chat error code 9: rate limit exceeded", apiErr.Error())
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestClient_APIErrorWithoutJSONBody(t *testing.T) {
	ts := newTestServer(t, http.StatusInternalServerError, `<html>boom</html>`)
	client := newTestClient(t, ts)

	_, err := client.GetAppSettings(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "stream-chat error HTTP code: 500", apiErr.Error())
	assert.Equal(t, []byte(`<html>boom</html>`), apiErr.Body)
}

func TestClient_NetworkError(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	url := ts.URL
	ts.Close()

	client, err := New(testAPIKey, testAPISecret, WithBaseURL(url))
	require.NoError(t, err)

	_, err = client.GetAppSettings(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, netErr.Unwrap())
}

func TestClient_InvalidJSONResponse(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `not json`)
	client := newTestClient(t, ts)

	_, err := client.GetAppSettings(context.Background())
	require.Error(t, err)

	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, []byte(`not json`), decErr.Body)
}

func TestClient_ContextCancellation(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetAppSettings(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFromEnv(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)

	t.Setenv("STREAM_KEY", testAPIKey)
	t.Setenv("STREAM_SECRET", testAPISecret)
	t.Setenv("STREAM_CHAT_URL", ts.URL)
	t.Setenv("STREAM_CHAT_TIMEOUT", "15s")

	client, err := NewFromEnv()
	require.NoError(t, err)

	_, err = client.GetAppSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ts.requestCount())
}

func TestNewFromEnv_InvalidTimeout(t *testing.T) {
	t.Setenv("STREAM_KEY", testAPIKey)
	t.Setenv("STREAM_SECRET", testAPISecret)
	t.Setenv("STREAM_CHAT_TIMEOUT", "not-a-duration")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.ErrorContains(t, err, "STREAM_CHAT_TIMEOUT")
}

func TestNewFromEnv_MissingCredentials(t *testing.T) {
	t.Setenv("STREAM_KEY", "")
	t.Setenv("STREAM_SECRET", "")

	_, err := NewFromEnv()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestWithHTTPDoer(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)

	doer := &http.Client{Timeout: time.Second}
	client, err := New(testAPIKey, testAPISecret, WithBaseURL(ts.URL), WithHTTPDoer(doer))
	require.NoError(t, err)

	_, err = client.GetAppSettings(context.Background())
	require.NoError(t, err)
}

func TestValidationError_NoRequestSent(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.DeactivateUser(context.Background(), "", nil)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, ts.requestCount())
	assert.False(t, errors.As(err, new(*APIError)))
}
