package streamchat

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitHeaders(limit, remaining, reset string) http.Header {
	h := http.Header{}
	h.Set("X-Ratelimit-Limit", limit)
	h.Set("X-Ratelimit-Remaining", remaining)
	h.Set("X-Ratelimit-Reset", reset)
	return h
}

func TestResponse_Accessors(t *testing.T) {
	resp, err := newResponse([]byte(`{"duration":"5ms","users":[{"id":"u1"}]}`), http.Header{}, http.StatusOK)
	require.NoError(t, err)

	duration, ok := resp.Get("duration")
	require.True(t, ok)
	assert.Equal(t, "5ms", duration)

	_, ok = resp.Get("missing")
	assert.False(t, ok)

	assert.True(t, resp.Has("users"))
	assert.False(t, resp.Has("missing"))
	assert.Equal(t, 2, resp.Len())
	assert.Equal(t, []string{"duration", "users"}, resp.Keys())
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.True(t, resp.IsOK())
}

func TestResponse_EmptyBody(t *testing.T) {
	for _, body := range [][]byte{nil, {}, []byte("  \n")} {
		resp, err := newResponse(body, http.Header{}, http.StatusOK)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Len())
		assert.Equal(t, map[string]any{}, resp.Data())
	}
}

func TestResponse_InvalidJSON(t *testing.T) {
	_, err := newResponse([]byte(`{"broken`), http.Header{}, http.StatusOK)
	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, []byte(`{"broken`), decErr.Body)
}

func TestResponse_UnmarshalTo(t *testing.T) {
	resp, err := newResponse([]byte(`{"duration":"5ms","watcher_count":3}`), http.Header{}, http.StatusOK)
	require.NoError(t, err)

	var out struct {
		Duration     string `json:"duration"`
		WatcherCount int    `json:"watcher_count"`
	}
	require.NoError(t, resp.UnmarshalTo(&out))
	assert.Equal(t, "5ms", out.Duration)
	assert.Equal(t, 3, out.WatcherCount)
}

func TestResponse_MarshalJSON(t *testing.T) {
	resp, err := newResponse([]byte(`{"duration":"5ms"}`), http.Header{}, http.StatusOK)
	require.NoError(t, err)

	b, err := resp.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"duration":"5ms"}`, string(b))
	assert.JSONEq(t, `{"duration":"5ms"}`, resp.String())
}

func TestResponse_RateLimit(t *testing.T) {
	resp, err := newResponse([]byte(`{}`), rateLimitHeaders("300", "299", "1598806800"), http.StatusOK)
	require.NoError(t, err)

	info := resp.RateLimit()
	require.NotNil(t, info)
	assert.EqualValues(t, 300, info.Limit)
	assert.EqualValues(t, 299, info.Remaining)
	assert.Equal(t, time.Unix(1598806800, 0).UTC(), info.Reset)
}

func TestResponse_RateLimitMissingHeaders(t *testing.T) {
	resp, err := newResponse([]byte(`{}`), http.Header{}, http.StatusOK)
	require.NoError(t, err)
	assert.Nil(t, resp.RateLimit())

	partial := http.Header{}
	partial.Set("X-Ratelimit-Limit", "300")
	resp, err = newResponse([]byte(`{}`), partial, http.StatusOK)
	require.NoError(t, err)
	assert.Nil(t, resp.RateLimit())
}

func TestCleanRateLimitHeader(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{"300", 300},
		{"300, 300", 300},
		{" , 250", 250},
		{"1598806800.5", 1598806800},
		{"garbage", 0},
		{"", 0},
		{"300garbage, 100", 0},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanRateLimitHeader(tt.value))
		})
	}
}

func TestResponse_IsOK(t *testing.T) {
	for status, want := range map[int]bool{
		http.StatusOK:                  true,
		http.StatusCreated:             true,
		http.StatusMultipleChoices:     false,
		http.StatusTooManyRequests:     false,
		http.StatusInternalServerError: false,
	} {
		resp, err := newResponse([]byte(`{}`), http.Header{}, status)
		require.NoError(t, err)
		assert.Equal(t, want, resp.IsOK(), "status %d", status)
	}
}
