package streamchat

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMessage(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.UpdateMessage(context.Background(), map[string]any{
		"id":   "msg-1",
		"text": "edited",
	})
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/messages/msg-1", req.Path)
	assert.JSONEq(t, `{"message":{"id":"msg-1","text":"edited"}}`, string(req.Body))
}

func TestUpdateMessage_RequiresID(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.UpdateMessage(context.Background(), map[string]any{"text": "edited"})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, ts.requestCount())
}

func TestUpdateMessagePartial(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	updates := map[string]any{
		"set":   map[string]any{"text": "edited"},
		"unset": []string{"silent"},
	}
	_, err := client.UpdateMessagePartial(context.Background(), "msg-1", updates, "u1", nil)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/messages/msg-1", req.Path)
	assert.JSONEq(t, `{"set":{"text":"edited"},"unset":["silent"],"user":{"id":"u1"}}`, string(req.Body))
}

func TestPinMessage(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	expires := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.PinMessage(context.Background(), "msg-1", "u1", &expires)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "/messages/msg-1", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	set, ok := body["set"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, set["pinned"])
	assert.Equal(t, "2026-09-01T00:00:00Z", set["pin_expires"])
}

func TestUnpinMessage(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.UnpinMessage(context.Background(), "msg-1", "u1")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(ts.lastRequest(t).Body, &body))
	set, ok := body["set"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, set["pinned"])
}

func TestDeleteMessage_Hard(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.DeleteMessage(context.Background(), "msg-1", map[string]any{"hard": true})
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/messages/msg-1", req.Path)
	assert.Equal(t, "true", req.Query.Get("hard"))
}

func TestTranslateMessage(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.TranslateMessage(context.Background(), "msg-1", "fr")
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "/messages/msg-1/translate", req.Path)
	assert.JSONEq(t, `{"language":"fr"}`, string(req.Body))
}

func TestSearch_QueryString(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"results":[]}`)
	client := newTestClient(t, ts)

	_, err := client.Search(context.Background(), map[string]any{"cid": "messaging:general"}, "supercalifragilistic", nil, nil)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/search", req.Path)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Query.Get("payload")), &payload))
	assert.Equal(t, "supercalifragilistic", payload["query"])
	assert.Equal(t, map[string]any{"cid": "messaging:general"}, payload["filter_conditions"])
}

func TestSearch_MessageFilter(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"results":[]}`)
	client := newTestClient(t, ts)

	filter := map[string]any{"text": map[string]any{"$q": "hello"}}
	_, err := client.Search(context.Background(), map[string]any{"cid": "messaging:general"}, filter, nil, nil)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(ts.lastRequest(t).Query.Get("payload")), &payload))
	assert.Contains(t, payload, "message_filter_conditions")
	assert.NotContains(t, payload, "query")
}

func TestSearch_InvalidQuery(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)
	ctx := context.Background()

	_, err := client.Search(ctx, map[string]any{}, "", nil, nil)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	_, err = client.Search(ctx, map[string]any{}, 42, nil, nil)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, ts.requestCount())
}

func TestMarkAllRead(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.MarkAllRead(context.Background(), "u1")
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "/channels/read", req.Path)
	assert.JSONEq(t, `{"user":{"id":"u1"}}`, string(req.Body))
}
