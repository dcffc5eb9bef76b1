package streamchat

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanUser(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.BanUser(context.Background(), "bad-user", map[string]any{
		"banned_by_id": "admin",
		"timeout":      60,
		"reason":       "spam",
	})
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/moderation/ban", req.Path)
	assert.JSONEq(t, `{"target_user_id":"bad-user","banned_by_id":"admin","timeout":60,"reason":"spam"}`, string(req.Body))
}

func TestUnbanUser(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.UnbanUser(context.Background(), "bad-user", nil)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/moderation/ban", req.Path)
	assert.Equal(t, "bad-user", req.Query.Get("target_user_id"))
}

func TestShadowBan(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.ShadowBan(context.Background(), "bad-user", nil)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(ts.lastRequest(t).Body, &body))
	assert.Equal(t, true, body["shadow"])
	assert.Equal(t, "bad-user", body["target_user_id"])
}

func TestChannelScopedBan(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	ch := client.Channel("messaging", "general", nil)
	_, err := ch.BanUser(context.Background(), "bad-user", nil)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(ts.lastRequest(t).Body, &body))
	assert.Equal(t, "messaging", body["type"])
	assert.Equal(t, "general", body["id"])
	assert.Equal(t, "bad-user", body["target_user_id"])
}

func TestFlagAndUnflagMessage(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)
	ctx := context.Background()

	_, err := client.FlagMessage(ctx, "msg-1", map[string]any{"user_id": "u1"})
	require.NoError(t, err)
	req := ts.lastRequest(t)
	assert.Equal(t, "/moderation/flag", req.Path)
	assert.JSONEq(t, `{"target_message_id":"msg-1","user_id":"u1"}`, string(req.Body))

	_, err = client.UnflagMessage(ctx, "msg-1", map[string]any{"user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "/moderation/unflag", ts.lastRequest(t).Path)
}

func TestQueryBannedUsers(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"bans":[]}`)
	client := newTestClient(t, ts)

	_, err := client.QueryBannedUsers(context.Background(), map[string]any{
		"filter_conditions": map[string]any{"channel_cid": "messaging:general"},
	})
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/query_banned_users", req.Path)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Query.Get("payload")), &payload))
	assert.Equal(t, map[string]any{"channel_cid": "messaging:general"}, payload["filter_conditions"])
}

func TestMuteAndUnmuteUser(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)
	ctx := context.Background()

	_, err := client.MuteUser(ctx, "target", "muter", nil)
	require.NoError(t, err)
	req := ts.lastRequest(t)
	assert.Equal(t, "/moderation/mute", req.Path)
	assert.JSONEq(t, `{"target_id":"target","user_id":"muter"}`, string(req.Body))

	_, err = client.UnmuteUser(ctx, "target", "muter")
	require.NoError(t, err)
	assert.Equal(t, "/moderation/unmute", ts.lastRequest(t).Path)
}

func TestMuteUsers(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	_, err := client.MuteUsers(context.Background(), []string{"t1", "t2"}, "muter", map[string]any{"timeout": 30})
	require.NoError(t, err)

	assert.JSONEq(t, `{"target_ids":["t1","t2"],"user_id":"muter","timeout":30}`, string(ts.lastRequest(t).Body))
}
