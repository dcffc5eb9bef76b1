package streamchat

import (
	"context"
	"net/url"
	"strings"
)

// GetAppSettings returns the application configuration.
func (c *Client) GetAppSettings(ctx context.Context) (*Response, error) {
	return c.get(ctx, "app", nil)
}

// UpdateAppSettings updates the application configuration. Only the
// given settings are touched.
func (c *Client) UpdateAppSettings(ctx context.Context, settings map[string]any) (*Response, error) {
	return c.patch(ctx, "app", nil, settings)
}

// GetRateLimits returns rate limit quotas and current usage. With no
// platform toggled, limits for all platforms and endpoints are
// returned; endpoints restricts the result to the named endpoints.
func (c *Client) GetRateLimits(ctx context.Context, serverSide, android, ios, web bool, endpoints []string) (*Response, error) {
	params := url.Values{}
	if serverSide {
		params.Set("server_side", "true")
	}
	if android {
		params.Set("android", "true")
	}
	if ios {
		params.Set("ios", "true")
	}
	if web {
		params.Set("web", "true")
	}
	if len(endpoints) > 0 {
		params.Set("endpoints", strings.Join(endpoints, ","))
	}
	return c.get(ctx, "rate_limits", params)
}

// CheckPush runs a push notification test against the app's push
// configuration.
func (c *Client) CheckPush(ctx context.Context, pushData map[string]any) (*Response, error) {
	return c.post(ctx, "check_push", nil, pushData)
}

// CheckSQS validates the SQS push settings. With no parameters given,
// the current app settings are checked.
func (c *Client) CheckSQS(ctx context.Context, sqsKey, sqsSecret, sqsURL string) (*Response, error) {
	data := map[string]any{}
	if sqsKey != "" {
		data["sqs_key"] = sqsKey
	}
	if sqsSecret != "" {
		data["sqs_secret"] = sqsSecret
	}
	if sqsURL != "" {
		data["sqs_url"] = sqsURL
	}
	return c.post(ctx, "check_sqs", nil, data)
}

// SetGuestUser creates a guest user and returns its access token.
func (c *Client) SetGuestUser(ctx context.Context, guestUser map[string]any) (*Response, error) {
	return c.post(ctx, "guest", nil, map[string]any{"user": guestUser})
}

// SendUserCustomEvent sends a custom event to all of a user's active
// connections.
func (c *Client) SendUserCustomEvent(ctx context.Context, userID string, event map[string]any) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.post(ctx, "users/"+url.PathEscape(userID)+"/event", nil, map[string]any{"event": event})
}
