package streamchat

import (
	"context"
	"net/url"
)

// AddDevice registers a device for push notifications. pushProvider is
// one of "apn", "firebase", "huawei" or "xiaomi".
func (c *Client) AddDevice(ctx context.Context, deviceID, pushProvider, userID string) (*Response, error) {
	if err := validateRequired("device id", deviceID, "push provider", pushProvider, "user id", userID); err != nil {
		return nil, err
	}
	data := map[string]any{
		"id":            deviceID,
		"push_provider": pushProvider,
		"user_id":       userID,
	}
	return c.post(ctx, "devices", nil, data)
}

// DeleteDevice unregisters a user's device.
func (c *Client) DeleteDevice(ctx context.Context, deviceID, userID string) (*Response, error) {
	if err := validateRequired("device id", deviceID, "user id", userID); err != nil {
		return nil, err
	}
	params := url.Values{
		"id":      []string{deviceID},
		"user_id": []string{userID},
	}
	return c.delete(ctx, "devices", params)
}

// GetDevices lists the devices registered for a user.
func (c *Client) GetDevices(ctx context.Context, userID string) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.get(ctx, "devices", url.Values{"user_id": []string{userID}})
}
