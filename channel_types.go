package streamchat

import (
	"context"
	"net/url"
)

// CreateChannelType registers a new channel type. data must contain a
// "name"; when no commands are given, the "all" set is enabled.
func (c *Client) CreateChannelType(ctx context.Context, data map[string]any) (*Response, error) {
	data = mergeData(data, nil)
	if commands, ok := data["commands"]; !ok || isEmptyList(commands) {
		data["commands"] = []string{"all"}
	}
	return c.post(ctx, "channeltypes", nil, data)
}

// GetChannelType fetches the configuration of a channel type.
func (c *Client) GetChannelType(ctx context.Context, channelType string) (*Response, error) {
	if err := validateRequired("channel type", channelType); err != nil {
		return nil, err
	}
	return c.get(ctx, "channeltypes/"+url.PathEscape(channelType), nil)
}

// ListChannelTypes lists all channel types of the app.
func (c *Client) ListChannelTypes(ctx context.Context) (*Response, error) {
	return c.get(ctx, "channeltypes", nil)
}

// UpdateChannelType changes the settings of a channel type.
func (c *Client) UpdateChannelType(ctx context.Context, channelType string, settings map[string]any) (*Response, error) {
	if err := validateRequired("channel type", channelType); err != nil {
		return nil, err
	}
	return c.put(ctx, "channeltypes/"+url.PathEscape(channelType), nil, settings)
}

// DeleteChannelType removes a channel type. It fails while channels of
// that type still exist.
func (c *Client) DeleteChannelType(ctx context.Context, channelType string) (*Response, error) {
	if err := validateRequired("channel type", channelType); err != nil {
		return nil, err
	}
	return c.delete(ctx, "channeltypes/"+url.PathEscape(channelType), nil)
}

func isEmptyList(v any) bool {
	switch list := v.(type) {
	case []string:
		return len(list) == 0
	case []any:
		return len(list) == 0
	case nil:
		return true
	}
	return false
}
