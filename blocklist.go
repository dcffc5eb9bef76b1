package streamchat

import (
	"context"
	"net/url"
)

// CreateBlocklist creates a named list of blocked words. The list can
// then be attached to channel types via their blocklist setting.
func (c *Client) CreateBlocklist(ctx context.Context, name string, words []string) (*Response, error) {
	if err := validateRequired("blocklist name", name); err != nil {
		return nil, err
	}
	return c.post(ctx, "blocklists", nil, map[string]any{"name": name, "words": words})
}

// ListBlocklists lists all blocklists of the app, built-in included.
func (c *Client) ListBlocklists(ctx context.Context) (*Response, error) {
	return c.get(ctx, "blocklists", nil)
}

// GetBlocklist fetches a blocklist by name.
func (c *Client) GetBlocklist(ctx context.Context, name string) (*Response, error) {
	if err := validateRequired("blocklist name", name); err != nil {
		return nil, err
	}
	return c.get(ctx, "blocklists/"+url.PathEscape(name), nil)
}

// UpdateBlocklist replaces the words of a blocklist.
func (c *Client) UpdateBlocklist(ctx context.Context, name string, words []string) (*Response, error) {
	if err := validateRequired("blocklist name", name); err != nil {
		return nil, err
	}
	return c.put(ctx, "blocklists/"+url.PathEscape(name), nil, map[string]any{"words": words})
}

// DeleteBlocklist removes a blocklist.
func (c *Client) DeleteBlocklist(ctx context.Context, name string) (*Response, error) {
	if err := validateRequired("blocklist name", name); err != nil {
		return nil, err
	}
	return c.delete(ctx, "blocklists/"+url.PathEscape(name), nil)
}
