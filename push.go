package streamchat

import (
	"context"
	"net/url"
)

// UpsertPushProvider creates or updates a push provider configuration.
// config must carry "type" and "name".
func (c *Client) UpsertPushProvider(ctx context.Context, config map[string]any) (*Response, error) {
	return c.post(ctx, "push_providers", nil, map[string]any{"push_provider": config})
}

// DeletePushProvider removes a push provider by type and name.
func (c *Client) DeletePushProvider(ctx context.Context, providerType, name string) (*Response, error) {
	if err := validateRequired("provider type", providerType, "provider name", name); err != nil {
		return nil, err
	}
	return c.delete(ctx, "push_providers/"+url.PathEscape(providerType)+"/"+url.PathEscape(name), nil)
}

// ListPushProviders lists the app's push provider configurations.
func (c *Client) ListPushProviders(ctx context.Context) (*Response, error) {
	return c.get(ctx, "push_providers", nil)
}
