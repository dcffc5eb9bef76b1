package streamchat

import (
	"context"
	"net/url"
)

// CreateCommand registers a custom slash command. data must contain a
// "name".
func (c *Client) CreateCommand(ctx context.Context, data map[string]any) (*Response, error) {
	return c.post(ctx, "commands", nil, data)
}

// GetCommand fetches a custom command by name.
func (c *Client) GetCommand(ctx context.Context, name string) (*Response, error) {
	if err := validateRequired("command name", name); err != nil {
		return nil, err
	}
	return c.get(ctx, "commands/"+url.PathEscape(name), nil)
}

// ListCommands lists all custom commands of the app.
func (c *Client) ListCommands(ctx context.Context) (*Response, error) {
	return c.get(ctx, "commands", nil)
}

// UpdateCommand changes a custom command's settings.
func (c *Client) UpdateCommand(ctx context.Context, name string, settings map[string]any) (*Response, error) {
	if err := validateRequired("command name", name); err != nil {
		return nil, err
	}
	return c.put(ctx, "commands/"+url.PathEscape(name), nil, settings)
}

// DeleteCommand removes a custom command.
func (c *Client) DeleteCommand(ctx context.Context, name string) (*Response, error) {
	if err := validateRequired("command name", name); err != nil {
		return nil, err
	}
	return c.delete(ctx, "commands/"+url.PathEscape(name), nil)
}
