package streamchat

import (
	"context"
	"net/url"
)

// CreatePermission defines a custom permission. permission needs at
// least an "id", "name" and "action".
func (c *Client) CreatePermission(ctx context.Context, permission map[string]any) (*Response, error) {
	return c.post(ctx, "permissions", nil, permission)
}

// GetPermission fetches a permission by id.
func (c *Client) GetPermission(ctx context.Context, permissionID string) (*Response, error) {
	if err := validateRequired("permission id", permissionID); err != nil {
		return nil, err
	}
	return c.get(ctx, "permissions/"+url.PathEscape(permissionID), nil)
}

// ListPermissions lists all permissions, built-in and custom.
func (c *Client) ListPermissions(ctx context.Context) (*Response, error) {
	return c.get(ctx, "permissions", nil)
}

// UpdatePermission replaces the definition of a custom permission.
func (c *Client) UpdatePermission(ctx context.Context, permissionID string, permission map[string]any) (*Response, error) {
	if err := validateRequired("permission id", permissionID); err != nil {
		return nil, err
	}
	return c.put(ctx, "permissions/"+url.PathEscape(permissionID), nil, permission)
}

// DeletePermission removes a custom permission.
func (c *Client) DeletePermission(ctx context.Context, permissionID string) (*Response, error) {
	if err := validateRequired("permission id", permissionID); err != nil {
		return nil, err
	}
	return c.delete(ctx, "permissions/"+url.PathEscape(permissionID), nil)
}

// CreateRole defines a custom role that permissions can be granted to.
func (c *Client) CreateRole(ctx context.Context, name string) (*Response, error) {
	if err := validateRequired("role name", name); err != nil {
		return nil, err
	}
	return c.post(ctx, "roles", nil, map[string]any{"name": name})
}

// ListRoles lists all roles, built-in and custom.
func (c *Client) ListRoles(ctx context.Context) (*Response, error) {
	return c.get(ctx, "roles", nil)
}

// DeleteRole removes a custom role. It fails while users still hold
// the role.
func (c *Client) DeleteRole(ctx context.Context, name string) (*Response, error) {
	if err := validateRequired("role name", name); err != nil {
		return nil, err
	}
	return c.delete(ctx, "roles/"+url.PathEscape(name), nil)
}
