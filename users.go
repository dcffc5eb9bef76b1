package streamchat

import (
	"context"
	"net/url"
	"time"
)

// UpsertUsers creates or updates up to 100 users at once. Every user
// must carry a non-empty "id".
func (c *Client) UpsertUsers(ctx context.Context, users []map[string]any) (*Response, error) {
	if len(users) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one user is required"}}
	}
	byID := make(map[string]any, len(users))
	for _, user := range users {
		id, _ := user["id"].(string)
		if id == "" {
			return nil, &ValidationError{Errors: []string{"every user must have an id"}}
		}
		byID[id] = user
	}
	return c.post(ctx, "users", nil, map[string]any{"users": byID})
}

// UpsertUser creates or updates a single user.
func (c *Client) UpsertUser(ctx context.Context, user map[string]any) (*Response, error) {
	return c.UpsertUsers(ctx, []map[string]any{user})
}

// UpdateUsersPartial applies partial updates to several users. Each
// update carries the user "id" plus "set" and/or "unset" entries.
func (c *Client) UpdateUsersPartial(ctx context.Context, updates []map[string]any) (*Response, error) {
	if len(updates) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one update is required"}}
	}
	return c.patch(ctx, "users", nil, map[string]any{"users": updates})
}

// UpdateUserPartial applies a partial update to a single user.
func (c *Client) UpdateUserPartial(ctx context.Context, update map[string]any) (*Response, error) {
	return c.UpdateUsersPartial(ctx, []map[string]any{update})
}

// DeleteUser deletes a user. Options control hard deletion and what
// happens to the user's messages and conversations.
func (c *Client) DeleteUser(ctx context.Context, userID string, options map[string]any) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.delete(ctx, "users/"+url.PathEscape(userID), queryParams(options))
}

// DeleteUsers deletes users asynchronously and returns a task id to
// poll with GetTask. deleteType is "hard" or "soft".
func (c *Client) DeleteUsers(ctx context.Context, userIDs []string, deleteType string, options map[string]any) (*Response, error) {
	if len(userIDs) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one user id is required"}}
	}
	if err := validateRequired("delete type", deleteType); err != nil {
		return nil, err
	}
	data := mergeData(options, map[string]any{
		"user_ids": userIDs,
		"user":     deleteType,
	})
	return c.post(ctx, "users/delete", nil, data)
}

// RestoreUsers restores soft-deleted users.
func (c *Client) RestoreUsers(ctx context.Context, userIDs []string) (*Response, error) {
	if len(userIDs) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one user id is required"}}
	}
	return c.post(ctx, "users/restore", nil, map[string]any{"user_ids": userIDs})
}

// DeactivateUser deactivates a user. A deactivated user cannot connect
// or send messages until reactivated.
func (c *Client) DeactivateUser(ctx context.Context, userID string, options map[string]any) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.post(ctx, "users/"+url.PathEscape(userID)+"/deactivate", nil, options)
}

// ReactivateUser reactivates a previously deactivated user.
func (c *Client) ReactivateUser(ctx context.Context, userID string, options map[string]any) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.post(ctx, "users/"+url.PathEscape(userID)+"/reactivate", nil, options)
}

// ExportUser exports all stored data for a user.
func (c *Client) ExportUser(ctx context.Context, userID string, options map[string]any) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.get(ctx, "users/"+url.PathEscape(userID)+"/export", queryParams(options))
}

// QueryUsers filters, sorts, and paginates users.
func (c *Client) QueryUsers(ctx context.Context, filterConditions map[string]any, sort []SortParam, options map[string]any) (*Response, error) {
	payload := mergeData(options, map[string]any{
		"filter_conditions": filterConditions,
		"sort":              normalizeSort(sort),
	})
	params, err := jsonPayload(payload)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "users", params)
}

// RevokeTokens revokes all tokens issued for the application before
// the given time.
func (c *Client) RevokeTokens(ctx context.Context, since time.Time) (*Response, error) {
	return c.UpdateAppSettings(ctx, map[string]any{
		"revoke_tokens_issued_before": since.UTC().Format(time.RFC3339),
	})
}

// RevokeUserToken revokes a user's tokens issued before the given time.
func (c *Client) RevokeUserToken(ctx context.Context, userID string, before time.Time) (*Response, error) {
	return c.RevokeUsersToken(ctx, []string{userID}, before)
}

// RevokeUsersToken revokes tokens issued before the given time for
// several users at once.
func (c *Client) RevokeUsersToken(ctx context.Context, userIDs []string, before time.Time) (*Response, error) {
	if len(userIDs) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one user id is required"}}
	}
	updates := make([]map[string]any, 0, len(userIDs))
	for _, id := range userIDs {
		if err := validateRequired("user id", id); err != nil {
			return nil, err
		}
		updates = append(updates, map[string]any{
			"id": id,
			"set": map[string]any{
				"revoke_tokens_issued_before": before.UTC().Format(time.RFC3339),
			},
		})
	}
	return c.UpdateUsersPartial(ctx, updates)
}
