package streamchat

import (
	"context"
	"net/url"
	"time"
)

// GetMessage retrieves a single message by id.
func (c *Client) GetMessage(ctx context.Context, messageID string) (*Response, error) {
	if err := validateRequired("message id", messageID); err != nil {
		return nil, err
	}
	return c.get(ctx, "messages/"+url.PathEscape(messageID), nil)
}

// UpdateMessage overwrites a message. The message must carry its "id".
func (c *Client) UpdateMessage(ctx context.Context, message map[string]any) (*Response, error) {
	id, _ := message["id"].(string)
	if err := validateRequired("message id", id); err != nil {
		return nil, err
	}
	return c.post(ctx, "messages/"+url.PathEscape(id), nil, map[string]any{"message": message})
}

// UpdateMessagePartial applies set/unset updates to a message on
// behalf of userID without replacing the whole object.
func (c *Client) UpdateMessagePartial(ctx context.Context, messageID string, updates map[string]any, userID string, options map[string]any) (*Response, error) {
	if err := validateRequired("message id", messageID, "user id", userID); err != nil {
		return nil, err
	}
	data := mergeData(updates, mergeData(map[string]any{"user": map[string]any{"id": userID}}, options))
	return c.put(ctx, "messages/"+url.PathEscape(messageID), nil, data)
}

// DeleteMessage deletes a message. Set "hard" in the options for a
// hard delete.
func (c *Client) DeleteMessage(ctx context.Context, messageID string, options map[string]any) (*Response, error) {
	if err := validateRequired("message id", messageID); err != nil {
		return nil, err
	}
	return c.delete(ctx, "messages/"+url.PathEscape(messageID), queryParams(options))
}

// PinMessage pins a message on behalf of userID. A non-nil expiration
// unpins it automatically at that time.
func (c *Client) PinMessage(ctx context.Context, messageID, userID string, expiration *time.Time) (*Response, error) {
	set := map[string]any{"pinned": true}
	if expiration != nil {
		set["pin_expires"] = expiration.UTC().Format(time.RFC3339)
	}
	return c.UpdateMessagePartial(ctx, messageID, map[string]any{"set": set}, userID, nil)
}

// UnpinMessage removes a pin.
func (c *Client) UnpinMessage(ctx context.Context, messageID, userID string) (*Response, error) {
	return c.UpdateMessagePartial(ctx, messageID, map[string]any{"set": map[string]any{"pinned": false}}, userID, nil)
}

// TranslateMessage translates a message into the given language. The
// translation is attached to the message's i18n field.
func (c *Client) TranslateMessage(ctx context.Context, messageID, language string) (*Response, error) {
	if err := validateRequired("message id", messageID, "language", language); err != nil {
		return nil, err
	}
	return c.post(ctx, "messages/"+url.PathEscape(messageID)+"/translate", nil, map[string]any{"language": language})
}

// RunMessageAction runs a message command action, e.g. answering a
// giphy shuffle.
func (c *Client) RunMessageAction(ctx context.Context, messageID string, data map[string]any) (*Response, error) {
	if err := validateRequired("message id", messageID); err != nil {
		return nil, err
	}
	return c.post(ctx, "messages/"+url.PathEscape(messageID)+"/action", nil, data)
}

// MarkAllRead marks all channels as read for a user.
func (c *Client) MarkAllRead(ctx context.Context, userID string) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.post(ctx, "channels/read", nil, map[string]any{"user": map[string]any{"id": userID}})
}

// Search searches messages across channels matching filterConditions.
// The query is either a search string or a map of message filter
// conditions.
func (c *Client) Search(ctx context.Context, filterConditions map[string]any, query any, sort []SortParam, options map[string]any) (*Response, error) {
	params, err := createSearchParams(filterConditions, query, sort, options)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "search", params)
}

func createSearchParams(filterConditions map[string]any, query any, sort []SortParam, options map[string]any) (url.Values, error) {
	payload := mergeData(options, map[string]any{"filter_conditions": filterConditions})
	switch q := query.(type) {
	case string:
		if q == "" {
			return nil, &ValidationError{Errors: []string{"query is required"}}
		}
		payload["query"] = q
	case map[string]any:
		payload["message_filter_conditions"] = q
	default:
		return nil, &ValidationError{Errors: []string{"query must be a string or a filter map"}}
	}
	if len(sort) > 0 {
		payload["sort"] = normalizeSort(sort)
	}
	return jsonPayload(payload)
}
