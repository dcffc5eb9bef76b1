package streamchat

import (
	"context"
	"net/url"
	"time"
)

// GetTask fetches the status of an async server-side task, e.g. one
// returned by DeleteChannels or DeleteUsers.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Response, error) {
	if err := validateRequired("task id", taskID); err != nil {
		return nil, err
	}
	return c.get(ctx, "tasks/"+url.PathEscape(taskID), nil)
}

// ExportChannelRequest selects one channel and an optional message
// window for ExportChannels.
type ExportChannelRequest struct {
	Type          string     `json:"type"`
	ID            string     `json:"id"`
	MessagesSince *time.Time `json:"messages_since,omitempty"`
	MessagesUntil *time.Time `json:"messages_until,omitempty"`
}

// ExportChannel requests an export of a single channel. The response
// carries a task id for GetExportChannelStatus.
func (c *Client) ExportChannel(ctx context.Context, channelType, channelID string, messagesSince, messagesUntil *time.Time, options map[string]any) (*Response, error) {
	if err := validateRequired("channel type", channelType, "channel id", channelID); err != nil {
		return nil, err
	}
	request := ExportChannelRequest{
		Type:          channelType,
		ID:            channelID,
		MessagesSince: messagesSince,
		MessagesUntil: messagesUntil,
	}
	return c.ExportChannels(ctx, []ExportChannelRequest{request}, options)
}

// ExportChannels requests an export of multiple channels.
func (c *Client) ExportChannels(ctx context.Context, channels []ExportChannelRequest, options map[string]any) (*Response, error) {
	if len(channels) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one channel is required"}}
	}
	data := mergeData(options, map[string]any{"channels": channels})
	return c.post(ctx, "export_channels", nil, data)
}

// GetExportChannelStatus fetches the status of a channel export task.
func (c *Client) GetExportChannelStatus(ctx context.Context, taskID string) (*Response, error) {
	if err := validateRequired("task id", taskID); err != nil {
		return nil, err
	}
	return c.get(ctx, "export_channels/"+url.PathEscape(taskID), nil)
}

// DeleteChannels deletes multiple channels asynchronously by cid. Pass
// {"hard_delete": true} in options to erase messages as well. The
// response carries a task id for GetTask.
func (c *Client) DeleteChannels(ctx context.Context, cids []string, options map[string]any) (*Response, error) {
	if len(cids) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one channel cid is required"}}
	}
	data := mergeData(options, map[string]any{"cids": cids})
	return c.post(ctx, "channels/delete", nil, data)
}
