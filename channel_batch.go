package streamchat

import "context"

// ChannelBatchMember is a member entry for batch channel operations
// that carry a channel role.
type ChannelBatchMember struct {
	UserID      string `json:"user_id"`
	ChannelRole string `json:"channel_role,omitempty"`
}

// UpdateChannelsBatch applies an operation to every channel matching a
// filter. options must carry "operation" and "filter"; the response
// contains a task id that GetTask can poll.
func (c *Client) UpdateChannelsBatch(ctx context.Context, options map[string]any) (*Response, error) {
	if options == nil {
		return nil, &ValidationError{Errors: []string{"options are required"}}
	}
	var missing []string
	if _, ok := options["operation"]; !ok {
		missing = append(missing, "operation is required")
	}
	if _, ok := options["filter"]; !ok {
		missing = append(missing, "filter is required")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Errors: missing}
	}
	return c.post(ctx, "channels/batch_update", nil, options)
}

// ChannelBatchUpdater provides typed helpers over UpdateChannelsBatch,
// one per batch operation.
type ChannelBatchUpdater struct {
	client *Client
}

// ChannelBatchUpdater returns a helper for batch channel operations.
func (c *Client) ChannelBatchUpdater() *ChannelBatchUpdater {
	return &ChannelBatchUpdater{client: c}
}

func (u *ChannelBatchUpdater) run(ctx context.Context, options map[string]any) (*Response, error) {
	return u.client.UpdateChannelsBatch(ctx, options)
}

// AddMembers adds members to every channel matching the filter.
func (u *ChannelBatchUpdater) AddMembers(ctx context.Context, filter map[string]any, members []ChannelBatchMember) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation": "addMembers",
		"filter":    filter,
		"members":   members,
	})
}

// RemoveMembers removes members from every channel matching the
// filter.
func (u *ChannelBatchUpdater) RemoveMembers(ctx context.Context, filter map[string]any, userIDs []string) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation": "removeMembers",
		"filter":    filter,
		"members":   userIDs,
	})
}

// InviteMembers invites members to every channel matching the filter.
func (u *ChannelBatchUpdater) InviteMembers(ctx context.Context, filter map[string]any, members []ChannelBatchMember) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation": "invites",
		"filter":    filter,
		"members":   members,
	})
}

// AddModerators promotes members to moderator in every channel
// matching the filter.
func (u *ChannelBatchUpdater) AddModerators(ctx context.Context, filter map[string]any, userIDs []string) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation": "addModerators",
		"filter":    filter,
		"members":   userIDs,
	})
}

// DemoteModerators removes the moderator role from members in every
// channel matching the filter.
func (u *ChannelBatchUpdater) DemoteModerators(ctx context.Context, filter map[string]any, userIDs []string) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation": "demoteModerators",
		"filter":    filter,
		"members":   userIDs,
	})
}

// AssignRoles sets channel roles for members in every channel matching
// the filter.
func (u *ChannelBatchUpdater) AssignRoles(ctx context.Context, filter map[string]any, members []ChannelBatchMember) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation": "assignRoles",
		"filter":    filter,
		"members":   members,
	})
}

// Hide hides every channel matching the filter.
func (u *ChannelBatchUpdater) Hide(ctx context.Context, filter map[string]any) (*Response, error) {
	return u.run(ctx, map[string]any{"operation": "hide", "filter": filter})
}

// Show shows every channel matching the filter.
func (u *ChannelBatchUpdater) Show(ctx context.Context, filter map[string]any) (*Response, error) {
	return u.run(ctx, map[string]any{"operation": "show", "filter": filter})
}

// Archive archives every channel matching the filter.
func (u *ChannelBatchUpdater) Archive(ctx context.Context, filter map[string]any) (*Response, error) {
	return u.run(ctx, map[string]any{"operation": "archive", "filter": filter})
}

// Unarchive unarchives every channel matching the filter.
func (u *ChannelBatchUpdater) Unarchive(ctx context.Context, filter map[string]any) (*Response, error) {
	return u.run(ctx, map[string]any{"operation": "unarchive", "filter": filter})
}

// UpdateData updates channel data on every channel matching the
// filter. data may set frozen, disabled, custom, team and config
// overrides.
func (u *ChannelBatchUpdater) UpdateData(ctx context.Context, filter, data map[string]any) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation": "updateData",
		"filter":    filter,
		"data":      data,
	})
}

// AddFilterTags adds filter tags to every channel matching the filter.
func (u *ChannelBatchUpdater) AddFilterTags(ctx context.Context, filter map[string]any, tags []string) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation":          "addFilterTags",
		"filter":             filter,
		"filter_tags_update": tags,
	})
}

// RemoveFilterTags removes filter tags from every channel matching the
// filter.
func (u *ChannelBatchUpdater) RemoveFilterTags(ctx context.Context, filter map[string]any, tags []string) (*Response, error) {
	return u.run(ctx, map[string]any{
		"operation":          "removeFilterTags",
		"filter":             filter,
		"filter_tags_update": tags,
	})
}
