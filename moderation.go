package streamchat

import (
	"context"
	"net/url"
)

// BanUser bans a user from the whole app, or from a single channel
// when the options carry the channel "type" and "id". Options may also
// set a "timeout" in minutes and a "reason".
func (c *Client) BanUser(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("target id", targetID); err != nil {
		return nil, err
	}
	data := mergeData(map[string]any{"target_user_id": targetID}, options)
	return c.post(ctx, "moderation/ban", nil, data)
}

// UnbanUser removes a ban.
func (c *Client) UnbanUser(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("target id", targetID); err != nil {
		return nil, err
	}
	params := queryParams(options)
	params.Set("target_user_id", targetID)
	return c.delete(ctx, "moderation/ban", params)
}

// ShadowBan bans a user without the user knowing: their messages keep
// flowing but are marked shadowed for everyone else.
func (c *Client) ShadowBan(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	return c.BanUser(ctx, targetID, mergeData(options, map[string]any{"shadow": true}))
}

// RemoveShadowBan lifts a shadow ban.
func (c *Client) RemoveShadowBan(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	return c.UnbanUser(ctx, targetID, mergeData(options, map[string]any{"shadow": true}))
}

// QueryBannedUsers filters, sorts and paginates bans.
func (c *Client) QueryBannedUsers(ctx context.Context, queryConditions map[string]any) (*Response, error) {
	params, err := jsonPayload(queryConditions)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "query_banned_users", params)
}

// FlagMessage flags a message for moderation review. The options must
// identify the reporting user via "user_id".
func (c *Client) FlagMessage(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("target id", targetID); err != nil {
		return nil, err
	}
	data := mergeData(map[string]any{"target_message_id": targetID}, options)
	return c.post(ctx, "moderation/flag", nil, data)
}

// UnflagMessage removes a message flag.
func (c *Client) UnflagMessage(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("target id", targetID); err != nil {
		return nil, err
	}
	data := mergeData(map[string]any{"target_message_id": targetID}, options)
	return c.post(ctx, "moderation/unflag", nil, data)
}

// QueryMessageFlags filters and paginates message flags.
func (c *Client) QueryMessageFlags(ctx context.Context, filterConditions map[string]any, options map[string]any) (*Response, error) {
	payload := mergeData(options, map[string]any{"filter_conditions": filterConditions})
	params, err := jsonPayload(payload)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "moderation/flags/message", params)
}

// FlagUser flags a user for moderation review.
func (c *Client) FlagUser(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("target id", targetID); err != nil {
		return nil, err
	}
	data := mergeData(map[string]any{"target_user_id": targetID}, options)
	return c.post(ctx, "moderation/flag", nil, data)
}

// UnflagUser removes a user flag.
func (c *Client) UnflagUser(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("target id", targetID); err != nil {
		return nil, err
	}
	data := mergeData(map[string]any{"target_user_id": targetID}, options)
	return c.post(ctx, "moderation/unflag", nil, data)
}

// QueryFlagReports lists flag reports.
//
// Note: Do not use this. It is present for internal usage only. This
// function can, and will, break and/or be removed at any point in time.
func (c *Client) QueryFlagReports(ctx context.Context, options map[string]any) (*Response, error) {
	return c.post(ctx, "moderation/reports", nil, options)
}

// ReviewFlagReport marks a flag report as reviewed.
//
// Note: Do not use this. It is present for internal usage only. This
// function can, and will, break and/or be removed at any point in time.
func (c *Client) ReviewFlagReport(ctx context.Context, reportID, reviewResult, userID string, details map[string]any) (*Response, error) {
	if err := validateRequired("report id", reportID, "review result", reviewResult, "user id", userID); err != nil {
		return nil, err
	}
	return c.patch(ctx, "moderation/reports/"+url.PathEscape(reportID), nil, map[string]any{
		"review_result":  reviewResult,
		"user_id":        userID,
		"review_details": details,
	})
}

// MuteUser mutes targetID on behalf of userID. Options may set a
// "timeout" in minutes after which the mute expires.
func (c *Client) MuteUser(ctx context.Context, targetID, userID string, options map[string]any) (*Response, error) {
	if err := validateRequired("target id", targetID, "user id", userID); err != nil {
		return nil, err
	}
	data := mergeData(map[string]any{"target_id": targetID, "user_id": userID}, options)
	return c.post(ctx, "moderation/mute", nil, data)
}

// MuteUsers mutes several users on behalf of userID.
func (c *Client) MuteUsers(ctx context.Context, targetIDs []string, userID string, options map[string]any) (*Response, error) {
	if len(targetIDs) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one target id is required"}}
	}
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	data := mergeData(map[string]any{"target_ids": targetIDs, "user_id": userID}, options)
	return c.post(ctx, "moderation/mute", nil, data)
}

// UnmuteUser removes a mute.
func (c *Client) UnmuteUser(ctx context.Context, targetID, userID string) (*Response, error) {
	if err := validateRequired("target id", targetID, "user id", userID); err != nil {
		return nil, err
	}
	return c.post(ctx, "moderation/unmute", nil, map[string]any{"target_id": targetID, "user_id": userID})
}

// UnmuteUsers removes mutes for several users at once.
func (c *Client) UnmuteUsers(ctx context.Context, targetIDs []string, userID string) (*Response, error) {
	if len(targetIDs) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one target id is required"}}
	}
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return c.post(ctx, "moderation/unmute", nil, map[string]any{"target_ids": targetIDs, "user_id": userID})
}
