package streamchat

import (
	"context"
	"io"
	"net/url"
)

// Channel is a handle on a single channel. It performs no I/O until
// one of its methods is called; all state lives on the remote side.
type Channel struct {
	client *Client

	// Type is the channel type, e.g. "messaging" or "team".
	Type string
	// ID is the channel id within its type. Empty until the channel is
	// created server-side from member ids.
	ID string
	// CustomData is sent as the channel data on Create and Query.
	CustomData map[string]any
}

// Channel returns a handle on a channel of the given type. channelID
// may be empty; it is filled in from the server response when the
// channel is created from member ids.
func (c *Client) Channel(channelType, channelID string, customData map[string]any) *Channel {
	if customData == nil {
		customData = map[string]any{}
	}
	return &Channel{
		client:     c,
		Type:       channelType,
		ID:         channelID,
		CustomData: customData,
	}
}

// QueryChannels filters, sorts and paginates channels. State is
// included by default; watch and presence are off since server-side
// clients do not hold websocket connections.
func (c *Client) QueryChannels(ctx context.Context, filterConditions map[string]any, sort []SortParam, options map[string]any) (*Response, error) {
	payload := mergeData(map[string]any{"state": true, "watch": false, "presence": false}, options)
	payload["filter_conditions"] = filterConditions
	payload["sort"] = normalizeSort(sort)
	return c.post(ctx, "channels", nil, payload)
}

// CID returns the channel's composite id, "type:id".
func (ch *Channel) CID() string {
	return ch.Type + ":" + ch.ID
}

// url returns the resource path for this channel. Channels created
// without an id have no address until Create or Query fills it in.
func (ch *Channel) url() (string, error) {
	if err := validateRequired("channel type", ch.Type, "channel id", ch.ID); err != nil {
		return "", err
	}
	return "channels/" + url.PathEscape(ch.Type) + "/" + url.PathEscape(ch.ID), nil
}

// SendMessage sends a message to this channel on behalf of userID.
func (ch *Channel) SendMessage(ctx context.Context, message map[string]any, userID string) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	payload := map[string]any{"message": addUserID(message, userID)}
	return ch.client.post(ctx, path+"/message", nil, payload)
}

// SendEvent sends a custom event on this channel, e.g.
// {"type": "typing.start"}.
func (ch *Channel) SendEvent(ctx context.Context, event map[string]any, userID string) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	payload := map[string]any{"event": addUserID(event, userID)}
	return ch.client.post(ctx, path+"/event", nil, payload)
}

// SendReaction adds a reaction to a message, e.g. {"type": "love"}.
func (ch *Channel) SendReaction(ctx context.Context, messageID string, reaction map[string]any, userID string) (*Response, error) {
	if err := validateRequired("message id", messageID, "user id", userID); err != nil {
		return nil, err
	}
	payload := map[string]any{"reaction": addUserID(reaction, userID)}
	return ch.client.post(ctx, "messages/"+url.PathEscape(messageID)+"/reaction", nil, payload)
}

// DeleteReaction removes a user's reaction of the given type from a
// message.
func (ch *Channel) DeleteReaction(ctx context.Context, messageID, reactionType, userID string) (*Response, error) {
	if err := validateRequired("message id", messageID, "reaction type", reactionType, "user id", userID); err != nil {
		return nil, err
	}
	params := url.Values{"user_id": []string{userID}}
	return ch.client.delete(ctx, "messages/"+url.PathEscape(messageID)+"/reaction/"+url.PathEscape(reactionType), params)
}

// Create creates the channel on behalf of userID.
func (ch *Channel) Create(ctx context.Context, userID string) (*Response, error) {
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	ch.CustomData["created_by"] = map[string]any{"id": userID}
	return ch.Query(ctx, map[string]any{"watch": false, "state": false, "presence": false})
}

// Query fetches the channel state: messages, members, watchers. When
// the handle has no id yet, the id assigned by the server is stored on
// the handle.
func (ch *Channel) Query(ctx context.Context, options map[string]any) (*Response, error) {
	if err := validateRequired("channel type", ch.Type); err != nil {
		return nil, err
	}
	payload := mergeData(map[string]any{"state": true, "data": ch.CustomData}, options)

	path := "channels/" + url.PathEscape(ch.Type)
	if ch.ID != "" {
		path += "/" + url.PathEscape(ch.ID)
	}

	state, err := ch.client.post(ctx, path+"/query", nil, payload)
	if err != nil {
		return nil, err
	}

	if ch.ID == "" {
		if channel, ok := state.Get("channel"); ok {
			if channelData, ok := channel.(map[string]any); ok {
				if id, ok := channelData["id"].(string); ok {
					ch.ID = id
				}
			}
		}
	}

	return state, nil
}

// QueryMembers filters, sorts and paginates the channel's members.
func (ch *Channel) QueryMembers(ctx context.Context, filterConditions map[string]any, sort []SortParam, options map[string]any) (*Response, error) {
	if err := validateRequired("channel type", ch.Type, "channel id", ch.ID); err != nil {
		return nil, err
	}
	payload := mergeData(options, map[string]any{
		"id":                ch.ID,
		"type":              ch.Type,
		"filter_conditions": filterConditions,
		"sort":              normalizeSort(sort),
	})
	params, err := jsonPayload(payload)
	if err != nil {
		return nil, err
	}
	return ch.client.get(ctx, "members", params)
}

// Update replaces the channel's custom properties. updateMessage, when
// non-nil, is posted to the channel as a system message.
func (ch *Channel) Update(ctx context.Context, channelData, updateMessage map[string]any) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	payload := map[string]any{"data": channelData, "message": updateMessage}
	return ch.client.post(ctx, path, nil, payload)
}

// UpdatePartial sets and unsets individual channel fields without
// replacing the whole data object.
func (ch *Channel) UpdatePartial(ctx context.Context, toSet map[string]any, toUnset []string) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	return ch.client.patch(ctx, path, nil, map[string]any{"set": toSet, "unset": toUnset})
}

// Delete deletes the channel. Messages are permanently removed.
func (ch *Channel) Delete(ctx context.Context) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	return ch.client.delete(ctx, path, nil)
}

// Truncate removes all messages from the channel but keeps the
// channel itself.
func (ch *Channel) Truncate(ctx context.Context, options map[string]any) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	return ch.client.post(ctx, path+"/truncate", nil, options)
}

// AddMembers adds members to the channel.
func (ch *Channel) AddMembers(ctx context.Context, userIDs []string) (*Response, error) {
	return ch.memberUpdate(ctx, "add_members", userIDs)
}

// RemoveMembers removes members from the channel.
func (ch *Channel) RemoveMembers(ctx context.Context, userIDs []string) (*Response, error) {
	return ch.memberUpdate(ctx, "remove_members", userIDs)
}

// InviteMembers invites users to the channel; they join once they
// accept.
func (ch *Channel) InviteMembers(ctx context.Context, userIDs []string) (*Response, error) {
	return ch.memberUpdate(ctx, "invites", userIDs)
}

// AddModerators promotes users to channel moderators.
func (ch *Channel) AddModerators(ctx context.Context, userIDs []string) (*Response, error) {
	return ch.memberUpdate(ctx, "add_moderators", userIDs)
}

// DemoteModerators removes the moderator role from users.
func (ch *Channel) DemoteModerators(ctx context.Context, userIDs []string) (*Response, error) {
	return ch.memberUpdate(ctx, "demote_moderators", userIDs)
}

func (ch *Channel) memberUpdate(ctx context.Context, field string, userIDs []string) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, &ValidationError{Errors: []string{"at least one user id is required"}}
	}
	return ch.client.post(ctx, path, nil, map[string]any{field: userIDs})
}

// AcceptInvite accepts the calling user's pending invite. The handle's
// custom data is refreshed from the response.
func (ch *Channel) AcceptInvite(ctx context.Context, userID string, options map[string]any) (*Response, error) {
	return ch.answerInvite(ctx, "accept_invite", userID, options)
}

// RejectInvite rejects the calling user's pending invite.
func (ch *Channel) RejectInvite(ctx context.Context, userID string, options map[string]any) (*Response, error) {
	return ch.answerInvite(ctx, "reject_invite", userID, options)
}

func (ch *Channel) answerInvite(ctx context.Context, field, userID string, options map[string]any) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	payload := addUserID(options, userID)
	payload[field] = true

	response, err := ch.client.post(ctx, path, nil, payload)
	if err != nil {
		return nil, err
	}
	if channel, ok := response.Get("channel"); ok {
		if channelData, ok := channel.(map[string]any); ok {
			ch.CustomData = channelData
		}
	}
	return response, nil
}

// MarkRead sends the mark-read event for a user; only meaningful when
// the channel type has read events enabled.
func (ch *Channel) MarkRead(ctx context.Context, userID string, data map[string]any) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return ch.client.post(ctx, path+"/read", nil, addUserID(data, userID))
}

// GetReplies lists the replies of a thread, newest first.
func (ch *Channel) GetReplies(ctx context.Context, parentID string, options map[string]any) (*Response, error) {
	if err := validateRequired("parent id", parentID); err != nil {
		return nil, err
	}
	return ch.client.get(ctx, "messages/"+url.PathEscape(parentID)+"/replies", queryParams(options))
}

// GetReactions lists the reactions of a message, with pagination.
func (ch *Channel) GetReactions(ctx context.Context, messageID string, options map[string]any) (*Response, error) {
	if err := validateRequired("message id", messageID); err != nil {
		return nil, err
	}
	return ch.client.get(ctx, "messages/"+url.PathEscape(messageID)+"/reactions", queryParams(options))
}

// BanUser bans a user from this channel only.
func (ch *Channel) BanUser(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("channel type", ch.Type, "channel id", ch.ID); err != nil {
		return nil, err
	}
	scoped := mergeData(options, map[string]any{"type": ch.Type, "id": ch.ID})
	return ch.client.BanUser(ctx, targetID, scoped)
}

// UnbanUser removes a channel-scoped ban.
func (ch *Channel) UnbanUser(ctx context.Context, targetID string, options map[string]any) (*Response, error) {
	if err := validateRequired("channel type", ch.Type, "channel id", ch.ID); err != nil {
		return nil, err
	}
	scoped := mergeData(options, map[string]any{"type": ch.Type, "id": ch.ID})
	return ch.client.UnbanUser(ctx, targetID, scoped)
}

// Hide hides the channel from a user's channel list until new activity
// arrives.
func (ch *Channel) Hide(ctx context.Context, userID string) (*Response, error) {
	return ch.visibility(ctx, "hide", userID)
}

// Show reverses Hide.
func (ch *Channel) Show(ctx context.Context, userID string) (*Response, error) {
	return ch.visibility(ctx, "show", userID)
}

func (ch *Channel) visibility(ctx context.Context, action, userID string) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	if err := validateRequired("user id", userID); err != nil {
		return nil, err
	}
	return ch.client.post(ctx, path+"/"+action, nil, map[string]any{"user_id": userID})
}

// SendFile uploads a file attachment to this channel on behalf of
// user.
func (ch *Channel) SendFile(ctx context.Context, fileName string, content io.Reader, contentType string, user map[string]any) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	return ch.client.upload(ctx, path+"/file", fileName, contentType, content, user)
}

// SendImage uploads an image to this channel on behalf of user. Unlike
// SendFile, images are resized server-side for thumbnails.
func (ch *Channel) SendImage(ctx context.Context, fileName string, content io.Reader, contentType string, user map[string]any) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	return ch.client.upload(ctx, path+"/image", fileName, contentType, content, user)
}

// DeleteFile removes an uploaded file by its URL.
func (ch *Channel) DeleteFile(ctx context.Context, fileURL string) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	return ch.client.delete(ctx, path+"/file", url.Values{"url": []string{fileURL}})
}

// DeleteImage removes an uploaded image by its URL.
func (ch *Channel) DeleteImage(ctx context.Context, imageURL string) (*Response, error) {
	path, err := ch.url()
	if err != nil {
		return nil, err
	}
	return ch.client.delete(ctx, path+"/image", url.Values{"url": []string{imageURL}})
}

// addUserID returns payload extended with {"user": {"id": userID}}.
func addUserID(payload map[string]any, userID string) map[string]any {
	return mergeData(payload, map[string]any{"user": map[string]any{"id": userID}})
}
