package streamchat

import (
	"context"
	"net/url"
	"time"
)

// CreateCampaign creates a messaging campaign targeting one or more
// segments. campaign may carry an "id"; the server assigns one
// otherwise.
func (c *Client) CreateCampaign(ctx context.Context, campaign map[string]any) (*Response, error) {
	return c.post(ctx, "campaigns", nil, map[string]any{"campaign": campaign})
}

// GetCampaign fetches a campaign by id.
func (c *Client) GetCampaign(ctx context.Context, campaignID string) (*Response, error) {
	if err := validateRequired("campaign id", campaignID); err != nil {
		return nil, err
	}
	return c.get(ctx, "campaigns/"+url.PathEscape(campaignID), nil)
}

// QueryCampaigns filters and paginates campaigns.
func (c *Client) QueryCampaigns(ctx context.Context, options map[string]any) (*Response, error) {
	params, err := jsonPayload(options)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "campaigns", params)
}

// UpdateCampaign replaces a campaign's definition.
func (c *Client) UpdateCampaign(ctx context.Context, campaignID string, data map[string]any) (*Response, error) {
	if err := validateRequired("campaign id", campaignID); err != nil {
		return nil, err
	}
	return c.put(ctx, "campaigns/"+url.PathEscape(campaignID), nil, map[string]any{"campaign": data})
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, campaignID string, options map[string]any) (*Response, error) {
	if err := validateRequired("campaign id", campaignID); err != nil {
		return nil, err
	}
	return c.delete(ctx, "campaigns/"+url.PathEscape(campaignID), queryParams(options))
}

// ScheduleCampaign schedules a campaign to start at the given time.
func (c *Client) ScheduleCampaign(ctx context.Context, campaignID string, scheduledFor time.Time) (*Response, error) {
	if err := validateRequired("campaign id", campaignID); err != nil {
		return nil, err
	}
	data := map[string]any{"scheduled_for": scheduledFor.UTC().Format(time.RFC3339)}
	return c.patch(ctx, "campaigns/"+url.PathEscape(campaignID)+"/schedule", nil, data)
}

// StopCampaign stops a campaign that is in progress.
func (c *Client) StopCampaign(ctx context.Context, campaignID string) (*Response, error) {
	if err := validateRequired("campaign id", campaignID); err != nil {
		return nil, err
	}
	return c.patch(ctx, "campaigns/"+url.PathEscape(campaignID)+"/stop", nil, nil)
}

// ResumeCampaign resumes a stopped campaign.
func (c *Client) ResumeCampaign(ctx context.Context, campaignID string) (*Response, error) {
	if err := validateRequired("campaign id", campaignID); err != nil {
		return nil, err
	}
	return c.patch(ctx, "campaigns/"+url.PathEscape(campaignID)+"/resume", nil, nil)
}

// TestCampaign sends the campaign to the given users only, without
// starting it.
func (c *Client) TestCampaign(ctx context.Context, campaignID string, userIDs []string) (*Response, error) {
	if err := validateRequired("campaign id", campaignID); err != nil {
		return nil, err
	}
	return c.post(ctx, "campaigns/"+url.PathEscape(campaignID)+"/test", nil, map[string]any{"users": userIDs})
}

// QueryRecipients filters and paginates the delivery records of
// campaigns.
func (c *Client) QueryRecipients(ctx context.Context, options map[string]any) (*Response, error) {
	params, err := jsonPayload(options)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "recipients", params)
}

// Campaign is a handle on a single campaign, mirroring Channel.
type Campaign struct {
	client *Client

	// ID is empty until Create assigns one server-side.
	ID string
	// Data is sent as the campaign body on Create.
	Data map[string]any
}

// Campaign returns a handle on a campaign. campaignID may be empty; it
// is filled in from the server response on Create.
func (c *Client) Campaign(campaignID string, data map[string]any) *Campaign {
	return &Campaign{client: c, ID: campaignID, Data: data}
}

// Create creates the campaign and stores the assigned id on the
// handle.
func (cp *Campaign) Create(ctx context.Context) (*Response, error) {
	body := mergeData(cp.Data, nil)
	if cp.ID != "" {
		body["id"] = cp.ID
	}
	state, err := cp.client.CreateCampaign(ctx, body)
	if err != nil {
		return nil, err
	}
	if cp.ID == "" && state.IsOK() {
		if campaign, ok := state.Get("campaign"); ok {
			if campaignData, ok := campaign.(map[string]any); ok {
				if id, ok := campaignData["id"].(string); ok {
					cp.ID = id
				}
			}
		}
	}
	return state, nil
}

// Get fetches the campaign.
func (cp *Campaign) Get(ctx context.Context) (*Response, error) {
	return cp.client.GetCampaign(ctx, cp.ID)
}

// Update replaces the campaign's definition.
func (cp *Campaign) Update(ctx context.Context, data map[string]any) (*Response, error) {
	return cp.client.UpdateCampaign(ctx, cp.ID, data)
}

// Delete removes the campaign.
func (cp *Campaign) Delete(ctx context.Context) (*Response, error) {
	return cp.client.DeleteCampaign(ctx, cp.ID, nil)
}

// Schedule schedules the campaign to start at the given time.
func (cp *Campaign) Schedule(ctx context.Context, scheduledFor time.Time) (*Response, error) {
	return cp.client.ScheduleCampaign(ctx, cp.ID, scheduledFor)
}

// Stop stops the campaign while it is in progress.
func (cp *Campaign) Stop(ctx context.Context) (*Response, error) {
	return cp.client.StopCampaign(ctx, cp.ID)
}

// Resume resumes the campaign after a stop.
func (cp *Campaign) Resume(ctx context.Context) (*Response, error) {
	return cp.client.ResumeCampaign(ctx, cp.ID)
}

// Test sends the campaign to the given users only.
func (cp *Campaign) Test(ctx context.Context, userIDs []string) (*Response, error) {
	return cp.client.TestCampaign(ctx, cp.ID, userIDs)
}
