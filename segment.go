package streamchat

import (
	"context"
	"net/url"
)

// SegmentType selects what a segment groups: users or channels.
type SegmentType string

const (
	SegmentTypeUser    SegmentType = "user"
	SegmentTypeChannel SegmentType = "channel"
)

// CreateSegment creates a campaign segment. segment must carry a
// "type" and may carry an "id"; the server assigns one otherwise.
func (c *Client) CreateSegment(ctx context.Context, segment map[string]any) (*Response, error) {
	return c.post(ctx, "segments", nil, map[string]any{"segment": segment})
}

// GetSegment fetches a segment by id.
func (c *Client) GetSegment(ctx context.Context, segmentID string) (*Response, error) {
	if err := validateRequired("segment id", segmentID); err != nil {
		return nil, err
	}
	return c.get(ctx, "segments/"+url.PathEscape(segmentID), nil)
}

// QuerySegments filters and paginates segments.
func (c *Client) QuerySegments(ctx context.Context, options map[string]any) (*Response, error) {
	params, err := jsonPayload(options)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "segments", params)
}

// UpdateSegment changes a segment's name or description.
func (c *Client) UpdateSegment(ctx context.Context, segmentID string, data map[string]any) (*Response, error) {
	if err := validateRequired("segment id", segmentID); err != nil {
		return nil, err
	}
	return c.put(ctx, "segments/"+url.PathEscape(segmentID), nil, map[string]any{"segment": data})
}

// DeleteSegment removes a segment.
func (c *Client) DeleteSegment(ctx context.Context, segmentID string) (*Response, error) {
	if err := validateRequired("segment id", segmentID); err != nil {
		return nil, err
	}
	return c.delete(ctx, "segments/"+url.PathEscape(segmentID), nil)
}

// SegmentTargetExists reports through the response whether targetID is
// a member of the segment.
func (c *Client) SegmentTargetExists(ctx context.Context, segmentID, targetID string) (*Response, error) {
	if err := validateRequired("segment id", segmentID, "target id", targetID); err != nil {
		return nil, err
	}
	return c.get(ctx, "segments/"+url.PathEscape(segmentID)+"/target/"+url.PathEscape(targetID), nil)
}

// AddSegmentTargets adds user or channel ids to a segment.
func (c *Client) AddSegmentTargets(ctx context.Context, segmentID string, targetIDs []string) (*Response, error) {
	if err := validateRequired("segment id", segmentID); err != nil {
		return nil, err
	}
	return c.post(ctx, "segments/"+url.PathEscape(segmentID)+"/addtargets", nil, map[string]any{"target_ids": targetIDs})
}

// QuerySegmentTargets filters and paginates the targets of a segment.
func (c *Client) QuerySegmentTargets(ctx context.Context, segmentID string, filterConditions map[string]any, sort []SortParam, options map[string]any) (*Response, error) {
	if err := validateRequired("segment id", segmentID); err != nil {
		return nil, err
	}
	payload := mergeData(options, map[string]any{
		"filter": filterConditions,
		"sort":   normalizeSort(sort),
	})
	return c.post(ctx, "segments/"+url.PathEscape(segmentID)+"/targets/query", nil, payload)
}

// DeleteSegmentTargets removes ids from a segment.
func (c *Client) DeleteSegmentTargets(ctx context.Context, segmentID string, targetIDs []string) (*Response, error) {
	if err := validateRequired("segment id", segmentID); err != nil {
		return nil, err
	}
	return c.post(ctx, "segments/"+url.PathEscape(segmentID)+"/deletetargets", nil, map[string]any{"target_ids": targetIDs})
}

// Segment is a handle on a single segment, mirroring Channel.
type Segment struct {
	client *Client

	Type SegmentType
	// ID is empty until Create assigns one server-side.
	ID string
	// Data is sent as the segment body on Create.
	Data map[string]any
}

// Segment returns a handle on a segment. segmentID may be empty; it is
// filled in from the server response on Create.
func (c *Client) Segment(segmentType SegmentType, segmentID string, data map[string]any) *Segment {
	return &Segment{client: c, Type: segmentType, ID: segmentID, Data: data}
}

// Create creates the segment and stores the assigned id on the handle.
func (s *Segment) Create(ctx context.Context) (*Response, error) {
	body := mergeData(s.Data, map[string]any{"type": string(s.Type)})
	if s.ID != "" {
		body["id"] = s.ID
	}
	state, err := s.client.CreateSegment(ctx, body)
	if err != nil {
		return nil, err
	}
	if s.ID == "" && state.IsOK() {
		if segment, ok := state.Get("segment"); ok {
			if segmentData, ok := segment.(map[string]any); ok {
				if id, ok := segmentData["id"].(string); ok {
					s.ID = id
				}
			}
		}
	}
	return state, nil
}

// Get fetches the segment.
func (s *Segment) Get(ctx context.Context) (*Response, error) {
	return s.client.GetSegment(ctx, s.ID)
}

// Update changes the segment's name or description.
func (s *Segment) Update(ctx context.Context, data map[string]any) (*Response, error) {
	return s.client.UpdateSegment(ctx, s.ID, data)
}

// Delete removes the segment.
func (s *Segment) Delete(ctx context.Context) (*Response, error) {
	return s.client.DeleteSegment(ctx, s.ID)
}

// TargetExists reports through the response whether targetID belongs
// to the segment.
func (s *Segment) TargetExists(ctx context.Context, targetID string) (*Response, error) {
	return s.client.SegmentTargetExists(ctx, s.ID, targetID)
}

// AddTargets adds ids to the segment.
func (s *Segment) AddTargets(ctx context.Context, targetIDs []string) (*Response, error) {
	return s.client.AddSegmentTargets(ctx, s.ID, targetIDs)
}

// QueryTargets filters and paginates the segment's targets.
func (s *Segment) QueryTargets(ctx context.Context, filterConditions map[string]any, sort []SortParam, options map[string]any) (*Response, error) {
	return s.client.QuerySegmentTargets(ctx, s.ID, filterConditions, sort, options)
}

// RemoveTargets removes ids from the segment.
func (s *Segment) RemoveTargets(ctx context.Context, targetIDs []string) (*Response, error) {
	return s.client.DeleteSegmentTargets(ctx, s.ID, targetIDs)
}
