package streamchat

import "context"

// QueryThreads filters, sorts and paginates the threads the app's
// users participate in.
func (c *Client) QueryThreads(ctx context.Context, filter map[string]any, sort []SortParam, options map[string]any) (*Response, error) {
	payload := mergeData(options, map[string]any{
		"filter": filter,
		"sort":   normalizeSort(sort),
	})
	return c.post(ctx, "threads", nil, payload)
}
