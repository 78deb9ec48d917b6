package birdclient

import (
	"context"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////

// GetUserTimeline retrieves the user's most recent posts, newest first, as the
// raw JSON array the API returns
func (c *Client) GetUserTimeline(ctx context.Context, screenName string, count int) ([]byte, error) {
	return c.get(ctx, c.host+"/statuses/user_timeline.json", map[string]string{
		"screen_name": screenName,
		"count":       strconv.Itoa(count),
	})
}
