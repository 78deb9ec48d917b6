package birdclient

import (
	"context"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////

// GetFollowers retrieves the most recent followers of the user. The payload
// wraps the entries in a top-level "users" array.
func (c *Client) GetFollowers(ctx context.Context, screenName string, count int) ([]byte, error) {
	return c.get(ctx, c.host+"/followers/list.json", map[string]string{
		"screen_name": screenName,
		"count":       strconv.Itoa(count),
	})
}
