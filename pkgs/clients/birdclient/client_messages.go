package birdclient

import (
	"context"
	"fmt"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////

// Direction selects which side of the direct-message box to fetch
type Direction string

const (
	DIRECTION_RECEIVED Direction = "received"
	DIRECTION_SENT     Direction = "sent"
)

////////////////////////////////////////////////////////////////////////////////

// GetMessages retrieves one side of the direct-message box as the raw JSON
// array the API returns. Received and sent messages live behind separate
// endpoints and are merged later by the caller.
func (c *Client) GetMessages(ctx context.Context, direction Direction, count int) ([]byte, error) {
	var endpoint string
	switch direction {
	case DIRECTION_RECEIVED:
		endpoint = c.host + "/direct_messages.json"
	case DIRECTION_SENT:
		endpoint = c.host + "/direct_messages/sent.json"
	default:
		return nil, fmt.Errorf("unknown message direction: %s", direction)
	}

	return c.get(ctx, endpoint, map[string]string{
		"count": strconv.Itoa(count),
	})
}
