package birdclient

import "context"

////////////////////////////////////////////////////////////////////////////////

// GetProfile retrieves the configured account's own profile. It doubles as a
// credential check, the API rejects an unsigned or badly signed request here.
func (c *Client) GetProfile(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.host+"/account/verify_credentials.json", nil)
}
