package birdclient

import "context"

////////////////////////////////////////////////////////////////////////////////

// SubmitPost publishes a new post on behalf of the configured account
func (c *Client) SubmitPost(ctx context.Context, text string) ([]byte, error) {
	return c.postForm(ctx, c.host+"/statuses/update.json", map[string]string{
		"status": text,
	})
}
