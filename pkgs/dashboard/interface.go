package dashboard

import (
	"context"

	"github.com/WangWilly/birdboard/pkgs/clients/birdclient"
)

////////////////////////////////////////////////////////////////////////////////

// Gateway is the slice of the API client the aggregator consumes. Every
// operation returns the raw JSON body or fails with *birdclient.APIError.
type Gateway interface {
	GetProfile(ctx context.Context) ([]byte, error)
	GetUserTimeline(ctx context.Context, screenName string, count int) ([]byte, error)
	GetFollowers(ctx context.Context, screenName string, count int) ([]byte, error)
	GetMessages(ctx context.Context, direction birdclient.Direction, count int) ([]byte, error)
	SubmitPost(ctx context.Context, text string) ([]byte, error)
}
