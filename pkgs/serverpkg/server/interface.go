package server

import (
	"context"

	"github.com/WangWilly/birdboard/pkgs/dashboard/dashdto"
)

////////////////////////////////////////////////////////////////////////////////

// Aggregator produces the dashboard view model. Implemented by
// dashboard.Aggregator; tests substitute a double.
type Aggregator interface {
	Perform(ctx context.Context) (*dashdto.ViewModel, error)
	SubmitAndRefresh(ctx context.Context, text string) (*dashdto.ViewModel, error)
}
