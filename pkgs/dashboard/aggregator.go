package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/WangWilly/birdboard/pkgs/clients/birdclient"
	"github.com/WangWilly/birdboard/pkgs/dashboard/dashdto"
	"github.com/WangWilly/birdboard/pkgs/metrics"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Stages
////////////////////////////////////////////////////////////////////////////////

// StageName identifies one aggregation stage
type StageName string

const (
	STAGE_TIMELINE          StageName = "timeline"
	STAGE_FOLLOWERS         StageName = "followers"
	STAGE_MESSAGES_RECEIVED StageName = "messages_received"
	STAGE_MESSAGES_SENT     StageName = "messages_sent"
	STAGE_PROFILE           StageName = "profile"
)

// DefaultStageOrder returns the default stage sequence. The stages carry no
// data dependencies between them, so any total order produces the same
// ViewModel; the order only fixes which upstream failure wins.
func DefaultStageOrder() []StageName {
	return []StageName{
		STAGE_TIMELINE,
		STAGE_FOLLOWERS,
		STAGE_MESSAGES_RECEIVED,
		STAGE_MESSAGES_SENT,
		STAGE_PROFILE,
	}
}

// display list sizes
const (
	POST_COUNT     = 5
	FOLLOWER_COUNT = 5
)

////////////////////////////////////////////////////////////////////////////////
// Aggregator
////////////////////////////////////////////////////////////////////////////////

// Config configures the aggregator for the single account this process serves
type Config struct {
	Username     string
	MessageCount int         // how many messages to fetch per direction
	StageOrder   []StageName // nil means DefaultStageOrder
}

// Aggregator assembles the dashboard ViewModel by running every stage against
// the gateway strictly in sequence. The first failing stage aborts the run; a
// partially filled ViewModel is never returned.
type Aggregator struct {
	gateway Gateway
	cfg     Config
}

// run carries the per-request state threaded through the stages. Each page
// view gets a fresh one, so concurrent requests share nothing mutable.
type run struct {
	vm       *dashdto.ViewModel
	received []dashdto.Message
	sent     []dashdto.Message
}

func New(gateway Gateway, cfg Config) *Aggregator {
	if len(cfg.StageOrder) == 0 {
		cfg.StageOrder = DefaultStageOrder()
	}
	return &Aggregator{
		gateway: gateway,
		cfg:     cfg,
	}
}

////////////////////////////////////////////////////////////////////////////////
// Orchestration
////////////////////////////////////////////////////////////////////////////////

// Perform fetches everything the dashboard shows and returns the fully
// populated ViewModel. On any stage failure the remaining stages are not
// issued and the upstream error is returned as-is in the chain.
func (a *Aggregator) Perform(ctx context.Context) (*dashdto.ViewModel, error) {
	defer metrics.ObserveAggregationDuration(time.Now())

	r := &run{vm: &dashdto.ViewModel{}}
	for _, name := range a.cfg.StageOrder {
		if err := a.runStage(ctx, name, r); err != nil {
			metrics.IncStageFailure(string(name))
			log.WithFields(log.Fields{
				"caller": "Aggregator.Perform",
				"stage":  name,
			}).WithError(err).Error("aggregation aborted")
			return nil, fmt.Errorf("%s stage: %w", name, err)
		}
	}

	r.vm.Messages = mergeMessages(r.received, r.sent)
	return r.vm, nil
}

// SubmitAndRefresh publishes a post and, only on success, re-runs the full
// aggregation so the caller renders a fresh view
func (a *Aggregator) SubmitAndRefresh(ctx context.Context, text string) (*dashdto.ViewModel, error) {
	if _, err := a.gateway.SubmitPost(ctx, text); err != nil {
		log.WithField("caller", "Aggregator.SubmitAndRefresh").
			WithError(err).Error("failed to submit post")
		return nil, fmt.Errorf("submit post: %w", err)
	}
	metrics.PostsSubmitted.Inc()

	return a.Perform(ctx)
}

////////////////////////////////////////////////////////////////////////////////
// Stage Execution
////////////////////////////////////////////////////////////////////////////////

// runStage issues the stage's single external call and normalizes its result
// into the run state
func (a *Aggregator) runStage(ctx context.Context, name StageName, r *run) error {
	switch name {
	case STAGE_TIMELINE:
		raw, err := a.gateway.GetUserTimeline(ctx, a.cfg.Username, POST_COUNT)
		if err != nil {
			return err
		}
		mapTimeline(raw, r.vm)

	case STAGE_FOLLOWERS:
		raw, err := a.gateway.GetFollowers(ctx, a.cfg.Username, FOLLOWER_COUNT)
		if err != nil {
			return err
		}
		mapFollowers(raw, r.vm)

	case STAGE_MESSAGES_RECEIVED:
		raw, err := a.gateway.GetMessages(ctx, birdclient.DIRECTION_RECEIVED, a.cfg.MessageCount)
		if err != nil {
			return err
		}
		r.received = mapMessages(raw, birdclient.DIRECTION_RECEIVED)

	case STAGE_MESSAGES_SENT:
		raw, err := a.gateway.GetMessages(ctx, birdclient.DIRECTION_SENT, a.cfg.MessageCount)
		if err != nil {
			return err
		}
		r.sent = mapMessages(raw, birdclient.DIRECTION_SENT)

	case STAGE_PROFILE:
		raw, err := a.gateway.GetProfile(ctx)
		if err != nil {
			return err
		}
		mapProfile(raw, r.vm)

	default:
		return fmt.Errorf("unknown stage: %s", name)
	}

	return nil
}
