package gateway

import (
	"context"

	"github.com/ridelabs/drivescore/internal/pkg/constants"
	"github.com/ridelabs/drivescore/internal/pkg/models"
	nsqpkg "github.com/ridelabs/drivescore/internal/pkg/nsq"
	"github.com/ridelabs/drivescore/services/scoring"
)

// scoreEventsGW publishes scoring events to NSQ
type scoreEventsGW struct {
	producer *nsqpkg.Producer
}

// NewScoreEventsGW creates a new NSQ score events gateway
func NewScoreEventsGW(producer *nsqpkg.Producer) scoring.ScoreEventsGW {
	return &scoreEventsGW{producer: producer}
}

// PublishScoreUpdated publishes an applied tick's score state
func (g *scoreEventsGW) PublishScoreUpdated(ctx context.Context, event models.ScoreUpdatedEvent) error {
	return g.producer.Publish(constants.TopicScoreUpdated, event)
}

// PublishClassifierStatus publishes a classifier health transition
func (g *scoreEventsGW) PublishClassifierStatus(ctx context.Context, event models.ClassifierStatusEvent) error {
	return g.producer.Publish(constants.TopicClassifierStatus, event)
}
