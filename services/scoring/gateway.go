package scoring

import (
	"context"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// ScoreEventsGW publishes scoring events for downstream consumers
type ScoreEventsGW interface {
	PublishScoreUpdated(ctx context.Context, event models.ScoreUpdatedEvent) error
	PublishClassifierStatus(ctx context.Context, event models.ClassifierStatusEvent) error
}
