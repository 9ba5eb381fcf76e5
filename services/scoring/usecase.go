package scoring

import (
	"context"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// ScoringUC defines the interface for scoring business logic
type ScoringUC interface {
	// CreateSession starts a new scoring session with a fresh score state
	CreateSession(ctx context.Context) (*models.ScoreSnapshot, error)

	// EndSession removes a session
	EndSession(ctx context.Context, sessionID string) error

	// SubmitTick accepts one motion sample. Classification and the score
	// update happen asynchronously; the returned snapshot is the state
	// before this tick is applied.
	SubmitTick(ctx context.Context, sessionID string, sample models.TickSample) (*models.ScoreSnapshot, error)

	// GetScore returns the current score state of a session
	GetScore(ctx context.Context, sessionID string) (*models.ScoreSnapshot, error)

	// GetAchievements returns the achievement labels currently satisfied
	GetAchievements(ctx context.Context, sessionID string) ([]string, error)

	// Reset returns a session's score state to its zero baseline
	Reset(ctx context.Context, sessionID string) error

	// GetTrack returns the most recent trail points of a session
	GetTrack(ctx context.Context, sessionID string, limit int) ([]models.TrackPoint, error)
}

// StatusSink receives classifier health updates for display. The UI layer
// implements it; the core only pushes and never reads back.
type StatusSink interface {
	UpdateAPIStatus(label, color string)
}

// NopStatusSink discards status updates
type NopStatusSink struct{}

// UpdateAPIStatus implements StatusSink
func (NopStatusSink) UpdateAPIStatus(label, color string) {}
