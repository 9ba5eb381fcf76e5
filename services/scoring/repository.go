package scoring

import (
	"context"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// TrackRepo stores the driving trail of a session. Diagnostic only; the
// score engine never reads it back.
type TrackRepo interface {
	// AppendPoint records one applied position
	AppendPoint(ctx context.Context, sessionID string, point models.TrackPoint) error

	// GetTrack returns up to limit most recent trail points
	GetTrack(ctx context.Context, sessionID string, limit int) ([]models.TrackPoint, error)

	// GetCellCounts returns visit counts bucketed by geohash cell
	GetCellCounts(ctx context.Context, sessionID string) (map[string]int64, error)
}
