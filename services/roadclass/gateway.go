package roadclass

import (
	"context"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// RoadsGW defines the outbound interface to the nearest-roads service.
// An empty result is a valid "no road nearby" response, not an error.
type RoadsGW interface {
	SnapToRoads(ctx context.Context, coords []models.Coordinate) ([]models.SnappedPoint, error)
}
