package roadclass

import (
	"context"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// Mode reports which classification source is in use
type Mode string

const (
	// ModeLive means classifications come from the remote roads service
	ModeLive Mode = "live"
	// ModeFallback means classifications come from the synthetic grid.
	// The transition to fallback is sticky for the lifetime of the
	// classifier.
	ModeFallback Mode = "fallback"
)

// RoadClassifier judges whether coordinates lie on a road.
// Classification never fails: remote errors are absorbed into the fallback
// heuristic and surface only through Mode.
type RoadClassifier interface {
	// Classify reports whether the coordinate is on a road
	Classify(ctx context.Context, lat, lng float64) bool

	// ClassifyBatch classifies an ordered list of coordinates with a
	// single remote query. The result has the same length as the input.
	ClassifyBatch(ctx context.Context, coords []models.Coordinate) []bool

	// Mode reports the current classification source
	Mode() Mode

	// Tolerance returns the snap-distance threshold in meters
	Tolerance() float64

	// SetTolerance adjusts the snap-distance threshold at runtime
	SetTolerance(meters float64)

	// CacheStats reports classification cache health
	CacheStats(ctx context.Context) (models.CacheStats, error)

	// ClearCache drops all cached classifications
	ClearCache(ctx context.Context) error
}

// MapView is the opaque handle to the client's map, queried only for the
// fallback grid origin and diagnostics
type MapView interface {
	Center() models.Coordinate
	Zoom() int
}

// MapViewSetter accepts camera updates pushed by the client
type MapViewSetter interface {
	Update(center models.Coordinate, zoom int)
}
