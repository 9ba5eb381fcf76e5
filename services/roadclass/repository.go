package roadclass

import (
	"context"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// ClassificationCache stores recent on/off-road results keyed by rounded
// coordinate. Entries expire after the configured TTL; implementations also
// keep real hit and miss counters.
type ClassificationCache interface {
	// Get returns the cached classification and whether a live entry
	// existed
	Get(ctx context.Context, key string) (onRoad bool, ok bool, err error)

	// Put stores a classification under the key
	Put(ctx context.Context, key string, onRoad bool) error

	// Clear drops all entries and resets the counters
	Clear(ctx context.Context) error

	// Stats reports entry count and hit/miss counters
	Stats(ctx context.Context) (models.CacheStats, error)
}
