package usecase

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/ridelabs/drivescore/internal/pkg/logger"
	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/internal/utils"
	"github.com/ridelabs/drivescore/services/roadclass"
)

// classifierUC implements roadclass.RoadClassifier.
//
// Every remote failure (timeout, non-2xx, transport error) routes through
// the synthetic-grid fallback and flips the mode to fallback for the rest of
// the session. Cache lookups and writes happen only here, on the resolution
// path of a classification.
type classifierUC struct {
	gw      roadclass.RoadsGW
	cache   roadclass.ClassificationCache
	mapView roadclass.MapView

	requestTimeout time.Duration
	hasCredential  bool

	mu        sync.RWMutex
	mode      roadclass.Mode
	tolerance float64
}

// NewRoadClassifier creates the road classifier. With no API key configured
// it starts, and stays, in fallback mode and never attempts a remote query.
func NewRoadClassifier(gw roadclass.RoadsGW, cache roadclass.ClassificationCache, mapView roadclass.MapView, cfg models.RoadsConfig) roadclass.RoadClassifier {
	mode := roadclass.ModeLive
	hasCredential := cfg.APIKey != ""
	if !hasCredential {
		mode = roadclass.ModeFallback
		logger.Warn("No roads API key configured, classifier starts in fallback mode")
	}

	return &classifierUC{
		gw:             gw,
		cache:          cache,
		mapView:        mapView,
		requestTimeout: time.Duration(cfg.RequestTimeoutMs) * time.Millisecond,
		hasCredential:  hasCredential,
		mode:           mode,
		tolerance:      cfg.ToleranceMeters,
	}
}

// Classify reports whether the coordinate lies within tolerance of a road
func (c *classifierUC) Classify(ctx context.Context, lat, lng float64) bool {
	key := utils.RoundedKey(lat, lng)

	if onRoad, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		return onRoad
	} else if err != nil {
		logger.Warn("Classification cache read failed", logger.ErrorField(err))
	}

	if c.Mode() == roadclass.ModeFallback {
		return c.fallbackOnRoad(lat, lng)
	}

	queryCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	coord := models.Coordinate{Latitude: lat, Longitude: lng}
	snapped, err := c.gw.SnapToRoads(queryCtx, []models.Coordinate{coord})
	if err != nil {
		c.enterFallback(err)
		return c.fallbackOnRoad(lat, lng)
	}

	onRoad := c.judge(coord, snapped)
	if err := c.cache.Put(ctx, key, onRoad); err != nil {
		logger.Warn("Classification cache write failed", logger.ErrorField(err))
	}
	return onRoad
}

// ClassifyBatch classifies an ordered list of coordinates with one remote
// query. Results are matched by the service's originalIndex back-reference;
// any index absent from the response reads as off-road.
func (c *classifierUC) ClassifyBatch(ctx context.Context, coords []models.Coordinate) []bool {
	results := make([]bool, len(coords))
	if len(coords) == 0 {
		return results
	}

	if c.Mode() == roadclass.ModeFallback {
		for i, coord := range coords {
			results[i] = c.fallbackOnRoad(coord.Latitude, coord.Longitude)
		}
		return results
	}

	queryCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	snapped, err := c.gw.SnapToRoads(queryCtx, coords)
	if err != nil {
		c.enterFallback(err)
		for i, coord := range coords {
			results[i] = c.fallbackOnRoad(coord.Latitude, coord.Longitude)
		}
		return results
	}

	tolerance := c.Tolerance()
	for _, point := range snapped {
		if point.OriginalIndex == nil {
			continue
		}
		i := *point.OriginalIndex
		if i < 0 || i >= len(coords) {
			continue
		}
		results[i] = utils.DistanceMeters(coords[i], point.Location) <= tolerance
	}

	for i, coord := range coords {
		key := utils.RoundedKey(coord.Latitude, coord.Longitude)
		if err := c.cache.Put(ctx, key, results[i]); err != nil {
			logger.Warn("Classification cache write failed", logger.ErrorField(err))
		}
	}
	return results
}

// judge applies the snap-distance tolerance to a single-point response.
// An empty response is a valid "no road nearby" result.
func (c *classifierUC) judge(coord models.Coordinate, snapped []models.SnappedPoint) bool {
	if len(snapped) == 0 {
		return false
	}
	return utils.DistanceMeters(coord, snapped[0].Location) <= c.Tolerance()
}

// Mode reports the current classification source
func (c *classifierUC) Mode() roadclass.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// enterFallback transitions to fallback mode; the transition is sticky
func (c *classifierUC) enterFallback(cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == roadclass.ModeFallback {
		return
	}
	c.mode = roadclass.ModeFallback
	logger.Warn("Roads service unavailable, switching to fallback classification",
		logger.ErrorField(cause))
}

// fallbackOnRoad projects the coordinate onto a synthetic road grid derived
// from the map center: cells congruent to 0 or 5 are major roads, even cells
// are minor roads. Deterministic for a fixed center, no external dependency,
// and documented as approximate.
func (c *classifierUC) fallbackOnRoad(lat, lng float64) bool {
	center := c.mapView.Center()

	gx := gridCell(lat - center.Latitude)
	gy := gridCell(lng - center.Longitude)

	if gx == 0 || gx == 5 || gy == 0 || gy == 5 {
		return true
	}
	return gx%2 == 0 || gy%2 == 0
}

// gridCell maps a degree offset to a grid coordinate modulo 10. The offset
// is rounded before binning so offsets sitting on a cell boundary do not
// flip cells from float error.
func gridCell(delta float64) int {
	cell := int(math.Round(delta*10000)) % 10
	if cell < 0 {
		cell += 10
	}
	return cell
}

// Tolerance returns the snap-distance threshold in meters
func (c *classifierUC) Tolerance() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tolerance
}

// SetTolerance adjusts the snap-distance threshold at runtime
func (c *classifierUC) SetTolerance(meters float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tolerance = meters
}

// CacheStats reports classification cache health
func (c *classifierUC) CacheStats(ctx context.Context) (models.CacheStats, error) {
	return c.cache.Stats(ctx)
}

// ClearCache drops all cached classifications
func (c *classifierUC) ClearCache(ctx context.Context) error {
	return c.cache.Clear(ctx)
}
