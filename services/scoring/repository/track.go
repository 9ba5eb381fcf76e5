package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ridelabs/drivescore/internal/pkg/constants"
	"github.com/ridelabs/drivescore/internal/pkg/database"
	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/internal/utils"
	"github.com/ridelabs/drivescore/services/scoring"
)

// trackRepo stores session trails in Redis: a list of JSON points for the
// ordered trail, a hash of geohash-cell visit counts and a geo set indexing
// the positions. All three carry a TTL so abandoned sessions do not
// accumulate.
type trackRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewTrackRepository creates a new track repository
func NewTrackRepository(redisClient *database.RedisClient, ttl time.Duration) scoring.TrackRepo {
	return &trackRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// AppendPoint records one applied position
func (r *trackRepo) AppendPoint(ctx context.Context, sessionID string, point models.TrackPoint) error {
	data, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("failed to marshal track point: %w", err)
	}

	trackKey := fmt.Sprintf(constants.KeySessionTrack, sessionID)
	if err := r.redisClient.RPush(ctx, trackKey, data); err != nil {
		return fmt.Errorf("failed to store track point: %w", err)
	}
	if err := r.redisClient.Expire(ctx, trackKey, r.ttl); err != nil {
		return fmt.Errorf("failed to set track TTL: %w", err)
	}

	cell := utils.CellKey(models.Coordinate{Latitude: point.Latitude, Longitude: point.Longitude})
	cellsKey := fmt.Sprintf(constants.KeySessionCells, sessionID)
	if err := r.redisClient.HIncrBy(ctx, cellsKey, cell, 1); err != nil {
		return fmt.Errorf("failed to count trail cell: %w", err)
	}
	if err := r.redisClient.Expire(ctx, cellsKey, r.ttl); err != nil {
		return fmt.Errorf("failed to set cell TTL: %w", err)
	}

	geoKey := fmt.Sprintf(constants.KeySessionGeo, sessionID)
	member := strconv.FormatInt(point.Timestamp.UnixNano(), 10)
	if err := r.redisClient.GeoAdd(ctx, geoKey, point.Longitude, point.Latitude, member); err != nil {
		return fmt.Errorf("failed to index trail position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, geoKey, r.ttl); err != nil {
		return fmt.Errorf("failed to set geo TTL: %w", err)
	}

	return nil
}

// GetTrack returns up to limit most recent trail points, oldest first
func (r *trackRepo) GetTrack(ctx context.Context, sessionID string, limit int) ([]models.TrackPoint, error) {
	if limit <= 0 {
		limit = 100
	}

	trackKey := fmt.Sprintf(constants.KeySessionTrack, sessionID)
	values, err := r.redisClient.LRange(ctx, trackKey, int64(-limit), -1)
	if err != nil {
		return nil, fmt.Errorf("failed to read track: %w", err)
	}

	points := make([]models.TrackPoint, 0, len(values))
	for _, value := range values {
		var point models.TrackPoint
		if err := json.Unmarshal([]byte(value), &point); err != nil {
			return nil, fmt.Errorf("invalid track point: %w", err)
		}
		points = append(points, point)
	}
	return points, nil
}

// GetCellCounts returns visit counts bucketed by geohash cell
func (r *trackRepo) GetCellCounts(ctx context.Context, sessionID string) (map[string]int64, error) {
	cellsKey := fmt.Sprintf(constants.KeySessionCells, sessionID)
	raw, err := r.redisClient.HGetAll(ctx, cellsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read trail cells: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for cell, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cell count for %s: %w", cell, err)
		}
		counts[cell] = n
	}
	return counts, nil
}
