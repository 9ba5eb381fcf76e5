package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpclient "github.com/ridelabs/drivescore/internal/pkg/http"
	"github.com/ridelabs/drivescore/internal/pkg/logger"
	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/services/roadclass"
)

// RoadsClient queries a Google-Roads-style nearestRoads endpoint
type RoadsClient struct {
	apiClient *httpclient.Client
	apiKey    string
}

// nearestRoadsResponse is the wire format of a successful snap response
type nearestRoadsResponse struct {
	SnappedPoints []models.SnappedPoint `json:"snappedPoints"`
}

// NewRoadsClient creates a new nearest-roads gateway
func NewRoadsClient(cfg models.RoadsConfig) roadclass.RoadsGW {
	timeout := time.Duration(cfg.RequestTimeoutMs) * time.Millisecond
	return &RoadsClient{
		apiClient: httpclient.NewClient(cfg.BaseURL, timeout),
		apiKey:    cfg.APIKey,
	}
}

// SnapToRoads queries the nearest road for each coordinate. Coordinate pairs
// are joined with "|" as the service expects; the response may omit points
// that have no road nearby.
func (c *RoadsClient) SnapToRoads(ctx context.Context, coords []models.Coordinate) ([]models.SnappedPoint, error) {
	if len(coords) == 0 {
		return nil, nil
	}

	pairs := make([]string, len(coords))
	for i, coord := range coords {
		pairs[i] = fmt.Sprintf("%.6f,%.6f", coord.Latitude, coord.Longitude)
	}

	endpoint := fmt.Sprintf("%s/v1/nearestRoads?points=%s&key=%s",
		c.apiClient.BaseURL,
		url.QueryEscape(strings.Join(pairs, "|")),
		url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build nearest roads request: %w", err)
	}

	resp, err := c.apiClient.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nearest roads request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Nearest roads service returned non-OK status",
			logger.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("nearest roads service returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nearest roads response: %w", err)
	}

	var parsed nearestRoadsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode nearest roads response: %w", err)
	}

	return parsed.SnappedPoints, nil
}
