package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

func fallbackClassifier(center models.Coordinate) *classifierUC {
	cfg := testRoadsConfig()
	cfg.APIKey = ""
	cfg.FallbackCenter = models.LatLng{Latitude: center.Latitude, Longitude: center.Longitude}
	return NewRoadClassifier(nil, nil, NewConfigMapView(cfg), cfg).(*classifierUC)
}

func TestFallbackGrid(t *testing.T) {
	center := models.Coordinate{Latitude: -6.2, Longitude: 106.8}
	c := fallbackClassifier(center)

	tests := []struct {
		gx, gy   int
		expected bool
	}{
		{0, 1, true},  // major road, lat axis
		{5, 3, true},  // major road, lat axis
		{1, 0, true},  // major road, lng axis
		{3, 5, true},  // major road, lng axis
		{2, 1, true},  // minor road, even lat cell
		{1, 4, true},  // minor road, even lng cell
		{1, 1, false}, // odd cells, no road
		{3, 7, false},
		{9, 3, false},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("cell_%d_%d", tc.gx, tc.gy), func(t *testing.T) {
			lat := center.Latitude + float64(tc.gx)*0.0001
			lng := center.Longitude + float64(tc.gy)*0.0001
			assert.Equal(t, tc.expected, c.fallbackOnRoad(lat, lng))
		})
	}
}

func TestFallbackGrid_Deterministic(t *testing.T) {
	center := models.Coordinate{Latitude: -6.2, Longitude: 106.8}
	c := fallbackClassifier(center)

	lat, lng := -6.19913, 106.80277
	first := c.fallbackOnRoad(lat, lng)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, c.fallbackOnRoad(lat, lng))
	}
}

func TestFallbackGrid_NegativeOffsets(t *testing.T) {
	center := models.Coordinate{Latitude: 0, Longitude: 0}
	c := fallbackClassifier(center)

	// Cells south/west of the center wrap into [0, 10)
	assert.True(t, c.fallbackOnRoad(-0.0005, 0.0001))  // gx wraps to 5
	assert.False(t, c.fallbackOnRoad(-0.0001, 0.0003)) // gx wraps to 9, gy 3
}

func TestGridCell(t *testing.T) {
	assert.Equal(t, 0, gridCell(0))
	assert.Equal(t, 3, gridCell(0.0003))
	assert.Equal(t, 0, gridCell(0.0010))
	assert.Equal(t, 7, gridCell(-0.0003))
	assert.Equal(t, 5, gridCell(0.0015))
}
