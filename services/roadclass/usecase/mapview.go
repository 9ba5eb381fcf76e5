package usecase

import (
	"sync"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// ConfigMapView is a MapView seeded from configuration. The client can push
// its current camera through the internal API; the classifier only ever
// reads center and zoom from it.
type ConfigMapView struct {
	mu     sync.RWMutex
	center models.Coordinate
	zoom   int
}

// NewConfigMapView creates a map view from the configured fallback origin
func NewConfigMapView(cfg models.RoadsConfig) *ConfigMapView {
	return &ConfigMapView{
		center: models.Coordinate{
			Latitude:  cfg.FallbackCenter.Latitude,
			Longitude: cfg.FallbackCenter.Longitude,
		},
		zoom: cfg.FallbackZoom,
	}
}

// Center returns the current map center
func (v *ConfigMapView) Center() models.Coordinate {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.center
}

// Zoom returns the current map zoom level
func (v *ConfigMapView) Zoom() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.zoom
}

// Update replaces the tracked camera state
func (v *ConfigMapView) Update(center models.Coordinate, zoom int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.center = center
	v.zoom = zoom
}
