package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/internal/utils"
	"github.com/ridelabs/drivescore/services/roadclass"
)

// ClassifierHandler serves the internal classifier operations
type ClassifierHandler struct {
	classifier roadclass.RoadClassifier
	mapView    roadclass.MapViewSetter
}

// NewClassifierHandler creates a new classifier handler
func NewClassifierHandler(classifier roadclass.RoadClassifier, mapView roadclass.MapViewSetter) *ClassifierHandler {
	return &ClassifierHandler{
		classifier: classifier,
		mapView:    mapView,
	}
}

// GetStats reports classifier mode, tolerance and cache health
func (h *ClassifierHandler) GetStats(c echo.Context) error {
	stats, err := h.classifier.CacheStats(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to read cache stats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"mode":             h.classifier.Mode(),
		"tolerance_meters": h.classifier.Tolerance(),
		"cache":            stats,
	})
}

// ClearCache drops all cached classifications
func (h *ClassifierHandler) ClearCache(c echo.Context) error {
	if err := h.classifier.ClearCache(c.Request().Context()); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to clear cache")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cache cleared", nil)
}

type toleranceRequest struct {
	ToleranceMeters float64 `json:"tolerance_meters"`
}

// SetTolerance adjusts the snap-distance threshold at runtime
func (h *ClassifierHandler) SetTolerance(c echo.Context) error {
	var req toleranceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid tolerance payload")
	}
	if req.ToleranceMeters <= 0 {
		return utils.BadRequestResponse(c, "tolerance_meters must be positive")
	}

	h.classifier.SetTolerance(req.ToleranceMeters)
	return utils.SuccessResponse(c, http.StatusOK, "Tolerance updated", map[string]interface{}{
		"tolerance_meters": req.ToleranceMeters,
	})
}

type mapViewRequest struct {
	Center models.Coordinate `json:"center"`
	Zoom   int               `json:"zoom"`
}

// UpdateMapView tracks the client's camera for the fallback grid origin
func (h *ClassifierHandler) UpdateMapView(c echo.Context) error {
	var req mapViewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid map view payload")
	}

	h.mapView.Update(req.Center, req.Zoom)
	return utils.SuccessResponse(c, http.StatusOK, "Map view updated", nil)
}
