package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridelabs/drivescore/internal/pkg/middleware"
	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/services/roadclass"
	"github.com/ridelabs/drivescore/services/scoring"
	httpHandler "github.com/ridelabs/drivescore/services/scoring/handler/http"
)

// HTTPHandler combines all handlers of the scoring service
type HTTPHandler struct {
	session    *httpHandler.SessionHandler
	classifier *httpHandler.ClassifierHandler
	cfg        *models.Config
}

// NewHTTPHandler creates the combined handler
func NewHTTPHandler(scoringUC scoring.ScoringUC, classifier roadclass.RoadClassifier, mapView roadclass.MapViewSetter, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		session:    httpHandler.NewSessionHandler(scoringUC),
		classifier: httpHandler.NewClassifierHandler(classifier, mapView),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestLogger())

	// Session routes used by the simulation client
	sessions := e.Group("/sessions")
	sessions.POST("", h.session.CreateSession)
	sessions.DELETE("/:id", h.session.EndSession)
	sessions.POST("/:id/ticks", h.session.SubmitTick)
	sessions.GET("/:id/score", h.session.GetScore)
	sessions.GET("/:id/achievements", h.session.GetAchievements)
	sessions.POST("/:id/reset", h.session.Reset)
	sessions.GET("/:id/track", h.session.GetTrack)

	// Internal operations routes (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKey, "ops"))
	internal.GET("/classifier/stats", h.classifier.GetStats)
	internal.POST("/classifier/cache/clear", h.classifier.ClearCache)
	internal.PUT("/classifier/tolerance", h.classifier.SetTolerance)
	internal.PUT("/classifier/mapview", h.classifier.UpdateMapView)
}
