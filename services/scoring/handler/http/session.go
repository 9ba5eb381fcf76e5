package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/internal/utils"
	"github.com/ridelabs/drivescore/services/scoring"
)

// SessionHandler serves the session and scoring endpoints
type SessionHandler struct {
	scoringUC scoring.ScoringUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(scoringUC scoring.ScoringUC) *SessionHandler {
	return &SessionHandler{scoringUC: scoringUC}
}

// CreateSession starts a new scoring session
func (h *SessionHandler) CreateSession(c echo.Context) error {
	snapshot, err := h.scoringUC.CreateSession(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to create session")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Session created", snapshot)
}

// EndSession removes a session
func (h *SessionHandler) EndSession(c echo.Context) error {
	sessionID := c.Param("id")
	if err := h.scoringUC.EndSession(c.Request().Context(), sessionID); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session ended", nil)
}

// SubmitTick accepts one motion sample for a session
func (h *SessionHandler) SubmitTick(c echo.Context) error {
	sessionID := c.Param("id")

	var sample models.TickSample
	if err := c.Bind(&sample); err != nil {
		return utils.BadRequestResponse(c, "Invalid tick payload")
	}
	if err := validateSample(sample); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	snapshot, err := h.scoringUC.SubmitTick(c.Request().Context(), sessionID, sample)
	if err != nil {
		if isNotFound(err) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to submit tick")
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Tick accepted", snapshot)
}

// GetScore returns the current score state of a session
func (h *SessionHandler) GetScore(c echo.Context) error {
	sessionID := c.Param("id")
	snapshot, err := h.scoringUC.GetScore(c.Request().Context(), sessionID)
	if err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snapshot)
}

// GetAchievements returns the achievement labels currently satisfied
func (h *SessionHandler) GetAchievements(c echo.Context) error {
	sessionID := c.Param("id")
	achievements, err := h.scoringUC.GetAchievements(c.Request().Context(), sessionID)
	if err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"achievements": achievements,
	})
}

// Reset returns a session's score state to its zero baseline
func (h *SessionHandler) Reset(c echo.Context) error {
	sessionID := c.Param("id")
	if err := h.scoringUC.Reset(c.Request().Context(), sessionID); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session reset", nil)
}

// GetTrack returns the most recent trail points of a session
func (h *SessionHandler) GetTrack(c echo.Context) error {
	sessionID := c.Param("id")

	limit := 100
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return utils.BadRequestResponse(c, "limit must be a positive integer")
		}
		limit = parsed
	}

	track, err := h.scoringUC.GetTrack(c.Request().Context(), sessionID, limit)
	if err != nil {
		if isNotFound(err) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to read track")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"track": track,
	})
}

func validateSample(sample models.TickSample) error {
	switch {
	case math.IsNaN(sample.Latitude) || math.IsInf(sample.Latitude, 0),
		math.IsNaN(sample.Longitude) || math.IsInf(sample.Longitude, 0):
		return errors.New("coordinates must be finite")
	case sample.Latitude < -90 || sample.Latitude > 90:
		return errors.New("latitude must be between -90 and 90")
	case sample.Longitude < -180 || sample.Longitude > 180:
		return errors.New("longitude must be between -180 and 180")
	case math.IsNaN(sample.Speed) || math.IsInf(sample.Speed, 0):
		return errors.New("speed must be finite")
	case sample.Speed < 0:
		return errors.New("speed must not be negative")
	case math.IsNaN(sample.DeltaSeconds) || math.IsInf(sample.DeltaSeconds, 0):
		return errors.New("delta_seconds must be finite")
	case sample.DeltaSeconds < 0:
		return errors.New("delta_seconds must not be negative")
	}
	return nil
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found")
}
