package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/internal/utils"
)

// APIKeyHeader is the header internal callers authenticate with
const APIKeyHeader = "X-API-Key"

// ValidateAPIKey validates the API key for service-to-service routes.
// Keys are injected from configuration rather than read from ambient state.
func ValidateAPIKey(cfg models.APIKeyConfig, allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, caller := range allowedCallers {
				if key := cfg.Keys[caller]; key != "" && strings.EqualFold(apiKey, key) {
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
