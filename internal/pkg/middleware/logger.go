package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ridelabs/drivescore/internal/pkg/logger"
)

// RequestLogger logs each HTTP request with method, path, status and latency
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("path", req.URL.Path),
				logger.Int("status", res.Status),
				logger.Int64("latency_ms", time.Since(start).Milliseconds()),
				logger.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, logger.ErrorField(err))
				logger.Error("request failed", fields...)
				return err
			}

			logger.Info("request completed", fields...)
			return nil
		}
	}
}
