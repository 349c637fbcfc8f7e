// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request once it is served.
// Server errors are logged at error level, client errors at warn level.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http.access")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		fields := []interface{}{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"request_id", reqID,
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("request failed", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("request rejected", fields...)
		default:
			log.Infow("request served", fields...)
		}
		return err
	}
}
