package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Xangel0s/CalidaLanding/pkg/logger"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger asigna un request id y emite un evento estructurado por
// petición atendida (método, ruta, estado, duración).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := uuid.New().String()
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-Id", reqID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// GetRequestID devuelve el request id del contexto (después del middleware).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
