package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/facturas-api/pkg/logger"
)

// LocalRequestID key del identificador de petición en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger registra cada petición con un request_id propio, método, ruta,
// status y duración. El id se devuelve también en el header X-Request-ID para
// correlacionar reportes de usuarios con el log.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-ID", requestID)

		inicio := time.Now()
		err := c.Next()

		evt := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = log.Error().Err(err)
		}
		evt.
			Str("request_id", requestID).
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duracion", time.Since(inicio)).
			Str("usuario", GetUsername(c)).
			Msg("petición atendida")
		return err
	}
}
