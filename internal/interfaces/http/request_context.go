package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// LocalRequestID key de Locals con el ID de la petición.
const LocalRequestID = "request_id"

// RequestContext crea el contexto de la petición: toma el ID de X-Request-Id (o genera uno),
// deriva un sublogger con request_id, method y path y lo deja en c.UserContext().
// Al terminar registra el status y la latencia.
func RequestContext(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := strings.TrimSpace(c.Get(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)

		reqLog := base.With().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(logger.WithContext(c.UserContext(), reqLog))

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		reqLog.Debug().
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición completada")
		return err
	}
}

// GetRequestID devuelve el ID de la petición (después del middleware RequestContext).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// requestHeaders copia los headers de la petición en orden de llegada.
func requestHeaders(c *fiber.Ctx) validation.HeaderSet {
	var h validation.HeaderSet
	c.Request().Header.VisitAll(func(key, value []byte) {
		h.Add(string(key), string(value))
	})
	return h
}
