package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/internal/domain/page"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// Headers de petición y respuesta.
const (
	HeaderAuthToken   = "X-Auth-Token"
	HeaderClientID    = "X-Client-Id"
	HeaderRequestID   = "X-Request-Id"
	HeaderProcessedBy = "X-Processed-By"
	HeaderTotalCount  = "X-Total-Count"
	HeaderTotalPages  = "X-Total-Pages"
	HeaderCurrentPage = "X-Current-Page"
	HeaderPageSize    = "X-Page-Size"
)

const todoProcessor = "TodoController"

// RequireHeaders verifica todos los headers obligatorios a la vez: los ausentes o vacíos
// se reportan juntos como INVALID_ARGUMENT.
func RequireHeaders(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := validation.CheckRequired(requestHeaders(c), names); err != nil {
			logger.FromContext(c.UserContext()).Error().Err(err).Msg("headers obligatorios ausentes")
			return err
		}
		return c.Next()
	}
}

// RequireBoundHeaders enlaza los headers uno a uno: el primero que no vino en la petición
// corta con MISSING_HEADER. Si todos vinieron, los vacíos se reportan juntos como en RequireHeaders.
func RequireBoundHeaders(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		headers := requestHeaders(c)
		log := logger.FromContext(c.UserContext())
		if err := validation.RequireBound(headers, names); err != nil {
			log.Error().Err(err).Msg("header obligatorio ausente")
			return err
		}
		if err := validation.CheckRequired(headers, names); err != nil {
			log.Error().Err(err).Msg("headers obligatorios vacíos")
			return err
		}
		log.Debug().Strs("headers", names).Msg("headers obligatorios presentes")
		return c.Next()
	}
}

// setPageHeaders expone los metadatos de la página como headers.
func setPageHeaders[T any](c *fiber.Ctx, p page.Page[T]) {
	c.Set(HeaderTotalCount, strconv.FormatInt(p.TotalElements, 10))
	c.Set(HeaderTotalPages, strconv.Itoa(p.TotalPages))
	c.Set(HeaderCurrentPage, strconv.Itoa(p.Request.Page))
	c.Set(HeaderPageSize, strconv.Itoa(p.Request.Size))
}
