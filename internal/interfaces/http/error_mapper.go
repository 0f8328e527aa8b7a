package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/demo-apis/todo-api/internal/application/dto"
	"github.com/demo-apis/todo-api/internal/domain"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeMissingHeader    = "MISSING_HEADER"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
)

const internalErrorMessage = "An unexpected error occurred"

// ToAPIError traduce un error al cuerpo de error de la API. now es el instante del mapeo.
func ToAPIError(err error, path string, now time.Time) dto.ApiError {
	out := dto.ApiError{Timestamp: now, Path: path}

	var (
		single     *domain.MissingHeaderError
		aggregate  *domain.MissingHeadersError
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		fiberErr   *fiber.Error
	)
	switch {
	case errors.As(err, &single):
		out.Code, out.Status, out.Message = CodeMissingHeader, fiber.StatusBadRequest, single.Error()
		out.Errors = []string{out.Message}
	case errors.As(err, &aggregate):
		out.Code, out.Status, out.Message = CodeInvalidArgument, fiber.StatusBadRequest, aggregate.Error()
		out.Errors = []string{out.Message}
	case errors.As(err, &validation):
		out.Code, out.Status, out.Message = CodeValidationFailed, fiber.StatusBadRequest, validation.Summary()
		out.Errors = append([]string(nil), validation.Lines...)
	case errors.As(err, &notFound):
		out.Code, out.Status, out.Message = CodeNotFound, fiber.StatusNotFound, notFound.Error()
		out.Errors = []string{out.Message}
	case errors.Is(err, domain.ErrNotFound):
		out.Code, out.Status, out.Message = CodeNotFound, fiber.StatusNotFound, err.Error()
	case errors.As(err, &fiberErr):
		out.Status, out.Message = fiberErr.Code, fiberErr.Message
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			out.Code = CodeNotFound
		case fiber.StatusMethodNotAllowed:
			out.Code = CodeMethodNotAllowed
		default:
			if fiberErr.Code >= fiber.StatusInternalServerError {
				out.Code, out.Message = CodeInternalError, internalErrorMessage
			} else {
				out.Code = CodeInvalidArgument
			}
		}
	default:
		out.Code, out.Status, out.Message = CodeInternalError, fiber.StatusInternalServerError, internalErrorMessage
	}
	return out
}

// ErrorHandler es el ErrorHandler de Fiber: el único lugar que escribe respuestas de error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	apiErr := ToAPIError(err, c.Path(), time.Now())

	logger.FromContext(c.UserContext()).Error().
		Err(err).
		Str("code", apiErr.Code).
		Int("status", apiErr.Status).
		Msg("petición rechazada")

	return c.Status(apiErr.Status).JSON(apiErr)
}
