package http_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demo-apis/todo-api/internal/domain"
	apphttp "github.com/demo-apis/todo-api/internal/interfaces/http"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// buildContextApp aplicación mínima con RequestContext y un handler que devuelve el request id.
func buildContextApp(out io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestContext(zerolog.New(out).Level(zerolog.DebugLevel)))
	app.Get("/id", func(c *fiber.Ctx) error {
		logger.FromContext(c.UserContext()).Info().Msg("dentro del handler")
		return c.SendString(apphttp.GetRequestID(c))
	})
	return app
}

func TestRequestContext_UsesIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := buildContextApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-Id", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, "req-123", string(body))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"path":"/id"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRequestContext_GeneratesRequestID(t *testing.T) {
	app := buildContextApp(io.Discard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/id", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	_, err = uuid.Parse(string(body))
	assert.NoError(t, err, "debe generar un UUID")
}

func TestToAPIError_Mapping(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		err    error
		code   string
		status int
		msg    string
	}{
		{"header", &domain.MissingHeaderError{Name: "X-Auth-Token"}, "MISSING_HEADER", 400, "Missing required header: X-Auth-Token"},
		{"headers", &domain.MissingHeadersError{Names: []string{"A", "B"}}, "INVALID_ARGUMENT", 400, "Missing required headers: A B"},
		{"not found", &domain.NotFoundError{Entity: "Resource", ID: "x"}, "NOT_FOUND", 404, "Resource not found with ID: x"},
		{"route", fiber.ErrNotFound, "NOT_FOUND", 404, fiber.ErrNotFound.Message},
		{"method", fiber.ErrMethodNotAllowed, "METHOD_NOT_ALLOWED", 405, fiber.ErrMethodNotAllowed.Message},
		{"other", io.ErrUnexpectedEOF, "INTERNAL_ERROR", 500, "An unexpected error occurred"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := apphttp.ToAPIError(tc.err, "/p", now)
			assert.Equal(t, tc.code, got.Code)
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.msg, got.Message)
			assert.Equal(t, now, got.Timestamp)
			assert.Equal(t, "/p", got.Path)
		})
	}

	internal := apphttp.ToAPIError(io.ErrUnexpectedEOF, "/p", now)
	assert.Empty(t, internal.Errors, "no expone detalles internos")
}

func TestToAPIError_ValidationKeepsLines(t *testing.T) {
	err := &domain.ValidationError{
		Kind:   domain.BodyValidation,
		Target: "TodoRequest",
		Lines:  []string{"a", "b"},
	}
	got := apphttp.ToAPIError(err, "", time.Now())
	assert.Equal(t, "VALIDATION_FAILED", got.Code)
	assert.Equal(t, "Validation failed for: TodoRequest", got.Message)
	assert.Equal(t, []string{"a", "b"}, got.Errors)
}
