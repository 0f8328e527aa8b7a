package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demo-apis/todo-api/internal/application/dto"
	"github.com/demo-apis/todo-api/internal/application/usecase"
	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/infrastructure/database"
	apphttp "github.com/demo-apis/todo-api/internal/interfaces/http"
	"github.com/demo-apis/todo-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testToday = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	app   *fiber.App
	todos *database.TodoRepo
}

// newTestEnv levanta la aplicación completa sobre SQLite en memoria.
func newTestEnv(t *testing.T, mode validation.Mode) testEnv {
	t.Helper()
	db, closeDB, err := database.Open(context.Background(), config.DBConfig{Driver: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(closeDB)

	todoRepo := database.NewTodoRepository(db)
	app := apphttp.NewApp(apphttp.RouterDeps{
		ResourceUC:  usecase.NewResourceUseCase(database.NewResourceRepository(db)),
		TodoUC:      usecase.NewTodoUseCase(todoRepo),
		Validator:   validation.New(mode, validation.WithClock(func() time.Time { return testToday })),
		Paging:      config.PagingConfig{DefaultSize: 10, MaxSize: 2000},
		ServiceName: "todo-api-test",
	}, zerolog.New(io.Discard))
	return testEnv{app: app, todos: todoRepo}
}

func (e testEnv) seed(t *testing.T, todos ...*entity.Todo) {
	t.Helper()
	for _, todo := range todos {
		require.NoError(t, e.todos.Save(context.Background(), todo))
	}
}

func seedTitles(n int) []*entity.Todo {
	out := make([]*entity.Todo, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &entity.Todo{Title: "t" + string(rune('0'+i))})
	}
	return out
}

var todoHeaders = map[string]string{"X-Client-Id": "client-1", "X-Request-Id": "req-1"}

func authHeaders() map[string]string {
	return map[string]string{"X-Auth-Token": "secret"}
}

// do lanza una petición y devuelve la respuesta con el body ya leído.
func do(t *testing.T, app *fiber.App, method, target, body string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeAPIError(t *testing.T, raw []byte) dto.ApiError {
	t.Helper()
	var out dto.ApiError
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func decodePage(t *testing.T, raw []byte) dto.PageResponse[dto.TodoResponse] {
	t.Helper()
	var out dto.PageResponse[dto.TodoResponse]
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Headers obligatorios
// ──────────────────────────────────────────────────────────────────────────────

func TestHeaders_AggregateReportsAllMissing(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/all", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "INVALID_ARGUMENT", apiErr.Code)
	assert.Equal(t, "Missing required headers: X-Client-Id X-Request-Id", apiErr.Message)
	assert.Equal(t, []string{apiErr.Message}, apiErr.Errors)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "/api/todos/all", apiErr.Path)
	assert.False(t, apiErr.Timestamp.IsZero())

	_, raw = do(t, env.app, http.MethodGet, "/api/todos/all", "", map[string]string{"X-Request-Id": "r"})
	assert.Equal(t, "Missing required headers: X-Client-Id", decodeAPIError(t, raw).Message)
}

func TestHeaders_BindingReportsFirstMissingAlone(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/paginated", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "MISSING_HEADER", apiErr.Code)
	assert.Equal(t, "Missing required header: X-Client-Id", apiErr.Message)

	_, raw = do(t, env.app, http.MethodGet, "/api/todos/paginated", "", map[string]string{"X-Client-Id": "c"})
	apiErr = decodeAPIError(t, raw)
	assert.Equal(t, "MISSING_HEADER", apiErr.Code)
	assert.Equal(t, "Missing required header: X-Request-Id", apiErr.Message)
}

func TestHeaders_BindingBlankValueFallsThroughToAggregate(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/paginatedV2?page=0&size=1", "",
		map[string]string{"X-Client-Id": "  ", "X-Request-Id": "r"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "INVALID_ARGUMENT", apiErr.Code)
	assert.Equal(t, "Missing required headers: X-Client-Id", apiErr.Message)
}

func TestHeaders_CaseInsensitive(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, _ := do(t, env.app, http.MethodGet, "/api/todos/all", "",
		map[string]string{"x-client-id": "c", "X-REQUEST-ID": "r"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHeaders_WintBindingOrder(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	_, raw := do(t, env.app, http.MethodGet, "/wint/api/todos", "", nil)
	assert.Equal(t, "Missing required header: X-Request-Id", decodeAPIError(t, raw).Message)

	_, raw = do(t, env.app, http.MethodGet, "/wint/api/todos/all", "", map[string]string{"X-Request-Id": "r"})
	assert.Equal(t, "Missing required header: X-Client-Id", decodeAPIError(t, raw).Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/todos
// ──────────────────────────────────────────────────────────────────────────────

func TestTodos_Health(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Todo API is up and running!", string(raw))

	_, raw = do(t, env.app, http.MethodGet, "/wint/api/todos/health", "", nil)
	assert.Equal(t, "Todo API is running", string(raw))
}

func TestTodos_AllReturnsDefaultWhenEmpty(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/all", "", todoHeaders)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "TodoController", resp.Header.Get("X-Processed-By"))

	var out dto.TodoListResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].ID)
	assert.Equal(t, "Default To-Do", out.Items[0].Title)
	assert.Equal(t, "This is a default To-Do item.", out.Items[0].Description)
}

func TestTodos_CreateThenGet(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	body := `{"title":"Buy milk","description":"2 liters","dueDate":"2024-06-20","tags":["home"]}`
	resp, raw := do(t, env.app, http.MethodPost, "/api/todos/create", body, todoHeaders)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	assert.Equal(t, "TodoController", resp.Header.Get("X-Processed-By"))

	var created dto.TodoResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "/api/todos/"+itoa(created.ID), resp.Header.Get("Location"))
	assert.Contains(t, string(raw), `"dueDate":"2024-06-20"`)

	resp, raw = do(t, env.app, http.MethodGet, "/api/todos/"+itoa(created.ID), "", todoHeaders)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.TodoResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, []string{"home"}, got.Tags)
}

func TestTodos_GetByIDNotFound(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	for _, id := range []string{"42", "abc"} {
		resp, raw := do(t, env.app, http.MethodGet, "/api/todos/"+id, "", todoHeaders)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		apiErr := decodeAPIError(t, raw)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
		assert.Equal(t, "To-Do item not found with ID: "+id, apiErr.Message)
	}
}

func TestTodos_CreateReportsAllViolations(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodPost, "/api/todos/create", `{"dueDate":"2024-06-14"}`, todoHeaders)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	assert.Equal(t, "Validation failed for: TodoRequest", apiErr.Message)
	assert.Equal(t, []string{
		"Field 'title': Title is mandatory (rejected value: null)",
		"Field 'dueDate': Due date must not be in the past (rejected value: 2024-06-14)",
	}, apiErr.Errors)
}

func TestTodos_CreatePlainMessages(t *testing.T) {
	env := newTestEnv(t, validation.Plain)

	_, raw := do(t, env.app, http.MethodPost, "/api/todos/create", `{"title":"   "}`, todoHeaders)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	assert.Equal(t, []string{"Title is mandatory"}, apiErr.Errors)
}

func TestTodos_CreateMalformedBody(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodPost, "/api/todos/create", `{"title":`, todoHeaders)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	assert.Equal(t, []string{"Malformed JSON request body"}, apiErr.Errors)

	_, raw = do(t, env.app, http.MethodPost, "/api/todos/create", `{"title":"x","dueDate":"15/06/2024"}`, todoHeaders)
	assert.Equal(t, "VALIDATION_FAILED", decodeAPIError(t, raw).Code)
}

func TestTodos_PaginatedEnvelopeAndHeaders(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)
	env.seed(t, seedTitles(5)...)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/paginated?page=1&size=2", "", todoHeaders)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "5", resp.Header.Get("X-Total-Count"))
	assert.Equal(t, "3", resp.Header.Get("X-Total-Pages"))
	assert.Equal(t, "1", resp.Header.Get("X-Current-Page"))
	assert.Equal(t, "2", resp.Header.Get("X-Page-Size"))
	assert.Equal(t, "TodoController", resp.Header.Get("X-Processed-By"))

	p := decodePage(t, raw)
	assert.Equal(t, int64(5), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 2, p.Size)
	assert.Equal(t, 2, p.NumberOfElements)
	assert.False(t, p.First)
	assert.False(t, p.Last)
	assert.False(t, p.Empty)
	assert.Equal(t, int64(2), p.Pageable.Offset)
	assert.True(t, p.Sort.Sorted)
	require.Len(t, p.Content, 2)
	assert.Equal(t, "t3", p.Content[0].Title)
	assert.Equal(t, "t4", p.Content[1].Title)
}

func TestTodos_PaginatedLenientDefaults(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)
	env.seed(t, seedTitles(5)...)

	_, raw := do(t, env.app, http.MethodGet, "/api/todos/paginated?page=-3&size=0", "", todoHeaders)
	p := decodePage(t, raw)
	assert.Equal(t, 0, p.Number)
	assert.Equal(t, 10, p.Size)
	assert.Len(t, p.Content, 5)
	assert.True(t, p.First)
	assert.True(t, p.Last)

	_, raw = do(t, env.app, http.MethodGet, "/api/todos/paginated?page=x&size=5000", "", todoHeaders)
	p = decodePage(t, raw)
	assert.Equal(t, 0, p.Number)
	assert.Equal(t, 2000, p.Size)
}

func TestTodos_PaginatedSortAndOutOfRange(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)
	env.seed(t, seedTitles(5)...)

	_, raw := do(t, env.app, http.MethodGet, "/api/todos/paginated?size=2&sort=title,desc", "", todoHeaders)
	p := decodePage(t, raw)
	require.Len(t, p.Content, 2)
	assert.Equal(t, "t5", p.Content[0].Title)

	_, raw = do(t, env.app, http.MethodGet, "/api/todos/paginated?page=10&size=2", "", todoHeaders)
	p = decodePage(t, raw)
	assert.Empty(t, p.Content)
	assert.NotNil(t, p.Content)
	assert.True(t, p.Empty)
	assert.True(t, p.Last)
	assert.Equal(t, int64(5), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/paginated?sort=color", "", todoHeaders)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	assert.Equal(t, "No property 'color' found for type 'Todo'", apiErr.Message)
}

func TestTodos_PaginatedHugePage(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)
	env.seed(t, seedTitles(5)...)

	// Fuera de int32: se trata como inválido y vuelve a la página 0
	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/paginated?page=1000000000000000000&size=10", "", todoHeaders)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	p := decodePage(t, raw)
	assert.Equal(t, 0, p.Number)
	assert.Len(t, p.Content, 5)

	// Máximo int32: la página existe como número pero queda vacía
	_, raw = do(t, env.app, http.MethodGet, "/api/todos/paginated?page=2147483647&size=10", "", todoHeaders)
	p = decodePage(t, raw)
	assert.Equal(t, 2147483647, p.Number)
	assert.Empty(t, p.Content)
	assert.True(t, p.Empty)
	assert.True(t, p.Last)
	assert.Equal(t, int64(21474836470), p.Pageable.Offset)
	assert.Equal(t, int64(5), p.TotalElements)
}

func TestTodos_PaginatedV2BoundsJoined(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/paginatedV2?page=-1&size=0", "", todoHeaders)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	assert.Equal(t,
		"Parameter 'page' must be greater than or equal to 0; Parameter 'size' must be greater than or equal to 1",
		apiErr.Message)
	assert.Len(t, apiErr.Errors, 2)

	_, raw = do(t, env.app, http.MethodGet, "/api/todos/paginatedV2", "", todoHeaders)
	assert.Equal(t, "Parameter 'page' is required; Parameter 'size' is required", decodeAPIError(t, raw).Message)

	_, raw = do(t, env.app, http.MethodGet, "/api/todos/paginatedV2?page=abc&size=2", "", todoHeaders)
	assert.Equal(t, "Parameter 'page' must be an integer", decodeAPIError(t, raw).Message)
}

func TestTodos_PaginatedV2Page(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)
	env.seed(t, seedTitles(3)...)

	resp, raw := do(t, env.app, http.MethodGet, "/api/todos/paginatedV2?page=0&size=2", "", todoHeaders)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "3", resp.Header.Get("X-Total-Count"))
	p := decodePage(t, raw)
	assert.Len(t, p.Content, 2)
	assert.Equal(t, 2, p.TotalPages)
}

// ──────────────────────────────────────────────────────────────────────────────
// /wint/api/todos
// ──────────────────────────────────────────────────────────────────────────────

var wintHeaders = map[string]string{"X-Request-Id": "req-9", "X-Client-Id": "client-9"}

func TestWint_CreateSetsAbsoluteLocation(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodPost, "/wint/api/todos", `{"title":"Walk dog"}`, wintHeaders)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var created dto.TodoResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "http://example.com/wint/api/todos/"+itoa(created.ID), resp.Header.Get("Location"))
	assert.Equal(t, "TodoController", resp.Header.Get("X-Processed-By"))
}

func TestWint_ListSkipsArchived(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)
	env.seed(t,
		&entity.Todo{Title: "a"},
		&entity.Todo{Title: "b", Archived: true},
		&entity.Todo{Title: "c", Completed: true},
	)

	resp, raw := do(t, env.app, http.MethodGet, "/wint/api/todos", "", wintHeaders)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	p := decodePage(t, raw)
	assert.Equal(t, int64(2), p.TotalElements)
	require.Len(t, p.Content, 2)
	assert.Equal(t, "a", p.Content[0].Title)
	assert.Equal(t, "c", p.Content[1].Title)
	assert.Equal(t, 10, p.Size)

	_, raw = do(t, env.app, http.MethodGet, "/wint/api/todos/all", "", wintHeaders)
	var all []dto.TodoFullResponse
	require.NoError(t, json.Unmarshal(raw, &all))
	require.Len(t, all, 3)
	assert.True(t, all[1].Archived)
	assert.True(t, all[2].Completed)
}

func TestWint_ListBounds(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	_, raw := do(t, env.app, http.MethodGet, "/wint/api/todos?page=-1", "", wintHeaders)
	assert.Equal(t, "Parameter 'page' must be greater than or equal to 0", decodeAPIError(t, raw).Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/resources
// ──────────────────────────────────────────────────────────────────────────────

func TestResources_RequireAuthToken(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/resources", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "MISSING_HEADER", apiErr.Code)
	assert.Equal(t, "Missing required header: X-Auth-Token", apiErr.Message)
}

func TestResources_DefaultWhenEmpty(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/resources", "", authHeaders())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":"default-id","name":"default-name"}]`, string(raw))
}

func TestResources_CRUD(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodPost, "/api/resources", `{"id":"r1","name":"One"}`, authHeaders())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	assert.JSONEq(t, `{"id":"r1","name":"One"}`, string(raw))

	resp, _ = do(t, env.app, http.MethodPost, "/api/resources/alt", `{"id":"r2","name":"Two"}`, authHeaders())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, raw = do(t, env.app, http.MethodGet, "/api/resources?name=one", "", authHeaders())
	assert.JSONEq(t, `[{"id":"r1","name":"One"}]`, string(raw))

	resp, raw = do(t, env.app, http.MethodPut, "/api/resources/r1", `{"name":"Uno"}`, authHeaders())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"r1","name":"Uno"}`, string(raw))

	resp, raw = do(t, env.app, http.MethodDelete, "/api/resources/r1", "", authHeaders())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, raw)

	resp, raw = do(t, env.app, http.MethodGet, "/api/resources/r1", "", authHeaders())
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resource not found with ID: r1", decodeAPIError(t, raw).Message)
}

func TestResources_CreateValidation(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodPost, "/api/resources", `{}`, authHeaders())
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	apiErr := decodeAPIError(t, raw)
	assert.Equal(t, "Validation failed for: ResourceRequest", apiErr.Message)
	assert.Equal(t, []string{
		"Field 'id': id is required (rejected value: null)",
		"Field 'name': name is required (rejected value: null)",
	}, apiErr.Errors)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/api/nothing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeAPIError(t, raw).Code)

	resp, raw = do(t, env.app, http.MethodPatch, "/api/todos/health", "", nil)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeAPIError(t, raw).Code)
}

func TestRouter_HealthProbe(t *testing.T) {
	env := newTestEnv(t, validation.Detailed)

	resp, raw := do(t, env.app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"todo-api-test"}`, string(raw))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
