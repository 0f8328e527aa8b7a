package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/demo-apis/todo-api/internal/application/usecase"
	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ResourceUC  *usecase.ResourceUseCase
	TodoUC      *usecase.TodoUseCase
	Validator   *validation.Validator
	Paging      config.PagingConfig
	ServiceName string
	// SwaggerFile documento OpenAPI servido en /docs; si no existe no se monta la UI.
	SwaggerFile string
}

// NewApp construye la aplicación Fiber con el manejo de errores, el contexto de petición y las rutas.
func NewApp(deps RouterDeps, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.ServiceName,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestContext(log))

	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			// Swagger UI: http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "To-Do API",
			}))
		} else {
			log.Warn().Str("file", deps.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API. Las rutas fijas van antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Resources: X-Auth-Token enlazado en todas las rutas
	authToken := RequireBoundHeaders(HeaderAuthToken)
	resources := api.Group("/resources")
	resourceHandler := NewResourceHandler(deps.ResourceUC, deps.Validator)
	resources.Get("/", authToken, resourceHandler.List)
	resources.Post("/", authToken, resourceHandler.Create)
	resources.Post("/alt", authToken, resourceHandler.CreateAlt)
	resources.Get("/:id", authToken, resourceHandler.GetByID)
	resources.Put("/:id", authToken, resourceHandler.Update)
	resources.Delete("/:id", authToken, resourceHandler.Delete)

	// To-dos
	todos := api.Group("/todos")
	todoHandler := NewTodoHandler(deps.TodoUC, deps.Validator, deps.Paging.DefaultSize, deps.Paging.MaxSize)
	todoBound := RequireBoundHeaders(HeaderClientID, HeaderRequestID)
	todoAggregate := RequireHeaders(HeaderClientID, HeaderRequestID)
	todos.Get("/health", todoHandler.Health)
	todos.Get("/all", todoAggregate, todoHandler.All)
	todos.Get("/paginated", todoBound, todoHandler.Paginated)
	todos.Get("/paginatedV2", todoBound, todoHandler.PaginatedV2)
	todos.Post("/create", todoAggregate, todoHandler.Create)
	todos.Get("/:id", todoBound, todoHandler.GetByID)

	// To-dos (variante wint): X-Request-Id y X-Client-Id enlazados
	wint := app.Group("/wint/api/todos")
	wintHandler := NewWintTodoHandler(deps.TodoUC, deps.Validator)
	wintBound := RequireBoundHeaders(HeaderRequestID, HeaderClientID)
	wint.Get("/health", wintHandler.Health)
	wint.Post("/", wintBound, wintHandler.Create)
	wint.Get("/", wintBound, wintHandler.List)
	wint.Get("/all", wintBound, wintHandler.All)
}
