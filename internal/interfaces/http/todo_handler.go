package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/demo-apis/todo-api/internal/application/dto"
	"github.com/demo-apis/todo-api/internal/application/usecase"
	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/domain/page"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// TodoHandler maneja /api/todos.
type TodoHandler struct {
	uc       *usecase.TodoUseCase
	v        *validation.Validator
	pageable PageableConfig
}

// NewTodoHandler construye el handler. El listado paginado ordena por id ascendente si no se indica sort.
func NewTodoHandler(uc *usecase.TodoUseCase, v *validation.Validator, defaultSize, maxSize int) *TodoHandler {
	return &TodoHandler{
		uc: uc,
		v:  v,
		pageable: PageableConfig{
			DefaultSize: defaultSize,
			MaxSize:     maxSize,
			DefaultSort: page.By("id"),
			Sortable:    entity.TodoSortProperties,
			Entity:      "Todo",
		},
	}
}

// Health godoc
// @Summary      Estado de la API de to-dos
// @Tags         todos
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/todos/health [get]
func (h *TodoHandler) Health(c *fiber.Ctx) error {
	return c.SendString("Todo API is up and running!")
}

// All godoc
// @Summary      Listar to-dos
// @Description  Sin datos devuelve un to-do por defecto.
// @Tags         todos
// @Produce      json
// @Param        X-Client-Id   header  string  true  "ID del cliente"
// @Param        X-Request-Id  header  string  true  "ID de la petición"
// @Success      200  {object}  dto.TodoListResponse
// @Failure      400  {object}  dto.ApiError
// @Router       /api/todos/all [get]
func (h *TodoHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(HeaderProcessedBy, todoProcessor)
	return c.JSON(out)
}

// Paginated godoc
// @Summary      Listar to-dos paginados
// @Description  page inválido o negativo se toma como 0; size inválido usa el default y se recorta al máximo.
// @Tags         todos
// @Produce      json
// @Param        X-Client-Id   header  string  true   "ID del cliente"
// @Param        X-Request-Id  header  string  true   "ID de la petición"
// @Param        page          query   int     false  "Página (base 0)"  default(0)
// @Param        size          query   int     false  "Tamaño"           default(10)
// @Param        sort          query   string  false  "propiedad[,asc|desc]; se puede repetir"
// @Success      200  {object}  dto.PageResponse[dto.TodoResponse]
// @Failure      400  {object}  dto.ApiError
// @Router       /api/todos/paginated [get]
func (h *TodoHandler) Paginated(c *fiber.Ctx) error {
	req, err := parsePageable(c, h.pageable)
	if err != nil {
		return err
	}
	return h.writePage(c, req)
}

// PaginatedV2 godoc
// @Summary      Listar to-dos paginados (parámetros explícitos)
// @Description  page y size son obligatorios; page >= 0 y size >= 1. Se reportan todas las violaciones juntas.
// @Tags         todos
// @Produce      json
// @Param        X-Client-Id   header  string  true  "ID del cliente"
// @Param        X-Request-Id  header  string  true  "ID de la petición"
// @Param        page          query   int     true  "Página (base 0)"
// @Param        size          query   int     true  "Tamaño"
// @Success      200  {object}  dto.PageResponse[dto.TodoResponse]
// @Failure      400  {object}  dto.ApiError
// @Router       /api/todos/paginatedV2 [get]
func (h *TodoHandler) PaginatedV2(c *fiber.Ctx) error {
	req, err := strictPage(c, h.v, h.pageable.DefaultSort)
	if err != nil {
		return err
	}
	return h.writePage(c, req)
}

func (h *TodoHandler) writePage(c *fiber.Ctx, req page.Request) error {
	p, err := h.uc.Page(c.UserContext(), req)
	if err != nil {
		return err
	}
	logger.FromContext(c.UserContext()).Info().
		Int("page", req.Page).
		Int("size", req.Size).
		Int64("total", p.TotalElements).
		Msg("página de to-dos")

	setPageHeaders(c, p)
	c.Set(HeaderProcessedBy, todoProcessor)
	return c.JSON(dto.NewPageResponse(p))
}

// GetByID godoc
// @Summary      Obtener to-do por ID
// @Tags         todos
// @Produce      json
// @Param        X-Client-Id   header  string  true  "ID del cliente"
// @Param        X-Request-Id  header  string  true  "ID de la petición"
// @Param        id            path    string  true  "ID del to-do"
// @Success      200  {object}  dto.TodoResponse
// @Failure      404  {object}  dto.ApiError
// @Router       /api/todos/{id} [get]
func (h *TodoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(HeaderProcessedBy, todoProcessor)
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear to-do
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        X-Client-Id   header  string           true  "ID del cliente"
// @Param        X-Request-Id  header  string           true  "ID de la petición"
// @Param        body          body    dto.TodoRequest  true  "Datos del to-do"
// @Success      201  {object}  dto.TodoResponse
// @Header       201  {string}  Location  "/api/todos/{id}"
// @Failure      400  {object}  dto.ApiError
// @Router       /api/todos/create [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	in, err := bindBody(c, h.v, dto.TodoRequestSchema)
	if err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	c.Location("/api/todos/" + strconv.FormatInt(out.ID, 10))
	c.Set(HeaderProcessedBy, todoProcessor)
	return c.Status(fiber.StatusCreated).JSON(out)
}
