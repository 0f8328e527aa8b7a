package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/demo-apis/todo-api/internal/application/dto"
	"github.com/demo-apis/todo-api/internal/application/usecase"
	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/internal/domain/page"
	"github.com/demo-apis/todo-api/pkg/logger"
)

const wintDefaultSize = 10

// WintTodoHandler maneja /wint/api/todos: listados sin archivados y creación con Location absoluto.
type WintTodoHandler struct {
	uc *usecase.TodoUseCase
	v  *validation.Validator
}

// NewWintTodoHandler construye el handler.
func NewWintTodoHandler(uc *usecase.TodoUseCase, v *validation.Validator) *WintTodoHandler {
	return &WintTodoHandler{uc: uc, v: v}
}

// Health godoc
// @Summary      Estado de la API
// @Tags         wint-todos
// @Produce      plain
// @Success      200  {string}  string
// @Router       /wint/api/todos/health [get]
func (h *WintTodoHandler) Health(c *fiber.Ctx) error {
	return c.SendString("Todo API is running")
}

// Create godoc
// @Summary      Crear to-do
// @Tags         wint-todos
// @Accept       json
// @Produce      json
// @Param        X-Request-Id  header  string           true  "ID de la petición"
// @Param        X-Client-Id   header  string           true  "ID del cliente"
// @Param        body          body    dto.TodoRequest  true  "Datos del to-do"
// @Success      201  {object}  dto.TodoResponse
// @Header       201  {string}  Location  "URL absoluta del to-do creado"
// @Failure      400  {object}  dto.ApiError
// @Router       /wint/api/todos [post]
func (h *WintTodoHandler) Create(c *fiber.Ctx) error {
	in, err := bindBody(c, h.v, dto.TodoRequestSchema)
	if err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	logger.FromContext(c.UserContext()).Info().Int64("id", out.ID).Msg("to-do creado")

	c.Location(c.BaseURL() + strings.TrimRight(c.Path(), "/") + "/" + strconv.FormatInt(out.ID, 10))
	c.Set(HeaderProcessedBy, todoProcessor)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar to-dos no archivados
// @Description  Ordenados por id ascendente. page >= 0 y size >= 1.
// @Tags         wint-todos
// @Produce      json
// @Param        X-Request-Id  header  string  true   "ID de la petición"
// @Param        X-Client-Id   header  string  true   "ID del cliente"
// @Param        page          query   int     false  "Página (base 0)"  default(0)
// @Param        size          query   int     false  "Tamaño"           default(10)
// @Success      200  {object}  dto.PageResponse[dto.TodoResponse]
// @Failure      400  {object}  dto.ApiError
// @Router       /wint/api/todos [get]
func (h *WintTodoHandler) List(c *fiber.Ctx) error {
	req, err := defaultedPage(c, h.v, page.By("id"), wintDefaultSize)
	if err != nil {
		return err
	}
	p, err := h.uc.PageActive(c.UserContext(), req)
	if err != nil {
		return err
	}
	logger.FromContext(c.UserContext()).Info().
		Int("page", p.Request.Page).
		Int("count", p.NumberOfElements).
		Msg("to-dos no archivados")

	c.Set(HeaderProcessedBy, todoProcessor)
	return c.JSON(dto.NewPageResponse(p))
}

// All godoc
// @Summary      Listar todos los to-dos
// @Description  Incluye los archivados, con estado completo.
// @Tags         wint-todos
// @Produce      json
// @Param        X-Request-Id  header  string  true  "ID de la petición"
// @Param        X-Client-Id   header  string  true  "ID del cliente"
// @Success      200  {array}   dto.TodoFullResponse
// @Failure      400  {object}  dto.ApiError
// @Router       /wint/api/todos/all [get]
func (h *WintTodoHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.ListFull(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(HeaderProcessedBy, todoProcessor)
	return c.JSON(out)
}
