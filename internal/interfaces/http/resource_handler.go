package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/demo-apis/todo-api/internal/application/dto"
	"github.com/demo-apis/todo-api/internal/application/usecase"
	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// ResourceHandler maneja las peticiones HTTP para Resource. Todas las rutas exigen X-Auth-Token.
type ResourceHandler struct {
	uc *usecase.ResourceUseCase
	v  *validation.Validator
}

// NewResourceHandler construye el handler.
func NewResourceHandler(uc *usecase.ResourceUseCase, v *validation.Validator) *ResourceHandler {
	return &ResourceHandler{uc: uc, v: v}
}

// List godoc
// @Summary      Listar recursos
// @Description  Con name filtra por nombre sin distinguir mayúsculas. Sin datos devuelve un recurso por defecto.
// @Tags         resources
// @Produce      json
// @Param        X-Auth-Token  header  string  true   "Token de autenticación"
// @Param        X-Request-Id  header  string  false  "ID de la petición"
// @Param        name          query   string  false  "Nombre exacto"
// @Success      200  {array}   dto.ResourceResponse
// @Failure      400  {object}  dto.ApiError
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), optionalQuery(c, "name"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recurso por ID
// @Tags         resources
// @Produce      json
// @Param        X-Auth-Token  header  string  true  "Token de autenticación"
// @Param        id            path    string  true  "ID del recurso"
// @Success      200  {object}  dto.ResourceResponse
// @Failure      404  {object}  dto.ApiError
// @Router       /api/resources/{id} [get]
func (h *ResourceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear recurso
// @Description  Un ID existente se sobrescribe.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        X-Auth-Token  header  string               true  "Token de autenticación"
// @Param        body          body    dto.ResourceRequest  true  "Datos del recurso"
// @Success      201  {object}  dto.ResourceResponse
// @Failure      400  {object}  dto.ApiError
// @Router       /api/resources [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	in, err := bindBody(c, h.v, dto.ResourceRequestSchema)
	if err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateAlt godoc
// @Summary      Crear recurso (ruta alternativa)
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        X-Auth-Token  header  string               true  "Token de autenticación"
// @Param        body          body    dto.ResourceRequest  true  "Datos del recurso"
// @Success      201  {object}  dto.ResourceResponse
// @Failure      400  {object}  dto.ApiError
// @Router       /api/resources/alt [post]
func (h *ResourceHandler) CreateAlt(c *fiber.Ctx) error {
	logger.FromContext(c.UserContext()).Info().Msg("POST /alt")
	return h.Create(c)
}

// Update godoc
// @Summary      Actualizar recurso
// @Description  Reemplaza el nombre; si el recurso no existe lo crea. El body no se valida.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        X-Auth-Token  header  string               true  "Token de autenticación"
// @Param        id            path    string               true  "ID del recurso"
// @Param        body          body    dto.ResourceRequest  true  "Nuevo nombre"
// @Success      200  {object}  dto.ResourceResponse
// @Failure      400  {object}  dto.ApiError
// @Router       /api/resources/{id} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	var in dto.ResourceRequest
	if err := decodeBody(c, &in, dto.ResourceRequestSchema.Target); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in.Name)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar recurso
// @Tags         resources
// @Param        X-Auth-Token  header  string  true  "Token de autenticación"
// @Param        id            path    string  true  "ID del recurso"
// @Success      200
// @Failure      400  {object}  dto.ApiError
// @Router       /api/resources/{id} [delete]
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	c.Status(fiber.StatusOK)
	return nil
}
