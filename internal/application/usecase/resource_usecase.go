package usecase

import (
	"context"

	"golang.org/x/text/cases"

	"github.com/demo-apis/todo-api/internal/application/dto"
	"github.com/demo-apis/todo-api/internal/domain"
	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/domain/repository"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// Recurso devuelto cuando el almacén está vacío.
const (
	DefaultResourceID   = "default-id"
	DefaultResourceName = "default-name"
)

// ResourceUseCase casos de uso CRUD para recursos.
type ResourceUseCase struct {
	repo repository.ResourceRepository
}

// NewResourceUseCase construye el caso de uso.
func NewResourceUseCase(repo repository.ResourceRepository) *ResourceUseCase {
	return &ResourceUseCase{repo: repo}
}

// List lista los recursos. Con name presente filtra por nombre sin distinguir mayúsculas.
// Un almacén vacío devuelve un único recurso por defecto, que también pasa por el filtro.
func (uc *ResourceUseCase) List(ctx context.Context, name *string) ([]dto.ResourceResponse, error) {
	log := logger.FromContext(ctx)

	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		log.Debug().Msg("sin recursos, se devuelve el recurso por defecto")
		list = []*entity.Resource{{ID: DefaultResourceID, Name: DefaultResourceName}}
	}

	items := make([]dto.ResourceResponse, 0, len(list))
	for _, r := range list {
		if name != nil && !sameName(r.Name, *name) {
			continue
		}
		items = append(items, toResourceResponse(r))
	}
	if name != nil {
		log.Info().Str("name", *name).Int("count", len(items)).Msg("recursos filtrados")
	}
	return items, nil
}

// GetByID obtiene un recurso por ID.
func (uc *ResourceUseCase) GetByID(ctx context.Context, id string) (*dto.ResourceResponse, error) {
	r, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &domain.NotFoundError{Entity: "Resource", ID: id}
	}
	out := toResourceResponse(r)
	return &out, nil
}

// Create guarda un recurso ya validado. Un ID existente se sobrescribe.
func (uc *ResourceUseCase) Create(ctx context.Context, in dto.ResourceRequest) (*dto.ResourceResponse, error) {
	r := &entity.Resource{ID: deref(in.ID), Name: deref(in.Name)}
	logger.FromContext(ctx).Debug().Str("id", r.ID).Msg("guardando recurso")
	if err := uc.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	out := toResourceResponse(r)
	return &out, nil
}

// Update reemplaza el nombre del recurso; si no existe lo crea.
func (uc *ResourceUseCase) Update(ctx context.Context, id string, name *string) (*dto.ResourceResponse, error) {
	r := &entity.Resource{ID: id, Name: deref(name)}
	logger.FromContext(ctx).Debug().Str("id", id).Msg("actualizando recurso")
	if err := uc.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	out := toResourceResponse(r)
	return &out, nil
}

// Delete elimina un recurso por ID. Un ID inexistente no es error.
func (uc *ResourceUseCase) Delete(ctx context.Context, id string) error {
	logger.FromContext(ctx).Debug().Str("id", id).Msg("eliminando recurso")
	return uc.repo.DeleteByID(ctx, id)
}

// sameName compara con plegado Unicode.
func sameName(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

func toResourceResponse(r *entity.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{ID: r.ID, Name: r.Name}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
