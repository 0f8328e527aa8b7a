package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/domain/page"
	"github.com/demo-apis/todo-api/internal/domain/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo implementación del puerto ResourceRepository sobre gorm.
type ResourceRepo struct {
	db *gorm.DB
}

// NewResourceRepository construye el adaptador de persistencia para recursos.
func NewResourceRepository(db *gorm.DB) *ResourceRepo {
	return &ResourceRepo{db: db}
}

// FindAll devuelve todos los recursos ordenados por id.
func (r *ResourceRepo) FindAll(ctx context.Context) ([]*entity.Resource, error) {
	var rows []ResourceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return toResources(rows), nil
}

// FindByID obtiene un recurso por ID; (nil, nil) si no existe.
func (r *ResourceRepo) FindByID(ctx context.Context, id string) (*entity.Resource, error) {
	var m ResourceModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return m.toEntity(), nil
}

// Save inserta o reemplaza el recurso.
func (r *ResourceRepo) Save(ctx context.Context, resource *entity.Resource) error {
	m := resourceFromEntity(resource)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&m).Error
	if err != nil {
		return fmt.Errorf("save resource: %w", err)
	}
	return nil
}

// DeleteByID elimina el recurso; no falla si no existe.
func (r *ResourceRepo) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ResourceModel{}).Error; err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}

// Count cantidad total de recursos.
func (r *ResourceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&ResourceModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count resources: %w", err)
	}
	return n, nil
}

// FindPage devuelve una página y el total. Conteo y lectura no comparten transacción.
func (r *ResourceRepo) FindPage(ctx context.Context, req page.Request) ([]*entity.Resource, int64, error) {
	order, err := orderBy(req.Sort, resourceColumns, "Resource")
	if err != nil {
		return nil, 0, err
	}
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	var rows []ResourceModel
	if err := r.db.WithContext(ctx).Clauses(order).Scopes(paginate(req)).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("page resources: %w", err)
	}
	return toResources(rows), total, nil
}

func toResources(rows []ResourceModel) []*entity.Resource {
	out := make([]*entity.Resource, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out
}
