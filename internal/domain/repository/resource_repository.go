package repository

import (
	"context"

	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/domain/page"
)

// ResourceRepository define el puerto de persistencia para Resource (DIP).
// FindByID devuelve (nil, nil) si no existe.
type ResourceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Resource, error)
	FindByID(ctx context.Context, id string) (*entity.Resource, error)
	Save(ctx context.Context, resource *entity.Resource) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, req page.Request) ([]*entity.Resource, int64, error)
}
