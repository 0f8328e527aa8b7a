package repository

import (
	"context"

	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/domain/page"
)

// TodoRepository define el puerto de persistencia para Todo (DIP).
// Los métodos paginados devuelven la porción pedida y el total de coincidencias;
// el conteo y la lectura no comparten transacción.
type TodoRepository interface {
	FindAll(ctx context.Context) ([]*entity.Todo, error)
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)
	Save(ctx context.Context, todo *entity.Todo) error
	SaveAll(ctx context.Context, todos []*entity.Todo) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, req page.Request) ([]*entity.Todo, int64, error)
	FindPageNotArchived(ctx context.Context, req page.Request) ([]*entity.Todo, int64, error)
}
