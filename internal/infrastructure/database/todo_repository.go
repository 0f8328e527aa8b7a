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

var _ repository.TodoRepository = (*TodoRepo)(nil)

// TodoRepo implementación del puerto TodoRepository sobre gorm.
type TodoRepo struct {
	db *gorm.DB
}

// NewTodoRepository construye el adaptador de persistencia para to-dos.
func NewTodoRepository(db *gorm.DB) *TodoRepo {
	return &TodoRepo{db: db}
}

func withTags(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// FindAll devuelve todos los to-dos (archivados incluidos) ordenados por id.
func (r *TodoRepo) FindAll(ctx context.Context) ([]*entity.Todo, error) {
	var rows []TodoModel
	if err := r.db.WithContext(ctx).Scopes(withTags).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return toTodos(rows), nil
}

// FindByID obtiene un to-do por ID; (nil, nil) si no existe.
func (r *TodoRepo) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	var m TodoModel
	err := r.db.WithContext(ctx).Scopes(withTags).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return m.toEntity(), nil
}

// Save inserta (ID 0) o reemplaza el to-do junto con sus etiquetas.
// Completa ID y marcas de tiempo en la entidad.
func (r *TodoRepo) Save(ctx context.Context, todo *entity.Todo) error {
	m := todoFromEntity(todo)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.ID == 0 {
			return tx.Create(&m).Error
		}
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", m.ID).Delete(&TodoTagModel{}).Error; err != nil {
			return err
		}
		if tags := tagModels(m.ID, todo.Tags); len(tags) > 0 {
			return tx.Create(&tags).Error
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save todo: %w", err)
	}
	todo.ID = m.ID
	todo.CreatedAt = m.CreatedAt
	todo.UpdatedAt = m.UpdatedAt
	return nil
}

// SaveAll guarda todos los to-dos en una sola transacción.
func (r *TodoRepo) SaveAll(ctx context.Context, todos []*entity.Todo) error {
	return NewTxRunner(r.db).Run(ctx, func(repo repository.TodoRepository) error {
		for _, t := range todos {
			if err := repo.Save(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByID elimina el to-do y sus etiquetas; no falla si no existe.
func (r *TodoRepo) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&TodoTagModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&TodoModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

// Count cantidad total de to-dos.
func (r *TodoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&TodoModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return n, nil
}

// FindPage página sobre todos los to-dos.
func (r *TodoRepo) FindPage(ctx context.Context, req page.Request) ([]*entity.Todo, int64, error) {
	return r.findPage(ctx, req, nil)
}

// FindPageNotArchived página sobre los to-dos no archivados.
func (r *TodoRepo) FindPageNotArchived(ctx context.Context, req page.Request) ([]*entity.Todo, int64, error) {
	return r.findPage(ctx, req, func(db *gorm.DB) *gorm.DB {
		return db.Where("archived = ?", false)
	})
}

// findPage cuenta y luego lee la porción pedida. Conteo y lectura no comparten transacción.
func (r *TodoRepo) findPage(ctx context.Context, req page.Request, filter func(*gorm.DB) *gorm.DB) ([]*entity.Todo, int64, error) {
	order, err := orderBy(req.Sort, todoColumns, "Todo")
	if err != nil {
		return nil, 0, err
	}
	if filter == nil {
		filter = func(db *gorm.DB) *gorm.DB { return db }
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&TodoModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}

	var rows []TodoModel
	err = r.db.WithContext(ctx).
		Scopes(filter, withTags, paginate(req)).
		Clauses(order).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("page todos: %w", err)
	}
	return toTodos(rows), total, nil
}

func toTodos(rows []TodoModel) []*entity.Todo {
	out := make([]*entity.Todo, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out
}
