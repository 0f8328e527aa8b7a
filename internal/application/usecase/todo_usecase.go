package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/demo-apis/todo-api/internal/application/dto"
	"github.com/demo-apis/todo-api/internal/domain"
	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/domain/page"
	"github.com/demo-apis/todo-api/internal/domain/repository"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// To-do devuelto por ListAll cuando el almacén está vacío.
var defaultTodo = dto.TodoResponse{
	ID:          1,
	Title:       "Default To-Do",
	Description: "This is a default To-Do item.",
}

// TodoUseCase casos de uso de to-dos.
type TodoUseCase struct {
	repo repository.TodoRepository
	now  func() time.Time
}

// NewTodoUseCase construye el caso de uso.
func NewTodoUseCase(repo repository.TodoRepository) *TodoUseCase {
	return &TodoUseCase{repo: repo, now: time.Now}
}

// ListAll lista todos los to-dos con su cantidad. Sin datos devuelve el to-do por defecto.
func (uc *TodoUseCase) ListAll(ctx context.Context) (*dto.TodoListResponse, error) {
	log := logger.FromContext(ctx)

	n, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		log.Warn().Msg("no hay to-dos, se devuelve el item por defecto")
		return &dto.TodoListResponse{Count: 1, Items: []dto.TodoResponse{defaultTodo}}, nil
	}

	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TodoResponse, 0, len(list))
	for _, t := range list {
		items = append(items, toTodoResponse(t))
	}
	log.Info().Int("count", len(items)).Msg("to-dos obtenidos")
	return &dto.TodoListResponse{Count: len(items), Items: items}, nil
}

// ListFull lista todos los to-dos, archivados incluidos, con todos sus campos.
func (uc *TodoUseCase) ListFull(ctx context.Context) ([]dto.TodoFullResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TodoFullResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTodoFullResponse(t))
	}
	return out, nil
}

// Page una página de todos los to-dos.
func (uc *TodoUseCase) Page(ctx context.Context, req page.Request) (page.Page[dto.TodoResponse], error) {
	list, total, err := uc.repo.FindPage(ctx, req)
	if err != nil {
		return page.Page[dto.TodoResponse]{}, err
	}
	return toTodoPage(total, req, list), nil
}

// PageActive una página de los to-dos no archivados.
func (uc *TodoUseCase) PageActive(ctx context.Context, req page.Request) (page.Page[dto.TodoResponse], error) {
	list, total, err := uc.repo.FindPageNotArchived(ctx, req)
	if err != nil {
		return page.Page[dto.TodoResponse]{}, err
	}
	return toTodoPage(total, req, list), nil
}

// GetByID obtiene un to-do. Un ID no numérico se trata como inexistente.
func (uc *TodoUseCase) GetByID(ctx context.Context, rawID string) (*dto.TodoResponse, error) {
	notFound := &domain.NotFoundError{Msg: "To-Do item not found with ID: " + rawID}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		logger.FromContext(ctx).Error().Str("id", rawID).Msg("formato de ID inválido")
		return nil, notFound
	}
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound
	}
	out := toTodoResponse(t)
	return &out, nil
}

// Create crea un to-do a partir de una petición ya validada.
func (uc *TodoUseCase) Create(ctx context.Context, in dto.TodoRequest) (*dto.TodoResponse, error) {
	log := logger.FromContext(ctx)

	now := uc.now()
	t := &entity.Todo{
		Description: in.Description,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.DueDate != nil {
		d := in.DueDate.Time
		t.DueDate = &d
	}
	log.Info().Str("title", t.Title).Msg("creando to-do")

	if err := uc.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	log.Info().Int64("id", t.ID).Msg("to-do creado")
	out := toTodoResponse(t)
	return &out, nil
}

func toTodoPage(total int64, req page.Request, list []*entity.Todo) page.Page[dto.TodoResponse] {
	return page.Map(page.Paginate(total, req, list), toTodoResponse)
}

func toTodoResponse(t *entity.Todo) dto.TodoResponse {
	out := dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Tags:        t.Tags,
	}
	if t.DueDate != nil {
		d := dto.NewLocalDate(*t.DueDate)
		out.DueDate = &d
	}
	return out
}

func toTodoFullResponse(t *entity.Todo) dto.TodoFullResponse {
	out := dto.TodoFullResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Archived:    t.Archived,
		Tags:        t.Tags,
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if t.DueDate != nil {
		out.DueDate = t.DueDate.Format(time.DateOnly)
	}
	return out
}
