package dto

import (
	"github.com/demo-apis/todo-api/internal/application/validation"
)

// TodoRequest entrada para crear un to-do.
type TodoRequest struct {
	Title       *string    `json:"title"`
	Description string     `json:"description"`
	DueDate     *LocalDate `json:"dueDate"`
	Tags        []string   `json:"tags"`
}

// TodoRequestSchema restricciones de TodoRequest. La fecha nula es válida.
var TodoRequestSchema = validation.Schema[TodoRequest]{
	Target: "TodoRequest",
	Fields: []validation.Field[TodoRequest]{
		{
			Name:        "title",
			Value:       func(r TodoRequest) any { return r.Title },
			Constraints: []validation.Constraint{validation.Required("Title is mandatory")},
		},
		{
			Name: "dueDate",
			Value: func(r TodoRequest) any {
				if r.DueDate == nil {
					return nil
				}
				return r.DueDate.Time
			},
			Constraints: []validation.Constraint{validation.NotInPast("Due date must not be in the past")},
		},
	},
}

// TodoResponse salida de un to-do.
type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *LocalDate `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// TodoFullResponse salida completa, incluye estado y archivados.
type TodoFullResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Archived    bool     `json:"archived"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags"`
}

// TodoListResponse listado completo con su cantidad.
type TodoListResponse struct {
	Count int            `json:"count"`
	Items []TodoResponse `json:"items"`
}
