package entity

import "time"

// Todo tarea pendiente. DueDate es una fecha de calendario (sin hora), nil si no tiene vencimiento.
type Todo struct {
	ID             int64
	Title          string
	Description    string
	Completed      bool
	CompletedAt    *time.Time
	Archived       bool
	AssignedUserID *int64
	DueDate        *time.Time
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TodoSortProperties propiedades por las que se puede ordenar un listado de to-dos.
var TodoSortProperties = []string{
	"id", "title", "description", "completed", "archived",
	"dueDate", "assignedUserId", "createdAt", "updatedAt",
}
