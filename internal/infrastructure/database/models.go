package database

import (
	"time"

	"github.com/demo-apis/todo-api/internal/domain/entity"
)

// ResourceModel fila de la tabla resources.
type ResourceModel struct {
	ID   string `gorm:"primaryKey;size:255"`
	Name string `gorm:"size:255"`
}

func (ResourceModel) TableName() string { return "resources" }

// TodoModel fila de la tabla todos. Las etiquetas viven en todo_tags.
type TodoModel struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	Title          string
	Description    string
	Completed      bool
	CompletedAt    *time.Time
	Archived       bool `gorm:"index"`
	AssignedUserID *int64
	DueDate        *time.Time     `gorm:"type:date"`
	Tags           []TodoTagModel `gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TodoModel) TableName() string { return "todos" }

// TodoTagModel una etiqueta de un to-do; Position conserva el orden de llegada.
type TodoTagModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	TodoID   int64  `gorm:"index;not null"`
	Tag      string `gorm:"size:255"`
	Position int
}

func (TodoTagModel) TableName() string { return "todo_tags" }

func resourceFromEntity(r *entity.Resource) ResourceModel {
	return ResourceModel{ID: r.ID, Name: r.Name}
}

func (m ResourceModel) toEntity() *entity.Resource {
	return &entity.Resource{ID: m.ID, Name: m.Name}
}

func todoFromEntity(t *entity.Todo) TodoModel {
	m := TodoModel{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Completed:      t.Completed,
		CompletedAt:    t.CompletedAt,
		Archived:       t.Archived,
		AssignedUserID: t.AssignedUserID,
		DueDate:        t.DueDate,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	m.Tags = tagModels(t.ID, t.Tags)
	return m
}

func tagModels(todoID int64, tags []string) []TodoTagModel {
	if len(tags) == 0 {
		return nil
	}
	out := make([]TodoTagModel, 0, len(tags))
	for i, tag := range tags {
		out = append(out, TodoTagModel{TodoID: todoID, Tag: tag, Position: i})
	}
	return out
}

func (m TodoModel) toEntity() *entity.Todo {
	t := &entity.Todo{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Completed:      m.Completed,
		CompletedAt:    m.CompletedAt,
		Archived:       m.Archived,
		AssignedUserID: m.AssignedUserID,
		DueDate:        m.DueDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if len(m.Tags) > 0 {
		t.Tags = make([]string, 0, len(m.Tags))
		for _, tag := range m.Tags {
			t.Tags = append(t.Tags, tag.Tag)
		}
	}
	return t
}
