package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/demo-apis/todo-api/internal/domain"
	"github.com/demo-apis/todo-api/internal/domain/page"
)

var todoColumns = map[string]string{
	"id":             "id",
	"title":          "title",
	"description":    "description",
	"completed":      "completed",
	"archived":       "archived",
	"dueDate":        "due_date",
	"assignedUserId": "assigned_user_id",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

var resourceColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

// orderBy traduce el Sort a columnas permitidas y agrega el desempate por id.
func orderBy(sort page.Sort, columns map[string]string, entity string) (clause.OrderBy, error) {
	stable := sort.Stable("id")
	out := clause.OrderBy{Columns: make([]clause.OrderByColumn, 0, len(stable))}
	for _, o := range stable {
		col, ok := columns[o.Property]
		if !ok {
			msg := fmt.Sprintf("No property '%s' found for type '%s'", o.Property, entity)
			return clause.OrderBy{}, &domain.ValidationError{
				Kind:       domain.ParamValidation,
				Violations: []domain.Violation{{Field: "sort", Message: msg, Rejected: o.Property}},
				Lines:      []string{msg},
			}
		}
		out.Columns = append(out.Columns, clause.OrderByColumn{
			Column: clause.Column{Name: col},
			Desc:   o.Direction == page.DESC,
		})
	}
	return out, nil
}

func paginate(req page.Request) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(int(req.Offset())).Limit(req.Size)
	}
}
