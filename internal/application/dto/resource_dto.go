package dto

import "github.com/demo-apis/todo-api/internal/application/validation"

// ResourceRequest entrada para crear un recurso.
type ResourceRequest struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// ResourceRequestSchema restricciones de ResourceRequest.
var ResourceRequestSchema = validation.Schema[ResourceRequest]{
	Target: "ResourceRequest",
	Fields: []validation.Field[ResourceRequest]{
		{
			Name:        "id",
			Value:       func(r ResourceRequest) any { return r.ID },
			Constraints: []validation.Constraint{validation.Required("id is required")},
		},
		{
			Name:        "name",
			Value:       func(r ResourceRequest) any { return r.Name },
			Constraints: []validation.Constraint{validation.Required("name is required")},
		},
	},
}

// ResourceResponse salida de un recurso.
type ResourceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
