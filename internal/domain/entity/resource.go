package entity

// Resource recurso simple identificado por un id elegido por el cliente.
type Resource struct {
	ID   string
	Name string
}
