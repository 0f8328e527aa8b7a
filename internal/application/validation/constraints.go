package validation

import "fmt"

// Kind tipo de restricción declarativa.
type Kind int

const (
	// NotBlank string obligatorio, no nulo ni en blanco.
	NotBlank Kind = iota
	// FutureOrPresent fecha hoy o posterior; nil es válido.
	FutureOrPresent
	// Min entero mayor o igual a Bound.
	Min
)

// Constraint una regla sobre un campo. Message vacío usa el mensaje por defecto.
type Constraint struct {
	Kind    Kind
	Message string
	Bound   int64
}

func Required(message string) Constraint {
	return Constraint{Kind: NotBlank, Message: message}
}

func NotInPast(message string) Constraint {
	return Constraint{Kind: FutureOrPresent, Message: message}
}

func AtLeast(bound int64) Constraint {
	return Constraint{Kind: Min, Bound: bound}
}

func (c Constraint) message(field string) string {
	if c.Message != "" {
		return c.Message
	}
	switch c.Kind {
	case NotBlank:
		return field + " is required"
	case FutureOrPresent:
		return field + " must not be in the past"
	case Min:
		return fmt.Sprintf("must be greater than or equal to %d", c.Bound)
	}
	return "is invalid"
}

// Field restricciones declaradas para un campo del payload T.
type Field[T any] struct {
	Name        string
	Value       func(T) any
	Constraints []Constraint
}

// Schema conjunto de campos de un tipo de petición. Target es el nombre del tipo
// usado en el resumen ("Validation failed for: <Target>").
type Schema[T any] struct {
	Target string
	Fields []Field[T]
}

// IntParam parámetro de query ya convertido a entero.
type IntParam struct {
	Name        string
	Value       int64
	Constraints []Constraint
}
