package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// MissingHeaderError un único header obligatorio ausente, detectado al enlazar la petición.
type MissingHeaderError struct {
	Name string
}

func (e *MissingHeaderError) Error() string {
	return "Missing required header: " + e.Name
}

// MissingHeadersError todos los headers obligatorios ausentes o vacíos, en orden de declaración.
type MissingHeadersError struct {
	Names []string
}

func (e *MissingHeadersError) Error() string {
	return "Missing required headers: " + strings.Join(e.Names, " ")
}

func (e *MissingHeadersError) Unwrap() error { return ErrInvalidInput }

// ValidationKind distingue la validación del body de la de parámetros de query.
type ValidationKind int

const (
	BodyValidation ValidationKind = iota
	ParamValidation
)

// Violation una regla incumplida. Field vacío para errores a nivel de objeto.
type Violation struct {
	Field    string
	Message  string
	Rejected any
}

// ValidationError agrega todas las violaciones de una petición.
// Lines son los mensajes ya formateados (detallado o simple) en el mismo orden que Violations.
type ValidationError struct {
	Kind       ValidationKind
	Target     string
	Violations []Violation
	Lines      []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Lines, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Summary mensaje corto para la respuesta.
// Body: "Validation failed for: <Target>"; parámetros: todas las violaciones unidas con "; ".
func (e *ValidationError) Summary() string {
	if e.Kind == BodyValidation && e.Target != "" {
		return "Validation failed for: " + e.Target
	}
	return e.Error()
}

// NotFoundError entidad referenciada inexistente.
type NotFoundError struct {
	Entity string
	ID     string
	Msg    string
}

func (e *NotFoundError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
