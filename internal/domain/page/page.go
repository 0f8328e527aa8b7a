// Package page modela una porción acotada de un resultado ordenado más grande
// junto con los metadatos de su posición (número de página, totales, primera/última).
package page

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Direction sentido de ordenamiento.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection acepta "asc"/"desc" sin distinguir mayúsculas.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASC":
		return ASC, true
	case "DESC":
		return DESC, true
	}
	return "", false
}

// Order criterio de orden sobre una propiedad.
type Order struct {
	Property  string
	Direction Direction
}

// Sort lista ordenada de criterios; vacía significa sin orden explícito.
type Sort []Order

// By construye un Sort ascendente sobre las propiedades dadas.
func By(properties ...string) Sort {
	s := make(Sort, 0, len(properties))
	for _, p := range properties {
		s = append(s, Order{Property: p, Direction: ASC})
	}
	return s
}

func (s Sort) IsSorted() bool { return len(s) > 0 }

// Stable agrega el desempate por una clave única si no está ya en el orden,
// para que los límites de página sean deterministas entre llamadas.
func (s Sort) Stable(tieBreaker string) Sort {
	for _, o := range s {
		if o.Property == tieBreaker {
			return s
		}
	}
	out := make(Sort, 0, len(s)+1)
	out = append(out, s...)
	return append(out, Order{Property: tieBreaker, Direction: ASC})
}

func (s Sort) String() string {
	if len(s) == 0 {
		return "UNSORTED"
	}
	parts := make([]string, 0, len(s))
	for _, o := range s {
		parts = append(parts, fmt.Sprintf("%s: %s", o.Property, o.Direction))
	}
	return strings.Join(parts, ",")
}

var (
	ErrNegativePage = errors.New("page index must not be less than zero")
	ErrInvalidSize  = errors.New("page size must not be less than one")
)

// Request descriptor de página solicitada (índice base 0).
type Request struct {
	Page int
	Size int
	Sort Sort
}

// NewRequest valida índice y tamaño.
func NewRequest(page, size int, sort Sort) (Request, error) {
	if page < 0 {
		return Request{}, ErrNegativePage
	}
	if size < 1 {
		return Request{}, ErrInvalidSize
	}
	return Request{Page: page, Size: size, Sort: sort}, nil
}

// Offset posición del primer elemento de la página en el resultado completo.
// Se satura en math.MaxInt64 en lugar de desbordar.
func (r Request) Offset() int64 {
	if r.Page <= 0 || r.Size <= 0 {
		return 0
	}
	if int64(r.Page) > math.MaxInt64/int64(r.Size) {
		return math.MaxInt64
	}
	return int64(r.Page) * int64(r.Size)
}

// Page porción de resultados. Se construye una vez por petición y no se modifica.
type Page[T any] struct {
	Content          []T
	Request          Request
	TotalElements    int64
	TotalPages       int
	First            bool
	Last             bool
	NumberOfElements int
	Empty            bool
}

// Paginate calcula los metadatos de la página a partir del total de coincidencias
// y del contenido ya recortado. Los totales nunca se derivan del contenido:
// una página fuera de rango queda vacía con last=true y los totales del conjunto completo.
func Paginate[T any](total int64, req Request, content []T) Page[T] {
	if content == nil {
		content = []T{}
	}
	if total < 0 {
		total = 0
	}

	var totalPages int
	switch {
	case total == 0:
		totalPages = 0
	case req.Size < 1:
		totalPages = 1
	default:
		size := int64(req.Size)
		totalPages = int((total + size - 1) / size)
	}

	n := len(content)
	return Page[T]{
		Content:          content,
		Request:          req,
		TotalElements:    total,
		TotalPages:       totalPages,
		First:            req.Page == 0,
		Last:             req.Page >= totalPages-1,
		NumberOfElements: n,
		Empty:            n == 0,
	}
}

// Map transforma el contenido conservando los metadatos.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[U]{
		Content:          out,
		Request:          p.Request,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		First:            p.First,
		Last:             p.Last,
		NumberOfElements: p.NumberOfElements,
		Empty:            p.Empty,
	}
}
