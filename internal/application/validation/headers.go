package validation

import (
	"strings"

	"github.com/demo-apis/todo-api/internal/domain"
)

// HeaderSet headers de la petición en orden de llegada, con búsqueda sin distinguir mayúsculas.
type HeaderSet struct {
	order  []string
	values map[string]string
}

// NewHeaderSet construye el set a partir de pares nombre/valor.
func NewHeaderSet(pairs ...[2]string) HeaderSet {
	h := HeaderSet{values: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		h.Add(p[0], p[1])
	}
	return h
}

// Add agrega un header. Un nombre repetido concatena los valores con ", ".
func (h *HeaderSet) Add(name, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}
	key := strings.ToLower(name)
	if prev, ok := h.values[key]; ok {
		h.values[key] = prev + ", " + value
		return
	}
	h.order = append(h.order, name)
	h.values[key] = value
}

// Get devuelve el valor y si el header vino en la petición (aunque esté vacío).
func (h HeaderSet) Get(name string) (string, bool) {
	v, ok := h.values[strings.ToLower(name)]
	return v, ok
}

// Value valor del header o "" si no vino.
func (h HeaderSet) Value(name string) string {
	v, _ := h.Get(name)
	return v
}

// Names nombres tal como llegaron, en orden.
func (h HeaderSet) Names() []string {
	return append([]string(nil), h.order...)
}

// CheckRequired verifica todos los headers obligatorios y reporta juntos los ausentes o vacíos,
// en el orden de required. No registra nada: el llamador decide.
func CheckRequired(headers HeaderSet, required []string) error {
	var missing []string
	for _, name := range required {
		if v, ok := headers.Get(name); !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingHeadersError{Names: missing}
	}
	return nil
}

// RequireBound replica el enlace header a header del framework: el primer header
// que no vino en la petición se reporta solo. Los presentes pero vacíos pasan y
// quedan para CheckRequired.
func RequireBound(headers HeaderSet, required []string) error {
	for _, name := range required {
		if _, ok := headers.Get(name); !ok {
			return &domain.MissingHeaderError{Name: name}
		}
	}
	return nil
}
