package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/demo-apis/todo-api/internal/domain"
)

// Mode formato de las líneas de error del body.
type Mode int

const (
	// Detailed "Field '<campo>': <mensaje> (rejected value: <valor>)".
	Detailed Mode = iota
	// Plain solo "<mensaje>".
	Plain
)

const tagFutureOrPresent = "future_or_present"

// Validator evalúa restricciones declarativas. Es seguro para uso concurrente.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
	mode     Mode
}

// Option configura el Validator.
type Option func(*Validator)

// WithClock fija el reloj usado para las reglas de fecha.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New construye el validador con el modo de formato indicado.
func New(mode Mode, opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      time.Now,
		mode:     mode,
	}
	for _, opt := range opts {
		opt(v)
	}

	_ = v.validate.RegisterValidation(tagFutureOrPresent, func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !dateOf(t).Before(dateOf(v.now()))
	})
	return v
}

// Mode formato configurado.
func (v *Validator) Mode() Mode { return v.mode }

// Check evalúa todas las restricciones del schema sin cortar en la primera falla.
func Check[T any](v *Validator, schema Schema[T], payload T) []domain.Violation {
	var out []domain.Violation
	for _, f := range schema.Fields {
		value := f.Value(payload)
		for _, c := range f.Constraints {
			if v.satisfies(c, value) {
				continue
			}
			out = append(out, domain.Violation{
				Field:    f.Name,
				Message:  c.message(f.Name),
				Rejected: value,
			})
		}
	}
	return out
}

// Validate devuelve nil o un *domain.ValidationError con todas las violaciones del body.
func Validate[T any](v *Validator, schema Schema[T], payload T) error {
	return v.BodyError(schema.Target, Check(v, schema, payload))
}

// BodyError arma el error de validación del body con las líneas en el modo configurado.
func (v *Validator) BodyError(target string, violations []domain.Violation) error {
	if len(violations) == 0 {
		return nil
	}
	lines := make([]string, 0, len(violations))
	for _, vi := range violations {
		lines = append(lines, v.formatBody(target, vi))
	}
	return &domain.ValidationError{
		Kind:       domain.BodyValidation,
		Target:     target,
		Violations: violations,
		Lines:      lines,
	}
}

// CheckParams evalúa las cotas de los parámetros de query.
func (v *Validator) CheckParams(params ...IntParam) []domain.Violation {
	var out []domain.Violation
	for _, p := range params {
		for _, c := range p.Constraints {
			if v.satisfies(c, p.Value) {
				continue
			}
			out = append(out, domain.Violation{
				Field:    p.Name,
				Message:  fmt.Sprintf("Parameter '%s' %s", p.Name, c.message(p.Name)),
				Rejected: p.Value,
			})
		}
	}
	return out
}

// ParamsError arma el error de parámetros; el mensaje une todas las violaciones con "; ".
func ParamsError(violations []domain.Violation) error {
	if len(violations) == 0 {
		return nil
	}
	lines := make([]string, 0, len(violations))
	for _, vi := range violations {
		lines = append(lines, vi.Message)
	}
	return &domain.ValidationError{
		Kind:       domain.ParamValidation,
		Violations: violations,
		Lines:      lines,
	}
}

func (v *Validator) satisfies(c Constraint, value any) bool {
	switch c.Kind {
	case NotBlank:
		s, ok := stringValue(value)
		if !ok {
			return false
		}
		return v.validate.Var(strings.TrimSpace(s), "required") == nil
	case FutureOrPresent:
		t, ok := timeValue(value)
		if !ok {
			return true
		}
		return v.validate.Var(t, tagFutureOrPresent) == nil
	case Min:
		n, ok := intValue(value)
		if !ok {
			return false
		}
		return v.validate.Var(n, fmt.Sprintf("min=%d", c.Bound)) == nil
	}
	return true
}

func (v *Validator) formatBody(target string, vi domain.Violation) string {
	if v.mode == Plain {
		return vi.Message
	}
	if vi.Field == "" {
		return fmt.Sprintf("Object '%s': %s", target, vi.Message)
	}
	return fmt.Sprintf("Field '%s': %s (rejected value: %s)", vi.Field, vi.Message, FormatRejected(vi.Rejected))
}

// FormatRejected representación del valor rechazado: "null" para nil, fechas como 2006-01-02.
func FormatRejected(value any) string {
	if isNil(value) {
		return "null"
	}
	if t, ok := timeValue(value); ok {
		return t.Format(time.DateOnly)
	}
	if s, ok := stringValue(value); ok {
		return s
	}
	return fmt.Sprint(value)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func stringValue(value any) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}

func timeValue(value any) (time.Time, bool) {
	switch t := value.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	}
	return time.Time{}, false
}

func intValue(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case *int64:
		if n == nil {
			return 0, false
		}
		return *n, true
	}
	return 0, false
}
