package http

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/internal/domain"
	"github.com/demo-apis/todo-api/internal/domain/page"
)

const malformedBodyMessage = "Malformed JSON request body"

// PageableConfig valores por defecto de un listado paginado.
type PageableConfig struct {
	DefaultSize int
	MaxSize     int
	DefaultSort page.Sort
	// Sortable propiedades aceptadas en sort; Entity nombra el tipo en el error.
	Sortable []string
	Entity   string
}

// parsePageable lee page, size y sort sin rechazar valores fuera de rango:
// page inválido, negativo o fuera de int32 queda en 0, size inválido o < 1 toma el default y se recorta a MaxSize.
// sort se puede repetir ("sort=title,desc&sort=id"); sin sort se usa DefaultSort.
func parsePageable(c *fiber.Ctx, cfg PageableConfig) (page.Request, error) {
	pageNum, err := strconv.ParseInt(strings.TrimSpace(c.Query("page")), 10, 32)
	if err != nil || pageNum < 0 {
		pageNum = 0
	}

	size, err := strconv.ParseInt(strings.TrimSpace(c.Query("size")), 10, 32)
	if err != nil || size < 1 {
		size = int64(cfg.DefaultSize)
	}
	if cfg.MaxSize > 0 && size > int64(cfg.MaxSize) {
		size = int64(cfg.MaxSize)
	}

	var sort page.Sort
	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		orders, err := parseSort(string(raw), cfg)
		if err != nil {
			return page.Request{}, err
		}
		sort = append(sort, orders...)
	}
	if !sort.IsSorted() {
		sort = cfg.DefaultSort
	}
	return page.NewRequest(int(pageNum), int(size), sort)
}

// parseSort interpreta "prop1,prop2,dir": la dirección final aplica a todas las propiedades.
func parseSort(raw string, cfg PageableConfig) (page.Sort, error) {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	dir := page.ASC
	if d, ok := page.ParseDirection(tokens[len(tokens)-1]); ok {
		dir = d
		tokens = tokens[:len(tokens)-1]
	}

	out := make(page.Sort, 0, len(tokens))
	for _, prop := range tokens {
		if len(cfg.Sortable) > 0 && !slices.Contains(cfg.Sortable, prop) {
			return nil, unknownSortProperty(prop, cfg.Entity)
		}
		out = append(out, page.Order{Property: prop, Direction: dir})
	}
	return out, nil
}

func unknownSortProperty(prop, entity string) error {
	msg := fmt.Sprintf("No property '%s' found for type '%s'", prop, entity)
	return &domain.ValidationError{
		Kind:       domain.ParamValidation,
		Violations: []domain.Violation{{Field: "sort", Message: msg, Rejected: prop}},
		Lines:      []string{msg},
	}
}

// strictPage exige page y size explícitos y enteros, con page >= 0 y size >= 1.
// Todas las violaciones se reportan juntas.
func strictPage(c *fiber.Ctx, v *validation.Validator, sort page.Sort) (page.Request, error) {
	return intPage(c, v, sort, nil)
}

// defaultedPage como strictPage pero con page y size opcionales (0 y defaultSize).
func defaultedPage(c *fiber.Ctx, v *validation.Validator, sort page.Sort, defaultSize int) (page.Request, error) {
	return intPage(c, v, sort, map[string]int64{"page": 0, "size": int64(defaultSize)})
}

func intPage(c *fiber.Ctx, v *validation.Validator, sort page.Sort, defaults map[string]int64) (page.Request, error) {
	bounds := []validation.IntParam{
		{Name: "page", Constraints: []validation.Constraint{validation.AtLeast(0)}},
		{Name: "size", Constraints: []validation.Constraint{validation.AtLeast(1)}},
	}

	var violations []domain.Violation
	parsed := make([]validation.IntParam, 0, len(bounds))
	for _, p := range bounds {
		raw := strings.TrimSpace(c.Query(p.Name))
		if raw == "" {
			def, ok := defaults[p.Name]
			if !ok {
				violations = append(violations, paramViolation(p.Name, "is required", nil))
				continue
			}
			p.Value = def
			parsed = append(parsed, p)
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			violations = append(violations, paramViolation(p.Name, "must be an integer", raw))
			continue
		}
		p.Value = n
		parsed = append(parsed, p)
	}
	violations = append(violations, v.CheckParams(parsed...)...)
	if err := validation.ParamsError(violations); err != nil {
		return page.Request{}, err
	}

	values := make(map[string]int, len(parsed))
	for _, p := range parsed {
		values[p.Name] = int(p.Value)
	}
	return page.NewRequest(values["page"], values["size"], sort)
}

func paramViolation(name, msg string, rejected any) domain.Violation {
	return domain.Violation{
		Field:    name,
		Message:  fmt.Sprintf("Parameter '%s' %s", name, msg),
		Rejected: rejected,
	}
}

// bindBody decodifica el body JSON y evalúa las restricciones del schema.
// Un body ilegible se reporta como error de validación del mismo tipo.
func bindBody[T any](c *fiber.Ctx, v *validation.Validator, schema validation.Schema[T]) (T, error) {
	var in T
	if err := decodeBody(c, &in, schema.Target); err != nil {
		return in, err
	}
	return in, validation.Validate(v, schema, in)
}

// decodeBody decodifica el body JSON sin validar restricciones.
func decodeBody(c *fiber.Ctx, out any, target string) error {
	if err := c.BodyParser(out); err != nil {
		return &domain.ValidationError{
			Kind:       domain.BodyValidation,
			Target:     target,
			Violations: []domain.Violation{{Message: malformedBodyMessage}},
			Lines:      []string{malformedBodyMessage},
		}
	}
	return nil
}

// optionalQuery devuelve nil si el parámetro no vino en la petición.
func optionalQuery(c *fiber.Ctx, name string) *string {
	if !c.Context().QueryArgs().Has(name) {
		return nil
	}
	s := c.Query(name)
	return &s
}
