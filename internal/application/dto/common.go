package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/demo-apis/todo-api/internal/domain/page"
)

// ApiError cuerpo de error HTTP. Se construye una sola vez en el borde y no se modifica.
type ApiError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Errors    []string  `json:"errors,omitempty"`
	Path      string    `json:"path,omitempty"`
}

// SortResponse estado del orden en el sobre de página.
type SortResponse struct {
	Sorted   bool `json:"sorted"`
	Unsorted bool `json:"unsorted"`
	Empty    bool `json:"empty"`
}

// PageableResponse descriptor de la página solicitada.
type PageableResponse struct {
	PageNumber int          `json:"pageNumber"`
	PageSize   int          `json:"pageSize"`
	Offset     int64        `json:"offset"`
	Sort       SortResponse `json:"sort"`
	Paged      bool         `json:"paged"`
	Unpaged    bool         `json:"unpaged"`
}

// PageResponse sobre de página con la forma que esperan los clientes de Spring Data.
type PageResponse[T any] struct {
	Content          []T              `json:"content"`
	Pageable         PageableResponse `json:"pageable"`
	TotalElements    int64            `json:"totalElements"`
	TotalPages       int              `json:"totalPages"`
	First            bool             `json:"first"`
	Last             bool             `json:"last"`
	Size             int              `json:"size"`
	Number           int              `json:"number"`
	NumberOfElements int              `json:"numberOfElements"`
	Empty            bool             `json:"empty"`
	Sort             SortResponse     `json:"sort"`
}

// NewPageResponse construye el sobre a partir de una página del dominio.
func NewPageResponse[T any](p page.Page[T]) PageResponse[T] {
	sorted := p.Request.Sort.IsSorted()
	sort := SortResponse{Sorted: sorted, Unsorted: !sorted, Empty: !sorted}
	content := p.Content
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content: content,
		Pageable: PageableResponse{
			PageNumber: p.Request.Page,
			PageSize:   p.Request.Size,
			Offset:     p.Request.Offset(),
			Sort:       sort,
			Paged:      true,
		},
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		First:            p.First,
		Last:             p.Last,
		Size:             p.Request.Size,
		Number:           p.Request.Page,
		NumberOfElements: p.NumberOfElements,
		Empty:            p.Empty,
		Sort:             sort,
	}
}

// LocalDate fecha sin hora, serializada como "2006-01-02".
type LocalDate struct {
	time.Time
}

// NewLocalDate trunca t al día.
func NewLocalDate(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *LocalDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	d.Time = t
	return nil
}
