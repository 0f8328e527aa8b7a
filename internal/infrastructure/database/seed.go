package database

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/demo-apis/todo-api/internal/domain/entity"
	"github.com/demo-apis/todo-api/internal/domain/repository"
	"github.com/demo-apis/todo-api/pkg/logger"
)

// MaxSeedTodos cantidad de to-dos demo disponibles.
const MaxSeedTodos = 12

//go:embed seed/todos.yaml
var seedFile []byte

var seedUserIDs = []int64{101, 102, 103, 104, 105, 106}

type seedTodo struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

type seedData struct {
	Todos []seedTodo `yaml:"todos"`
}

// Seeder carga to-dos de demostración.
type Seeder struct {
	repo repository.TodoRepository
	now  func() time.Time
	rnd  *rand.Rand
}

// SeederOption configura el Seeder.
type SeederOption func(*Seeder)

// WithSeedClock fija el reloj usado para las fechas de vencimiento.
func WithSeedClock(now func() time.Time) SeederOption {
	return func(s *Seeder) { s.now = now }
}

// WithSeedRand fija la fuente aleatoria (tests).
func WithSeedRand(r *rand.Rand) SeederOption {
	return func(s *Seeder) { s.rnd = r }
}

// NewSeeder construye el Seeder.
func NewSeeder(repo repository.TodoRepository, opts ...SeederOption) *Seeder {
	s := &Seeder{
		repo: repo,
		now:  time.Now,
		rnd:  rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedTodos inserta entre 1 y MaxSeedTodos to-dos si el almacén está vacío.
// Cada uno vence entre 1 y 30 días después de hoy y queda asignado a un usuario demo.
// Devuelve cuántos insertó (0 si ya había datos).
func (s *Seeder) SeedTodos(ctx context.Context, count int) (int, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		log.Info().Int64("existing", existing).Msg("ya existen to-dos, se omite la carga demo")
		return 0, nil
	}

	var data seedData
	if err := yaml.Unmarshal(seedFile, &data); err != nil {
		return 0, fmt.Errorf("leer seed/todos.yaml: %w", err)
	}

	count = max(1, min(count, MaxSeedTodos, len(data.Todos)))
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	todos := make([]*entity.Todo, 0, count)
	for _, st := range data.Todos[:count] {
		due := today.AddDate(0, 0, s.rnd.IntN(30)+1)
		user := seedUserIDs[s.rnd.IntN(len(seedUserIDs))]
		todos = append(todos, &entity.Todo{
			Title:          st.Title,
			Description:    st.Description,
			Tags:           st.Tags,
			DueDate:        &due,
			AssignedUserID: &user,
		})
	}

	if err := s.repo.SaveAll(ctx, todos); err != nil {
		return 0, err
	}
	for _, t := range todos {
		log.Debug().
			Int64("id", t.ID).
			Str("title", t.Title).
			Str("due", t.DueDate.Format(time.DateOnly)).
			Int64("assigned_to", *t.AssignedUserID).
			Msg("to-do demo insertado")
	}
	log.Info().Int("count", len(todos)).Msg("carga demo completa")
	return len(todos), nil
}
