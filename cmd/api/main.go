package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/demo-apis/todo-api/docs"
	"github.com/demo-apis/todo-api/internal/application/usecase"
	"github.com/demo-apis/todo-api/internal/application/validation"
	"github.com/demo-apis/todo-api/internal/infrastructure/database"
	httpRouter "github.com/demo-apis/todo-api/internal/interfaces/http"
	"github.com/demo-apis/todo-api/pkg/config"
	"github.com/demo-apis/todo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, closeDB, err := database.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer closeDB()

	resourceRepo := database.NewResourceRepository(db)
	todoRepo := database.NewTodoRepository(db)

	// Datos demo solo con el perfil dev
	if cfg.App.DevProfile() {
		n, err := database.NewSeeder(todoRepo).SeedTodos(ctx, cfg.Seed.Count)
		if err != nil {
			log.Fatal().Err(err).Msg("carga de to-dos demo")
		}
		log.Info().Int("count", n).Msg("to-dos demo cargados")
	}

	mode := validation.Plain
	if cfg.Validation.DetailedErrors {
		mode = validation.Detailed
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		ResourceUC:  usecase.NewResourceUseCase(resourceRepo),
		TodoUC:      usecase.NewTodoUseCase(todoRepo),
		Validator:   validation.New(mode),
		Paging:      cfg.Paging,
		ServiceName: cfg.App.Name,
		SwaggerFile: "./docs/swagger.json",
	}, log.Zerolog())

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
