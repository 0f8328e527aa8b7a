package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/demo-apis/todo-api/pkg/config"
)

// Open abre la base según DB_DRIVER y aplica las migraciones.
// El close devuelto libera la conexión (y el pool pgx si aplica).
func Open(ctx context.Context, cfg config.DBConfig) (*gorm.DB, func(), error) {
	gcfg := &gorm.Config{Logger: newGormLogger()}

	var (
		db      *gorm.DB
		err     error
		cleanup = func() {}
	)
	switch cfg.Driver {
	case "postgres":
		pool, perr := NewPool(ctx, cfg)
		if perr != nil {
			return nil, nil, perr
		}
		sqlDB := stdlib.OpenDBFromPool(pool)
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gcfg)
		cleanup = func() {
			_ = sqlDB.Close()
			pool.Close()
		}
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
		if err == nil && strings.Contains(cfg.SQLitePath, "memory") {
			// una base en memoria vive mientras viva su conexión
			if sqlDB, derr := db.DB(); derr == nil {
				sqlDB.SetMaxOpenConns(1)
				sqlDB.SetConnMaxLifetime(0)
			}
		}
		cleanup = func() {
			if sqlDB, derr := db.DB(); derr == nil {
				_ = sqlDB.Close()
			}
		}
	default:
		return nil, nil, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("abrir base (%s): %w", cfg.Driver, err)
	}

	if err := Migrate(ctx, db); err != nil {
		cleanup()
		return nil, nil, err
	}
	return db, cleanup, nil
}

// Migrate crea o actualiza las tablas de recursos y to-dos.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&ResourceModel{}, &TodoModel{}, &TodoTagModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// zerologWriter redirige el logger de gorm al logger global.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	log.Debug().Str("component", "gorm").Msgf(format, args...)
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(zerologWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
