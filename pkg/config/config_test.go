package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "todo-api", cfg.App.Name)
	assert.False(t, cfg.App.DevProfile())
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "0.0.0.0:8081", cfg.HTTP.Addr())
	assert.True(t, cfg.Validation.DetailedErrors)
	assert.Equal(t, 10, cfg.Paging.DefaultSize)
	assert.Equal(t, 2000, cfg.Paging.MaxSize)
	assert.Equal(t, 12, cfg.Seed.Count)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_PROFILE", "DEV")
	v.Set("DB_DRIVER", "Postgres")
	v.Set("HTTP_PORT", "9090")
	v.Set("VALIDATION_DETAILED_ERRORS", "false")
	v.Set("PAGING_DEFAULT_SIZE", "25")
	v.Set("PAGING_MAX_SIZE", "5")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.True(t, cfg.App.DevProfile())
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Validation.DetailedErrors)
	assert.Equal(t, 25, cfg.Paging.DefaultSize)
	assert.Equal(t, 25, cfg.Paging.MaxSize, "el máximo nunca queda por debajo del tamaño por defecto")
}

func TestFromViper_RejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "h2")

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "h2")
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "todos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/todos?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
