package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	DB         DBConfig
	HTTP       HTTPConfig
	Validation ValidationConfig
	Paging     PagingConfig
	Seed       SeedConfig
	Log        LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Profile string // "dev" activa la carga de datos demo
}

// DevProfile indica si el perfil activo es el de desarrollo.
func (c AppConfig) DevProfile() bool {
	return strings.EqualFold(c.Profile, "dev")
}

// DBConfig configuración de persistencia.
// Driver "sqlite" (por defecto, en memoria) o "postgres". Para postgres, si DatabaseURL no está vacío
// se usa como connection string completo.
type DBConfig struct {
	Driver      string
	SQLitePath  string
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ValidationConfig controla el formato de los errores de validación del body.
// DetailedErrors=true produce "Field 'x': msg (rejected value: v)"; false solo el mensaje.
type ValidationConfig struct {
	DetailedErrors bool
}

// PagingConfig valores por defecto para listados paginados.
type PagingConfig struct {
	DefaultSize int
	MaxSize     int
}

// SeedConfig cantidad de to-dos demo a insertar con el perfil dev.
type SeedConfig struct {
	Count int
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "todo-api"),
			Profile: getString(v, "APP_PROFILE", ""),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", "sqlite")),
			SQLitePath:  getString(v, "DB_SQLITE_PATH", "file::memory:?cache=shared"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "todos"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		Validation: ValidationConfig{
			DetailedErrors: getBool(v, "VALIDATION_DETAILED_ERRORS", true),
		},
		Paging: PagingConfig{
			DefaultSize: getInt(v, "PAGING_DEFAULT_SIZE", 10),
			MaxSize:     getInt(v, "PAGING_MAX_SIZE", 2000),
		},
		Seed: SeedConfig{
			Count: getInt(v, "APP_INITIAL_TODO_COUNT", 12),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	switch cfg.DB.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("DB_DRIVER no soportado: %q", cfg.DB.Driver)
	}
	if cfg.Paging.DefaultSize < 1 {
		return nil, fmt.Errorf("PAGING_DEFAULT_SIZE debe ser >= 1, recibido %d", cfg.Paging.DefaultSize)
	}
	if cfg.Paging.MaxSize < cfg.Paging.DefaultSize {
		cfg.Paging.MaxSize = cfg.Paging.DefaultSize
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
