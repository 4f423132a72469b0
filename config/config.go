package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	HTTP       HTTP
	PostgreSQL PostgreSQL
	Client     Client
	Logger     Logger
}

// HTTP represents a category store http server configuration.
type HTTP struct {
	Address      string        `env:"HTTP_ADDRESS" env-default:":3000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// PostgreSQL represents a postgreSQL database configuration.
type PostgreSQL struct {
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `env:"POSTGRES_DB" env-default:"categories"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
}

// Client represents a category client configuration.
type Client struct {
	APIURL  string        `env:"CM_CLIENT_API_URL" env-default:"http://localhost:3000"`
	Timeout time.Duration `env:"CM_CLIENT_TIMEOUT" env-default:"5s"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"CM_LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"CM_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"CM_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
