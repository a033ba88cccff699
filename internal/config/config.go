package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

// Config agrupa toda la configuración de la app.
// Orden de precedencia: defaults < archivo YAML < variables de entorno.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Mocks   MocksConfig   `yaml:"mocks"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	App    string `yaml:"app"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
	Badger   BadgerConfig   `yaml:"badger"`
}

type MongoConfig struct {
	URI          string `yaml:"uri"`
	Database     string `yaml:"database"`
	Transactions bool   `yaml:"transactions"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type BadgerConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// MocksConfig: cantidades que devuelven GET /mocks/mockingpets y /mockingusers.
// MaxGenerate es el tope por cantidad de POST /mocks/generateData y del seed.
type MocksConfig struct {
	Users       int `yaml:"users"`
	Pets        int `yaml:"pets"`
	MaxGenerate int `yaml:"max_generate"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			App:    "pet-adoptions",
			Level:  "info",
			Format: "text",
		},
		Storage: StorageConfig{
			Driver: DriverMemory,
			Mongo: MongoConfig{
				URI:      "mongodb://localhost:27017",
				Database: "adoptions",
			},
			Badger: BadgerConfig{
				Path: "./data/badger",
			},
		},
		Mocks: MocksConfig{
			Users:       50,
			Pets:        100,
			MaxGenerate: 10_000,
		},
	}
}

// Load arma la configuración. Si path es vacío usa CONFIG_FILE (si existe).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.Server.BasePath = normalizeBasePath(cfg.Server.BasePath)
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.BasePath = getEnv("API_BASE_PATH", c.Server.BasePath)
	c.Server.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)

	c.Log.App = getEnv("APP_NAME", c.Log.App)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnv("LOG_FILE", c.Log.File)

	c.Storage.Driver = getEnv("STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.Mongo.URI = getEnv("MONGODB_URI", c.Storage.Mongo.URI)
	c.Storage.Mongo.Database = getEnv("MONGODB_DATABASE", c.Storage.Mongo.Database)
	c.Storage.Mongo.Transactions = getBoolEnv("MONGO_TRANSACTIONS", c.Storage.Mongo.Transactions)
	c.Storage.Postgres.DSN = getEnv("DB_DSN", c.Storage.Postgres.DSN)
	c.Storage.Badger.Path = getEnv("BADGER_PATH", c.Storage.Badger.Path)

	c.Mocks.Users = getIntEnv("MOCK_USERS", c.Mocks.Users)
	c.Mocks.Pets = getIntEnv("MOCK_PETS", c.Mocks.Pets)
	c.Mocks.MaxGenerate = getIntEnv("MOCK_MAX_GENERATE", c.Mocks.MaxGenerate)
}

// Validate devuelve todos los problemas juntos, o nil.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	} else if p, err := strconv.Atoi(c.Server.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid TCP port, got '%s'", c.Server.Port))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got '%s'", c.Log.Format))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverMongo:
		if c.Storage.Mongo.URI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required when STORAGE_DRIVER is mongo"))
		}
		if c.Storage.Mongo.Database == "" {
			errs = append(errs, errors.New("MONGODB_DATABASE is required when STORAGE_DRIVER is mongo"))
		}
	case DriverPostgres:
		if c.Storage.Postgres.DSN == "" {
			errs = append(errs, errors.New("DB_DSN is required when STORAGE_DRIVER is postgres"))
		}
	case DriverBadger:
		if !c.Storage.Badger.InMemory && c.Storage.Badger.Path == "" {
			errs = append(errs, errors.New("BADGER_PATH is required when STORAGE_DRIVER is badger"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be one of memory, mongo, postgres, badger, got '%s'", c.Storage.Driver))
	}

	if c.Mocks.Users < 0 || c.Mocks.Pets < 0 {
		errs = append(errs, errors.New("MOCK_USERS and MOCK_PETS must be non-negative"))
	}
	if c.Mocks.MaxGenerate <= 0 {
		errs = append(errs, fmt.Errorf("MOCK_MAX_GENERATE must be positive, got %d", c.Mocks.MaxGenerate))
	} else if c.Mocks.Users > c.Mocks.MaxGenerate || c.Mocks.Pets > c.Mocks.MaxGenerate {
		errs = append(errs, fmt.Errorf("MOCK_USERS and MOCK_PETS must not exceed MOCK_MAX_GENERATE (%d)", c.Mocks.MaxGenerate))
	}

	return errors.Join(errs...)
}

// Addr devuelve la dirección de escucha del server HTTP.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// normalizeBasePath deja "" o "/algo" sin barra final.
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return fallback
}
