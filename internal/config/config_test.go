package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "API_BASE_PATH", "STORAGE_DRIVER", "DB_DSN",
		"MONGODB_URI", "MONGODB_DATABASE", "MONGO_TRANSACTIONS", "BADGER_PATH",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "APP_NAME", "MOCK_USERS", "MOCK_PETS",
		"MOCK_MAX_GENERATE",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Server.BasePath != "" {
		t.Fatalf("expected empty base path, got %q", cfg.Server.BasePath)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.Mocks.Pets != 100 || cfg.Mocks.Users != 50 || cfg.Mocks.MaxGenerate != 10_000 {
		t.Fatalf("unexpected mock counts %+v", cfg.Mocks)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid defaults, got %v", err)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9000"
  base_path: api/
  read_timeout: 2s
storage:
  driver: Postgres
  postgres:
    dsn: postgres://file
mocks:
  pets: 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("DB_DSN", "postgres://env")
	t.Setenv("MOCK_USERS", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("expected port from file, got %q", cfg.Server.Port)
	}
	if cfg.Server.BasePath != "/api" {
		t.Fatalf("expected normalized base path /api, got %q", cfg.Server.BasePath)
	}
	if cfg.Server.ReadTimeout != 2*time.Second {
		t.Fatalf("expected 2s read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Postgres.DSN != "postgres://env" {
		t.Fatalf("env should override file, got %q", cfg.Storage.Postgres.DSN)
	}
	if cfg.Mocks.Pets != 10 || cfg.Mocks.Users != 5 {
		t.Fatalf("unexpected mock counts %+v", cfg.Mocks)
	}
}

func TestLoad_ConfigFileEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("log:\n  format: json\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Log.Format)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = "abc"
	cfg.Log.Format = "xml"
	cfg.Storage.Driver = "cassandra"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"PORT", "LOG_FORMAT", "STORAGE_DRIVER"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}

func TestValidate_DriverRequirements(t *testing.T) {
	cases := []struct {
		driver string
		mutate func(*Config)
		want   string
	}{
		{DriverPostgres, func(c *Config) { c.Storage.Postgres.DSN = "" }, "DB_DSN"},
		{DriverMongo, func(c *Config) { c.Storage.Mongo.URI = "" }, "MONGODB_URI"},
		{DriverBadger, func(c *Config) { c.Storage.Badger.Path = "" }, "BADGER_PATH"},
	}
	for _, tc := range cases {
		cfg := Default()
		cfg.Storage.Driver = tc.driver
		tc.mutate(cfg)

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expected error mentioning %s, got %v", tc.driver, tc.want, err)
		}
	}
}

func TestValidate_MockLimits(t *testing.T) {
	cfg := Default()
	cfg.Mocks.MaxGenerate = 0
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "MOCK_MAX_GENERATE") {
		t.Fatalf("expected MOCK_MAX_GENERATE error, got %v", err)
	}

	cfg = Default()
	cfg.Mocks.MaxGenerate = 10
	cfg.Mocks.Pets = 11
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "must not exceed") {
		t.Fatalf("expected limit error, got %v", err)
	}

	clearEnv(t)
	t.Setenv("MOCK_MAX_GENERATE", "500")
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Mocks.MaxGenerate != 500 {
		t.Fatalf("expected max_generate from env, got %d", loaded.Mocks.MaxGenerate)
	}
}
