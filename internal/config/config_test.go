package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8000},
		Catalog: CatalogConfig{DSN: "postgres://localhost/sahayata"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Catalog.Driver != DriverPostgres {
		t.Errorf("driver = %q, want %q", cfg.Catalog.Driver, DriverPostgres)
	}
	if cfg.Catalog.Table != "schemes" || cfg.Catalog.KeyPrefix != "sahayata:" {
		t.Errorf("table/prefix = %q/%q", cfg.Catalog.Table, cfg.Catalog.KeyPrefix)
	}
	if cfg.Search.Limit != 10 || cfg.Search.Shown != 3 {
		t.Errorf("search = %+v", cfg.Search)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("cors = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid postgres", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"postgres without dsn", func(c *Config) { c.Catalog.DSN = "" }, "catalog.dsn"},
		{"valkey without addrs", func(c *Config) { c.Catalog.Driver = DriverValkey }, "catalog.addrs"},
		{"valkey with addrs", func(c *Config) {
			c.Catalog.Driver = DriverValkey
			c.Catalog.Addrs = []string{"localhost:6379"}
		}, ""},
		{"badger without path", func(c *Config) { c.Catalog.Driver = DriverBadger }, "catalog.path"},
		{"badger in memory", func(c *Config) {
			c.Catalog.Driver = DriverBadger
			c.Catalog.InMemory = true
		}, ""},
		{"unknown driver", func(c *Config) { c.Catalog.Driver = "sqlite" }, "catalog.driver"},
		{"shown exceeds limit", func(c *Config) { c.Search.Shown = 20 }, "search.shown"},
		{"limit too large", func(c *Config) {
			c.Search.Limit = 101
		}, "search.limit"},
		{"empty api key", func(c *Config) { c.Auth.APIKeys = []string{"k1", ""} }, "auth.api_keys"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("SAHAYATA_TEST_DSN", "postgres://db/test")
	data := []byte(`
http:
  port: ${SAHAYATA_TEST_PORT:-8000}
catalog:
  driver: postgres
  dsn: ${SAHAYATA_TEST_DSN}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.HTTP.Port)
	}
	if cfg.Catalog.DSN != "postgres://db/test" {
		t.Errorf("dsn = %q", cfg.Catalog.DSN)
	}
}

func TestLoad_ShippedConfigs(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sahayata")
	for _, env := range []string{"local", "prod"} {
		t.Run(env, func(t *testing.T) {
			if _, err := Load(env); err != nil {
				t.Fatalf("Load(%s): %v", env, err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SAHAYATA_DOTENV_PROBE=yes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("SAHAYATA_DOTENV_PROBE", "")
	os.Unsetenv("SAHAYATA_DOTENV_PROBE")

	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SAHAYATA_DOTENV_PROBE"); got != "yes" {
		t.Errorf("probe = %q, want yes", got)
	}
}
