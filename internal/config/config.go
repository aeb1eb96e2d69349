package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Catalog drivers.
const (
	DriverPostgres = "postgres"
	DriverValkey   = "valkey"
	DriverRedis    = "redis"
	DriverBadger   = "badger"
)

// Config holds the sahayata API configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
	CORS    CORSConfig    `yaml:"cors"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// CORSConfig holds browser origin settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CatalogConfig selects and connects the scheme catalog backend.
type CatalogConfig struct {
	Driver           string   `yaml:"driver"` // postgres, valkey, redis, badger (default: postgres)
	DSN              string   `yaml:"dsn"`    // postgres
	Table            string   `yaml:"table"`  // postgres
	MaxConns         int32    `yaml:"max_conns"`
	Addrs            []string `yaml:"addrs"` // valkey, redis
	Password         string   `yaml:"password"`
	KeyPrefix        string   `yaml:"key_prefix"`
	Path             string   `yaml:"path"` // badger
	InMemory         bool     `yaml:"in_memory"`
	SeedFile         string   `yaml:"seed_file"` // optional, loaded at startup into non-SQL backends
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// SearchConfig tunes the chat search.
type SearchConfig struct {
	Limit int `yaml:"limit"` // matches ranked per message
	Shown int `yaml:"shown"` // matches returned with the reply
}

// LoadDotEnv loads the first .env found in the working directory or its
// parents. Variables already set in the process win.
func LoadDotEnv() error {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse expands ${VAR} references, decodes YAML, applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Catalog.Driver == "" {
		c.Catalog.Driver = DriverPostgres
	}
	if c.Catalog.Table == "" {
		c.Catalog.Table = "schemes"
	}
	if c.Catalog.KeyPrefix == "" {
		c.Catalog.KeyPrefix = "sahayata:"
	}
	if c.Catalog.ReadinessTimeout <= 0 {
		c.Catalog.ReadinessTimeout = 10
	}
	if c.Search.Limit <= 0 {
		c.Search.Limit = 10
	}
	if c.Search.Shown <= 0 {
		c.Search.Shown = 3
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if slices.Contains(c.Auth.APIKeys, "") {
		return fmt.Errorf("auth.api_keys must not contain empty keys")
	}
	return nil
}

// Validate checks that the selected driver has its connection settings.
func (c CatalogConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.DSN == "" {
			return fmt.Errorf("catalog.dsn is required for driver %q", c.Driver)
		}
	case DriverValkey, DriverRedis:
		if len(c.Addrs) == 0 {
			return fmt.Errorf("catalog.addrs is required for driver %q", c.Driver)
		}
	case DriverBadger:
		if c.Path == "" && !c.InMemory {
			return fmt.Errorf("catalog.path or catalog.in_memory is required for driver %q", c.Driver)
		}
	default:
		return fmt.Errorf("catalog.driver must be one of %s, got %q",
			strings.Join([]string{DriverPostgres, DriverValkey, DriverRedis, DriverBadger}, ", "), c.Driver)
	}
	return nil
}

// Validate checks the chat search limits.
func (c SearchConfig) Validate() error {
	if c.Shown > c.Limit {
		return fmt.Errorf("search.shown (%d) must not exceed search.limit (%d)", c.Shown, c.Limit)
	}
	if c.Limit > 100 {
		return fmt.Errorf("search.limit must be at most 100, got %d", c.Limit)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
