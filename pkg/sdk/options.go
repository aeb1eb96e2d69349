package sahayata

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/config"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalog config.CatalogConfig
	search  config.SearchConfig

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithPostgres reads schemes from a PostgreSQL table.
func WithPostgres(dsn string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverPostgres
		c.catalog.DSN = dsn
	})
}

// WithTable overrides the PostgreSQL table name (default "schemes").
func WithTable(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Table = name
	})
}

// WithValkey reads schemes from Valkey hashes.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverValkey
		c.catalog.Addrs = []string{addr}
		c.catalog.Password = password
	})
}

// WithRedis reads schemes from Redis hashes.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverRedis
		c.catalog.Addrs = []string{addr}
		c.catalog.Password = password
	})
}

// WithKeyPrefix sets the hash key prefix for Valkey and Redis (default "sahayata:").
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.KeyPrefix = prefix
	})
}

// WithBadger stores schemes in an embedded Badger database at dir.
func WithBadger(dir string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverBadger
		c.catalog.Path = dir
		c.catalog.InMemory = false
	})
}

// WithInMemory keeps the catalog in an in-memory Badger store.
// Combine with WithSeedFile to load records.
func WithInMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverBadger
		c.catalog.InMemory = true
	})
}

// WithSeedFile upserts a YAML fixture into the catalog on startup.
func WithSeedFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.SeedFile = path
	})
}

// WithChatLimits sets how many matches a chat message ranks and how many
// are returned with the reply. Defaults: 10 and 3.
func WithChatLimits(limit, shown int) Option {
	return optionFunc(func(c *clientConfig) {
		c.search.Limit = limit
		c.search.Shown = shown
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
