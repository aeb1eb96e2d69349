package sahayata

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/config"
	"github.com/kailas-cloud/sahayata/internal/setup"
)

// Client is the sahayata SDK entry point. It is safe for concurrent use.
type Client struct {
	backend *setup.Backend
	svc     *setup.Services
	obs     *observer
}

// New opens the configured catalog and builds the engine.
// The provided context bounds the readiness check and seeding.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cc := &clientConfig{}
	for _, o := range opts {
		o.apply(cc)
	}
	if cc.catalog.Driver == "" {
		return nil, errors.New("sahayata: catalog backend required (use WithPostgres, WithValkey, WithRedis or WithBadger)")
	}

	cfg := config.Config{Catalog: cc.catalog, Search: cc.search}
	cfg.ApplyDefaults()
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("sahayata: %w", err)
	}
	if err := cfg.Search.Validate(); err != nil {
		return nil, fmt.Errorf("sahayata: %w", err)
	}

	obs, err := newObserver(cc.logger, cc.metricsReg)
	if err != nil {
		return nil, err
	}

	logger := cc.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	backend, err := setup.OpenCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("sahayata: %w", err)
	}
	svc, err := setup.NewServices(backend, cfg.Search)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("sahayata: %w", err)
	}
	return &Client{backend: backend, svc: svc, obs: obs}, nil
}

// Close releases the catalog connection.
func (c *Client) Close() error {
	if c.backend == nil {
		return nil
	}
	if err := c.backend.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

// Driver names the catalog backend in use.
func (c *Client) Driver() string {
	return c.backend.Driver
}

// Seed upserts the records of a YAML fixture and returns how many were written.
func (c *Client) Seed(ctx context.Context, path string) (int, error) {
	done := c.obs.track("seed")
	n, err := setup.Seed(ctx, c.backend.Catalog, path)
	done(err)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return n, nil
}
