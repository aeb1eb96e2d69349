// Package setup is the composition root shared by the server, the CLI and
// the embeddable client: it opens the configured catalog backend and wires
// the usecase services on top of it.
package setup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/config"
	"github.com/kailas-cloud/sahayata/internal/db"
	dbBadger "github.com/kailas-cloud/sahayata/internal/db/badger"
	dbPostgres "github.com/kailas-cloud/sahayata/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/sahayata/internal/db/redis"
	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
	catalogrepo "github.com/kailas-cloud/sahayata/internal/repository/catalog"
)

// Catalog is the full read/write surface every backend repository offers.
type Catalog interface {
	ListAll(ctx context.Context) ([]scheme.Scheme, error)
	FindByPredicates(ctx context.Context, set predicate.Set, limit int) ([]scheme.Scheme, error)
	Get(ctx context.Context, id int64) (scheme.Scheme, error)
	Upsert(ctx context.Context, schemes []scheme.Scheme) error
}

// Backend is an opened catalog with its connection.
type Backend struct {
	Driver  string
	Catalog Catalog
	Pinger  db.Pinger
	close   func() error
}

// Close releases the underlying connection.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenCatalog connects the configured driver, waits for it to answer and,
// when a seed file is configured, upserts its records.
func OpenCatalog(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (*Backend, error) {
	b, err := open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.ReadinessTimeout) * time.Second
	ready, ok := b.Pinger.(interface {
		WaitForReady(ctx context.Context, timeout time.Duration) error
	})
	if ok {
		if err := ready.WaitForReady(ctx, timeout); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("catalog %s not ready: %w", cfg.Driver, err)
		}
	}

	if cfg.SeedFile != "" {
		n, err := Seed(ctx, b.Catalog, cfg.SeedFile)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		logger.Info("Catalog seeded", zap.String("file", cfg.SeedFile), zap.Int("schemes", n))
	}
	return b, nil
}

func open(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := dbPostgres.NewStore(ctx, dbPostgres.Config{DSN: cfg.DSN, MaxConns: cfg.MaxConns})
		if err != nil {
			return nil, fmt.Errorf("open postgres catalog: %w", err)
		}
		return &Backend{
			Driver:  cfg.Driver,
			Catalog: catalogrepo.NewPostgres(store, cfg.Table),
			Pinger:  store,
			close:   func() error { store.Close(); return nil },
		}, nil

	case config.DriverValkey, config.DriverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.Addrs, Password: cfg.Password})
		if err != nil {
			return nil, fmt.Errorf("open %s catalog: %w", cfg.Driver, err)
		}
		return &Backend{
			Driver:  cfg.Driver,
			Catalog: catalogrepo.NewHash(store, cfg.KeyPrefix),
			Pinger:  store,
			close:   func() error { store.Close(); return nil },
		}, nil

	case config.DriverBadger:
		store, err := dbBadger.Open(dbBadger.Config{Path: cfg.Path, InMemory: cfg.InMemory}, logger)
		if err != nil {
			return nil, fmt.Errorf("open badger catalog: %w", err)
		}
		return &Backend{
			Driver:  cfg.Driver,
			Catalog: catalogrepo.NewBadger(store),
			Pinger:  store,
			close:   store.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
}

// Seed upserts the records of a YAML fixture and returns how many were written.
func Seed(ctx context.Context, c Catalog, path string) (int, error) {
	schemes, err := catalogrepo.LoadFile(path)
	if err != nil {
		return 0, err
	}
	if err := c.Upsert(ctx, schemes); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(schemes), nil
}
