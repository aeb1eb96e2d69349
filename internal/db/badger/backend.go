package badger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/db"
)

// ErrClosed is returned by Ping after Close.
var ErrClosed = errors.New("badger: database closed")

// Config selects an on-disk directory or an in-memory database.
type Config struct {
	Path     string
	InMemory bool
}

// Backend wraps an embedded BadgerDB instance.
type Backend struct {
	db *badger.DB
}

type zapAdapter struct {
	log *zap.SugaredLogger
}

var _ badger.Logger = (*zapAdapter)(nil)

func (a *zapAdapter) Errorf(msg string, items ...any)   { a.log.Errorf(msg, items...) }
func (a *zapAdapter) Warningf(msg string, items ...any) { a.log.Warnf(msg, items...) }
func (a *zapAdapter) Infof(msg string, items ...any)    { a.log.Debugf(msg, items...) }
func (a *zapAdapter) Debugf(msg string, items ...any)   { a.log.Debugf(msg, items...) }

// Open opens the database, creating the directory when needed.
func Open(cfg Config, logger *zap.Logger) (*Backend, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("path is required")
		}
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.Logger = &zapAdapter{log: logger.Named("badger").Sugar()}
	opts.Compression = options.None

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Backend{db: bdb}, nil
}

// Ping reports whether the database is open.
func (b *Backend) Ping(_ context.Context) error {
	if b.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

// WaitForReady returns once Ping succeeds. An embedded database is ready on open.
func (b *Backend) WaitForReady(ctx context.Context, timeout time.Duration) error {
	if err := b.Ping(ctx); err == nil {
		return nil
	}
	return db.WaitForReady(ctx, b, timeout)
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// Put stores one value.
func (b *Backend) Put(_ context.Context, key, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return &db.Error{Op: db.OpPut, Err: err}
	}
	return nil
}

// KV is one key/value pair for PutMulti.
type KV struct {
	Key   []byte
	Value []byte
}

// PutMulti stores many values through a write batch.
func (b *Backend) PutMulti(_ context.Context, items []KV) error {
	if len(items) == 0 {
		return nil
	}
	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	for _, it := range items {
		if err := wb.Set(it.Key, it.Value); err != nil {
			return &db.Error{Op: db.OpPut, Err: err}
		}
	}
	if err := wb.Flush(); err != nil {
		return &db.Error{Op: db.OpPut, Err: err}
	}
	return nil
}

// Get returns a copy of the value at key, or db.ErrKeyNotFound.
func (b *Backend) Get(_ context.Context, key []byte) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, db.ErrKeyNotFound
	}
	if err != nil {
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return out, nil
}

// ScanPrefix calls fn for every key with prefix, in key order. The value slice
// is only valid during the call.
func (b *Backend) ScanPrefix(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				return fn(item.Key(), val)
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &db.Error{Op: db.OpIterate, Err: err}
	}
	return nil
}
