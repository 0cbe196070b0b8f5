package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foorum/internal/client/repositories/kv"
	"github.com/dmitrijs2005/foorum/internal/dbx"
	"github.com/dmitrijs2005/foorum/internal/logging"
	"github.com/goccy/go-json"
)

// Entry is one key/value pair for Store.Write.
type Entry struct {
	Key   string
	Value any
}

// Store is the best-effort persistence surface the services depend on.
//
// Load decodes the value at key into dst and reports whether it did;
// absent keys, read failures and undecodable data all report false.
// Write and Remove never fail the caller: errors are logged and dropped.
type Store interface {
	Load(ctx context.Context, key string, dst any) bool
	Write(ctx context.Context, entries ...Entry)
	Remove(ctx context.Context, keys ...string)
}

// Get returns the value stored at key, or fallback when it is missing or
// malformed.
func Get[T any](ctx context.Context, s Store, key string, fallback T) T {
	var v T
	if !s.Load(ctx, key, &v) {
		return fallback
	}
	return v
}

// Set stores value at key, replacing any prior value.
func Set[T any](ctx context.Context, s Store, key string, value T) {
	s.Write(ctx, Entry{Key: key, Value: value})
}

// Adapter is the SQLite-backed Store. Values are JSON encoded.
type Adapter struct {
	db     *sql.DB
	logger logging.Logger
}

func NewAdapter(db *sql.DB, logger logging.Logger) *Adapter {
	return &Adapter{db: db, logger: logger.With("component", "storage")}
}

func (a *Adapter) repo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

func (a *Adapter) Load(ctx context.Context, key string, dst any) bool {
	raw, err := a.repo(a.db).Get(ctx, key)
	if err != nil {
		a.logger.Warn(ctx, "storage read failed", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		a.logger.Warn(ctx, "malformed stored state, using fallback", "key", key, "error", err)
		return false
	}
	return true
}

// Write encodes every entry first and then stores them in one transaction,
// so either all keys change or none do.
func (a *Adapter) Write(ctx context.Context, entries ...Entry) {
	if err := a.write(ctx, entries); err != nil {
		a.logger.Warn(ctx, "storage write failed", "keys", entryKeys(entries), "error", err)
	}
}

func (a *Adapter) write(ctx context.Context, entries []Entry) error {
	encoded := make([][]byte, len(entries))
	for i, e := range entries {
		b, err := json.Marshal(e.Value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Key, err)
		}
		encoded[i] = b
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repo(tx)
		for i, e := range entries {
			if err := repo.Set(ctx, e.Key, encoded[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *Adapter) Remove(ctx context.Context, keys ...string) {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repo(tx)
		for _, k := range keys {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		a.logger.Warn(ctx, "storage remove failed", "keys", keys, "error", err)
	}
}

// Keys reports every stored key with the size of its encoded value.
// A read failure is logged and yields an empty map.
func (a *Adapter) Keys(ctx context.Context) map[string]int {
	all, err := a.repo(a.db).List(ctx)
	if err != nil {
		a.logger.Warn(ctx, "storage list failed", "error", err)
		return map[string]int{}
	}

	sizes := make(map[string]int, len(all))
	for k, v := range all {
		sizes[k] = len(v)
	}
	return sizes
}

func entryKeys(entries []Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}
