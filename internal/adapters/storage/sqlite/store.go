// Package sqlite provides the SQLite-backed quote and voter stores.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// Options configures a Store.
type Options struct {
	// Ranker computes rank keys inside vote transactions. The zero
	// value uses the default epoch and day scale.
	Ranker domain.Ranker

	// RetryAttempts bounds retries of a vote transaction that loses
	// the write lock. Zero uses the default.
	RetryAttempts int

	// RetryBackoff is the base backoff between attempts; actual waits
	// add jitter. Zero uses the default.
	RetryBackoff time.Duration
}

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 25 * time.Millisecond
)

// Store persists quotes, votes, and voter records in SQLite. It
// implements ports.QuoteStore and ports.VoterStore.
type Store struct {
	db            *sql.DB
	ranker        domain.Ranker
	retryAttempts int
	retryBackoff  time.Duration
}

// Open opens (or creates) the database at path, configures pragmas,
// and applies pending migrations.
func Open(path string, opts Options) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	return newStore(sqlDB, opts)
}

// OpenMemory opens an in-memory database, for tests. The connection
// pool is pinned to a single connection so every query sees the same
// database.
func OpenMemory(opts Options) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	return newStore(sqlDB, opts)
}

func newStore(sqlDB *sql.DB, opts Options) (*Store, error) {
	if opts.RetryAttempts <= 0 {
		opts.RetryAttempts = defaultRetryAttempts
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = defaultRetryBackoff
	}
	if opts.Ranker == (domain.Ranker{}) {
		opts.Ranker = domain.NewRanker(domain.DefaultEpoch, domain.DefaultDayScale)
	}

	s := &Store{
		db:            sqlDB,
		ranker:        opts.Ranker,
		retryAttempts: opts.RetryAttempts,
		retryBackoff:  opts.RetryBackoff,
	}

	if err := s.configurePragmas(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ranker returns the ranker this store computes rank keys with.
func (s *Store) Ranker() domain.Ranker {
	return s.ranker
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// Check implements ports.HealthChecker with a ping against the
// database handle.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withWriteRetry runs fn, retrying a bounded number of times with
// jittered backoff when the database reports a lock conflict. Any
// other error aborts immediately.
func (s *Store) withWriteRetry(ctx context.Context, fn func() error) error {
	var err error

	for attempt := 0; attempt < s.retryAttempts; attempt++ {
		if attempt > 0 {
			backoff := s.retryBackoff * time.Duration(1<<(attempt-1))
			backoff += time.Duration(rand.Int63n(int64(s.retryBackoff)))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err = fn()
		if err == nil || !isLockConflict(err) {
			return err
		}
	}

	return domain.NewConflictError("store", fmt.Sprintf("write lock not acquired after %d attempts", s.retryAttempts))
}
