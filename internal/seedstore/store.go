// Package seedstore caches token seeds in SQLite.
//
// Token rows map a token ID to its seed and never change once written.
// The minted total is cached with a short TTL so new tokens are noticed
// without re-reading the source of truth on every request.
package seedstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/lobster"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// TotalTTL is how long a cached total stays valid unless WithTotalTTL
// says otherwise.
const TotalTTL = 120 * time.Second

var (
	// ErrNotFound is returned when a token seed or the total is not cached.
	ErrNotFound = errors.New("seedstore: not found")

	// ErrConflict is returned when a token already has a different seed.
	ErrConflict = errors.New("seedstore: seed already set")
)

const schema = `
CREATE TABLE IF NOT EXISTS token_seeds (
	token_id   INTEGER PRIMARY KEY,
	seed       INTEGER NOT NULL,
	created_at INTEGER NOT NULL DEFAULT (unixepoch())
);
CREATE TABLE IF NOT EXISTS counters (
	name       TEXT PRIMARY KEY,
	value      INTEGER NOT NULL,
	expires_at INTEGER NOT NULL
);`

// Store is a SQLite-backed seed cache. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
	ttl time.Duration
}

// Option customises Open.
type Option func(*Store)

// WithClock replaces time.Now, for TTL tests.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithTotalTTL sets how long SetTotal values stay valid. Non-positive
// values keep TotalTTL.
func WithTotalTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// Open opens (creating if needed) the cache database at path.
func Open(path string, opts ...Option) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("seedstore: mkdir: %w", err)
		}
		dsn += "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(10000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("seedstore: open: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("seedstore: schema: %w", err)
	}

	s := &Store{db: db, now: time.Now, ttl: TotalTTL}
	for _, o := range opts {
		o(s)
	}
	lobster.Logger().Debug("seedstore opened", "path", path)
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutSeed records the seed of token id. Writing the same seed again is a
// no-op; writing a different one returns ErrConflict.
func (s *Store) PutSeed(ctx context.Context, id int64, seed uint64) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO token_seeds (token_id, seed) VALUES (?, ?) ON CONFLICT(token_id) DO NOTHING`,
		id, int64(seed))
	if err != nil {
		return fmt.Errorf("seedstore: put %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}
	old, err := s.Seed(ctx, id)
	if err != nil {
		return err
	}
	if old != seed {
		return fmt.Errorf("%w: token %d", ErrConflict, id)
	}
	return nil
}

// PutSeeds records several seeds in one transaction. Existing rows are
// left untouched.
func (s *Store) PutSeeds(ctx context.Context, seeds map[int64]uint64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seedstore: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO token_seeds (token_id, seed) VALUES (?, ?) ON CONFLICT(token_id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seedstore: prepare: %w", err)
	}
	defer stmt.Close()

	for id, seed := range seeds {
		if _, err := stmt.ExecContext(ctx, id, int64(seed)); err != nil {
			return fmt.Errorf("seedstore: put %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seedstore: commit: %w", err)
	}
	return nil
}

// Seed returns the cached seed of token id, or ErrNotFound.
func (s *Store) Seed(ctx context.Context, id int64) (uint64, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, `SELECT seed FROM token_seeds WHERE token_id = ?`, id).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: token %d", ErrNotFound, id)
	}
	if err != nil {
		return 0, fmt.Errorf("seedstore: seed %d: %w", id, err)
	}
	return uint64(v), nil
}

// Seeds returns the cached seeds for tokens 1..total keyed by token ID.
// Tokens not cached are absent from the result.
func (s *Store) Seeds(ctx context.Context, total int) (map[int64]uint64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT token_id, seed FROM token_seeds WHERE token_id BETWEEN 1 AND ? ORDER BY token_id`, total)
	if err != nil {
		return nil, fmt.Errorf("seedstore: seeds: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]uint64)
	for rows.Next() {
		var id, v int64
		if err := rows.Scan(&id, &v); err != nil {
			return nil, fmt.Errorf("seedstore: scan: %w", err)
		}
		out[id] = uint64(v)
	}
	return out, rows.Err()
}

// Missing returns the token IDs in 1..total with no cached seed, in
// ascending order.
func (s *Store) Missing(ctx context.Context, total int) ([]int64, error) {
	have, err := s.Seeds(ctx, total)
	if err != nil {
		return nil, err
	}
	var missing []int64
	for id := int64(1); id <= int64(total); id++ {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// SetTotal caches the minted total for the store's TTL.
func (s *Store) SetTotal(ctx context.Context, total int) error {
	exp := s.now().Add(s.ttl).UnixNano()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO counters (name, value, expires_at) VALUES ('total', ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		total, exp)
	if err != nil {
		return fmt.Errorf("seedstore: set total: %w", err)
	}
	return nil
}

// Total returns the cached total, or ErrNotFound if it was never set or
// has expired.
func (s *Store) Total(ctx context.Context) (int, error) {
	var total int
	var exp int64
	err := s.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM counters WHERE name = 'total'`).Scan(&total, &exp)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: total", ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("seedstore: total: %w", err)
	}
	if s.now().UnixNano() >= exp {
		lobster.Logger().Debug("seedstore total expired")
		return 0, fmt.Errorf("%w: total expired", ErrNotFound)
	}
	return total, nil
}

// InvalidateTotal drops the cached total.
func (s *Store) InvalidateTotal(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM counters WHERE name = 'total'`); err != nil {
		return fmt.Errorf("seedstore: invalidate total: %w", err)
	}
	return nil
}
