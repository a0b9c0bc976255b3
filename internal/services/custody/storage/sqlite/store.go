// Package sqlite provides the SQLite-backed custody journal.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/custody/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
	"github.com/louisbranch/custody/internal/services/custody/storage"
	"github.com/louisbranch/custody/internal/services/custody/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists custody state in SQLite.
type Store struct {
	sqlDB    *sql.DB
	registry *event.Registry
	now      func() time.Time
}

var _ storage.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithEventRegistry validates every appended event against r.
func WithEventRegistry(r *event.Registry) Option {
	return func(s *Store) { s.registry = r }
}

// WithClock overrides the clock used for bookkeeping timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite custody store and applies embedded migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	s := &Store{sqlDB: sqlDB, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// Commit appends the batch events with sequence numbers and chained hashes,
// writes the touched balances and the snapshot, all in one transaction.
func (s *Store) Commit(ctx context.Context, batch storage.Batch) ([]event.Event, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin commit: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stored, err := s.appendEvents(ctx, tx, batch.Events)
	if err != nil {
		return nil, err
	}
	if err := s.putBalances(ctx, tx, batch.Balances); err != nil {
		return nil, err
	}
	if batch.Snapshot != nil {
		snap := *batch.Snapshot
		if n := len(stored); n > 0 {
			snap.Seq = stored[n-1].Seq
		}
		if err := s.putSnapshot(ctx, tx, snap); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return stored, nil
}

func (s *Store) appendEvents(ctx context.Context, tx *sql.Tx, events []event.Event) ([]event.Event, error) {
	stored := make([]event.Event, 0, len(events))
	type head struct {
		seq   uint64
		chain string
	}
	heads := make(map[string]head)

	for _, evt := range events {
		if s.registry != nil {
			validated, err := s.registry.ValidateForAppend(evt)
			if err != nil {
				return nil, err
			}
			evt = validated
		}
		if strings.TrimSpace(evt.AccountID) == "" {
			return nil, event.ErrAccountIDRequired
		}
		if evt.Timestamp.IsZero() {
			evt.Timestamp = s.now()
		}
		evt.Timestamp = evt.Timestamp.UTC().Truncate(time.Millisecond)
		if len(evt.PayloadJSON) == 0 {
			evt.PayloadJSON = json.RawMessage("{}")
		}

		h, ok := heads[evt.AccountID]
		if !ok {
			seq, chain, err := lastChainHead(ctx, tx, evt.AccountID)
			if err != nil {
				return nil, err
			}
			h = head{seq: seq, chain: chain}
		}

		hash, err := event.Hash(evt)
		if err != nil {
			return nil, fmt.Errorf("hash event: %w", err)
		}
		evt.Seq = h.seq + 1
		evt.Hash = hash
		evt.PrevHash = h.chain
		chain := event.ChainHash(evt.Seq, hash, h.chain)

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events (
			   account_id, seq, event_hash, prev_hash, chain_hash, ts,
			   event_type, actor_id, request_id, entity_type, entity_id, payload_json
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			evt.AccountID, evt.Seq, evt.Hash, evt.PrevHash, chain, toMillis(evt.Timestamp),
			string(evt.Type), evt.ActorID, evt.RequestID, evt.EntityType, evt.EntityID, string(evt.PayloadJSON),
		); err != nil {
			if isConstraintError(err) {
				return nil, fmt.Errorf("append event seq %d: concurrent writer: %w", evt.Seq, err)
			}
			return nil, fmt.Errorf("append event: %w", err)
		}
		heads[evt.AccountID] = head{seq: evt.Seq, chain: chain}
		stored = append(stored, evt)
	}
	return stored, nil
}

func lastChainHead(ctx context.Context, tx *sql.Tx, accountID string) (uint64, string, error) {
	var (
		seq   uint64
		chain string
	)
	err := tx.QueryRowContext(ctx,
		`SELECT seq, chain_hash FROM events WHERE account_id = ? ORDER BY seq DESC LIMIT 1`,
		accountID,
	).Scan(&seq, &chain)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", nil
	}
	if err != nil {
		return 0, "", fmt.Errorf("load chain head: %w", err)
	}
	return seq, chain, nil
}

// LoadBalances returns every non-zero stored balance.
func (s *Store) LoadBalances(ctx context.Context) (map[address.Address]amount.Amount, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT address, amount FROM balances`)
	if err != nil {
		return nil, fmt.Errorf("load balances: %w", err)
	}
	defer rows.Close()

	out := make(map[address.Address]amount.Amount)
	for rows.Next() {
		var rawAddr, rawAmount string
		if err := rows.Scan(&rawAddr, &rawAmount); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		addr, err := address.Parse(rawAddr)
		if err != nil {
			return nil, fmt.Errorf("stored balance address %q: %w", rawAddr, err)
		}
		value, err := amount.Parse(rawAmount)
		if err != nil {
			return nil, fmt.Errorf("stored balance amount %q: %w", rawAmount, err)
		}
		out[addr] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balances: %w", err)
	}
	return out, nil
}

// PutBalances upserts balances outside a commit. Zero balances are removed.
func (s *Store) PutBalances(ctx context.Context, balances map[address.Address]amount.Amount) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put balances: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if err := s.putBalances(ctx, tx, balances); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) putBalances(ctx context.Context, tx *sql.Tx, balances map[address.Address]amount.Amount) error {
	updatedAt := toMillis(s.now())
	for addr, value := range balances {
		if value.IsZero() {
			if _, err := tx.ExecContext(ctx, `DELETE FROM balances WHERE address = ?`, addr.Hex()); err != nil {
				return fmt.Errorf("delete balance %s: %w", addr, err)
			}
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO balances (address, amount, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(address) DO UPDATE SET amount = excluded.amount, updated_at = excluded.updated_at`,
			addr.Hex(), value.String(), updatedAt,
		); err != nil {
			return fmt.Errorf("put balance %s: %w", addr, err)
		}
	}
	return nil
}

// LoadSnapshot returns the latest snapshot of accountID.
func (s *Store) LoadSnapshot(ctx context.Context, accountID string) (storage.Snapshot, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Snapshot{}, err
	}
	var (
		snap      storage.Snapshot
		state     string
		updatedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT account_id, seq, state_json, updated_at FROM snapshots WHERE account_id = ?`,
		strings.TrimSpace(accountID),
	).Scan(&snap.AccountID, &snap.Seq, &state, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Snapshot{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	snap.State = json.RawMessage(state)
	snap.UpdatedAt = fromMillis(updatedAt)
	return snap, nil
}

func (s *Store) putSnapshot(ctx context.Context, tx *sql.Tx, snap storage.Snapshot) error {
	accountID := strings.TrimSpace(snap.AccountID)
	if accountID == "" {
		return fmt.Errorf("snapshot account id is required")
	}
	if !json.Valid(snap.State) {
		return fmt.Errorf("snapshot state must be valid json")
	}
	if snap.UpdatedAt.IsZero() {
		snap.UpdatedAt = s.now()
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (account_id, seq, state_json, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(account_id) DO UPDATE SET
		   seq = excluded.seq, state_json = excluded.state_json, updated_at = excluded.updated_at`,
		accountID, snap.Seq, string(snap.State), toMillis(snap.UpdatedAt),
	); err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

func isConstraintError(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	default:
		return false
	}
}
