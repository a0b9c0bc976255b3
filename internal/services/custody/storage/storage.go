// Package storage defines persistence contracts for the custody journal.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrChainBroken indicates a stored event whose hash or chain link does not verify.
	ErrChainBroken = errors.New("event chain broken")
	// ErrInvalidPageToken indicates a page token this store did not issue.
	ErrInvalidPageToken = errors.New("invalid page token")
)

// Batch is everything one committed request persists.
type Batch struct {
	Events   []event.Event
	Balances map[address.Address]amount.Amount
	// Snapshot, when set, is written at the seq of the last event in the batch.
	Snapshot *Snapshot
}

// Snapshot stores encoded account state as of one journal position.
type Snapshot struct {
	AccountID string
	Seq       uint64
	State     json.RawMessage
	UpdatedAt time.Time
}

// EventQuery selects one page of journal events.
type EventQuery struct {
	AccountID string
	// Filter is an AIP-160 expression over type, actor_id, entity_type,
	// entity_id, request_id, seq and ts.
	Filter    string
	PageSize  int
	PageToken string
	// Descending lists newest events first.
	Descending bool
}

// EventPage is one page of journal events.
type EventPage struct {
	Events        []event.Event
	NextPageToken string
}

// Journal persists committed batches and serves the event history.
type Journal interface {
	Commit(ctx context.Context, batch Batch) ([]event.Event, error)
	ListEvents(ctx context.Context, query EventQuery) (EventPage, error)
	EventsAfter(ctx context.Context, accountID string, seq uint64) ([]event.Event, error)
	VerifyChain(ctx context.Context, accountID string) error
}

// BalanceStore persists the environment's balance ledger.
type BalanceStore interface {
	LoadBalances(ctx context.Context) (map[address.Address]amount.Amount, error)
	PutBalances(ctx context.Context, balances map[address.Address]amount.Amount) error
}

// SnapshotStore reads account snapshots.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, accountID string) (Snapshot, error)
}

// Store is the full custody persistence surface.
type Store interface {
	Journal
	BalanceStore
	SnapshotStore
	Close() error
}
