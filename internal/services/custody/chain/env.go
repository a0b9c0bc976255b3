package chain

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

// Receipt is what one committed request produced.
type Receipt struct {
	Events   []event.Event
	Balances map[address.Address]amount.Amount
}

// Committer persists a receipt. It returns the events as stored, with
// sequence numbers and hashes assigned.
type Committer interface {
	Commit(ctx context.Context, receipt Receipt) ([]event.Event, error)
}

// CommitterFunc adapts a function to Committer.
type CommitterFunc func(ctx context.Context, receipt Receipt) ([]event.Event, error)

// Commit implements Committer.
func (fn CommitterFunc) Commit(ctx context.Context, receipt Receipt) ([]event.Event, error) {
	return fn(ctx, receipt)
}

// Listener observes committed events.
type Listener func(events []event.Event)

// Env serializes requests over shared ledger and contract state.
type Env struct {
	mu        sync.Mutex
	balances  map[address.Address]amount.Amount
	contracts map[address.Address]Contract
	committer Committer
	logger    zerolog.Logger

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

// Option configures an Env.
type Option func(*Env)

// WithCommitter persists each successful request.
func WithCommitter(c Committer) Option {
	return func(e *Env) { e.committer = c }
}

// WithLogger sets the environment logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Env) { e.logger = l }
}

// NewEnv returns an empty environment.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		balances:  make(map[address.Address]amount.Amount),
		contracts: make(map[address.Address]Contract),
		listeners: make(map[int]Listener),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Deploy installs c at addr, replacing any previous contract.
func (e *Env) Deploy(addr address.Address, c Contract) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.contracts[addr] = c
}

// SetBalance writes a balance outside any request. Genesis and replay use it.
func (e *Env) SetBalance(addr address.Address, value amount.Amount) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setBalance(addr, value)
}

// Balance reads the committed balance of addr.
func (e *Env) Balance(addr address.Address) amount.Amount {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balances[addr]
}

// Subscribe registers l for committed events and returns a function that
// removes it.
func (e *Env) Subscribe(l Listener) func() {
	e.listenersMu.Lock()
	defer e.listenersMu.Unlock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = l
	return func() {
		e.listenersMu.Lock()
		defer e.listenersMu.Unlock()
		delete(e.listeners, id)
	}
}

// View runs fn while no request is in flight.
func (e *Env) View(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn()
}

// Transact runs fn as one atomic request. Any error from fn, or from the
// committer, reverts every change fn made.
func (e *Env) Transact(ctx context.Context, fn func(*Tx) error) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	receipt, err := e.transact(ctx, fn)
	if err != nil {
		return Receipt{}, err
	}
	if len(receipt.Events) > 0 {
		e.notify(receipt.Events)
	}
	return receipt, nil
}

func (e *Env) transact(ctx context.Context, fn func(*Tx) error) (Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx := &Tx{env: e, touched: make(map[address.Address]struct{})}
	if err := fn(tx); err != nil {
		tx.RevertTo(Savepoint{})
		return Receipt{}, err
	}

	receipt := Receipt{
		Events:   append([]event.Event(nil), tx.events...),
		Balances: make(map[address.Address]amount.Amount, len(tx.touched)),
	}
	for addr := range tx.touched {
		receipt.Balances[addr] = e.balances[addr]
	}
	if e.committer == nil || (len(receipt.Events) == 0 && len(receipt.Balances) == 0) {
		return receipt, nil
	}
	stored, err := e.committer.Commit(ctx, receipt)
	if err != nil {
		tx.RevertTo(Savepoint{})
		e.logger.Error().Err(err).Msg("commit failed, request reverted")
		return Receipt{}, fmt.Errorf("commit: %w", err)
	}
	receipt.Events = stored
	return receipt, nil
}

func (e *Env) notify(events []event.Event) {
	e.listenersMu.Lock()
	listeners := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.listenersMu.Unlock()
	for _, l := range listeners {
		l(events)
	}
}

func (e *Env) setBalance(addr address.Address, value amount.Amount) {
	if value.IsZero() {
		delete(e.balances, addr)
		return
	}
	e.balances[addr] = value
}

// Transfer moves value from one address to another as a single request.
func (e *Env) Transfer(ctx context.Context, from, to address.Address, value amount.Amount) (Receipt, error) {
	return e.Transact(ctx, func(tx *Tx) error {
		return tx.Call(ctx, Call{From: from, To: to, Value: value})
	})
}
