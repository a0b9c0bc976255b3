package chain

import (
	"context"
	"fmt"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

// Tx is the in-flight state of one request. It is only valid inside the
// Transact callback that received it.
type Tx struct {
	env     *Env
	undo    []func()
	events  []event.Event
	touched map[address.Address]struct{}
	depth   int
}

// Savepoint marks a position a Tx can roll back to.
type Savepoint struct {
	undo   int
	events int
}

// Savepoint returns the current position.
func (tx *Tx) Savepoint() Savepoint {
	return Savepoint{undo: len(tx.undo), events: len(tx.events)}
}

// RevertTo undoes every change recorded after sp, newest first, and drops the
// events emitted after it.
func (tx *Tx) RevertTo(sp Savepoint) {
	for i := len(tx.undo) - 1; i >= sp.undo; i-- {
		tx.undo[i]()
	}
	tx.undo = tx.undo[:sp.undo]
	tx.events = tx.events[:sp.events]
}

// Record registers fn to run if the enclosing frame reverts.
func (tx *Tx) Record(fn func()) {
	tx.undo = append(tx.undo, fn)
}

// Emit appends events to the request's receipt.
func (tx *Tx) Emit(events ...event.Event) {
	tx.events = append(tx.events, events...)
}

// Events returns the events emitted so far.
func (tx *Tx) Events() []event.Event {
	return append([]event.Event(nil), tx.events...)
}

// Balance returns the in-flight balance of addr.
func (tx *Tx) Balance(addr address.Address) amount.Amount {
	return tx.env.balances[addr]
}

// Depth is the current call nesting, zero at the top of a request.
func (tx *Tx) Depth() int {
	return tx.depth
}

// Call moves value from call.From to call.To and runs the contract deployed
// at call.To, if any. A failing frame is reverted and reported as a
// *DispatchError.
func (tx *Tx) Call(ctx context.Context, call Call) error {
	if tx.depth >= MaxCallDepth {
		return &DispatchError{Call: call, Err: ErrCallDepth}
	}
	if err := ctx.Err(); err != nil {
		return &DispatchError{Call: call, Err: err}
	}
	sp := tx.Savepoint()
	if err := tx.transfer(call.From, call.To, call.Value); err != nil {
		tx.RevertTo(sp)
		return &DispatchError{Call: call, Err: err}
	}
	contract, ok := tx.env.contracts[call.To]
	if !ok {
		return nil
	}

	tx.depth++
	err := contract.Receive(ctx, tx, call)
	tx.depth--
	if err != nil {
		tx.RevertTo(sp)
		return &DispatchError{Call: call, Err: err}
	}
	return nil
}

func (tx *Tx) transfer(from, to address.Address, value amount.Amount) error {
	if value.IsZero() || from == to {
		return nil
	}
	fromBalance := tx.env.balances[from]
	rest, ok := fromBalance.Sub(value)
	if !ok {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientFunds, from, fromBalance, value)
	}
	toBalance := tx.env.balances[to]
	credited, ok := toBalance.Add(value)
	if !ok {
		return fmt.Errorf("credit %s: %w", to, amount.ErrOverflow)
	}
	tx.setBalance(from, rest, fromBalance)
	tx.setBalance(to, credited, toBalance)
	return nil
}

func (tx *Tx) setBalance(addr address.Address, value, previous amount.Amount) {
	tx.touched[addr] = struct{}{}
	tx.env.setBalance(addr, value)
	tx.Record(func() { tx.env.setBalance(addr, previous) })
}
