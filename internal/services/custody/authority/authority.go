// Package authority binds the account aggregate to the execution
// environment. It owns the live account state, runs commands through the
// engine and dispatches authorized calls.
package authority

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/platform/id"
	"github.com/louisbranch/custody/internal/platform/requestctx"
	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
	"github.com/louisbranch/custody/internal/services/custody/domain/engine"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

const tracerName = "github.com/louisbranch/custody/internal/services/custody/authority"

// Authority is the single owner of account state.
//
// All reads and writes go through the environment's serialization, so the
// state field is never accessed concurrently.
type Authority struct {
	env     *chain.Env
	handler engine.Handler[account.State]
	state   account.State
	logger  zerolog.Logger
	tracer  trace.Tracer
}

// Option configures an Authority.
type Option func(*Authority)

// WithLogger sets the authority logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Authority) { a.logger = l }
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Authority) { a.handler.Now = now }
}

// New returns an uninitialized Authority bound to env.
func New(env *chain.Env, opts ...Option) (*Authority, error) {
	if env == nil {
		return nil, errors.New("environment is required")
	}
	handler, err := account.NewHandler(time.Now)
	if err != nil {
		return nil, fmt.Errorf("account handler: %w", err)
	}
	a := &Authority{
		env:     env,
		handler: handler,
		logger:  zerolog.Nop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Restore replaces the live state with a replayed snapshot and deploys the
// account contract at its address.
func (a *Authority) Restore(state account.State) {
	a.env.View(func() { a.state = state })
	if state.Initialized {
		a.env.Deploy(state.Address, a)
	}
}

// Replay folds stored events onto the live state.
func (a *Authority) Replay(events []event.Event) error {
	var err error
	a.env.View(func() {
		next := a.state
		for _, evt := range events {
			next, err = account.Fold(next, evt)
			if err != nil {
				err = fmt.Errorf("replay seq %d: %w", evt.Seq, err)
				return
			}
		}
		a.state = next
	})
	if err != nil {
		return err
	}
	st := a.State()
	if st.Initialized {
		a.env.Deploy(st.Address, a)
	}
	return nil
}

// State returns the committed account state. Callers must not mutate its maps.
func (a *Authority) State() account.State {
	var st account.State
	a.env.View(func() { st = a.state })
	return st
}

// LiveState returns the state without taking the environment lock. It is
// only safe inside a request, such as from a chain.Committer.
func (a *Authority) LiveState() account.State {
	return a.state
}

// Address returns the account's own address.
func (a *Authority) Address() address.Address {
	return a.State().Address
}

// Owner returns the current owner.
func (a *Authority) Owner() address.Address {
	return a.State().Owner
}

// Allowance returns the remaining budget of delegate.
func (a *Authority) Allowance(delegate address.Address) amount.Amount {
	return a.State().Allowance(delegate)
}

// Recovery returns the active proposal, if any, and the last proposal id.
func (a *Authority) Recovery() (account.Proposal, uint64) {
	st := a.State()
	return st.Proposal, st.LastProposalID
}

// Initialize creates the account and deploys it into the environment.
func (a *Authority) Initialize(ctx context.Context, caller address.Address, p account.InitializePayload) (chain.Receipt, error) {
	receipt, err := a.transact(ctx, "initialize", caller, func(ctx context.Context, tx *chain.Tx) error {
		_, err := a.apply(ctx, tx, caller, p.Address, account.CommandTypeInitialize, p)
		return err
	})
	if err != nil {
		return receipt, err
	}
	a.env.Deploy(p.Address, a)
	return receipt, nil
}

// SetGuardian enables or disables guardian. Owner only.
func (a *Authority) SetGuardian(ctx context.Context, caller, guardian address.Address, enabled bool) (chain.Receipt, error) {
	return a.transact(ctx, "set_guardian", caller, func(ctx context.Context, tx *chain.Tx) error {
		return a.setGuardian(ctx, tx, caller, guardian, enabled)
	})
}

// ProposeNewOwner casts caller's recovery vote for candidate. Guardians only.
func (a *Authority) ProposeNewOwner(ctx context.Context, caller, candidate address.Address) (chain.Receipt, error) {
	return a.transact(ctx, "propose_owner", caller, func(ctx context.Context, tx *chain.Tx) error {
		return a.proposeNewOwner(ctx, tx, caller, candidate)
	})
}

// SetAllowance overwrites delegate's budget. Owner only.
func (a *Authority) SetAllowance(ctx context.Context, caller, delegate address.Address, value amount.Amount) (chain.Receipt, error) {
	return a.transact(ctx, "set_allowance", caller, func(ctx context.Context, tx *chain.Tx) error {
		return a.setAllowance(ctx, tx, caller, delegate, value)
	})
}

// Execute sends value and data from the account to target on caller's
// behalf, subject to the execution gate.
func (a *Authority) Execute(ctx context.Context, caller, target address.Address, value amount.Amount, data []byte) (chain.Receipt, error) {
	return a.transact(ctx, "execute", caller, func(ctx context.Context, tx *chain.Tx) error {
		return a.execute(ctx, tx, caller, target, value, data)
	})
}

// Transfer moves caller's own balance to to. Sending to the account with no
// payload is a deposit.
func (a *Authority) Transfer(ctx context.Context, caller, to address.Address, value amount.Amount) (chain.Receipt, error) {
	return a.transact(ctx, "transfer", caller, func(ctx context.Context, tx *chain.Tx) error {
		return tx.Call(ctx, chain.Call{From: caller, To: to, Value: value})
	})
}

func (a *Authority) setGuardian(ctx context.Context, tx *chain.Tx, caller, guardian address.Address, enabled bool) error {
	_, err := a.apply(ctx, tx, caller, a.state.Address, account.CommandTypeSetGuardian, account.SetGuardianPayload{Guardian: guardian, Enabled: enabled})
	return err
}

func (a *Authority) proposeNewOwner(ctx context.Context, tx *chain.Tx, caller, candidate address.Address) error {
	events, err := a.apply(ctx, tx, caller, a.state.Address, account.CommandTypeProposeOwner, account.ProposeOwnerPayload{Candidate: candidate})
	if err != nil {
		return err
	}
	for _, evt := range events {
		if evt.Type == account.EventTypeOwnerChanged {
			a.logger.Info().Str("new_owner", candidate.String()).Msg("recovery finalized")
		}
	}
	return nil
}

func (a *Authority) setAllowance(ctx context.Context, tx *chain.Tx, caller, delegate address.Address, value amount.Amount) error {
	_, err := a.apply(ctx, tx, caller, a.state.Address, account.CommandTypeSetAllowance, account.SetAllowancePayload{Delegate: delegate, Amount: value})
	return err
}

// execute folds the decision before dispatching so a reentrant call sees the
// decremented allowance. A failed dispatch reverts to the savepoint taken
// before the decision.
func (a *Authority) execute(ctx context.Context, tx *chain.Tx, caller, target address.Address, value amount.Amount, data []byte) error {
	sp := tx.Savepoint()
	payload := account.ExecutePayload{Target: target, Amount: value, Data: account.CallData(data)}
	if _, err := a.apply(ctx, tx, caller, a.state.Address, account.CommandTypeExecute, payload); err != nil {
		return err
	}
	err := tx.Call(ctx, chain.Call{From: a.state.Address, To: target, Value: value, Payload: data})
	if err != nil {
		tx.RevertTo(sp)
		a.logger.Info().Err(err).Str("caller", caller.String()).Str("target", target.String()).Msg("dispatch failed")
		return apperrors.Wrap(apperrors.CodeDispatchFailed, "dispatch failed", err)
	}
	return nil
}

// apply decides cmdType against the live state, folds the result and emits
// its events. The previous state is restored if the enclosing frame reverts.
func (a *Authority) apply(ctx context.Context, tx *chain.Tx, caller, accountAddr address.Address, cmdType command.Type, payload any) ([]event.Event, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "encode payload", err)
	}
	requestID := requestctx.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID, err = id.NewID()
		if err != nil {
			return nil, err
		}
	}
	cmd := command.Command{
		AccountID:   accountAddr.Hex(),
		Type:        cmdType,
		ActorID:     caller.String(),
		RequestID:   requestID,
		EntityType:  account.EntityType,
		EntityID:    accountAddr.Hex(),
		PayloadJSON: payloadJSON,
	}
	result, err := a.handler.Execute(a.state, cmd)
	if err != nil {
		a.logger.Debug().Err(err).Str("command", string(cmdType)).Str("caller", caller.String()).Msg("command rejected")
		return nil, err
	}

	previous := a.state
	a.state = result.State
	tx.Record(func() { a.state = previous })
	tx.Emit(result.Decision.Events...)
	a.logger.Debug().Str("command", string(cmdType)).Str("caller", caller.String()).Int("events", len(result.Decision.Events)).Msg("command accepted")
	return result.Decision.Events, nil
}

func (a *Authority) transact(ctx context.Context, op string, caller address.Address, fn func(context.Context, *chain.Tx) error) (chain.Receipt, error) {
	ctx, span := a.tracer.Start(ctx, "custody.account."+op, trace.WithAttributes(
		attribute.String("custody.caller", caller.String()),
	))
	defer span.End()

	receipt, err := a.env.Transact(ctx, func(tx *chain.Tx) error { return fn(ctx, tx) })
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.CodeOf(err)))
		return chain.Receipt{}, err
	}
	span.SetAttributes(attribute.Int("custody.events", len(receipt.Events)))
	return receipt, nil
}
