// Package engine validates commands, asks a decider for a decision and folds
// the accepted events into state.
package engine

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

var (
	// ErrCommandRegistryRequired indicates a missing command registry.
	ErrCommandRegistryRequired = errors.New("command registry is required")
	// ErrDeciderRequired indicates a missing decider.
	ErrDeciderRequired = errors.New("decider is required")
	// ErrApplierRequired indicates a missing applier.
	ErrApplierRequired = errors.New("applier is required")
)

// Decider returns a decision for a command against state S.
type Decider[S any] interface {
	Decide(state S, cmd command.Command, now func() time.Time) command.Decision
}

// Applier folds events into state S.
type Applier[S any] interface {
	Apply(state S, evt event.Event) (S, error)
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc[S any] func(state S, cmd command.Command, now func() time.Time) command.Decision

// Decide calls f.
func (f DeciderFunc[S]) Decide(state S, cmd command.Command, now func() time.Time) command.Decision {
	return f(state, cmd, now)
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc[S any] func(state S, evt event.Event) (S, error)

// Apply calls f.
func (f ApplierFunc[S]) Apply(state S, evt event.Event) (S, error) {
	return f(state, evt)
}

// Handler validates, decides and folds commands.
type Handler[S any] struct {
	Commands *command.Registry
	Events   *event.Registry
	Decider  Decider[S]
	Applier  Applier[S]
	Now      func() time.Time
}

// Result captures execution outcomes.
type Result[S any] struct {
	Decision command.Decision
	State    S
}

// Handle validates a command and returns the decider's decision with
// validated events. It never mutates state.
func (h Handler[S]) Handle(state S, cmd command.Command) (command.Decision, error) {
	if h.Commands == nil {
		return command.Decision{}, ErrCommandRegistryRequired
	}
	if h.Decider == nil {
		return command.Decision{}, ErrDeciderRequired
	}
	validated, err := h.Commands.ValidateForDecision(cmd)
	if err != nil {
		return command.Decision{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid command", err)
	}
	now := h.Now
	if now == nil {
		now = time.Now
	}
	decision := h.Decider.Decide(state, validated, now)
	if h.Events != nil && len(decision.Events) > 0 {
		vetted := make([]event.Event, 0, len(decision.Events))
		for _, evt := range decision.Events {
			v, err := h.Events.ValidateForAppend(evt)
			if err != nil {
				return command.Decision{}, fmt.Errorf("validate %s: %w", evt.Type, err)
			}
			vetted = append(vetted, v)
		}
		decision.Events = vetted
	}
	return decision, nil
}

// Execute handles a command and folds accepted events into a new state.
// A rejected decision is returned as a domain error with the original state.
func (h Handler[S]) Execute(state S, cmd command.Command) (Result[S], error) {
	if h.Applier == nil {
		return Result[S]{State: state}, ErrApplierRequired
	}
	decision, err := h.Handle(state, cmd)
	if err != nil {
		return Result[S]{State: state}, err
	}
	if len(decision.Rejections) > 0 {
		return Result[S]{Decision: decision, State: state}, RejectionError(decision.Rejections[0])
	}
	next := state
	for _, evt := range decision.Events {
		next, err = h.Applier.Apply(next, evt)
		if err != nil {
			return Result[S]{State: state}, wrapNonRetryable(fmt.Errorf("fold %s: %w", evt.Type, err))
		}
	}
	return Result[S]{Decision: decision, State: next}, nil
}

// RejectionError converts a rejection into a domain error carrying its code.
func RejectionError(r command.Rejection) error {
	return apperrors.New(apperrors.Code(r.Code), r.Message)
}
