package chain

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
)

// MaxCallDepth bounds nested calls within one request.
const MaxCallDepth = 64

var (
	// ErrInsufficientFunds indicates a transfer larger than the sender's balance.
	ErrInsufficientFunds = apperrors.New(apperrors.CodeInsufficientFunds, "insufficient funds")
	// ErrCallDepth indicates nesting beyond MaxCallDepth.
	ErrCallDepth = errors.New("call depth exceeded")
)

// Call is one value transfer plus optional payload.
type Call struct {
	From    address.Address
	To      address.Address
	Value   amount.Amount
	Payload []byte
}

// Contract is code deployed at an address. Receive runs for every call to
// that address after the value has been credited.
type Contract interface {
	Receive(ctx context.Context, tx *Tx, call Call) error
}

// ContractFunc adapts a function to Contract.
type ContractFunc func(ctx context.Context, tx *Tx, call Call) error

// Receive calls f.
func (f ContractFunc) Receive(ctx context.Context, tx *Tx, call Call) error {
	return f(ctx, tx, call)
}

// DispatchError reports a failed call frame. Its state changes were reverted.
type DispatchError struct {
	Call Call
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("call %s -> %s: %v", e.Call.From, e.Call.To, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
