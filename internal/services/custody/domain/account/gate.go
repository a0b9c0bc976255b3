package account

import (
	"time"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
)

// decideExecute authorizes an outgoing call. The owner is unrestricted.
// Anyone else spends from their allowance and may only send plain value
// transfers to addresses other than the account.
//
// The decision carries the post-spend allowance so folding it before the
// dispatch leaves a reentrant call with the decremented budget.
func decideExecute(state State, cmd command.Command, caller address.Address, p ExecutePayload, now func() time.Time) command.Decision {
	payload := ExecutedPayload{
		Target:  p.Target,
		Amount:  p.Amount,
		Data:    p.Data,
		Spender: caller,
	}
	if state.IsOwner(caller) {
		return accept(cmd, state, EventTypeExecuted, payload, now)
	}

	if state.Allowance(caller).IsZero() {
		return reject(apperrors.CodeUnauthorized, "caller is neither owner nor delegate")
	}
	if len(p.Data) > 0 {
		return reject(apperrors.CodeDataNotAllowed, "delegates may not send call data")
	}
	if p.Target == state.Address {
		return reject(apperrors.CodeSelfCallNotAllowed, "delegates may not call the account")
	}
	remaining, ok := consume(state, caller, p.Amount)
	if !ok {
		return reject(apperrors.CodeExceedsAllowance, "amount exceeds remaining allowance")
	}
	payload.Delegated = true
	payload.AllowanceRemaining = remaining
	return accept(cmd, state, EventTypeExecuted, payload, now)
}
