package account

import (
	"time"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
)

// decideSetAllowance overwrites a delegate's budget.
func decideSetAllowance(state State, cmd command.Command, caller address.Address, p SetAllowancePayload, now func() time.Time) command.Decision {
	if !state.IsOwner(caller) {
		return reject(apperrors.CodeUnauthorized, "only the owner may set allowances")
	}
	if p.Delegate.IsZero() {
		return reject(apperrors.CodeInvalidAddress, "delegate must not be zero")
	}
	return accept(cmd, state, EventTypeAllowanceSet, AllowanceSetPayload{Delegate: p.Delegate, Amount: p.Amount}, now)
}

// consume returns the budget left after spending value, or false when value
// exceeds it.
func consume(state State, delegate address.Address, value amount.Amount) (amount.Amount, bool) {
	return state.Allowance(delegate).Sub(value)
}
