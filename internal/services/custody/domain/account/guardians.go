package account

import (
	"time"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
)

// decideSetGuardian lets the owner toggle membership. Disabling a guardian
// who voted on the active proposal withdraws that vote.
func decideSetGuardian(state State, cmd command.Command, caller address.Address, p SetGuardianPayload, now func() time.Time) command.Decision {
	if !state.IsOwner(caller) {
		return reject(apperrors.CodeUnauthorized, "only the owner may set guardians")
	}
	if p.Guardian.IsZero() {
		return reject(apperrors.CodeInvalidAddress, "guardian must not be zero")
	}
	payload := GuardianSetPayload{Guardian: p.Guardian, Enabled: p.Enabled}
	if !p.Enabled && state.Proposal.Active && state.Proposal.Voters[p.Guardian] {
		payload.RevokedProposalID = state.Proposal.ID
	}
	return accept(cmd, state, EventTypeGuardianSet, payload, now)
}
