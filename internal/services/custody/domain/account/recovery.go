package account

import (
	"encoding/json"
	"time"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
)

// decideProposeOwner records a guardian vote. A candidate different from the
// active one opens a new round; reaching the threshold finalizes it.
func decideProposeOwner(state State, cmd command.Command, caller address.Address, p ProposeOwnerPayload, now func() time.Time) command.Decision {
	if !state.IsGuardian(caller) {
		return reject(apperrors.CodeUnauthorized, "only guardians may propose an owner")
	}
	if p.Candidate.IsZero() {
		return reject(apperrors.CodeInvalidCandidate, "candidate must not be zero")
	}

	proposalID := state.Proposal.ID
	voteCount := state.Proposal.VoteCount + 1
	if !state.Proposal.Active || state.Proposal.Candidate != p.Candidate {
		proposalID = state.LastProposalID + 1
		voteCount = 1
	} else if state.Proposal.Voters[caller] {
		return reject(apperrors.CodeAlreadyVoted, "guardian already voted for this proposal")
	}

	proposed, err := json.Marshal(OwnerProposedPayload{
		Candidate:  p.Candidate,
		ProposalID: proposalID,
		Voter:      caller,
		VoteCount:  voteCount,
	})
	if err != nil {
		return reject(apperrors.CodeUnknown, "encode event payload")
	}
	at := now()
	entityID := state.Address.Hex()
	decision := command.Accept(command.NewEvent(cmd, EventTypeOwnerProposed, EntityType, entityID, proposed, at))
	if voteCount < state.Threshold {
		return decision
	}

	changed, err := json.Marshal(OwnerChangedPayload{
		OldOwner:   state.Owner,
		NewOwner:   p.Candidate,
		ProposalID: proposalID,
	})
	if err != nil {
		return reject(apperrors.CodeUnknown, "encode event payload")
	}
	decision.Events = append(decision.Events, command.NewEvent(cmd, EventTypeOwnerChanged, EntityType, entityID, changed, at))
	return decision
}
