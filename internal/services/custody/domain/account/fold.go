package account

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

// Fold applies an event to account state and returns the new state. The
// input state is left untouched.
func Fold(state State, evt event.Event) (State, error) {
	next := state.clone()
	switch evt.Type {
	case EventTypeInitialized:
		var p InitializedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &p); err != nil {
			return state, fmt.Errorf("decode %s: %w", evt.Type, err)
		}
		next.Initialized = true
		next.Address = p.Address
		next.Owner = p.Owner
		next.Threshold = p.Threshold
		for _, g := range p.Guardians {
			next.Guardians[g] = true
		}
	case EventTypeGuardianSet:
		var p GuardianSetPayload
		if err := json.Unmarshal(evt.PayloadJSON, &p); err != nil {
			return state, fmt.Errorf("decode %s: %w", evt.Type, err)
		}
		if p.Enabled {
			next.Guardians[p.Guardian] = true
		} else {
			delete(next.Guardians, p.Guardian)
		}
		if p.RevokedProposalID != 0 && next.Proposal.Active && next.Proposal.ID == p.RevokedProposalID && next.Proposal.Voters[p.Guardian] {
			delete(next.Proposal.Voters, p.Guardian)
			next.Proposal.VoteCount--
		}
	case EventTypeOwnerProposed:
		var p OwnerProposedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &p); err != nil {
			return state, fmt.Errorf("decode %s: %w", evt.Type, err)
		}
		if !next.Proposal.Active || next.Proposal.ID != p.ProposalID {
			next.Proposal = Proposal{
				Active:    true,
				Candidate: p.Candidate,
				ID:        p.ProposalID,
				Voters:    map[address.Address]bool{},
			}
		}
		next.Proposal.Voters[p.Voter] = true
		next.Proposal.VoteCount = p.VoteCount
		if p.ProposalID > next.LastProposalID {
			next.LastProposalID = p.ProposalID
		}
	case EventTypeOwnerChanged:
		var p OwnerChangedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &p); err != nil {
			return state, fmt.Errorf("decode %s: %w", evt.Type, err)
		}
		next.Owner = p.NewOwner
		next.Proposal = Proposal{Voters: map[address.Address]bool{}}
	case EventTypeAllowanceSet:
		var p AllowanceSetPayload
		if err := json.Unmarshal(evt.PayloadJSON, &p); err != nil {
			return state, fmt.Errorf("decode %s: %w", evt.Type, err)
		}
		setAllowance(next, p.Delegate, p.Amount)
	case EventTypeExecuted:
		var p ExecutedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &p); err != nil {
			return state, fmt.Errorf("decode %s: %w", evt.Type, err)
		}
		if p.Delegated {
			setAllowance(next, p.Spender, p.AllowanceRemaining)
		}
	case EventTypeReceived:
		// Balances live in the execution environment.
	default:
		return state, fmt.Errorf("unknown event type %s", evt.Type)
	}
	return next, nil
}

func setAllowance(state State, delegate address.Address, value amount.Amount) {
	if value.IsZero() {
		delete(state.Allowances, delegate)
		return
	}
	state.Allowances[delegate] = value
}
