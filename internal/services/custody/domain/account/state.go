package account

import (
	"bytes"
	"sort"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
)

// DefaultThreshold is the number of guardian votes that finalizes recovery
// when genesis does not set one.
const DefaultThreshold = 3

// State captures the replayed account aggregate.
type State struct {
	// Initialized is set by account.initialized.
	Initialized bool `json:"initialized"`
	// Address is the account's own address, the target a self-call names.
	Address address.Address `json:"address"`
	// Owner is never zero once initialized.
	Owner address.Address `json:"owner"`
	// Guardians holds enabled guardians only.
	Guardians map[address.Address]bool `json:"guardians,omitempty"`
	// Threshold is the vote count that finalizes a proposal.
	Threshold int `json:"threshold"`
	// Proposal is the active recovery round, if any.
	Proposal Proposal `json:"proposal"`
	// LastProposalID is the id of the most recent round ever opened.
	LastProposalID uint64 `json:"last_proposal_id"`
	// Allowances holds non-zero delegate budgets.
	Allowances map[address.Address]amount.Amount `json:"allowances,omitempty"`
}

// Proposal is one recovery round.
type Proposal struct {
	Active    bool                     `json:"active"`
	Candidate address.Address          `json:"candidate"`
	ID        uint64                   `json:"id"`
	Voters    map[address.Address]bool `json:"voters,omitempty"`
	VoteCount int                      `json:"vote_count"`
}

// IsOwner reports whether caller is the current owner.
func (s State) IsOwner(caller address.Address) bool {
	return s.Initialized && caller == s.Owner
}

// IsGuardian reports whether caller is an enabled guardian.
func (s State) IsGuardian(caller address.Address) bool {
	return s.Guardians[caller]
}

// Allowance returns the remaining budget of delegate, zero when unknown.
func (s State) Allowance(delegate address.Address) amount.Amount {
	return s.Allowances[delegate]
}

// GuardianList returns enabled guardians in byte order.
func (s State) GuardianList() []address.Address {
	return sortedKeys(s.Guardians)
}

// VoterList returns the voters of the active proposal in byte order.
func (p Proposal) VoterList() []address.Address {
	return sortedKeys(p.Voters)
}

func sortedKeys(m map[address.Address]bool) []address.Address {
	out := make([]address.Address, 0, len(m))
	for a, ok := range m {
		if ok {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}

func (s State) clone() State {
	next := s
	next.Guardians = make(map[address.Address]bool, len(s.Guardians))
	for a, ok := range s.Guardians {
		next.Guardians[a] = ok
	}
	next.Allowances = make(map[address.Address]amount.Amount, len(s.Allowances))
	for a, v := range s.Allowances {
		next.Allowances[a] = v
	}
	next.Proposal.Voters = make(map[address.Address]bool, len(s.Proposal.Voters))
	for a, ok := range s.Proposal.Voters {
		next.Proposal.Voters[a] = ok
	}
	return next
}
