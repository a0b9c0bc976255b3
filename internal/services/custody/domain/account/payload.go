package account

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
)

// CallData is opaque call payload, hex encoded in JSON.
type CallData []byte

// MarshalText encodes 0x-prefixed hex.
func (d CallData) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(d)), nil
}

// UnmarshalText decodes hex with or without the 0x prefix.
func (d *CallData) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "0x")
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode call data: %w", err)
	}
	*d = decoded
	return nil
}

// InitializePayload creates the account.
type InitializePayload struct {
	Address   address.Address   `json:"address"`
	Owner     address.Address   `json:"owner"`
	Threshold int               `json:"threshold"`
	Guardians []address.Address `json:"guardians,omitempty"`
}

// SetGuardianPayload enables or disables one guardian.
type SetGuardianPayload struct {
	Guardian address.Address `json:"guardian"`
	Enabled  bool            `json:"enabled"`
}

// ProposeOwnerPayload casts a vote for a replacement owner.
type ProposeOwnerPayload struct {
	Candidate address.Address `json:"candidate"`
}

// SetAllowancePayload overwrites a delegate budget.
type SetAllowancePayload struct {
	Delegate address.Address `json:"delegate"`
	Amount   amount.Amount   `json:"amount"`
}

// ExecutePayload requests an outgoing call.
type ExecutePayload struct {
	Target address.Address `json:"target"`
	Amount amount.Amount   `json:"amount"`
	Data   CallData        `json:"data,omitempty"`
}

// ReceivePayload records value arriving with an empty payload.
type ReceivePayload struct {
	Amount amount.Amount `json:"amount"`
}

// InitializedPayload is the genesis fact.
type InitializedPayload struct {
	Address   address.Address   `json:"address"`
	Owner     address.Address   `json:"owner"`
	Threshold int               `json:"threshold"`
	Guardians []address.Address `json:"guardians,omitempty"`
}

// GuardianSetPayload records a membership change. RevokedProposalID is set
// when disabling the guardian withdrew their vote from the active proposal.
type GuardianSetPayload struct {
	Guardian          address.Address `json:"guardian"`
	Enabled           bool            `json:"enabled"`
	RevokedProposalID uint64          `json:"revoked_proposal_id,omitempty"`
}

// OwnerProposedPayload records one vote.
type OwnerProposedPayload struct {
	Candidate  address.Address `json:"candidate"`
	ProposalID uint64          `json:"proposal_id"`
	Voter      address.Address `json:"voter"`
	VoteCount  int             `json:"vote_count"`
}

// OwnerChangedPayload records a finalized recovery.
type OwnerChangedPayload struct {
	OldOwner   address.Address `json:"old_owner"`
	NewOwner   address.Address `json:"new_owner"`
	ProposalID uint64          `json:"proposal_id"`
}

// AllowanceSetPayload records a budget overwrite.
type AllowanceSetPayload struct {
	Delegate address.Address `json:"delegate"`
	Amount   amount.Amount   `json:"amount"`
}

// ExecutedPayload records an authorized outgoing call. For delegated calls
// AllowanceRemaining is the spender's budget after the decrement.
type ExecutedPayload struct {
	Target             address.Address `json:"target"`
	Amount             amount.Amount   `json:"amount"`
	Data               CallData        `json:"data,omitempty"`
	Spender            address.Address `json:"spender"`
	Delegated          bool            `json:"delegated"`
	AllowanceRemaining amount.Amount   `json:"allowance_remaining"`
}

// ReceivedPayload records a deposit.
type ReceivedPayload struct {
	From   address.Address `json:"from"`
	Amount amount.Amount   `json:"amount"`
}
