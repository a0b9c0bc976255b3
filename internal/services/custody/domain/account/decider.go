package account

import (
	"encoding/json"
	"time"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

// Decide returns the decision for an account command against current state.
// The caller is the command's ActorID.
func Decide(state State, cmd command.Command, now func() time.Time) command.Decision {
	if now == nil {
		now = time.Now
	}
	caller, err := address.Parse(cmd.ActorID)
	if err != nil {
		return reject(apperrors.CodeInvalidAddress, "caller address is invalid")
	}

	if cmd.Type == CommandTypeInitialize {
		return decideInitialize(state, cmd, now)
	}
	if !state.Initialized {
		return reject(apperrors.CodeNotInitialized, "account is not initialized")
	}

	switch cmd.Type {
	case CommandTypeSetGuardian:
		var p SetGuardianPayload
		if err := json.Unmarshal(cmd.PayloadJSON, &p); err != nil {
			return reject(apperrors.CodeInvalidArgument, "set guardian payload is invalid")
		}
		return decideSetGuardian(state, cmd, caller, p, now)
	case CommandTypeProposeOwner:
		var p ProposeOwnerPayload
		if err := json.Unmarshal(cmd.PayloadJSON, &p); err != nil {
			return reject(apperrors.CodeInvalidArgument, "propose owner payload is invalid")
		}
		return decideProposeOwner(state, cmd, caller, p, now)
	case CommandTypeSetAllowance:
		var p SetAllowancePayload
		if err := json.Unmarshal(cmd.PayloadJSON, &p); err != nil {
			return reject(apperrors.CodeInvalidArgument, "set allowance payload is invalid")
		}
		return decideSetAllowance(state, cmd, caller, p, now)
	case CommandTypeExecute:
		var p ExecutePayload
		if err := json.Unmarshal(cmd.PayloadJSON, &p); err != nil {
			return reject(apperrors.CodeInvalidArgument, "execute payload is invalid")
		}
		return decideExecute(state, cmd, caller, p, now)
	case CommandTypeReceive:
		var p ReceivePayload
		if err := json.Unmarshal(cmd.PayloadJSON, &p); err != nil {
			return reject(apperrors.CodeInvalidArgument, "receive payload is invalid")
		}
		return accept(cmd, state, EventTypeReceived, ReceivedPayload{From: caller, Amount: p.Amount}, now)
	default:
		return reject(apperrors.CodeInvalidArgument, "unsupported command type")
	}
}

func decideInitialize(state State, cmd command.Command, now func() time.Time) command.Decision {
	if state.Initialized {
		return reject(apperrors.CodeAlreadyInitialized, "account is already initialized")
	}
	var p InitializePayload
	if err := json.Unmarshal(cmd.PayloadJSON, &p); err != nil {
		return reject(apperrors.CodeInvalidArgument, "initialize payload is invalid")
	}
	if p.Address.IsZero() {
		return reject(apperrors.CodeInvalidAddress, "account address must not be zero")
	}
	if p.Owner.IsZero() {
		return reject(apperrors.CodeInvalidAddress, "owner must not be zero")
	}
	if p.Threshold == 0 {
		p.Threshold = DefaultThreshold
	}
	if p.Threshold < 1 {
		return reject(apperrors.CodeInvalidArgument, "threshold must be at least 1")
	}
	seen := make(map[address.Address]bool, len(p.Guardians))
	guardians := make([]address.Address, 0, len(p.Guardians))
	for _, g := range p.Guardians {
		if g.IsZero() {
			return reject(apperrors.CodeInvalidAddress, "guardian must not be zero")
		}
		if !seen[g] {
			seen[g] = true
			guardians = append(guardians, g)
		}
	}
	payload := InitializedPayload{
		Address:   p.Address,
		Owner:     p.Owner,
		Threshold: p.Threshold,
		Guardians: guardians,
	}
	state.Address = p.Address
	return accept(cmd, state, EventTypeInitialized, payload, now)
}

func accept(cmd command.Command, state State, eventType event.Type, payload any, now func() time.Time) command.Decision {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return reject(apperrors.CodeUnknown, "encode event payload")
	}
	return command.Accept(command.NewEvent(cmd, eventType, EntityType, state.Address.Hex(), payloadJSON, now()))
}

// Decider adapts Decide to the engine.
type Decider struct{}

// Decide calls the package-level Decide.
func (Decider) Decide(state State, cmd command.Command, now func() time.Time) command.Decision {
	return Decide(state, cmd, now)
}

// Applier adapts Fold to the engine.
type Applier struct{}

// Apply calls Fold.
func (Applier) Apply(state State, evt event.Event) (State, error) {
	return Fold(state, evt)
}
