package account

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/custody/internal/services/custody/domain/command"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

const (
	CommandTypeInitialize   command.Type = "account.initialize"
	CommandTypeSetGuardian  command.Type = "account.set_guardian"
	CommandTypeProposeOwner command.Type = "account.propose_owner"
	CommandTypeSetAllowance command.Type = "account.set_allowance"
	CommandTypeExecute      command.Type = "account.execute"
	CommandTypeReceive      command.Type = "account.receive"

	EventTypeInitialized   event.Type = "account.initialized"
	EventTypeGuardianSet   event.Type = "account.guardian_set"
	EventTypeOwnerProposed event.Type = "account.owner_proposed"
	EventTypeOwnerChanged  event.Type = "account.owner_changed"
	EventTypeAllowanceSet  event.Type = "account.allowance_set"
	EventTypeExecuted      event.Type = "account.executed"
	EventTypeReceived      event.Type = "account.received"
)

// EntityType names the entity every account event addresses.
const EntityType = "account"

// RegisterCommands adds every account command type to r.
func RegisterCommands(r *command.Registry) error {
	defs := []command.Definition{
		{Type: CommandTypeInitialize, ValidatePayload: strict[InitializePayload]},
		{Type: CommandTypeSetGuardian, ValidatePayload: strict[SetGuardianPayload]},
		{Type: CommandTypeProposeOwner, ValidatePayload: strict[ProposeOwnerPayload]},
		{Type: CommandTypeSetAllowance, ValidatePayload: strict[SetAllowancePayload]},
		{Type: CommandTypeExecute, ValidatePayload: strict[ExecutePayload]},
		{Type: CommandTypeReceive, ValidatePayload: strict[ReceivePayload]},
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("register %s: %w", def.Type, err)
		}
	}
	return nil
}

// RegisterEvents adds every account event type to r.
func RegisterEvents(r *event.Registry) error {
	defs := []event.Definition{
		{Type: EventTypeInitialized, ValidatePayload: strict[InitializedPayload]},
		{Type: EventTypeGuardianSet, ValidatePayload: strict[GuardianSetPayload]},
		{Type: EventTypeOwnerProposed, ValidatePayload: strict[OwnerProposedPayload]},
		{Type: EventTypeOwnerChanged, ValidatePayload: strict[OwnerChangedPayload]},
		{Type: EventTypeAllowanceSet, ValidatePayload: strict[AllowanceSetPayload]},
		{Type: EventTypeExecuted, ValidatePayload: strict[ExecutedPayload]},
		{Type: EventTypeReceived, ValidatePayload: strict[ReceivedPayload]},
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("register %s: %w", def.Type, err)
		}
	}
	return nil
}

// NewRegistries returns command and event registries holding the account types.
func NewRegistries() (*command.Registry, *event.Registry, error) {
	commands := command.NewRegistry()
	if err := RegisterCommands(commands); err != nil {
		return nil, nil, err
	}
	events := event.NewRegistry()
	if err := RegisterEvents(events); err != nil {
		return nil, nil, err
	}
	return commands, events, nil
}

// strict decodes raw into T, rejecting unknown fields.
func strict[T any](raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var v T
	return dec.Decode(&v)
}
