package authority

import (
	"context"
	"encoding/json"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
)

// Method names accepted in a call payload sent to the account.
const (
	MethodSetGuardian     = "setGuardian"
	MethodProposeNewOwner = "proposeNewOwner"
	MethodSetAllowance    = "setAllowance"
	MethodExecute         = "execute"
)

// MethodCall is the JSON payload that invokes an account method through a
// plain call. The caller is the call's sender.
type MethodCall struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// EncodeMethodCall builds a payload for Call.Payload.
func EncodeMethodCall(method string, params any) ([]byte, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(MethodCall{Method: method, Params: raw})
}

// Receive makes the account a chain.Contract. An empty payload is a deposit;
// anything else must be a MethodCall.
func (a *Authority) Receive(ctx context.Context, tx *chain.Tx, call chain.Call) error {
	if !call.Value.IsZero() {
		if _, err := a.apply(ctx, tx, call.From, a.state.Address, account.CommandTypeReceive, account.ReceivePayload{Amount: call.Value}); err != nil {
			return err
		}
	}
	if len(call.Payload) == 0 {
		return nil
	}

	var mc MethodCall
	if err := json.Unmarshal(call.Payload, &mc); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "decode method call", err)
	}
	switch mc.Method {
	case MethodSetGuardian:
		var p account.SetGuardianPayload
		if err := decodeParams(mc, &p); err != nil {
			return err
		}
		return a.setGuardian(ctx, tx, call.From, p.Guardian, p.Enabled)
	case MethodProposeNewOwner:
		var p account.ProposeOwnerPayload
		if err := decodeParams(mc, &p); err != nil {
			return err
		}
		return a.proposeNewOwner(ctx, tx, call.From, p.Candidate)
	case MethodSetAllowance:
		var p account.SetAllowancePayload
		if err := decodeParams(mc, &p); err != nil {
			return err
		}
		return a.setAllowance(ctx, tx, call.From, p.Delegate, p.Amount)
	case MethodExecute:
		var p account.ExecutePayload
		if err := decodeParams(mc, &p); err != nil {
			return err
		}
		return a.execute(ctx, tx, call.From, p.Target, p.Amount, p.Data)
	default:
		return apperrors.New(apperrors.CodeInvalidArgument, "unknown account method").With("Method", mc.Method)
	}
}

func decodeParams(mc MethodCall, target any) error {
	if len(mc.Params) == 0 {
		return apperrors.New(apperrors.CodeInvalidArgument, "method params are required")
	}
	if err := json.Unmarshal(mc.Params, target); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "decode method params", err)
	}
	return nil
}
