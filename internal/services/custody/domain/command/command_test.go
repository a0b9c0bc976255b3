package command

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestValidateForDecision(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Definition{Type: "account.set_guardian"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name string
		cmd  Command
		err  error
	}{
		{name: "missing account", cmd: Command{Type: "account.set_guardian", ActorID: "0x1"}, err: ErrAccountIDRequired},
		{name: "missing type", cmd: Command{AccountID: "0xa", ActorID: "0x1"}, err: ErrTypeRequired},
		{name: "unknown type", cmd: Command{AccountID: "0xa", Type: "account.nope", ActorID: "0x1"}, err: ErrTypeUnknown},
		{name: "missing actor", cmd: Command{AccountID: "0xa", Type: "account.set_guardian"}, err: ErrActorIDRequired},
		{name: "bad payload", cmd: Command{AccountID: "0xa", Type: "account.set_guardian", ActorID: "0x1", PayloadJSON: []byte("{")}, err: ErrPayloadInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.ValidateForDecision(tt.cmd); !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestValidateForDecisionCanonicalizesPayload(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Definition{Type: "account.set_allowance"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := r.ValidateForDecision(Command{
		AccountID:   "0xa",
		Type:        "account.set_allowance",
		ActorID:     "0x1",
		PayloadJSON: []byte(`{ "amount": 100000000000000000000, "delegate": "0x2" }`),
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	want := `{"amount":100000000000000000000,"delegate":"0x2"}`
	if string(got.PayloadJSON) != want {
		t.Fatalf("payload = %s, want %s", got.PayloadJSON, want)
	}

	empty, err := r.ValidateForDecision(Command{AccountID: "0xa", Type: "account.set_allowance", ActorID: "0x1"})
	if err != nil {
		t.Fatalf("validate empty: %v", err)
	}
	if string(empty.PayloadJSON) != "{}" {
		t.Fatalf("payload = %s, want {}", empty.PayloadJSON)
	}
}

func TestValidateForDecisionRunsPayloadValidator(t *testing.T) {
	errBad := errors.New("bad")
	r := NewRegistry()
	if err := r.Register(Definition{
		Type:            "account.execute",
		ValidatePayload: func(json.RawMessage) error { return errBad },
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := r.ValidateForDecision(Command{AccountID: "0xa", Type: "account.execute", ActorID: "0x1"})
	if !errors.Is(err, errBad) {
		t.Fatalf("err = %v, want %v", err, errBad)
	}
}

func TestAcceptAndRejectCopyInputs(t *testing.T) {
	cmd := Command{AccountID: "0xa", ActorID: "0x1", RequestID: "req-1"}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	evt := NewEvent(cmd, "account.received", "account", "0xa", []byte(`{}`), now)

	decision := Accept(evt)
	if len(decision.Events) != 1 || decision.Events[0].RequestID != "req-1" {
		t.Fatalf("events = %+v", decision.Events)
	}
	if decision.Events[0].ActorID != "0x1" || !decision.Events[0].Timestamp.Equal(now) {
		t.Fatalf("envelope not copied: %+v", decision.Events[0])
	}

	rejected := Reject(Rejection{Code: "UNAUTHORIZED", Message: "caller is not the owner"})
	if len(rejected.Events) != 0 || rejected.Rejections[0].Code != "UNAUTHORIZED" {
		t.Fatalf("decision = %+v", rejected)
	}
}
