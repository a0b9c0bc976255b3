package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

var (
	alice = address.Derive("alice")
	bob   = address.Derive("bob")
	carol = address.Derive("carol")
)

func fundedEnv(t *testing.T, opts ...Option) *Env {
	t.Helper()
	env := NewEnv(opts...)
	env.SetBalance(alice, amount.FromUint64(100))
	return env
}

func deployLua(t *testing.T, env *Env, addr address.Address, script string) {
	t.Helper()
	c, err := NewLuaContract(addr.String(), script)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	env.Deploy(addr, c)
}

func TestTransferMovesValue(t *testing.T) {
	env := fundedEnv(t)
	receipt, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(40)})
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
	if got := env.Balance(alice).String(); got != "60" {
		t.Fatalf("alice = %s, want 60", got)
	}
	if got := env.Balance(bob).String(); got != "40" {
		t.Fatalf("bob = %s, want 40", got)
	}
	if len(receipt.Balances) != 2 {
		t.Fatalf("touched = %v, want 2 entries", receipt.Balances)
	}
}

func TestInsufficientFundsIsDispatchError(t *testing.T) {
	env := fundedEnv(t)
	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: bob, To: alice, Value: amount.FromUint64(1)})
	})
	var dispatchErr *DispatchError
	if !errors.As(err, &dispatchErr) || !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want dispatch error wrapping insufficient funds", err)
	}
}

func TestCreditOverflowIsDispatchError(t *testing.T) {
	env := fundedEnv(t)
	env.SetBalance(bob, amount.Max())
	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(1)})
	})
	var dispatchErr *DispatchError
	if !errors.As(err, &dispatchErr) || !errors.Is(err, amount.ErrOverflow) {
		t.Fatalf("err = %v, want dispatch error wrapping overflow", err)
	}
	if got := env.Balance(alice).String(); got != "100" {
		t.Fatalf("alice = %s, want 100", got)
	}
	if got := env.Balance(bob); got.Cmp(amount.Max()) != 0 {
		t.Fatalf("bob = %s, want %s", got, amount.Max())
	}
}

func TestFailingRequestRevertsEverything(t *testing.T) {
	env := fundedEnv(t)
	boom := errors.New("boom")
	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		if err := tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(10)}); err != nil {
			return err
		}
		tx.Emit(event.Event{Type: "test.emitted"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if env.Balance(alice).String() != "100" || !env.Balance(bob).IsZero() {
		t.Fatalf("balances changed: alice=%s bob=%s", env.Balance(alice), env.Balance(bob))
	}
}

func TestRevertingContractRejectsValue(t *testing.T) {
	env := fundedEnv(t)
	deployLua(t, env, bob, `function receive(call) error("no deposits") end`)

	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(5)})
	})
	if err == nil {
		t.Fatal("expected reverting contract to fail the call")
	}
	if env.Balance(alice).String() != "100" {
		t.Fatalf("alice = %s, want 100", env.Balance(alice))
	}
}

func TestLuaContractForwardsValue(t *testing.T) {
	env := fundedEnv(t)
	deployLua(t, env, bob, `
function receive(call)
  chain.call("`+carol.String()+`", call.value, "")
end`)

	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(7)})
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
	if got := env.Balance(carol).String(); got != "7" {
		t.Fatalf("carol = %s, want 7", got)
	}
	if !env.Balance(bob).IsZero() {
		t.Fatalf("bob = %s, want 0", env.Balance(bob))
	}
}

func TestCaughtInnerFailureRevertsOnlyInnerFrame(t *testing.T) {
	env := fundedEnv(t)
	deployLua(t, env, carol, `function receive(call) error("inner") end`)
	deployLua(t, env, bob, `
function receive(call)
  local ok = pcall(chain.call, "`+carol.String()+`", "3", "")
  if ok then error("inner call should have failed") end
end`)

	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(10)})
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
	if got := env.Balance(bob).String(); got != "10" {
		t.Fatalf("bob = %s, want 10", got)
	}
	if !env.Balance(carol).IsZero() {
		t.Fatalf("carol = %s, want 0", env.Balance(carol))
	}
}

func TestLuaHostFunctions(t *testing.T) {
	env := fundedEnv(t)
	deployLua(t, env, bob, `
function receive(call)
  if chain.self() ~= "`+bob.String()+`" then error("self mismatch") end
  if chain.balance(chain.self()) ~= call.value then error("balance mismatch: " .. chain.balance(chain.self())) end
  if call.payload ~= "ping" then error("payload mismatch") end
end`)

	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(9), Payload: []byte("ping")})
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
}

func TestSandboxHasNoOS(t *testing.T) {
	env := fundedEnv(t)
	deployLua(t, env, bob, `function receive(call) os.exit(1) end`)
	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob})
	})
	if err == nil {
		t.Fatal("expected os to be unavailable")
	}
}

func TestCallDepthIsBounded(t *testing.T) {
	env := fundedEnv(t)
	deployLua(t, env, bob, `function receive(call) chain.call(chain.self(), "0", "") end`)
	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob})
	})
	if err == nil {
		t.Fatal("expected unbounded recursion to fail")
	}
}

func TestNewLuaContractRejectsSyntaxErrors(t *testing.T) {
	if _, err := NewLuaContract("broken", "function receive("); err == nil {
		t.Fatal("expected syntax error")
	}
}

type failingCommitter struct{ err error }

func (f failingCommitter) Commit(context.Context, Receipt) ([]event.Event, error) {
	return nil, f.err
}

func TestCommitFailureReverts(t *testing.T) {
	boom := errors.New("disk full")
	env := fundedEnv(t, WithCommitter(failingCommitter{err: boom}))
	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		return tx.Call(context.Background(), Call{From: alice, To: bob, Value: amount.FromUint64(1)})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if env.Balance(alice).String() != "100" {
		t.Fatalf("alice = %s, want 100", env.Balance(alice))
	}
}

type recordingCommitter struct{ receipts []Receipt }

func (r *recordingCommitter) Commit(_ context.Context, receipt Receipt) ([]event.Event, error) {
	r.receipts = append(r.receipts, receipt)
	stored := make([]event.Event, len(receipt.Events))
	for i, evt := range receipt.Events {
		evt.Seq = uint64(i + 1)
		stored[i] = evt
	}
	return stored, nil
}

func TestListenersSeeStoredEvents(t *testing.T) {
	committer := &recordingCommitter{}
	env := fundedEnv(t, WithCommitter(committer))
	var seen []event.Event
	unsubscribe := env.Subscribe(func(events []event.Event) { seen = append(seen, events...) })

	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		tx.Emit(event.Event{Type: "test.emitted"})
		return nil
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
	if len(seen) != 1 || seen[0].Seq != 1 {
		t.Fatalf("seen = %+v, want one stored event", seen)
	}

	unsubscribe()
	if _, err := env.Transact(context.Background(), func(tx *Tx) error {
		tx.Emit(event.Event{Type: "test.emitted"})
		return nil
	}); err != nil {
		t.Fatalf("transact: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("seen = %d events after unsubscribe, want 1", len(seen))
	}
	if len(committer.receipts) != 2 {
		t.Fatalf("receipts = %d, want 2", len(committer.receipts))
	}
}

func TestSavepointRevertDropsLaterEvents(t *testing.T) {
	env := NewEnv()
	_, err := env.Transact(context.Background(), func(tx *Tx) error {
		tx.Emit(event.Event{Type: "kept"})
		sp := tx.Savepoint()
		undone := false
		tx.Record(func() { undone = true })
		tx.Emit(event.Event{Type: "dropped"})
		tx.RevertTo(sp)
		if !undone {
			t.Fatal("expected undo to run")
		}
		if events := tx.Events(); len(events) != 1 || events[0].Type != "kept" {
			t.Fatalf("events = %+v", events)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
}
