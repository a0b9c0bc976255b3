package chain

import (
	"context"
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
)

// LuaContract runs a Lua script for every call it receives.
//
// The script may define receive(call), where call has string fields from,
// to, value (base units) and payload. A global chain table exposes
// chain.call(to, value, payload), chain.balance(addr) and chain.self().
// Raising an error reverts the call. Scripts without receive accept value.
type LuaContract struct {
	name   string
	script string
}

// NewLuaContract compiles script to report syntax errors at deploy time.
func NewLuaContract(name, script string) (*LuaContract, error) {
	l := lua.NewState()
	if err := lua.LoadString(l, script); err != nil {
		return nil, fmt.Errorf("compile contract %s: %w", name, err)
	}
	return &LuaContract{name: name, script: script}, nil
}

// Name returns the contract's label.
func (c *LuaContract) Name() string {
	return c.name
}

// Receive implements Contract.
func (c *LuaContract) Receive(ctx context.Context, tx *Tx, call Call) error {
	l := lua.NewState()
	openSandbox(l)
	registerHost(ctx, l, tx, call.To)

	if err := lua.LoadString(l, c.script); err != nil {
		return fmt.Errorf("%s: load: %w", c.name, err)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("%s: init: %w", c.name, err)
	}
	l.Global("receive")
	if !l.IsFunction(-1) {
		l.Pop(1)
		return nil
	}
	l.NewTable()
	setStringField(l, "from", call.From.String())
	setStringField(l, "to", call.To.String())
	setStringField(l, "value", call.Value.String())
	setStringField(l, "payload", string(call.Payload))
	if err := l.ProtectedCall(1, 0, 0); err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}
	return nil
}

// openSandbox loads the pure libraries only. No io, os or file loading.
func openSandbox(l *lua.State) {
	for _, lib := range []struct {
		name string
		open lua.Function
	}{
		{"_G", lua.BaseOpen},
		{"string", lua.StringOpen},
		{"table", lua.TableOpen},
		{"math", lua.MathOpen},
	} {
		lua.Require(l, lib.name, lib.open, true)
		l.Pop(1)
	}
	for _, name := range []string{"dofile", "loadfile", "require"} {
		l.PushNil()
		l.SetGlobal(name)
	}
}

func registerHost(ctx context.Context, l *lua.State, tx *Tx, self address.Address) {
	l.NewTable()
	lua.SetFunctions(l, []lua.RegistryFunction{
		{Name: "call", Function: func(l *lua.State) int {
			to, err := address.Parse(lua.CheckString(l, 1))
			if err != nil {
				lua.ArgumentError(l, 1, err.Error())
				return 0
			}
			value, err := amount.Parse(lua.OptString(l, 2, "0"))
			if err != nil {
				lua.ArgumentError(l, 2, err.Error())
				return 0
			}
			payload := lua.OptString(l, 3, "")
			if err := tx.Call(ctx, Call{From: self, To: to, Value: value, Payload: []byte(payload)}); err != nil {
				lua.Errorf(l, "%s", err.Error())
			}
			return 0
		}},
		{Name: "balance", Function: func(l *lua.State) int {
			addr, err := address.Parse(lua.CheckString(l, 1))
			if err != nil {
				lua.ArgumentError(l, 1, err.Error())
				return 0
			}
			l.PushString(tx.Balance(addr).String())
			return 1
		}},
		{Name: "self", Function: func(l *lua.State) int {
			l.PushString(self.String())
			return 1
		}},
	}, 0)
	l.SetGlobal("chain")
}

func setStringField(l *lua.State, key, value string) {
	l.PushString(value)
	l.SetField(-2, key)
}
