package custodyctl

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	custodygrpc "github.com/louisbranch/custody/internal/services/custody/api/grpc/custody"
	grpcmeta "github.com/louisbranch/custody/internal/services/custody/api/grpc/metadata"
	"github.com/louisbranch/custody/internal/services/custody/auth"
	"github.com/louisbranch/custody/internal/services/custody/authority"
	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
)

var (
	accountAddr = address.Derive("account")
	owner       = address.Derive("owner")
	delegate    = address.Derive("delegate")
	recipient   = address.Derive("recipient")
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

// startServer runs the account service with verifier keys from a keygen run.
func startServer(t *testing.T, publicKey string) (string, *authority.Authority) {
	t.Helper()
	ctx := context.Background()
	env := chain.NewEnv()
	a, err := authority.New(env)
	if err != nil {
		t.Fatalf("new authority: %v", err)
	}
	if _, err := a.Initialize(ctx, owner, account.InitializePayload{Address: accountAddr, Owner: owner}); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	env.SetBalance(accountAddr, amount.MustEther("1"))

	key, err := auth.DecodePublicKey(publicKey)
	if err != nil {
		t.Fatalf("decode key: %v", err)
	}
	verifier := auth.VerifierConfig{Issuer: "custodyctl", Audience: "custody", Key: key}
	svc, err := custodygrpc.NewService(custodygrpc.Deps{Authority: a, Env: env, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(verifier, nil)))
	custodyv1.RegisterAccountServiceServer(server, svc)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = server.Serve(listener)
	}()
	t.Cleanup(func() {
		server.Stop()
		<-done
	})
	return listener.Addr().String(), a
}

func keygen(t *testing.T) keyPair {
	t.Helper()
	out, err := run(t, "keygen")
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	var keys keyPair
	if err := json.Unmarshal([]byte(out), &keys); err != nil {
		t.Fatalf("decode keygen output: %v", err)
	}
	if keys.PublicKey == "" || keys.PrivateKey == "" {
		t.Fatalf("keys = %+v", keys)
	}
	return keys
}

func TestOwnerAndBalance(t *testing.T) {
	keys := keygen(t)
	addr, _ := startServer(t, keys.PublicKey)

	out, err := run(t, "--addr", addr, "owner")
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	var got custodyv1.GetOwnerResponse
	if err := protojson.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode owner: %v", err)
	}
	if got.Owner != owner.String() {
		t.Fatalf("owner = %s, want %s", got.Owner, owner)
	}

	out, err = run(t, "--addr", addr, "balance")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !strings.Contains(out, amount.MustEther("1").String()) {
		t.Fatalf("balance output = %s", out)
	}
}

func TestTokenAuthorizesMutations(t *testing.T) {
	keys := keygen(t)
	addr, a := startServer(t, keys.PublicKey)

	if _, err := run(t, "--addr", addr, "set-allowance", delegate.Hex(), "0.5eth"); err == nil {
		t.Fatal("expected anonymous mutation to fail")
	}

	token, err := run(t, "token", owner.Hex(), "--key", keys.PrivateKey)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	token = strings.TrimSpace(token)

	if _, err := run(t, "--addr", addr, "--token", token, "set-allowance", delegate.Hex(), "0.5eth"); err != nil {
		t.Fatalf("set allowance: %v", err)
	}
	if got := a.Allowance(delegate); got.Cmp(amount.MustEther("0.5")) != 0 {
		t.Fatalf("allowance = %s, want 0.5 ether", got)
	}

	delegateToken, err := run(t, "token", delegate.Hex(), "--key", keys.PrivateKey)
	if err != nil {
		t.Fatalf("delegate token: %v", err)
	}
	_, err = run(t, "--addr", addr, "--token", strings.TrimSpace(delegateToken), "execute", recipient.Hex(), "0.1eth", "--data-text", "hi")
	if err == nil {
		t.Fatal("expected delegate call with data to fail")
	}
	if _, err := run(t, "--addr", addr, "--token", strings.TrimSpace(delegateToken), "execute", recipient.Hex(), "0.1eth"); err != nil {
		t.Fatalf("delegate execute: %v", err)
	}
	if got := a.Allowance(delegate); got.Cmp(amount.MustEther("0.4")) != 0 {
		t.Fatalf("allowance = %s, want 0.4 ether", got)
	}
}

func TestTokenRequiresKey(t *testing.T) {
	t.Setenv("CUSTODY_CALLER_PRIVATE_KEY", "")
	if _, err := run(t, "token", owner.Hex()); err == nil {
		t.Fatal("expected missing key error")
	}
	if _, err := run(t, "token", "not-an-address", "--key", "x"); err == nil {
		t.Fatal("expected address error")
	}
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "allowance without delegate", args: []string{"allowance"}},
		{name: "transfer missing amount", args: []string{"transfer", recipient.Hex()}},
		{name: "execute with bad hex", args: []string{"execute", recipient.Hex(), "1", "--data", "zz"}},
		{name: "execute with both data flags", args: []string{"execute", recipient.Hex(), "1", "--data", "ff", "--data-text", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Fatal("expected argument error")
			}
		})
	}
}
