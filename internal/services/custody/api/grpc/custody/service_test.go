package custody

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	platformgrpc "github.com/louisbranch/custody/internal/platform/grpc"
	grpcmeta "github.com/louisbranch/custody/internal/services/custody/api/grpc/metadata"
	"github.com/louisbranch/custody/internal/services/custody/auth"
	"github.com/louisbranch/custody/internal/services/custody/authority"
	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
	"github.com/louisbranch/custody/internal/services/custody/storage"
	"github.com/louisbranch/custody/internal/services/custody/storage/sqlite"
)

var (
	accountAddr = address.Derive("account")
	owner       = address.Derive("owner")
	g1          = address.Derive("g1")
	g2          = address.Derive("g2")
	g3          = address.Derive("g3")
	spender     = address.Derive("spender")
	recipient   = address.Derive("recipient")
	candidate   = address.Derive("candidate")
	funder      = address.Derive("funder")
)

type fixture struct {
	client custodyv1.AccountServiceClient
	conn   *grpc.ClientConn
	signer auth.Signer
	env    *chain.Env
}

func (f *fixture) as(t *testing.T, caller address.Address) grpc.CallOption {
	t.Helper()
	token, err := f.signer.Issue(caller, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return grpc.PerRPCCredentials(platformgrpc.BearerToken(token))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "custody.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	env := chain.NewEnv(chain.WithCommitter(chain.CommitterFunc(func(ctx context.Context, r chain.Receipt) ([]event.Event, error) {
		return store.Commit(ctx, storage.Batch{Events: r.Events, Balances: r.Balances})
	})))
	env.SetBalance(funder, amount.MustEther("10"))
	a, err := authority.New(env)
	if err != nil {
		t.Fatalf("new authority: %v", err)
	}
	if _, err := a.Initialize(ctx, owner, account.InitializePayload{
		Address: accountAddr, Owner: owner, Threshold: 3, Guardians: []address.Address{g1, g2, g3},
	}); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if _, err := a.Transfer(ctx, funder, accountAddr, amount.MustEther("1")); err != nil {
		t.Fatalf("fund: %v", err)
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	verifier := auth.VerifierConfig{Issuer: "test", Audience: "custody", Key: pub}

	svc, err := NewService(Deps{Authority: a, Env: env, Journal: store, Logger: zerolog.Nop()})
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

	conn, err := grpc.NewClient(listener.Addr().String(), platformgrpc.ClientDialOptions("")...)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &fixture{
		client: custodyv1.NewAccountServiceClient(conn),
		conn:   conn,
		signer: auth.Signer{Issuer: "test", Audience: "custody", Key: priv},
		env:    env,
	}
}

func assertCode(t *testing.T, err error, want codes.Code, reason apperrors.Code) {
	t.Helper()
	st := status.Convert(err)
	if st.Code() != want {
		t.Fatalf("code = %s, want %s (err %v)", st.Code(), want, err)
	}
	if reason == "" {
		return
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			if info.GetReason() != string(reason) {
				t.Fatalf("reason = %s, want %s", info.GetReason(), reason)
			}
			return
		}
	}
	t.Fatalf("no ErrorInfo in %v", st.Details())
}

func TestReadsArePublic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerResp, err := f.client.GetOwner(ctx, &custodyv1.GetOwnerRequest{})
	if err != nil {
		t.Fatalf("get owner: %v", err)
	}
	if ownerResp.Owner != owner.String() || ownerResp.Account != accountAddr.String() {
		t.Fatalf("owner = %+v", ownerResp)
	}

	balance, err := f.client.GetBalance(ctx, &custodyv1.GetBalanceRequest{})
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Balance != amount.MustEther("1").String() {
		t.Fatalf("balance = %s, want 1 ether in base units", balance.Balance)
	}

	recovery, err := f.client.GetRecovery(ctx, &custodyv1.GetRecoveryRequest{})
	if err != nil {
		t.Fatalf("get recovery: %v", err)
	}
	if recovery.Active || recovery.Threshold != 3 || len(recovery.Guardians) != 3 {
		t.Fatalf("recovery = %+v", recovery)
	}
}

func TestMutationsRequireToken(t *testing.T) {
	f := newFixture(t)
	_, err := f.client.SetGuardian(context.Background(), &custodyv1.SetGuardianRequest{Guardian: g1.String(), Enabled: false})
	assertCode(t, err, codes.Unauthenticated, apperrors.CodeUnauthenticated)
}

func TestDelegateSpendOverGRPC(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.client.SetAllowance(ctx, &custodyv1.SetAllowanceRequest{Delegate: spender.String(), Amount: "0.2eth"}, f.as(t, owner)); err != nil {
		t.Fatalf("set allowance: %v", err)
	}
	resp, err := f.client.Execute(ctx, &custodyv1.ExecuteRequest{Target: recipient.String(), Amount: "0.1eth"}, f.as(t, spender))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].GetType() != string(account.EventTypeExecuted) || resp.Events[0].GetSeq() == 0 {
		t.Fatalf("events = %+v", resp.Events)
	}
	allowance, err := f.client.GetAllowance(ctx, &custodyv1.GetAllowanceRequest{Delegate: spender.String()})
	if err != nil {
		t.Fatalf("get allowance: %v", err)
	}
	if allowance.Allowance != amount.MustEther("0.1").String() {
		t.Fatalf("allowance = %s, want 0.1 ether", allowance.Allowance)
	}

	tests := []struct {
		name   string
		req    *custodyv1.ExecuteRequest
		code   codes.Code
		reason apperrors.Code
	}{
		{name: "exceeds", req: &custodyv1.ExecuteRequest{Target: recipient.String(), Amount: "0.2eth"}, code: codes.FailedPrecondition, reason: apperrors.CodeExceedsAllowance},
		{name: "data", req: &custodyv1.ExecuteRequest{Target: recipient.String(), Amount: "1", Data: []byte{0x01}}, code: codes.InvalidArgument, reason: apperrors.CodeDataNotAllowed},
		{name: "self call", req: &custodyv1.ExecuteRequest{Target: accountAddr.String(), Amount: "1"}, code: codes.InvalidArgument, reason: apperrors.CodeSelfCallNotAllowed},
		{name: "bad amount", req: &custodyv1.ExecuteRequest{Target: recipient.String(), Amount: "lots"}, code: codes.InvalidArgument, reason: apperrors.CodeInvalidAmount},
		{name: "oversized amount", req: &custodyv1.ExecuteRequest{Target: recipient.String(), Amount: "1e20000000"}, code: codes.InvalidArgument, reason: apperrors.CodeInvalidAmount},
		{name: "bad target", req: &custodyv1.ExecuteRequest{Target: "0x12", Amount: "1"}, code: codes.InvalidArgument, reason: apperrors.CodeInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.client.Execute(ctx, tt.req, f.as(t, spender))
			assertCode(t, err, tt.code, tt.reason)
		})
	}

	_, err = f.client.Execute(ctx, &custodyv1.ExecuteRequest{Target: recipient.String(), Amount: "1"}, f.as(t, g1))
	assertCode(t, err, codes.PermissionDenied, apperrors.CodeUnauthorized)
}

func TestRecoveryOverGRPC(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, g := range []address.Address{g1, g2} {
		if _, err := f.client.ProposeNewOwner(ctx, &custodyv1.ProposeNewOwnerRequest{Candidate: candidate.String()}, f.as(t, g)); err != nil {
			t.Fatalf("vote %s: %v", g, err)
		}
	}
	_, err := f.client.ProposeNewOwner(ctx, &custodyv1.ProposeNewOwnerRequest{Candidate: candidate.String()}, f.as(t, g1))
	assertCode(t, err, codes.AlreadyExists, apperrors.CodeAlreadyVoted)

	recovery, err := f.client.GetRecovery(ctx, &custodyv1.GetRecoveryRequest{})
	if err != nil {
		t.Fatalf("get recovery: %v", err)
	}
	if !recovery.Active || recovery.VoteCount != 2 || recovery.Candidate != candidate.String() {
		t.Fatalf("recovery = %+v", recovery)
	}

	resp, err := f.client.ProposeNewOwner(ctx, &custodyv1.ProposeNewOwnerRequest{Candidate: candidate.String()}, f.as(t, g3))
	if err != nil {
		t.Fatalf("final vote: %v", err)
	}
	if len(resp.Events) != 2 || resp.Events[1].GetType() != string(account.EventTypeOwnerChanged) {
		t.Fatalf("events = %+v", resp.Events)
	}
	ownerResp, err := f.client.GetOwner(ctx, &custodyv1.GetOwnerRequest{})
	if err != nil {
		t.Fatalf("get owner: %v", err)
	}
	if ownerResp.Owner != candidate.String() {
		t.Fatalf("owner = %s, want %s", ownerResp.Owner, candidate)
	}
}

func TestTransferAndListEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.client.Transfer(ctx, &custodyv1.TransferRequest{To: accountAddr.String(), Amount: "0.5eth"}, f.as(t, funder)); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	_, err := f.client.Transfer(ctx, &custodyv1.TransferRequest{To: funder.String(), Amount: "1"}, f.as(t, recipient))
	assertCode(t, err, codes.FailedPrecondition, apperrors.CodeInsufficientFunds)

	page, err := f.client.ListEvents(ctx, &custodyv1.ListEventsRequest{Filter: `type = "account.received"`, OrderBy: "seq desc"})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(page.Events) != 2 || page.Events[0].Seq < page.Events[1].Seq {
		t.Fatalf("events = %+v", page.Events)
	}

	_, err = f.client.ListEvents(ctx, &custodyv1.ListEventsRequest{Filter: `owner = "x"`})
	assertCode(t, err, codes.InvalidArgument, apperrors.CodeInvalidFilter)
}

func TestErrorsAreLocalized(t *testing.T) {
	f := newFixture(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), grpcmeta.LocaleHeader, "pt-BR")

	_, err := f.client.SetGuardian(ctx, &custodyv1.SetGuardianRequest{Guardian: g1.String()}, f.as(t, spender))
	st := status.Convert(err)
	if st.Code() != codes.PermissionDenied {
		t.Fatalf("code = %s, want %s", st.Code(), codes.PermissionDenied)
	}
	for _, d := range st.Details() {
		if lm, ok := d.(*errdetails.LocalizedMessage); ok {
			if lm.GetLocale() != "pt-BR" {
				t.Fatalf("locale = %s, want pt-BR", lm.GetLocale())
			}
			return
		}
	}
	t.Fatal("no LocalizedMessage detail")
}

func TestEventToProto(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := EventToProto(event.Event{
		AccountID:   accountAddr.Hex(),
		Seq:         7,
		Hash:        "h7",
		PrevHash:    "h6",
		Type:        account.EventTypeAllowanceSet,
		Timestamp:   ts,
		ActorID:     owner.Hex(),
		RequestID:   "req-1",
		EntityType:  "delegate",
		EntityID:    spender.Hex(),
		PayloadJSON: []byte(`{"amount":"5"}`),
	})
	if got.GetSeq() != 7 || got.GetPrevHash() != "h6" || got.GetType() != string(account.EventTypeAllowanceSet) {
		t.Fatalf("event = %v", got)
	}
	if !got.GetTs().AsTime().Equal(ts) {
		t.Fatalf("ts = %v, want %v", got.GetTs().AsTime(), ts)
	}
	if got.GetPayloadJson() != `{"amount":"5"}` {
		t.Fatalf("payload = %s", got.GetPayloadJson())
	}
}
