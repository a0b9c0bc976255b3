package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
	"github.com/louisbranch/custody/internal/services/custody/storage"
)

var (
	accountAddr = address.Derive("account")
	alice       = address.Derive("alice")
	bob         = address.Derive("bob")
	baseTime    = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	_, events, err := account.NewRegistries()
	if err != nil {
		t.Fatalf("registries: %v", err)
	}
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "custody.db"), WithEventRegistry(events))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func receivedEvent(t *testing.T, from address.Address, value uint64, at time.Time) event.Event {
	t.Helper()
	payload, err := json.Marshal(account.ReceivedPayload{From: from, Amount: amount.FromUint64(value)})
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	return event.Event{
		AccountID:   accountAddr.Hex(),
		Type:        account.EventTypeReceived,
		Timestamp:   at,
		ActorID:     from.String(),
		RequestID:   "req-" + strconv.FormatUint(value, 10),
		EntityType:  account.EntityType,
		EntityID:    accountAddr.Hex(),
		PayloadJSON: payload,
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestCommitAssignsSeqAndChainsHashes(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	first, err := store.Commit(ctx, storage.Batch{Events: []event.Event{
		receivedEvent(t, alice, 1, baseTime),
		receivedEvent(t, bob, 2, baseTime.Add(time.Second)),
	}})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	second, err := store.Commit(ctx, storage.Batch{Events: []event.Event{
		receivedEvent(t, alice, 3, baseTime.Add(2*time.Second)),
	}})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	if first[0].Seq != 1 || first[1].Seq != 2 || second[0].Seq != 3 {
		t.Fatalf("seqs = %d,%d,%d, want 1,2,3", first[0].Seq, first[1].Seq, second[0].Seq)
	}
	if first[0].PrevHash != "" {
		t.Fatalf("first prev hash = %q, want empty", first[0].PrevHash)
	}
	if first[1].PrevHash == "" || second[0].PrevHash == first[1].PrevHash {
		t.Fatalf("prev hashes not chained: %q %q", first[1].PrevHash, second[0].PrevHash)
	}
	if err := store.VerifyChain(ctx, accountAddr.Hex()); err != nil {
		t.Fatalf("verify chain: %v", err)
	}
}

func TestCommitRejectsUnregisteredEventType(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	evt := receivedEvent(t, alice, 1, baseTime)
	evt.Type = "account.unknown"
	if _, err := store.Commit(context.Background(), storage.Batch{
		Events:   []event.Event{evt},
		Balances: map[address.Address]amount.Amount{alice: amount.FromUint64(9)},
	}); !errors.Is(err, event.ErrTypeUnknown) {
		t.Fatalf("err = %v, want %v", err, event.ErrTypeUnknown)
	}
	balances, err := store.LoadBalances(context.Background())
	if err != nil {
		t.Fatalf("load balances: %v", err)
	}
	if len(balances) != 0 {
		t.Fatalf("balances = %v, want none after failed commit", balances)
	}
}

func TestVerifyChainDetectsTampering(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if _, err := store.Commit(ctx, storage.Batch{Events: []event.Event{
		receivedEvent(t, alice, 1, baseTime),
		receivedEvent(t, bob, 2, baseTime),
	}}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := store.sqlDB.ExecContext(ctx,
		`UPDATE events SET payload_json = ? WHERE seq = 1`,
		`{"from":"`+alice.Hex()+`","amount":"1000"}`,
	); err != nil {
		t.Fatalf("tamper: %v", err)
	}
	if err := store.VerifyChain(ctx, accountAddr.Hex()); !errors.Is(err, storage.ErrChainBroken) {
		t.Fatalf("err = %v, want %v", err, storage.ErrChainBroken)
	}
}

func TestBalancesUpsertAndDeleteZero(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.PutBalances(ctx, map[address.Address]amount.Amount{
		alice: amount.MustEther("1"),
		bob:   amount.FromUint64(5),
	}); err != nil {
		t.Fatalf("put balances: %v", err)
	}
	if _, err := store.Commit(ctx, storage.Batch{Balances: map[address.Address]amount.Amount{
		alice: amount.MustEther("0.5"),
		bob:   amount.Zero(),
	}}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	got, err := store.LoadBalances(ctx)
	if err != nil {
		t.Fatalf("load balances: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("balances = %v, want only alice", got)
	}
	if got[alice].Cmp(amount.MustEther("0.5")) != 0 {
		t.Fatalf("alice = %s, want 0.5 ether", got[alice].EtherString())
	}
}

func TestSnapshotTracksLastCommittedSeq(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if _, err := store.LoadSnapshot(ctx, accountAddr.Hex()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, storage.ErrNotFound)
	}

	for i := 1; i <= 3; i++ {
		state := json.RawMessage(`{"n":` + strconv.Itoa(i) + `}`)
		if _, err := store.Commit(ctx, storage.Batch{
			Events:   []event.Event{receivedEvent(t, alice, uint64(i), baseTime)},
			Snapshot: &storage.Snapshot{AccountID: accountAddr.Hex(), State: state},
		}); err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
	}

	snap, err := store.LoadSnapshot(ctx, accountAddr.Hex())
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if snap.Seq != 3 {
		t.Fatalf("snapshot seq = %d, want 3", snap.Seq)
	}
	if string(snap.State) != `{"n":3}` {
		t.Fatalf("snapshot state = %s, want {\"n\":3}", snap.State)
	}

	after, err := store.EventsAfter(ctx, accountAddr.Hex(), 1)
	if err != nil {
		t.Fatalf("events after: %v", err)
	}
	if len(after) != 2 || after[0].Seq != 2 {
		t.Fatalf("events after 1 = %+v", after)
	}
}

func TestListEventsPaginatesAndFilters(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	var batch []event.Event
	for i := 1; i <= 5; i++ {
		from := alice
		if i%2 == 0 {
			from = bob
		}
		batch = append(batch, receivedEvent(t, from, uint64(i), baseTime.Add(time.Duration(i)*time.Minute)))
	}
	if _, err := store.Commit(ctx, storage.Batch{Events: batch}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	page, err := store.ListEvents(ctx, storage.EventQuery{AccountID: accountAddr.Hex(), PageSize: 2})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(page.Events) != 2 || page.NextPageToken != "2" {
		t.Fatalf("page = %d events, token %q; want 2 events, token \"2\"", len(page.Events), page.NextPageToken)
	}
	page, err = store.ListEvents(ctx, storage.EventQuery{AccountID: accountAddr.Hex(), PageSize: 2, PageToken: page.NextPageToken})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if page.Events[0].Seq != 3 {
		t.Fatalf("second page starts at %d, want 3", page.Events[0].Seq)
	}

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{name: "actor", filter: `actor_id = "` + bob.String() + `"`, want: 2},
		{name: "type", filter: `type = "account.received"`, want: 5},
		{name: "seq range", filter: `seq >= 2 AND seq < 4`, want: 2},
		{name: "timestamp", filter: `ts > timestamp("2026-03-01T12:03:00Z")`, want: 2},
		{name: "or", filter: `request_id = "req-1" OR request_id = "req-5"`, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := store.ListEvents(ctx, storage.EventQuery{AccountID: accountAddr.Hex(), Filter: tt.filter})
			if err != nil {
				t.Fatalf("list events: %v", err)
			}
			if len(page.Events) != tt.want {
				t.Fatalf("events = %d, want %d", len(page.Events), tt.want)
			}
		})
	}
}

func TestListEventsDescending(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if _, err := store.Commit(ctx, storage.Batch{Events: []event.Event{
		receivedEvent(t, alice, 1, baseTime),
		receivedEvent(t, alice, 2, baseTime),
		receivedEvent(t, alice, 3, baseTime),
	}}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	page, err := store.ListEvents(ctx, storage.EventQuery{AccountID: accountAddr.Hex(), PageSize: 2, Descending: true})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if page.Events[0].Seq != 3 || page.NextPageToken != "2" {
		t.Fatalf("first = %d token = %q, want 3 and \"2\"", page.Events[0].Seq, page.NextPageToken)
	}
	page, err = store.ListEvents(ctx, storage.EventQuery{AccountID: accountAddr.Hex(), PageSize: 2, Descending: true, PageToken: page.NextPageToken})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].Seq != 1 || page.NextPageToken != "" {
		t.Fatalf("last page = %+v", page)
	}
}

func TestListEventsRejectsBadFilterAndToken(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	_, err := store.ListEvents(ctx, storage.EventQuery{AccountID: accountAddr.Hex(), Filter: `owner = "x"`})
	if apperrors.CodeOf(err) != apperrors.CodeInvalidFilter {
		t.Fatalf("code = %s, want %s", apperrors.CodeOf(err), apperrors.CodeInvalidFilter)
	}
	_, err = store.ListEvents(ctx, storage.EventQuery{AccountID: accountAddr.Hex(), PageToken: "abc"})
	if !errors.Is(err, storage.ErrInvalidPageToken) {
		t.Fatalf("err = %v, want %v", err, storage.ErrInvalidPageToken)
	}
}
