package app

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
)

func startServer(t *testing.T) (*Server, *Runtime) {
	t.Helper()
	rt := bootstrap(t, filepath.Join(t.TempDir(), "custody.db"), loadGenesis(t))
	srv, err := newServer(rt, Config{Port: 0, EventsAddr: "127.0.0.1:0"}, zerolog.Nop())
	if err != nil {
		_ = rt.Close()
		t.Fatalf("new server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
	return srv, rt
}

func receiveEvent(t *testing.T, conn *websocket.Conn) event.Event {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(3 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	var evt event.Event
	if err := websocket.JSON.Receive(conn, &evt); err != nil {
		t.Fatalf("receive event: %v", err)
	}
	return evt
}

func TestEventStreamSendsBacklogThenLiveEvents(t *testing.T) {
	srv, rt := startServer(t)
	httpURL := "http://" + srv.EventsAddr()
	wsURL := "ws" + strings.TrimPrefix(httpURL, "http") + EventsPath + "?after=0"

	conn, err := websocket.Dial(wsURL, "", httpURL)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	defer conn.Close()

	first := receiveEvent(t, conn)
	if first.Seq != 1 || first.Type != account.EventTypeInitialized {
		t.Fatalf("first event = %d %s, want 1 %s", first.Seq, first.Type, account.EventTypeInitialized)
	}

	if _, err := rt.Authority.SetAllowance(context.Background(), owner, delegate, amount.MustEther("1")); err != nil {
		t.Fatalf("set allowance: %v", err)
	}
	next := receiveEvent(t, conn)
	if next.Seq != 2 || next.Type != account.EventTypeAllowanceSet {
		t.Fatalf("next event = %d %s, want 2 %s", next.Seq, next.Type, account.EventTypeAllowanceSet)
	}
	if next.Hash == "" {
		t.Fatal("expected stored event hash")
	}
}

func TestEventStreamResumesAfterSequence(t *testing.T) {
	srv, rt := startServer(t)
	ctx := context.Background()
	if _, err := rt.Authority.SetAllowance(ctx, owner, delegate, amount.MustEther("1")); err != nil {
		t.Fatalf("set allowance: %v", err)
	}
	if _, err := rt.Authority.SetGuardian(ctx, owner, g2, true); err != nil {
		t.Fatalf("set guardian: %v", err)
	}

	httpURL := "http://" + srv.EventsAddr()
	conn, err := websocket.Dial("ws://"+srv.EventsAddr()+EventsPath+"?after=2", "", httpURL)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	defer conn.Close()

	evt := receiveEvent(t, conn)
	if evt.Seq != 3 || evt.Type != account.EventTypeGuardianSet {
		t.Fatalf("event = %d %s, want 3 %s", evt.Seq, evt.Type, account.EventTypeGuardianSet)
	}
}

func TestEventsHandlerRoutes(t *testing.T) {
	srv, _ := startServer(t)
	base := "http://" + srv.EventsAddr()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "liveness", method: http.MethodGet, path: "/up", want: http.StatusOK},
		{name: "post stream", method: http.MethodPost, path: EventsPath, want: http.StatusMethodNotAllowed},
		{name: "bad after", method: http.MethodGet, path: EventsPath + "?after=x", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, base+tt.path, nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("do request: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
			if tt.path == "/up" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != "OK" {
					t.Fatalf("body = %q, want OK", body)
				}
			}
		})
	}
}

func TestParseAfter(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint64
		ok      bool
		wantErr bool
	}{
		{raw: "", want: 0, ok: false},
		{raw: " 7 ", want: 7, ok: true},
		{raw: "-1", wantErr: true},
	}
	for _, tt := range tests {
		got, ok, err := parseAfter(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseAfter(%q) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
		}
		if got != tt.want || ok != tt.ok {
			t.Fatalf("parseAfter(%q) = %d %v, want %d %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
