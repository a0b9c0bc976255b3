package app

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
	"github.com/louisbranch/custody/internal/services/custody/storage"
)

// EventsPath streams committed account events over a websocket.
const EventsPath = "/events/ws"

const subscriberBuffer = 64

type eventStream struct {
	env       *chain.Env
	journal   storage.Journal
	accountID string
	logger    zerolog.Logger
}

// newEventsHandler serves the liveness check and the event stream.
func newEventsHandler(stream *eventStream) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.HandleFunc(EventsPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		after, ok, err := parseAfter(r.URL.Query().Get("after"))
		if err != nil {
			http.Error(w, "after must be an event sequence number", http.StatusBadRequest)
			return
		}
		websocket.Handler(func(conn *websocket.Conn) {
			stream.serve(conn, after, ok)
		}).ServeHTTP(w, r)
	})
	return mux
}

func parseAfter(raw string) (uint64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	seq, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return seq, true, nil
}

// serve subscribes before reading the backlog so no commit falls between
// the two. Events at or below the last sent sequence are skipped.
func (s *eventStream) serve(conn *websocket.Conn, after uint64, backlog bool) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(conn.Request().Context())
	defer cancel()

	live := make(chan []event.Event, subscriberBuffer)
	unsubscribe := s.env.Subscribe(func(events []event.Event) {
		select {
		case live <- events:
		default:
			s.logger.Warn().Str("remote", conn.Request().RemoteAddr).Msg("event subscriber too slow, dropping")
			cancel()
		}
	})
	defer unsubscribe()

	// The client never sends frames; reading only detects disconnects.
	go func() {
		_, _ = io.Copy(io.Discard, conn)
		cancel()
	}()

	last := after
	if backlog {
		events, err := s.journal.EventsAfter(ctx, s.accountID, after)
		if err != nil {
			s.logger.Error().Err(err).Msg("load event backlog")
			return
		}
		for _, evt := range events {
			if err := websocket.JSON.Send(conn, evt); err != nil {
				return
			}
			last = evt.Seq
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case events := <-live:
			for _, evt := range events {
				if evt.AccountID != s.accountID || evt.Seq <= last {
					continue
				}
				if err := websocket.JSON.Send(conn, evt); err != nil {
					return
				}
				last = evt.Seq
			}
		}
	}
}
