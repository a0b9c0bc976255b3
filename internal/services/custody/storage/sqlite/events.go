package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/custody/internal/services/custody/domain/event"
	"github.com/louisbranch/custody/internal/services/custody/storage"
)

const (
	defaultEventPageSize = 50
	maxEventPageSize     = 500
)

const eventColumns = `account_id, seq, event_hash, prev_hash, chain_hash, ts,
	event_type, actor_id, request_id, entity_type, entity_id, payload_json`

// ListEvents returns one page of events matching query, ordered by seq.
// The page token is the seq of the last event of the previous page.
func (s *Store) ListEvents(ctx context.Context, query storage.EventQuery) (storage.EventPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.EventPage{}, err
	}
	accountID := strings.TrimSpace(query.AccountID)
	if accountID == "" {
		return storage.EventPage{}, event.ErrAccountIDRequired
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultEventPageSize
	}
	if pageSize > maxEventPageSize {
		pageSize = maxEventPageSize
	}

	cond, err := ParseEventFilter(query.Filter)
	if err != nil {
		return storage.EventPage{}, err
	}

	clauses := []string{"account_id = ?"}
	params := []any{accountID}
	if cond.Clause != "" {
		clauses = append(clauses, cond.Clause)
		params = append(params, cond.Params...)
	}
	order := "ASC"
	cmp := ">"
	if query.Descending {
		order = "DESC"
		cmp = "<"
	}
	if token := strings.TrimSpace(query.PageToken); token != "" {
		after, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return storage.EventPage{}, fmt.Errorf("%w: %q", storage.ErrInvalidPageToken, token)
		}
		clauses = append(clauses, "seq "+cmp+" ?")
		params = append(params, after)
	}
	params = append(params, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE "+strings.Join(clauses, " AND ")+
			" ORDER BY seq "+order+" LIMIT ?",
		params...,
	)
	if err != nil {
		return storage.EventPage{}, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events, _, err := scanEvents(rows)
	if err != nil {
		return storage.EventPage{}, err
	}
	page := storage.EventPage{Events: events}
	if len(events) > pageSize {
		page.Events = events[:pageSize]
		page.NextPageToken = strconv.FormatUint(page.Events[pageSize-1].Seq, 10)
	}
	return page, nil
}

// EventsAfter returns every event of accountID with a seq greater than seq.
func (s *Store) EventsAfter(ctx context.Context, accountID string, seq uint64) ([]event.Event, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE account_id = ? AND seq > ? ORDER BY seq ASC",
		strings.TrimSpace(accountID), seq,
	)
	if err != nil {
		return nil, fmt.Errorf("events after %d: %w", seq, err)
	}
	defer rows.Close()
	events, _, err := scanEvents(rows)
	return events, err
}

// VerifyChain recomputes every event hash and chain link of accountID.
func (s *Store) VerifyChain(ctx context.Context, accountID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE account_id = ? ORDER BY seq ASC",
		strings.TrimSpace(accountID),
	)
	if err != nil {
		return fmt.Errorf("verify chain: %w", err)
	}
	defer rows.Close()

	events, chains, err := scanEvents(rows)
	if err != nil {
		return err
	}
	prev := ""
	for i, evt := range events {
		if evt.Seq != uint64(i+1) {
			return fmt.Errorf("%w: seq %d at position %d", storage.ErrChainBroken, evt.Seq, i+1)
		}
		hash, err := event.Hash(evt)
		if err != nil {
			return fmt.Errorf("hash event %d: %w", evt.Seq, err)
		}
		if hash != evt.Hash {
			return fmt.Errorf("%w: event %d content hash mismatch", storage.ErrChainBroken, evt.Seq)
		}
		if evt.PrevHash != prev {
			return fmt.Errorf("%w: event %d prev hash mismatch", storage.ErrChainBroken, evt.Seq)
		}
		chain := event.ChainHash(evt.Seq, hash, prev)
		if chain != chains[i] {
			return fmt.Errorf("%w: event %d chain hash mismatch", storage.ErrChainBroken, evt.Seq)
		}
		prev = chain
	}
	return nil
}

func scanEvents(rows *sql.Rows) ([]event.Event, []string, error) {
	var (
		events []event.Event
		chains []string
	)
	for rows.Next() {
		var (
			evt     event.Event
			chain   string
			ts      int64
			typ     string
			payload string
		)
		if err := rows.Scan(
			&evt.AccountID, &evt.Seq, &evt.Hash, &evt.PrevHash, &chain, &ts,
			&typ, &evt.ActorID, &evt.RequestID, &evt.EntityType, &evt.EntityID, &payload,
		); err != nil {
			return nil, nil, fmt.Errorf("scan event: %w", err)
		}
		evt.Timestamp = fromMillis(ts)
		evt.Type = event.Type(typ)
		evt.PayloadJSON = json.RawMessage(payload)
		events = append(events, evt)
		chains = append(chains, chain)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, chains, nil
}
