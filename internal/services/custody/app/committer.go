package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/louisbranch/custody/internal/services/custody/authority"
	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
	"github.com/louisbranch/custody/internal/services/custody/storage"
)

// journalCommitter persists each receipt together with a snapshot of the
// account state the request left behind.
type journalCommitter struct {
	journal   storage.Journal
	authority *authority.Authority
}

var _ chain.Committer = (*journalCommitter)(nil)

// Commit runs inside the environment lock, so LiveState is the state the
// receipt's events produced.
func (c *journalCommitter) Commit(ctx context.Context, receipt chain.Receipt) ([]event.Event, error) {
	if c.journal == nil {
		return nil, errors.New("journal is not configured")
	}
	batch := storage.Batch{Events: receipt.Events, Balances: receipt.Balances}
	if len(receipt.Events) > 0 && c.authority != nil {
		st := c.authority.LiveState()
		if st.Initialized {
			raw, err := json.Marshal(st)
			if err != nil {
				return nil, fmt.Errorf("encode snapshot: %w", err)
			}
			batch.Snapshot = &storage.Snapshot{AccountID: st.Address.Hex(), State: raw}
		}
	}
	return c.journal.Commit(ctx, batch)
}
