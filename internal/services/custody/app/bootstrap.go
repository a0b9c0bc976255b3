package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/louisbranch/custody/internal/services/custody/authority"
	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/genesis"
	"github.com/louisbranch/custody/internal/services/custody/storage"
	storagesqlite "github.com/louisbranch/custody/internal/services/custody/storage/sqlite"
)

// Runtime is a bootstrapped custody environment with its account loaded.
type Runtime struct {
	Env       *chain.Env
	Authority *authority.Authority
	Store     *storagesqlite.Store
	Genesis   genesis.Genesis
}

// Close releases the store.
func (r *Runtime) Close() error {
	if r == nil || r.Store == nil {
		return nil
	}
	return r.Store.Close()
}

// Bootstrap opens the journal at dbPath, deploys the genesis contracts and
// rebuilds the account: from the latest snapshot plus later events when a
// history exists, from genesis otherwise.
func Bootstrap(ctx context.Context, dbPath string, g genesis.Genesis, logger zerolog.Logger) (*Runtime, error) {
	store, err := openStore(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	rt, err := bootstrapWithStore(ctx, store, g, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return rt, nil
}

func openStore(ctx context.Context, path string) (*storagesqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "custody.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	_, events, err := account.NewRegistries()
	if err != nil {
		return nil, fmt.Errorf("account registries: %w", err)
	}
	store, err := storagesqlite.Open(ctx, path, storagesqlite.WithEventRegistry(events))
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}

func bootstrapWithStore(ctx context.Context, store *storagesqlite.Store, g genesis.Genesis, logger zerolog.Logger) (*Runtime, error) {
	committer := &journalCommitter{journal: store}
	env := chain.NewEnv(chain.WithCommitter(committer), chain.WithLogger(logger))
	auth, err := authority.New(env, authority.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	committer.authority = auth

	if err := g.Deploy(env); err != nil {
		return nil, err
	}

	accountID := g.Account.Address.Hex()
	if err := store.VerifyChain(ctx, accountID); err != nil {
		return nil, fmt.Errorf("verify journal: %w", err)
	}

	balances, err := store.LoadBalances(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := store.LoadSnapshot(ctx, accountID)
	hasSnapshot := err == nil
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if hasSnapshot {
		var st account.State
		if err := json.Unmarshal(snap.State, &st); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		auth.Restore(st)
	}
	pending, err := store.EventsAfter(ctx, accountID, snap.Seq)
	if err != nil {
		return nil, err
	}

	fresh := !hasSnapshot && len(pending) == 0 && len(balances) == 0
	if fresh {
		g.SeedBalances(env)
		if err := store.PutBalances(ctx, g.Balances); err != nil {
			return nil, fmt.Errorf("persist genesis balances: %w", err)
		}
	} else {
		for addr, value := range balances {
			env.SetBalance(addr, value)
		}
	}

	if len(pending) > 0 {
		if err := auth.Replay(pending); err != nil {
			return nil, err
		}
	}
	if !auth.State().Initialized {
		if _, err := auth.Initialize(ctx, g.Deployer, g.Account); err != nil {
			return nil, fmt.Errorf("initialize account: %w", err)
		}
		logger.Info().Str("account", g.Account.Address.String()).Str("owner", g.Account.Owner.String()).Msg("account initialized from genesis")
	} else {
		logger.Info().
			Str("account", auth.Address().String()).
			Uint64("snapshot_seq", snap.Seq).
			Int("replayed", len(pending)).
			Msg("account restored")
	}
	return &Runtime{Env: env, Authority: auth, Store: store, Genesis: g}, nil
}
