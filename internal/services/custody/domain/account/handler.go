package account

import (
	"time"

	"github.com/louisbranch/custody/internal/services/custody/domain/engine"
)

// NewHandler returns an engine handler wired with the account registries,
// Decide and Fold.
func NewHandler(now func() time.Time) (engine.Handler[State], error) {
	commands, events, err := NewRegistries()
	if err != nil {
		return engine.Handler[State]{}, err
	}
	return engine.Handler[State]{
		Commands: commands,
		Events:   events,
		Decider:  Decider{},
		Applier:  Applier{},
		Now:      now,
	}, nil
}
