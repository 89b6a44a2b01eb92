package state

import (
	"context"
	"log/slog"
	"slices"
)

// State is the full simulation state. Mutation must be done only by the
// round loop; snapshots are handed out for anything that outlives a round.
type State struct {
	*Env
	Routers []*Router
}

// SortedRouters returns the routers ordered by id. The round loop walks this
// order, never the raw Routers slice.
func (s *State) SortedRouters() []*Router {
	routers := slices.Clone(s.Routers)
	slices.SortFunc(routers, func(a, b *Router) int {
		if a.Id < b.Id {
			return -1
		} else if a.Id > b.Id {
			return 1
		}
		return 0
	})
	return routers
}

// Env can be read from any Goroutine
type Env struct {
	TopologyCfg
	Context context.Context
	Cancel  context.CancelCauseFunc
	Log     *slog.Logger
	// resolved runtime values, shadowing the raw config fields
	MaxRounds int
	Workers   int
}

// NewEnv resolves the runtime values for one simulation run.
func NewEnv(ctx context.Context, cancel context.CancelCauseFunc, cfg TopologyCfg, log *slog.Logger) *Env {
	env := &Env{
		TopologyCfg: cfg,
		Context:     ctx,
		Cancel:      cancel,
		Log:         log,
		MaxRounds:   cfg.MaxRounds,
		Workers:     cfg.Workers,
	}
	if env.MaxRounds <= 0 {
		env.MaxRounds = DefaultMaxRounds
	}
	if env.Workers <= 0 {
		env.Workers = 1
	}
	return env
}
