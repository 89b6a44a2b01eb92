package mock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/encodeous/dvsim/state"
)

// Demo is the four node diamond used by init and the docs. The cheapest
// route from a to d runs a -> b -> c -> d at cost 4.
func Demo() state.TopologyCfg {
	return state.TopologyCfg{
		Nodes: []state.NodeId{"a", "b", "c", "d"},
		Links: []state.LinkCfg{
			{A: "a", B: "b", Cost: 1},
			{A: "a", B: "c", Cost: 4},
			{A: "b", B: "c", Cost: 2},
			{A: "b", B: "d", Cost: 7},
			{A: "c", B: "d", Cost: 1},
		},
	}
}

// Mesh is a five node weighted mesh.
func Mesh() state.TopologyCfg {
	return state.TopologyCfg{
		Nodes: []state.NodeId{"bob", "jeb", "kat", "eve", "ada"},
		Links: []state.LinkCfg{
			{A: "bob", B: "jeb", Cost: 7},
			{A: "bob", B: "kat", Cost: 9},
			{A: "bob", B: "eve", Cost: 100},
			{A: "jeb", B: "kat", Cost: 1},
			{A: "kat", B: "ada", Cost: 10},
			{A: "kat", B: "eve", Cost: 3},
			{A: "eve", B: "ada", Cost: 8},
		},
	}
}

// Line is a chain of n nodes joined by unit cost links.
func Line(n int) state.TopologyCfg {
	cfg := state.TopologyCfg{}
	for i := range n {
		cfg.Nodes = append(cfg.Nodes, state.NodeId(fmt.Sprintf("n%02d", i)))
	}
	for i := range n - 1 {
		cfg.Links = append(cfg.Links, state.LinkCfg{A: cfg.Nodes[i], B: cfg.Nodes[i+1], Cost: 1})
	}
	return cfg
}

// Env builds a ready-to-run env over cfg with a discard logger.
func Env(cfg state.TopologyCfg) *state.Env {
	ctx, cancel := context.WithCancelCause(context.Background())
	return state.NewEnv(ctx, cancel, cfg, slog.New(slog.DiscardHandler))
}
