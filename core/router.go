package core

import (
	"maps"
	"slices"

	"github.com/encodeous/dvsim/state"
)

type RouterEvent int

// trace events

const (
	RouteSeeded RouterEvent = iota
	RouteImproved
)

// warn events

const (
	InconsistentVector RouterEvent = iota + 1000
)

// Tracer receives route table events as they are applied.
type Tracer interface {
	Log(event RouterEvent, args ...any)
}

// InitTable seeds the routing table of r with one entry per identity in the
// network: itself at metric 0, each direct neighbour at the link cost, and
// everything else unreachable. Must be called exactly once, before the first
// round.
func InitTable(r *state.Router, t Tracer, all []state.NodeId) {
	r.Table.Entries = make(map[state.NodeId]state.TableEntry, len(all))
	for _, dst := range all {
		entry := state.TableEntry{Metric: state.INF}
		if dst == r.Id {
			entry = state.TableEntry{Nh: r.Id, Metric: 0}
		} else if cost, ok := r.Neighbours[dst]; ok {
			entry = state.TableEntry{Nh: dst, Metric: cost}
		}
		r.Table.Entries[dst] = entry
		t.Log(RouteSeeded, "seeded route", "node", r.Id, "dst", dst, "nh", entry.Nh, "metric", entry.Metric)
	}
}

// HandleVector folds a neighbour's distance vector into r's table. For every
// destination the neighbour advertises, the route through the neighbour
// replaces the current entry only when it is strictly cheaper, so an
// equal-cost alternative never displaces the route that was found first.
// Reports whether any entry changed.
//
// The sender must be a direct neighbour of r, anything else is a bug in the
// caller.
func HandleVector(r *state.Router, t Tracer, from state.NodeId, vec state.DistanceVector) bool {
	if !r.IsNeighbour(from) {
		panic("router " + string(r.Id) + " received a vector from " + string(from) + ", which is not a neighbour")
	}
	cost := r.Neighbours[from]

	changed := false
	for _, dst := range slices.Sorted(maps.Keys(vec)) {
		cur, ok := r.Table.Entries[dst]
		if !ok {
			// every table is seeded with the full identity set, so the
			// sender believes in a node we have never heard of
			t.Log(InconsistentVector, "vector names unknown destination", "node", r.Id, "from", from, "dst", dst)
			continue
		}
		cand := AddMetric(cost, vec[dst])
		if cand < cur.Metric {
			r.Table.Entries[dst] = state.TableEntry{Nh: from, Metric: cand}
			t.Log(RouteImproved, "improved route", "node", r.Id, "dst", dst, "via", from, "metric", cand, "was", cur.Metric)
			changed = true
		}
	}
	return changed
}
