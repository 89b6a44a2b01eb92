package core

import (
	"testing"

	"github.com/encodeous/dvsim/mock"
	"github.com/encodeous/dvsim/state"
)

type HarnessEvent struct {
	Event RouterEvent
	Args  []any
}

// TraceHarness records router events so tests can assert on what the
// algorithm did, not just on the resulting tables.
type TraceHarness struct {
	events []HarnessEvent
}

func (h *TraceHarness) Log(event RouterEvent, args ...any) {
	h.events = append(h.events, HarnessEvent{Event: event, Args: args})
}

func (h *TraceHarness) Count(event RouterEvent) int {
	n := 0
	for _, e := range h.events {
		if e.Event == event {
			n++
		}
	}
	return n
}

func (h *TraceHarness) Reset() {
	h.events = nil
}

// MakeNeighbours builds a unit-cost neighbour map.
func MakeNeighbours(ids ...state.NodeId) map[state.NodeId]uint32 {
	m := make(map[state.NodeId]uint32, len(ids))
	for _, id := range ids {
		m[id] = 1
	}
	return m
}

// runRecorded drives one simulation over cfg and returns its outcome along
// with every round snapshot.
func runRecorded(t *testing.T, cfg state.TopologyCfg) (Outcome, *Recorder) {
	t.Helper()
	sim, err := NewSimulator(mock.Env(cfg))
	if err != nil {
		t.Fatalf("failed to build simulator: %s", err)
	}
	rec := &Recorder{}
	sim.Observe(rec)
	out, err := sim.Run()
	if err != nil {
		t.Fatalf("run failed: %s", err)
	}
	return out, rec
}
