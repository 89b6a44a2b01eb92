package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/encodeous/dvsim/perf"
	"github.com/encodeous/dvsim/state"
	"github.com/jinzhu/copier"
)

type Phase int

const (
	Initializing Phase = iota
	Running
	Converged
	LimitReached
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Converged:
		return "converged"
	case LimitReached:
		return "limit-reached"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Outcome is the terminal status of a run.
type Outcome struct {
	Phase  Phase
	Rounds int
}

// RoundSnapshot captures every routing table after one full round of vector
// exchange. Tables are deep copies and stay valid after the round loop moves
// on.
type RoundSnapshot struct {
	Round   int
	Updates int
	Tables  map[state.NodeId]state.RoutingTable
}

// Observer is notified after each completed round, on the round loop
// goroutine.
type Observer interface {
	RoundComplete(snap RoundSnapshot)
}

// Simulator drives the synchronous round loop over a validated topology.
type Simulator struct {
	*state.State
	phase     Phase
	rounds    int
	observers []Observer
}

// NewSimulator validates the topology, builds one router per declared node
// and seeds every routing table with the full identity set.
func NewSimulator(env *state.Env) (*Simulator, error) {
	err := state.TopologyValidator(&env.TopologyCfg)
	if err != nil {
		return nil, err
	}
	sim := &Simulator{
		State: &state.State{Env: env},
		phase: Initializing,
	}
	adj := env.Adjacency()
	all := env.SortedIds()
	for _, id := range all {
		sim.Routers = append(sim.Routers, &state.Router{
			Id:         id,
			Neighbours: adj[id],
		})
	}
	for _, r := range sim.Routers {
		InitTable(r, sim, all)
	}
	sim.phase = Running
	return sim, nil
}

func (sim *Simulator) Phase() Phase { return sim.phase }
func (sim *Simulator) Rounds() int  { return sim.rounds }

// Observe registers an observer. Observers are called in registration order.
// Must not be called once Run has started.
func (sim *Simulator) Observe(o Observer) {
	sim.observers = append(sim.observers, o)
}

// Log implements Tracer over the env logger. Warn events are always emitted,
// trace events only when route change logging is enabled.
func (sim *Simulator) Log(event RouterEvent, args ...any) {
	if event >= 1000 {
		sim.Env.Log.Warn(args[0].(string), args[1:]...)
		return
	}
	if state.DBG_log_route_changes {
		sim.Env.Log.Debug(args[0].(string), args[1:]...)
	}
}

// Run executes rounds until the network converges, the round cap is reached,
// or the env context is cancelled between rounds. Reaching the cap is a
// distinct outcome, not an error.
func (sim *Simulator) Run() (Outcome, error) {
	if sim.phase != Running {
		return Outcome{Phase: sim.phase, Rounds: sim.rounds}, fmt.Errorf("simulator cannot run in phase %s", sim.phase)
	}
	ctx := sim.Env.Context
	sim.Env.Log.Info("starting simulation", "nodes", len(sim.Routers), "max_rounds", sim.Env.MaxRounds, "workers", sim.Env.Workers)

	for round := 1; round <= sim.Env.MaxRounds; round++ {
		select {
		case <-ctx.Done():
			sim.Env.Log.Info("simulation cancelled", "reason", context.Cause(ctx).Error())
			return Outcome{Phase: sim.phase, Rounds: sim.rounds}, context.Cause(ctx)
		default:
		}

		start := time.Now()
		updates, deliveries := sim.step()
		sim.rounds = round
		perf.RoundLatency.Add(float64(time.Since(start).Microseconds()))
		perf.RoundsPerSecond.Add(1)
		perf.DeliveriesPerSecond.Add(float64(deliveries))
		perf.UpdatesPerSecond.Add(float64(updates))

		snap := sim.snapshot(round, updates)
		for _, o := range sim.observers {
			o.RoundComplete(snap)
		}

		sim.Env.Log.Debug("round complete", "round", round, "updates", updates)

		if updates == 0 {
			sim.phase = Converged
			sim.Env.Log.Info("network converged", "rounds", round)
			return Outcome{Phase: Converged, Rounds: round}, nil
		}
	}

	sim.phase = LimitReached
	sim.Env.Log.Warn("round limit reached before convergence", "rounds", sim.rounds)
	return Outcome{Phase: LimitReached, Rounds: sim.rounds}, nil
}

// step runs one full round. Every vector is exported before any delivery, so
// all updates this round are computed from the previous round's tables.
// Routers are walked in sorted id order, independent of construction order.
// Returns the number of deliveries that changed a table, and the total number
// of deliveries.
func (sim *Simulator) step() (int, int) {
	routers := sim.SortedRouters()
	vectors := make(map[state.NodeId]state.DistanceVector, len(routers))
	deliveries := 0
	for _, r := range routers {
		vectors[r.Id] = r.Table.ExportVector()
		deliveries += len(r.Neighbours)
	}

	if sim.Env.Workers > 1 {
		return sim.deliverParallel(routers, vectors), deliveries
	}
	return sim.deliverSerial(routers, vectors), deliveries
}

func (sim *Simulator) deliverSerial(routers []*state.Router, vectors map[state.NodeId]state.DistanceVector) int {
	updates := 0
	for _, r := range routers {
		updates += deliverTo(r, sim, vectors)
	}
	return updates
}

// deliverParallel partitions the round by receiver: each router's table is
// written by exactly one goroutine, so the result is identical to the serial
// order.
func (sim *Simulator) deliverParallel(routers []*state.Router, vectors map[state.NodeId]state.DistanceVector) int {
	var wg sync.WaitGroup
	sem := make(chan struct{}, sim.Env.Workers)
	counts := make([]int, len(routers))
	for i, r := range routers {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			counts[i] = deliverTo(r, sim, vectors)
		}()
	}
	wg.Wait()

	updates := 0
	for _, c := range counts {
		updates += c
	}
	return updates
}

// deliverTo feeds every neighbour's vector to r, neighbours in sorted order.
// Returns the number of deliveries that changed the table.
func deliverTo(r *state.Router, t Tracer, vectors map[state.NodeId]state.DistanceVector) int {
	updates := 0
	for _, from := range r.SortedNeighbours() {
		if HandleVector(r, t, from, vectors[from]) {
			updates++
		}
	}
	return updates
}

func (sim *Simulator) snapshot(round, updates int) RoundSnapshot {
	tables := make(map[state.NodeId]state.RoutingTable, len(sim.Routers))
	for _, r := range sim.Routers {
		var table state.RoutingTable
		err := copier.CopyWithOption(&table, &r.Table, copier.Option{DeepCopy: true})
		if err != nil {
			panic(err)
		}
		tables[r.Id] = table
	}
	return RoundSnapshot{Round: round, Updates: updates, Tables: tables}
}

// Tables returns a deep copy of the current routing tables.
func (sim *Simulator) Tables() map[state.NodeId]state.RoutingTable {
	return sim.snapshot(sim.rounds, 0).Tables
}
