package state

import (
	"slices"
)

type NodeId string

// TableEntry is a single row of a routing table: the next hop towards a
// destination and the total metric through it.
type TableEntry struct {
	Nh     NodeId
	Metric uint32
}

// DistanceVector is the advertisement a router shares with its neighbours,
// destination to metric. It carries no next-hop information.
type DistanceVector map[NodeId]uint32

// RoutingTable maps every known destination to its current best entry. A
// destination the router has not found a path to yet has metric INF and no
// next hop.
type RoutingTable struct {
	Entries map[NodeId]TableEntry
}

// Entry returns the row for dst. It panics if dst was never initialized,
// since tables are seeded with every node in the topology up front.
func (t *RoutingTable) Entry(dst NodeId) TableEntry {
	e, ok := t.Entries[dst]
	if !ok {
		panic("routing table has no entry for " + string(dst))
	}
	return e
}

// ExportVector builds the distance vector this table advertises. The metrics
// are copied out, so later table updates do not leak into a vector already
// handed to a neighbour.
func (t *RoutingTable) ExportVector() DistanceVector {
	dv := make(DistanceVector, len(t.Entries))
	for dst, e := range t.Entries {
		dv[dst] = e.Metric
	}
	return dv
}

// Router is one simulated node: its identity, the cost of each attached
// link, and its routing table.
type Router struct {
	Id         NodeId
	Neighbours map[NodeId]uint32
	Table      RoutingTable
}

// IsNeighbour reports whether node shares a link with r.
func (r *Router) IsNeighbour(node NodeId) bool {
	_, ok := r.Neighbours[node]
	return ok
}

// SortedNeighbours returns the neighbour ids in lexicographic order.
func (r *Router) SortedNeighbours() []NodeId {
	ids := make([]NodeId, 0, len(r.Neighbours))
	for id := range r.Neighbours {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
