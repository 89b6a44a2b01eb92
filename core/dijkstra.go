package core

import (
	"fmt"
	"maps"
	"slices"

	"github.com/encodeous/dvsim/state"
)

// ShortestPaths computes single-source shortest distances over adj with a
// plain Dijkstra scan. Unreachable nodes keep metric INF.
func ShortestPaths(adj map[state.NodeId]map[state.NodeId]uint32, source state.NodeId) map[state.NodeId]uint32 {
	ids := slices.Sorted(maps.Keys(adj))
	dist := make(map[state.NodeId]uint32, len(ids))
	visited := make(map[state.NodeId]bool, len(ids))

	for _, node := range ids {
		dist[node] = state.INF
	}
	dist[source] = 0

	for len(visited) < len(ids) {
		// find the unvisited node with the minimum distance
		current := state.NodeId("")
		minDist := state.INF
		for _, node := range ids {
			if !visited[node] && dist[node] < minDist {
				current = node
				minDist = dist[node]
			}
		}
		if current == "" {
			break // no more reachable nodes
		}
		visited[current] = true

		for neighbour, cost := range adj[current] {
			if !visited[neighbour] {
				alt := AddMetric(dist[current], cost)
				if alt < dist[neighbour] {
					dist[neighbour] = alt
				}
			}
		}
	}
	return dist
}

// VerifyShortestPaths checks every routing table against an independent
// Dijkstra computation over the same adjacency. A finite route must also run
// through a real neighbour whose own shortest distance accounts for the rest
// of the path.
func VerifyShortestPaths(cfg *state.TopologyCfg, tables map[state.NodeId]state.RoutingTable) error {
	adj := cfg.Adjacency()
	ids := cfg.SortedIds()

	all := make(map[state.NodeId]map[state.NodeId]uint32, len(ids))
	for _, src := range ids {
		all[src] = ShortestPaths(adj, src)
	}

	for _, src := range ids {
		table, ok := tables[src]
		if !ok {
			return fmt.Errorf("no routing table for node %s", src)
		}
		for _, dst := range ids {
			e, ok := table.Entries[dst]
			if !ok {
				return fmt.Errorf("%s has no entry for %s", src, dst)
			}
			if e.Metric != all[src][dst] {
				return fmt.Errorf("%s -> %s: table metric %d, expected %d", src, dst, e.Metric, all[src][dst])
			}
			if dst == src {
				if e.Nh != src {
					return fmt.Errorf("%s: self entry must point to itself, got %s", src, e.Nh)
				}
				continue
			}
			if e.Metric == state.INF {
				if e.Nh != "" {
					return fmt.Errorf("%s -> %s: unreachable entry must have no next hop, got %s", src, dst, e.Nh)
				}
				continue
			}
			cost, ok := adj[src][e.Nh]
			if !ok {
				return fmt.Errorf("%s -> %s: next hop %s is not a neighbour", src, dst, e.Nh)
			}
			if e.Metric != AddMetric(cost, all[e.Nh][dst]) {
				return fmt.Errorf("%s -> %s: next hop %s does not lie on a shortest path", src, dst, e.Nh)
			}
		}
	}
	return nil
}
