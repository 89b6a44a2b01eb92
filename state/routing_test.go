package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportVector(t *testing.T) {
	table := RoutingTable{Entries: map[NodeId]TableEntry{
		"a": {Nh: "a", Metric: 0},
		"b": {Nh: "b", Metric: 4},
		"c": {Metric: INF},
	}}
	dv := table.ExportVector()
	assert.Equal(t, DistanceVector{"a": 0, "b": 4, "c": INF}, dv)
}

func TestExportVector_DoesNotAliasTable(t *testing.T) {
	table := RoutingTable{Entries: map[NodeId]TableEntry{
		"a": {Nh: "a", Metric: 0},
		"b": {Nh: "b", Metric: 4},
	}}
	dv := table.ExportVector()
	table.Entries["b"] = TableEntry{Nh: "c", Metric: 2}
	assert.Equal(t, uint32(4), dv["b"])
}

func TestEntry_PanicsOnUnknownDestination(t *testing.T) {
	table := RoutingTable{Entries: map[NodeId]TableEntry{"a": {Nh: "a"}}}
	assert.PanicsWithValue(t, "routing table has no entry for z", func() {
		table.Entry("z")
	})
}

func TestRouterNeighbours(t *testing.T) {
	r := Router{
		Id:         "a",
		Neighbours: map[NodeId]uint32{"kat": 2, "bob": 1, "eve": 9},
	}
	assert.True(t, r.IsNeighbour("kat"))
	assert.False(t, r.IsNeighbour("a"))
	assert.Equal(t, []NodeId{"bob", "eve", "kat"}, r.SortedNeighbours())
}

func TestSortedRouters(t *testing.T) {
	s := State{Routers: []*Router{{Id: "b"}, {Id: "a"}}}
	sorted := s.SortedRouters()
	assert.Equal(t, NodeId("a"), sorted[0].Id)
	assert.Equal(t, NodeId("b"), sorted[1].Id)
	// original order preserved
	assert.Equal(t, NodeId("b"), s.Routers[0].Id)
}
