package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGraph_DefaultCost(t *testing.T) {
	links, err := ParseGraph([]string{"a, b"}, []NodeId{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []LinkCfg{{"a", "b", 1}}, links)
}

func TestParseGraph_ExplicitCost(t *testing.T) {
	links, err := ParseGraph([]string{"b, a: 5"}, []NodeId{"a", "b"})
	assert.NoError(t, err)
	// pairs come out sorted regardless of declaration order
	assert.Equal(t, []LinkCfg{{"a", "b", 5}}, links)
}

func TestParseGraph_Interconnect(t *testing.T) {
	links, err := ParseGraph([]string{"a, b, c: 2"}, []NodeId{"a", "b", "c"})
	assert.NoError(t, err)
	assert.Len(t, links, 3)
	assert.Contains(t, links, LinkCfg{"a", "b", 2})
	assert.Contains(t, links, LinkCfg{"a", "c", 2})
	assert.Contains(t, links, LinkCfg{"b", "c", 2})
}

func TestParseGraph_UnknownNode(t *testing.T) {
	_, err := ParseGraph([]string{"a, q"}, []NodeId{"a", "b"})
	assert.ErrorContains(t, err, "not a valid node")
}

func TestParseGraph_SingleNodeLine(t *testing.T) {
	_, err := ParseGraph([]string{"a"}, []NodeId{"a", "b"})
	assert.ErrorContains(t, err, "invalid pairing")
}

func TestParseGraph_BadCost(t *testing.T) {
	_, err := ParseGraph([]string{"a, b: many"}, []NodeId{"a", "b"})
	assert.Error(t, err)

	_, err = ParseGraph([]string{"a, b: 1: 2"}, []NodeId{"a", "b"})
	assert.Error(t, err)
}

func TestAllLinks_GraphAfterLinks(t *testing.T) {
	cfg := TopologyCfg{
		Nodes: []NodeId{"a", "b", "c"},
		Links: []LinkCfg{{"a", "b", 3}},
		Graph: []string{"b, c: 4"},
	}
	links, err := cfg.AllLinks()
	assert.NoError(t, err)
	assert.Equal(t, []LinkCfg{{"a", "b", 3}, {"b", "c", 4}}, links)
}

func TestAdjacency_Symmetric(t *testing.T) {
	cfg := TopologyCfg{
		Nodes: []NodeId{"a", "b", "c"},
		Links: []LinkCfg{{"a", "b", 3}, {"b", "c", 4}},
	}
	adj := cfg.Adjacency()
	assert.Equal(t, uint32(3), adj["a"]["b"])
	assert.Equal(t, uint32(3), adj["b"]["a"])
	assert.Equal(t, uint32(4), adj["b"]["c"])
	assert.Equal(t, uint32(4), adj["c"]["b"])
	// no link between a and c
	_, ok := adj["a"]["c"]
	assert.False(t, ok)
}

func TestAdjacency_DuplicateLinkLastWins(t *testing.T) {
	cfg := TopologyCfg{
		Nodes: []NodeId{"a", "b"},
		Links: []LinkCfg{{"a", "b", 3}, {"b", "a", 9}},
	}
	adj := cfg.Adjacency()
	assert.Equal(t, uint32(9), adj["a"]["b"])
	assert.Equal(t, uint32(9), adj["b"]["a"])
}

func TestSortedIds(t *testing.T) {
	cfg := TopologyCfg{Nodes: []NodeId{"kat", "ada", "bob"}}
	assert.Equal(t, []NodeId{"ada", "bob", "kat"}, cfg.SortedIds())
	// the config itself is untouched
	assert.Equal(t, []NodeId{"kat", "ada", "bob"}, cfg.Nodes)
}
