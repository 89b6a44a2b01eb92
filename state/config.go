package state

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// LinkCfg is a single undirected link between two declared nodes. Cost is
// signed so that negative values survive decoding and can be rejected with a
// proper validation error.
type LinkCfg struct {
	A    NodeId
	B    NodeId
	Cost int64
}

// TopologyCfg is the central description of the simulated network.
type TopologyCfg struct {
	Nodes []NodeId
	Links []LinkCfg `yaml:",omitempty"`
	// Graph is a compact alternative to Links. Each line lists two or more
	// nodes followed by an optional cost, e.g. "a, b: 3". Every pair of
	// nodes on a line is linked at that cost, 1 if the cost is omitted.
	Graph     []string `yaml:",omitempty"`
	MaxRounds int      `yaml:"max_rounds,omitempty"`
	Workers   int      `yaml:",omitempty"`
}

func (c *TopologyCfg) HasNode(node NodeId) bool {
	return slices.Contains(c.Nodes, node)
}

// SortedIds returns the declared node ids in lexicographic order.
func (c *TopologyCfg) SortedIds() []NodeId {
	ids := slices.Clone(c.Nodes)
	slices.Sort(ids)
	return ids
}

func parseSymbolList(s string, validSymbols []string) ([]string, error) {
	spl := strings.Split(strings.TrimSpace(s), ",")
	line := make([]string, 0)
	for _, s := range spl {
		x := strings.TrimSpace(s)
		if x == "" {
			continue
		}
		if !slices.Contains(validSymbols, x) {
			return nil, fmt.Errorf(`%s is not a valid node`, x)
		}
		line = append(line, x)
	}
	if len(line) == 0 {
		return nil, fmt.Errorf(`node list must not be empty`)
	}
	slices.Sort(line)
	return line, nil
}

func parseGraphLine(line string, nodes []string) ([]LinkCfg, error) {
	line = strings.ToLower(strings.TrimSpace(line))
	cost := int64(1)
	if strings.Contains(line, ":") {
		spl := strings.Split(line, ":")
		if len(spl) != 2 {
			return nil, fmt.Errorf("invalid link line: %s. line must contain at most one ':'", line)
		}
		c, err := strconv.ParseInt(strings.TrimSpace(spl[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cost in link line %q: %w", line, err)
		}
		cost = c
		line = spl[0]
	}
	names, err := parseSymbolList(line, nodes)
	if err != nil {
		return nil, err
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("invalid pairing, %v", names)
	}
	// interconnect every pair of nodes on the line
	links := make([]LinkCfg, 0)
	linked := make([]string, 0)
	for _, name := range names {
		for _, prev := range linked {
			p := MakeSortedPair(prev, name)
			links = append(links, LinkCfg{A: NodeId(p.V1), B: NodeId(p.V2), Cost: cost})
		}
		linked = append(linked, name)
	}
	return links, nil
}

// ParseGraph expands compact graph lines into explicit links. Self links and
// out-of-range costs are kept as-is so the validator can report them.
func ParseGraph(graph []string, nodes []NodeId) ([]LinkCfg, error) {
	symbols := make([]string, 0, len(nodes))
	for _, n := range nodes {
		symbols = append(symbols, string(n))
	}
	links := make([]LinkCfg, 0)
	for _, line := range graph {
		parsed, err := parseGraphLine(line, symbols)
		if err != nil {
			return nil, err
		}
		links = append(links, parsed...)
	}
	return links, nil
}

// AllLinks returns the structured links followed by the expanded graph lines,
// in declaration order. Later links override earlier ones when they join the
// same pair of nodes.
func (c *TopologyCfg) AllLinks() ([]LinkCfg, error) {
	links := slices.Clone(c.Links)
	parsed, err := ParseGraph(c.Graph, c.Nodes)
	if err != nil {
		return nil, err
	}
	return append(links, parsed...), nil
}

// Adjacency expands the link list into a symmetric adjacency map. The config
// must have passed TopologyValidator.
func (c *TopologyCfg) Adjacency() map[NodeId]map[NodeId]uint32 {
	links, err := c.AllLinks()
	if err != nil {
		panic(err)
	}
	adj := make(map[NodeId]map[NodeId]uint32)
	for _, id := range c.Nodes {
		adj[id] = make(map[NodeId]uint32)
	}
	for _, l := range links {
		adj[l.A][l.B] = uint32(l.Cost)
		adj[l.B][l.A] = uint32(l.Cost)
	}
	return adj
}
