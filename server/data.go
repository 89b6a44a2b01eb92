package server

import (
	"encoding/json"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
)

func toJSON(i interface{}, w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(i)
}

func fromJSON(i interface{}, r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

// RunRequest asks for a fresh simulation over the served topology. Zero
// values fall back to the topology's own settings.
type RunRequest struct {
	MaxRounds int `json:"maxRounds"`
	Workers   int `json:"workers"`
}

// RunRecord is a finished simulation kept in the run store.
type RunRecord struct {
	Id        string    `json:"id"`
	Phase     string    `json:"phase"`
	Rounds    int       `json:"rounds"`
	MaxRounds int       `json:"maxRounds"`
	Workers   int       `json:"workers"`
	CreatedAt time.Time `json:"createdAt"`

	History []core.RoundSnapshot `json:"-"`
}

type TopologyInfo struct {
	Nodes []string   `json:"nodes"`
	Links []LinkInfo `json:"links"`
}

type LinkInfo struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Cost int64  `json:"cost"`
}

type RouteInfo struct {
	Nh        string `json:"nh,omitempty"`
	Metric    uint32 `json:"metric"`
	Reachable bool   `json:"reachable"`
}

type RoundInfo struct {
	Round   int                             `json:"round"`
	Updates int                             `json:"updates"`
	Tables  map[string]map[string]RouteInfo `json:"tables"`
}

func topologyInfoFrom(cfg *state.TopologyCfg) TopologyInfo {
	info := TopologyInfo{Nodes: make([]string, 0, len(cfg.Nodes)), Links: make([]LinkInfo, 0)}
	for _, id := range cfg.SortedIds() {
		info.Nodes = append(info.Nodes, string(id))
	}
	links, err := cfg.AllLinks()
	if err != nil {
		panic(err)
	}
	for _, l := range links {
		info.Links = append(info.Links, LinkInfo{A: string(l.A), B: string(l.B), Cost: l.Cost})
	}
	return info
}

func roundInfoFrom(snap core.RoundSnapshot) RoundInfo {
	info := RoundInfo{
		Round:   snap.Round,
		Updates: snap.Updates,
		Tables:  make(map[string]map[string]RouteInfo, len(snap.Tables)),
	}
	for _, id := range slices.Sorted(maps.Keys(snap.Tables)) {
		table := snap.Tables[id]
		routes := make(map[string]RouteInfo, len(table.Entries))
		for dst, e := range table.Entries {
			routes[string(dst)] = RouteInfo{
				Nh:        string(e.Nh),
				Metric:    e.Metric,
				Reachable: e.Metric != state.INF,
			}
		}
		info.Tables[string(id)] = routes
	}
	return info
}
