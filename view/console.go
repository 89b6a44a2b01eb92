package view

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
)

// Console prints every routing table after each round, the plain text
// counterpart of the animated watch view.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) RoundComplete(snap core.RoundSnapshot) {
	fmt.Fprintf(c.Out, "--- round %d, %d updates ---\n", snap.Round, snap.Updates)
	for _, id := range slices.Sorted(maps.Keys(snap.Tables)) {
		table := snap.Tables[id]
		fmt.Fprintf(c.Out, "%s:\n", id)
		fmt.Fprintf(c.Out, "  %-10s %-10s %s\n", "dest", "nh", "metric")
		for _, dst := range slices.Sorted(maps.Keys(table.Entries)) {
			e := table.Entries[dst]
			fmt.Fprintf(c.Out, "  %-10s %-10s %s\n", dst, NhString(e), MetricString(e.Metric))
		}
	}
}

// NhString formats a next hop, "-" when the entry has none.
func NhString(e state.TableEntry) string {
	if e.Nh == "" {
		return "-"
	}
	return string(e.Nh)
}

// MetricString formats a metric, INF as "inf".
func MetricString(m uint32) string {
	if m == state.INF {
		return "inf"
	}
	return strconv.FormatUint(uint64(m), 10)
}
