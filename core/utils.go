package core

import (
	"github.com/encodeous/dvsim/state"
)

// AddMetric adds two metrics, saturating at INFM. INF is absorbing, a path
// through an unreachable node stays unreachable.
func AddMetric(a, b uint32) uint32 {
	if a == state.INF || b == state.INF {
		return state.INF
	} else {
		return uint32(min(uint64(state.INFM), uint64(a)+uint64(b)))
	}
}
