package core

import (
	"testing"

	"github.com/encodeous/dvsim/state"
	"github.com/stretchr/testify/assert"
)

func TestAddMetric(t *testing.T) {
	assert.Equal(t, uint32(5), AddMetric(2, 3))
	assert.Equal(t, uint32(0), AddMetric(0, 0))
}

func TestAddMetric_InfinityAbsorbs(t *testing.T) {
	assert.Equal(t, state.INF, AddMetric(state.INF, 1))
	assert.Equal(t, state.INF, AddMetric(1, state.INF))
	assert.Equal(t, state.INF, AddMetric(state.INF, state.INF))
}

func TestAddMetric_SaturatesBelowInfinity(t *testing.T) {
	assert.Equal(t, state.INFM, AddMetric(state.INFM, state.INFM))
	assert.Equal(t, state.INFM, AddMetric(state.INFM, 1))
}
