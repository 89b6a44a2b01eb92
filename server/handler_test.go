package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/encodeous/dvsim/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h := NewHandler(mock.Env(mock.Demo()))
	t.Cleanup(h.Close)
	return h
}

func TestGetTopology(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/topology")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var info TopologyInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, []string{"a", "b", "c", "d"}, info.Nodes)
	assert.Len(t, info.Links, 5)
}

func TestStartAndGetRun(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	body, _ := json.Marshal(RunRequest{MaxRounds: 10})
	resp, err := http.Post(srv.URL+"/api/runs", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var record RunRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))
	assert.Equal(t, "converged", record.Phase)
	assert.NotEmpty(t, record.Id)
	assert.Equal(t, 10, record.MaxRounds)

	getResp, err := http.Get(srv.URL + "/api/runs/" + record.Id)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
}

func TestStartRun_EmptyBodyUsesTopologyDefaults(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/runs", "application/json", bytes.NewReader(nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestStartRun_RejectsNegativeSettings(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	body, _ := json.Marshal(RunRequest{MaxRounds: -1})
	resp, err := http.Post(srv.URL+"/api/runs", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListRuns(t *testing.T) {
	h := newTestHandler(t)
	_, err := h.RunSimulation(0, 0)
	require.NoError(t, err)
	_, err = h.RunSimulation(0, 0)
	require.NoError(t, err)

	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/runs")
	require.NoError(t, err)
	defer resp.Body.Close()

	var records []RunRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 2)
}

func TestGetRound(t *testing.T) {
	h := newTestHandler(t)
	record, err := h.RunSimulation(0, 0)
	require.NoError(t, err)

	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/runs/" + record.Id + "/rounds/1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var round RoundInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&round))
	assert.Equal(t, 1, round.Round)
	assert.Len(t, round.Tables, 4)
	assert.True(t, round.Tables["a"]["b"].Reachable)
}

func TestGetRun_NotFound(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/runs/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetRound_OutOfRange(t *testing.T) {
	h := newTestHandler(t)
	record, err := h.RunSimulation(0, 0)
	require.NoError(t, err)

	srv := httptest.NewServer(Router(h))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/runs/" + record.Id + "/rounds/999")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReplayDeterminism(t *testing.T) {
	h := newTestHandler(t)
	first, err := h.RunSimulation(10, 0)
	require.NoError(t, err)
	second, err := h.RunSimulation(10, 0)
	require.NoError(t, err)

	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, first.Rounds, second.Rounds)
	assert.Equal(t, first.History, second.History)
}
