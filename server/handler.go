package server

import (
	"context"
	"errors"
	"io"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"
)

// Handler serves recorded simulation runs over the topology it was built
// with. Every run is a full deterministic replay, so two runs with the same
// settings produce identical histories.
type Handler struct {
	env  *state.Env
	runs *ttlcache.Cache[string, *RunRecord]
}

func NewHandler(env *state.Env) *Handler {
	runs := ttlcache.New[string, *RunRecord](
		ttlcache.WithTTL[string, *RunRecord](state.RunRetention),
		ttlcache.WithDisableTouchOnHit[string, *RunRecord]())
	go runs.Start()
	return &Handler{
		env:  env,
		runs: runs,
	}
}

// Close stops the run store's expiry loop.
func (h *Handler) Close() {
	h.runs.Stop()
}

// RunSimulation executes one simulation over the served topology and stores
// the record. maxRounds and workers override the topology settings when
// positive.
func (h *Handler) RunSimulation(maxRounds, workers int) (*RunRecord, error) {
	cfg := h.env.TopologyCfg
	if maxRounds > 0 {
		cfg.MaxRounds = maxRounds
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	ctx, cancel := context.WithCancelCause(h.env.Context)
	defer cancel(context.Canceled)
	runEnv := state.NewEnv(ctx, cancel, cfg, h.env.Log)

	sim, err := core.NewSimulator(runEnv)
	if err != nil {
		return nil, err
	}
	rec := &core.Recorder{}
	sim.Observe(rec)

	out, err := sim.Run()
	if err != nil {
		return nil, err
	}

	record := &RunRecord{
		Id:        uuid.New().String(),
		Phase:     out.Phase.String(),
		Rounds:    out.Rounds,
		MaxRounds: runEnv.MaxRounds,
		Workers:   runEnv.Workers,
		CreatedAt: time.Now(),
		History:   rec.History,
	}
	h.runs.Set(record.Id, record, ttlcache.DefaultTTL)
	return record, nil
}

func (h *Handler) GetTopology(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Add("Content-Type", "application/json")
	toJSON(topologyInfoFrom(&h.env.TopologyCfg), rw)
}

func (h *Handler) ListRuns(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Add("Content-Type", "application/json")

	records := make([]*RunRecord, 0)
	items := h.runs.Items()
	for _, id := range slices.Sorted(maps.Keys(items)) {
		records = append(records, items[id].Value())
	}
	slices.SortFunc(records, func(a, b *RunRecord) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	toJSON(records, rw)
}

func (h *Handler) StartRun(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Add("Content-Type", "application/json")

	request := &RunRequest{}
	err := fromJSON(request, r.Body)
	if err != nil && !errors.Is(err, io.EOF) {
		h.env.Log.Error("error starting run", "error", err)
		rw.WriteHeader(http.StatusBadRequest)
		toJSON("invalid run request", rw)
		return
	}
	if request.MaxRounds < 0 || request.Workers < 0 {
		rw.WriteHeader(http.StatusBadRequest)
		toJSON("maxRounds and workers must not be negative", rw)
		return
	}

	record, err := h.RunSimulation(request.MaxRounds, request.Workers)
	if err != nil {
		h.env.Log.Error("error starting run", "error", err)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.env.Log.Info("run complete", "id", record.Id, "phase", record.Phase, "rounds", record.Rounds)
	rw.WriteHeader(http.StatusCreated)
	toJSON(record, rw)
}

func (h *Handler) GetRun(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Add("Content-Type", "application/json")

	record := h.getRecord(r)
	if record == nil {
		rw.WriteHeader(http.StatusNotFound)
		toJSON("no run with the given ID", rw)
		return
	}
	toJSON(record, rw)
}

func (h *Handler) GetRound(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Add("Content-Type", "application/json")

	record := h.getRecord(r)
	if record == nil {
		rw.WriteHeader(http.StatusNotFound)
		toJSON("no run with the given ID", rw)
		return
	}
	round, err := strconv.Atoi(getURLParameter(r, "round"))
	if err != nil || round < 1 || round > len(record.History) {
		rw.WriteHeader(http.StatusNotFound)
		toJSON("no such round", rw)
		return
	}
	toJSON(roundInfoFrom(record.History[round-1]), rw)
}

func (h *Handler) getRecord(r *http.Request) *RunRecord {
	item := h.runs.Get(getURLParameter(r, "runId"))
	if item == nil {
		return nil
	}
	return item.Value()
}

func getURLParameter(r *http.Request, parameter string) string {
	vars := mux.Vars(r)
	id := vars[parameter]
	return id
}
