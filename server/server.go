package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/encodeous/dvsim/state"
	"github.com/gorilla/mux"
)

// Router builds the http routes over a handler.
func Router(handler *Handler) *mux.Router {
	defaultRouter := mux.NewRouter()
	defaultRouter.HandleFunc("/api/topology", handler.GetTopology).Methods(http.MethodGet)
	defaultRouter.HandleFunc("/api/runs", handler.ListRuns).Methods(http.MethodGet)
	defaultRouter.HandleFunc("/api/runs", handler.StartRun).Methods(http.MethodPost)
	defaultRouter.HandleFunc("/api/runs/{runId}", handler.GetRun).Methods(http.MethodGet)
	defaultRouter.HandleFunc("/api/runs/{runId}/rounds/{round}", handler.GetRound).Methods(http.MethodGet)
	// perf publishes /debug/metrics on the default mux
	defaultRouter.PathPrefix("/debug/").Handler(http.DefaultServeMux)
	return defaultRouter
}

// Serve runs one simulation up front, then serves the api until the env
// context is cancelled.
func Serve(env *state.Env, bind string) error {
	handler := NewHandler(env)
	defer handler.Close()

	record, err := handler.RunSimulation(0, 0)
	if err != nil {
		return err
	}
	env.Log.Info("initial run complete", "id", record.Id, "phase", record.Phase, "rounds", record.Rounds)

	server := &http.Server{
		Addr:     bind,
		Handler:  Router(handler),
		ErrorLog: slog.NewLogLogger(env.Log.Handler(), slog.LevelError),
	}

	go func() {
		<-env.Context.Done()
		// gracefully shut down, waiting briefly for in-flight requests
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	env.Log.Info("starting api server", "bind", bind)
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
