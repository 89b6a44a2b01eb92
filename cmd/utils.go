package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
	"github.com/spf13/cobra"
)

// exit codes shared by all subcommands
const (
	ExitConverged    = 0
	ExitError        = 1
	ExitLimitReached = 2
)

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
	os.Exit(ExitError)
}

func logLevel(cmd *cobra.Command) slog.Level {
	if ok, _ := cmd.Flags().GetBool("verbose"); ok {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// loadTopology reads and validates the shared -c config, applying the
// max-rounds and workers overrides when they are positive.
func loadTopology(maxRounds, workers int) (*state.TopologyCfg, error) {
	cfg, err := core.ReadTopologyConfig(topologyPath)
	if err != nil {
		return nil, err
	}
	if maxRounds > 0 {
		cfg.MaxRounds = maxRounds
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	err = state.TopologyValidator(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEnv wires a run environment whose context is cancelled by SIGINT or
// SIGTERM.
func newEnv(cfg state.TopologyCfg, logger *slog.Logger) *state.Env {
	ctx, cancel := context.WithCancelCause(context.Background())
	env := state.NewEnv(ctx, cancel, cfg, logger)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			cancel(errors.New("received shutdown signal"))
		case <-ctx.Done():
		}
	}()
	return env
}

// reportOutcome prints the terminal status and translates it into the
// process exit code.
func reportOutcome(out core.Outcome) {
	switch out.Phase {
	case core.Converged:
		fmt.Printf("converged in %d rounds\n", out.Rounds)
	case core.LimitReached:
		fmt.Printf("round limit reached after %d rounds without convergence\n", out.Rounds)
		os.Exit(ExitLimitReached)
	default:
		fail(errors.New("simulation ended in phase " + out.Phase.String()))
	}
}
