package core

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"runtime/trace"
	"syscall"

	"github.com/encodeous/dvsim/state"
	"github.com/encodeous/tint"
	"github.com/goccy/go-yaml"
	slogmulti "github.com/samber/slog-multi"
)

func setupDebugging() func() {
	stop := func() {}
	if state.DBG_trace {
		f, err := os.Create("trace.out")
		if err != nil {
			log.Fatal(err)
		}
		err = trace.Start(f)
		if err == nil {
			stop = trace.Stop
			log.Println("Started tracing")
		}
	}
	if state.DBG_debug {
		go func() {
			log.Println(http.ListenAndServe("0.0.0.0:6060", nil))
		}()
	}
	return stop
}

// ReadTopologyConfig loads a topology from a yaml file.
func ReadTopologyConfig(cfgPath string) (*state.TopologyCfg, error) {
	var cfg state.TopologyCfg
	file, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BuildLogger assembles the slog handlers for a run: a tinted console
// handler on stderr when console is set, plus a text handler on logPath when
// one is given. The returned closer flushes the file sink.
func BuildLogger(logPath string, level slog.Level, console bool) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }
	handlers := make([]slog.Handler, 0)
	if console {
		handlers = append(handlers,
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:        level,
				AddSource:    false,
				CustomPrefix: "dvsim",
				ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
					if attr.Key == "time" {
						return slog.Attr{}
					}
					return attr
				},
			}))
	}

	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, nil, err
		}
		closer = f.Close
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closer, nil
	}
	return slog.New(
		slogmulti.Fanout(handlers...)), closer, nil
}

// Bootstrap manages the lifetime of a whole cli invocation: read the
// topology, apply the overrides, validate, build the logger, then drive one
// simulation to its outcome. maxRounds and workers override the config when
// positive.
func Bootstrap(cfgPath, logPath string, verbose bool, maxRounds, workers int, observers ...Observer) (Outcome, error) {
	stopTrace := setupDebugging()
	defer stopTrace()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	cfg, err := ReadTopologyConfig(cfgPath)
	if err != nil {
		return Outcome{}, err
	}
	if maxRounds > 0 {
		cfg.MaxRounds = maxRounds
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	err = state.TopologyValidator(cfg)
	if err != nil {
		return Outcome{}, err
	}
	return Start(*cfg, logPath, level, observers...)
}

// Start runs a single simulation over cfg. SIGINT or SIGTERM cancels the run
// between rounds.
func Start(cfg state.TopologyCfg, logPath string, logLevel slog.Level, observers ...Observer) (Outcome, error) {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(context.Canceled)

	logger, closeLog, err := BuildLogger(logPath, logLevel, true)
	if err != nil {
		return Outcome{}, err
	}
	defer closeLog()

	env := state.NewEnv(ctx, cancel, cfg, logger)

	sim, err := NewSimulator(env)
	if err != nil {
		return Outcome{}, err
	}
	for _, o := range observers {
		sim.Observe(o)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			cancel(errors.New("received shutdown signal"))
		case <-ctx.Done():
			return
		}
	}()

	return sim.Run()
}
