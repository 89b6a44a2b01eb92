package cmd

import (
	"time"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/view"
	"github.com/spf13/cobra"
)

var watchDelay time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the simulation with an animated table view",
	Long: `Run the simulation and replay the rounds in the terminal, one table grid per
round, paced by --delay. The simulation itself runs at full speed; press q to quit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadTopology(0, 0)
		if err != nil {
			fail(err)
		}

		// the terminal belongs to tcell, logs must not go to the console
		logger, closeLog, err := core.BuildLogger("", logLevel(cmd), false)
		if err != nil {
			fail(err)
		}
		defer closeLog()

		env := newEnv(*cfg, logger)
		sim, err := core.NewSimulator(env)
		if err != nil {
			fail(err)
		}

		tr := core.NewTrace()
		defer tr.Close()
		sim.Observe(tr)

		done := make(chan core.Outcome, 1)
		go func() {
			out, err := sim.Run()
			if err != nil {
				env.Cancel(err)
				return
			}
			done <- out
		}()

		err = view.NewWatch(env, watchDelay).Run(tr, done)
		if err != nil {
			fail(err)
		}
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 0, "Pause between rendered rounds")
}
