package cmd

import (
	"os"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
	"github.com/encodeous/dvsim/view"
	"github.com/spf13/cobra"
)

var (
	runMaxRounds int
	runWorkers   int
	runLogPath   string
	runTables    bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation to its outcome",
	Long: `Run the simulation over the given topology until the network converges or
the round cap is reached. Exits 0 on convergence, 2 when the cap is hit first.`,
	Run: func(cmd *cobra.Command, args []string) {
		var observers []core.Observer
		if runTables {
			observers = append(observers, view.NewConsole(os.Stdout))
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		out, err := core.Bootstrap(topologyPath, runLogPath, verbose, runMaxRounds, runWorkers, observers...)
		if err != nil {
			fail(err)
		}
		reportOutcome(out)
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	runCmd.Flags().IntVar(&runMaxRounds, "max-rounds", 0, "Override the topology's round cap")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "Override the topology's delivery worker count")
	runCmd.Flags().StringVar(&runLogPath, "log", "", "Also write logs to this file")
	runCmd.Flags().BoolVarP(&runTables, "ltable", "t", false, "Print every routing table after each round")
	runCmd.Flags().BoolVarP(&state.DBG_log_route_changes, "lrchange", "g", false, "Outputs route changes to the console")
	runCmd.Flags().BoolVar(&state.DBG_trace, "trace", false, "Write a runtime trace to trace.out")
	runCmd.Flags().BoolVar(&state.DBG_debug, "debug", false, "Serve debug metrics on :6060")
}
