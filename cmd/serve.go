package cmd

import (
	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/server"
	"github.com/encodeous/dvsim/state"
	"github.com/spf13/cobra"
)

var serveBind string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recorded runs over a JSON API",
	Long: `Run the simulation once, then keep serving its rounds over HTTP. POST
/api/runs replays the topology with a different round cap or worker count;
replays are deterministic, so identical settings always return identical runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := state.BindValidator(serveBind)
		if err != nil {
			fail(err)
		}
		cfg, err := loadTopology(0, 0)
		if err != nil {
			fail(err)
		}

		logger, closeLog, err := core.BuildLogger("", logLevel(cmd), true)
		if err != nil {
			fail(err)
		}
		defer closeLog()

		env := newEnv(*cfg, logger)
		err = server.Serve(env, serveBind)
		if err != nil {
			fail(err)
		}
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	serveCmd.Flags().StringVar(&serveBind, "bind", state.DefaultBind, "Address to serve the API on")
}
