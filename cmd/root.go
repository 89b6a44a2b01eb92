package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var topologyPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvsim",
	Short: "Distance Vector Routing simulator",
	Long: `dvsim simulates the Distance Vector Routing protocol over a fixed topology.
Each node knows only its direct neighbours and their link costs; every round the
nodes exchange distance vectors in lock step until all routing tables reach a
fixed point, or the round cap is hit.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "init",
		Title: "Setup Commands",
	})
	rootCmd.PersistentFlags().StringVarP(&topologyPath, "config", "c", "topology.yaml", "topology config file")
}
