package cmd

import (
	"fmt"
	"os"

	"github.com/encodeous/dvsim/mock"
	"github.com/encodeous/dvsim/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a demo topology config",
	Run: func(cmd *cobra.Command, args []string) {
		outPath := cmd.Flag("output").Value.String()
		err := state.PathValidator(outPath)
		if err != nil {
			fail(err)
		}

		cfg := mock.Demo()
		out, err := yaml.Marshal(&cfg)
		if err != nil {
			panic(err)
		}
		err = os.WriteFile(outPath, out, 0644)
		if err != nil {
			fail(err)
		}
		fmt.Printf("wrote demo topology to %s\n", outPath)
	},
	GroupID: "init",
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("output", "o", "topology.yaml", "topology output file path")
}
