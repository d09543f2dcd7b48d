package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/windtools/gobem/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobem",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobem v%s\n", version.Version)
		fmt.Println("Wind Turbine Rotor Analysis Tool")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
