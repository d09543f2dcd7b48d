package cmd

import (
	"github.com/spf13/cobra"
)

var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Single blade element diagnostics",
	Long: `Solve a single radial blade element in isolation.

Useful for inspecting the induction iteration at one station:
local solidity, inflow angle, angle of attack, section coefficients
and the element thrust/torque contributions.

Subcommands:
  analyze  - Solve one element and print all intermediate quantities`,
}

func init() {
	rootCmd.AddCommand(elementCmd)
}
