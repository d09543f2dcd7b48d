package cmd

import (
	"github.com/spf13/cobra"
)

var rotorCmd = &cobra.Command{
	Use:   "rotor",
	Short: "Full-rotor BEM performance analysis",
	Long: `Analyze a complete rotor with Blade Element Momentum theory.

The blade is described by hub and tip scalars (radius, chord, twist);
per-element geometry is interpolated across the chosen number of
radial stations and each station's induction factors are solved
independently.

Subcommands:
  analyze  - Solve one operating point and report rotor performance
  sweep    - Sweep rotor speed and report the performance curve`,
}

func init() {
	rootCmd.AddCommand(rotorCmd)
}
