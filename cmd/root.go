package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/windtools/gobem/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gobem",
	Short: "Wind Turbine Rotor Analysis Tool",
	Long: `gobem - Go Blade Element Momentum Rotor Analyzer

A CLI tool for wind-turbine rotor aerodynamics based on Blade
Element Momentum (BEM) theory.

This tool helps rotor designers perform:
  - Full-rotor performance analysis (thrust, power, Ct, Cp)
  - Per-element induction factor solves and diagnostics
  - Operating point sweeps over rotor speed
  - Actuator-disk reference calculations (Betz limit)

Results can be rendered as terminal reports, ASCII charts and
exported plot images.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobem v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Blade Element Momentum Rotor Analyzer                ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for wind-turbine rotor aerodynamics based on")
		fmt.Println("  Blade Element Momentum (BEM) theory.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Rotor analysis from hub/tip geometry and flow conditions")
		fmt.Println("    • Parallel per-element induction solves")
		fmt.Println("    • Rotor speed sweeps with performance curves")
		fmt.Println("    • Single-element and actuator-disk diagnostics")
		fmt.Println()
		fmt.Println("  Use 'gobem --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
