package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/windtools/gobem/internal/bem"
	"github.com/windtools/gobem/internal/diagram"
)

var (
	diskInduction float64
	diskRadius    float64
	diskVelocity  float64
	diskDensity   float64
)

var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Ideal actuator-disk reference calculation",
	Long: `Evaluate the simple momentum-theory actuator disk: a uniformly
loaded disk with a single axial induction factor.

This is the idealized upper bound against which BEM results are
judged; at a = 1/3 the power coefficient reaches the Betz limit
16/27 ≈ 0.5926.

Examples:
  # Optimal loading of a 6 m disk in 7 m/s wind
  gobem disk --induction 0.3333 --radius 6 --velocity 7`,
	Run: runDisk,
}

func init() {
	rootCmd.AddCommand(diskCmd)

	diskCmd.Flags().Float64VarP(&diskInduction, "induction", "a", 1.0/3.0, "Axial induction factor")
	diskCmd.Flags().Float64VarP(&diskRadius, "radius", "r", 6, "Disk radius (m)")
	diskCmd.Flags().Float64VarP(&diskVelocity, "velocity", "V", 7, "Free stream velocity (m/s)")
	diskCmd.Flags().Float64Var(&diskDensity, "density", 1.225, "Air density (kg/m³)")
}

func runDisk(cmd *cobra.Command, args []string) {
	disk := bem.ActuatorDisk{
		A:    diskInduction,
		Area: math.Pi * diskRadius * diskRadius,
		Flow: bem.FlowConditions{Rho: diskDensity, VInf: diskVelocity},
	}

	perf, err := disk.Evaluate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACTUATOR DISK - MOMENTUM THEORY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Induction factor (a):\t%.4f\n", disk.A)
	fmt.Fprintf(w, "  Disk radius:\t%.2f m\n", diskRadius)
	fmt.Fprintf(w, "  Disk area:\t%.2f m²\n", disk.Area)
	fmt.Fprintf(w, "  Free stream velocity:\t%.2f m/s\n", disk.Flow.VInf)
	fmt.Fprintf(w, "  Air density:\t%.3f kg/m³\n", disk.Flow.Rho)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Velocity at rotor plane:\t%.3f m/s\n", perf.VRotor)
	fmt.Fprintf(w, "  Slipstream velocity:\t%.3f m/s\n", perf.VDownstream)
	fmt.Fprintf(w, "  Thrust:\t%.1f N\n", perf.Thrust)
	fmt.Fprintf(w, "  Power:\t%.1f W\n", perf.Power)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("DISK COEFFICIENTS", []string{
		fmt.Sprintf("Ct = %.4f", perf.Ct),
		fmt.Sprintf("Cp = %.4f  (%.1f%% of Betz limit)", perf.Cp, 100*perf.Cp/bem.BetzLimit),
	}))
	fmt.Println()
}
