package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/windtools/gobem/internal/bem"
	"github.com/windtools/gobem/internal/diagram"
	"github.com/windtools/gobem/internal/rotor"
)

var (
	// Blade geometry
	sweepHubRadius float64
	sweepTipRadius float64
	sweepHubChord  float64
	sweepTipChord  float64
	sweepHubTwist  float64
	sweepTipTwist  float64
	sweepPitch     float64
	sweepBlades    int

	// Flow
	sweepVelocity float64
	sweepDensity  float64

	// Sweep range
	sweepRPMFrom float64
	sweepRPMTo   float64
	sweepSteps   int

	// Discretization
	sweepElements int

	// Output
	sweepPlotFile string
)

var rotorSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep rotor speed and report the performance curve",
	Long: `Evaluate the rotor over a range of rotor speeds and report Cp and
Ct against tip speed ratio.

Each operating point is a full BEM evaluation; consecutive points
warm-start their element solves from the previous converged values.
Points that fail to converge are reported and skipped in the curve.

Examples:
  # Default reference rotor, 60 to 160 rpm
  gobem rotor sweep

  # Dense sweep with an exported curve
  gobem rotor sweep --from 40 --to 200 --steps 40 --plot curve.png`,
	Run: runRotorSweep,
}

func init() {
	rotorCmd.AddCommand(rotorSweepCmd)

	// Geometry flags
	rotorSweepCmd.Flags().Float64Var(&sweepHubRadius, "hub-radius", 2, "Blade hub radius (m)")
	rotorSweepCmd.Flags().Float64Var(&sweepTipRadius, "tip-radius", 6, "Blade tip radius (m)")
	rotorSweepCmd.Flags().Float64Var(&sweepHubChord, "hub-chord", 0.3, "Chord length at the hub (m)")
	rotorSweepCmd.Flags().Float64Var(&sweepTipChord, "tip-chord", 0.1, "Chord length at the tip (m)")
	rotorSweepCmd.Flags().Float64Var(&sweepHubTwist, "hub-twist", 20, "Twist angle at the hub (deg)")
	rotorSweepCmd.Flags().Float64Var(&sweepTipTwist, "tip-twist", 6, "Twist angle at the tip (deg)")
	rotorSweepCmd.Flags().Float64Var(&sweepPitch, "pitch", 0, "Overall blade pitch (deg)")
	rotorSweepCmd.Flags().IntVarP(&sweepBlades, "blades", "B", 3, "Number of blades")

	// Flow flags
	rotorSweepCmd.Flags().Float64VarP(&sweepVelocity, "velocity", "V", 7, "Free stream velocity (m/s)")
	rotorSweepCmd.Flags().Float64Var(&sweepDensity, "density", 1.225, "Air density (kg/m³)")

	// Sweep flags
	rotorSweepCmd.Flags().Float64Var(&sweepRPMFrom, "from", 60, "Sweep start rotor speed (rpm)")
	rotorSweepCmd.Flags().Float64Var(&sweepRPMTo, "to", 160, "Sweep end rotor speed (rpm)")
	rotorSweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "Number of sweep points")
	rotorSweepCmd.Flags().IntVarP(&sweepElements, "elements", "n", 6, "Number of radial stations")

	// Output flags
	rotorSweepCmd.Flags().StringVar(&sweepPlotFile, "plot", "", "Export the performance curve to a file")
}

func runRotorSweep(cmd *cobra.Command, args []string) {
	if sweepSteps < 2 {
		fmt.Println("Error: --steps must be at least 2.")
		return
	}
	if sweepRPMTo <= sweepRPMFrom || sweepRPMFrom <= 0 {
		fmt.Println("Error: sweep range must satisfy 0 < --from < --to.")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ROTOR SPEED SWEEP - BEM THEORY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	type point struct {
		rpm    float64
		lambda float64
		perf   *bem.RotorPerformance
		err    error
	}

	omega := func(rpm float64) float64 { return rpm * 2 * math.Pi / 60 }
	step := (sweepRPMTo - sweepRPMFrom) / float64(sweepSteps-1)

	flow := bem.FlowConditions{Rho: sweepDensity, VInf: sweepVelocity}
	asm, err := rotor.New(rotor.Config{
		HubRadius: sweepHubRadius,
		TipRadius: sweepTipRadius,
		HubChord:  sweepHubChord,
		TipChord:  sweepTipChord,
		HubTwist:  sweepHubTwist,
		TipTwist:  sweepTipTwist,
		Pitch:     sweepPitch,
		Blades:    sweepBlades,
		RPM:       sweepRPMFrom,
		Elements:  sweepElements,
		Flow:      flow,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	points := make([]point, 0, sweepSteps)
	for i := 0; i < sweepSteps; i++ {
		rpm := sweepRPMFrom + float64(i)*step
		if err := asm.SetOperatingPoint(rpm, flow); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		res, err := asm.Evaluate()
		pt := point{rpm: rpm, lambda: omega(rpm) * sweepTipRadius / sweepVelocity, err: err}
		if err == nil {
			pt.perf = res.Performance
		}
		points = append(points, pt)
	}

	fmt.Println("SWEEP RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  rpm\tλ (tip)\tJ\tCt\tCp\tPower (W)\n")
	fmt.Fprintf(w, "  ───\t───────\t─\t──\t──\t─────────\n")

	var lambdas, cps, cts []float64
	best := -1
	for _, pt := range points {
		if pt.err != nil {
			var aggErr *bem.AggregationError
			if errors.As(pt.err, &aggErr) {
				fmt.Fprintf(w, "  %.1f\t%.2f\t✗ element(s) %v did not converge\n", pt.rpm, pt.lambda, aggErr.Indices)
			} else {
				fmt.Fprintf(w, "  %.1f\t%.2f\t✗ %v\n", pt.rpm, pt.lambda, pt.err)
			}
			continue
		}
		fmt.Fprintf(w, "  %.1f\t%.2f\t%.3f\t%.4f\t%.4f\t%.1f\n",
			pt.rpm, pt.lambda, pt.perf.J, pt.perf.Ct, pt.perf.Cp, pt.perf.NetPower)
		lambdas = append(lambdas, pt.lambda)
		cts = append(cts, pt.perf.Ct)
		cps = append(cps, pt.perf.Cp)
		if best < 0 || pt.perf.Cp > cps[best] {
			best = len(cps) - 1
		}
	}
	w.Flush()
	fmt.Println()

	if len(cps) == 0 {
		fmt.Println("  No sweep point converged.")
		fmt.Println()
		return
	}

	if chart := diagram.DrawSweepCurve(cps, "Cp over the sweep, low rpm → high rpm"); chart != "" {
		fmt.Println("POWER COEFFICIENT CURVE:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(chart)
	}

	fmt.Print(diagram.DrawSummaryBox("BEST OPERATING POINT", []string{
		fmt.Sprintf("λ  = %.2f", lambdas[best]),
		fmt.Sprintf("Cp = %.4f  (Betz limit %.4f)", cps[best], bem.BetzLimit),
		fmt.Sprintf("Ct = %.4f", cts[best]),
	}))
	fmt.Println()

	if sweepPlotFile != "" {
		if err := diagram.ExportSweepDiagram(lambdas, cps, cts, "Tip speed ratio λ", sweepPlotFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Sweep diagram written to %s\n", sweepPlotFile)
		fmt.Println()
	}
}
