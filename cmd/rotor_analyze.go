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
	analyzeHubRadius float64
	analyzeTipRadius float64
	analyzeHubChord  float64
	analyzeTipChord  float64
	analyzeHubTwist  float64
	analyzeTipTwist  float64
	analyzePitch     float64
	analyzeBlades    int

	// Operating point
	analyzeRPM      float64
	analyzeVelocity float64
	analyzeDensity  float64

	// Discretization and solver
	analyzeElements int
	analyzeSpacing  string
	analyzeTol      float64
	analyzeMaxIter  int

	// Output options
	analyzePlanform bool
	analyzePlotFile string
)

var rotorAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve one rotor operating point",
	Long: `Solve the blade element induction factors at every radial station
and aggregate them into rotor thrust and power.

Blade geometry is interpolated linearly from the hub and tip values
across the chosen number of elements. Each element is solved
independently; the run fails with the offending station indices if
any element does not converge.

Examples:
  # Reference 3-element rotor
  gobem rotor analyze

  # Finer discretization with tip clustering
  gobem rotor analyze --elements 20 --spacing cosine

  # Export the spanwise loading diagram
  gobem rotor analyze --elements 10 --plot spanwise.png`,
	Run: runRotorAnalyze,
}

func init() {
	rotorCmd.AddCommand(rotorAnalyzeCmd)

	// Geometry flags
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeHubRadius, "hub-radius", 2, "Blade hub radius (m)")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeTipRadius, "tip-radius", 6, "Blade tip radius (m)")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeHubChord, "hub-chord", 0.3, "Chord length at the hub (m)")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeTipChord, "tip-chord", 0.1, "Chord length at the tip (m)")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeHubTwist, "hub-twist", 20, "Twist angle at the hub (deg)")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeTipTwist, "tip-twist", 6, "Twist angle at the tip (deg)")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzePitch, "pitch", 0, "Overall blade pitch (deg)")
	rotorAnalyzeCmd.Flags().IntVarP(&analyzeBlades, "blades", "B", 3, "Number of blades")

	// Operating point flags
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeRPM, "rpm", 107, "Rotor speed (rpm)")
	rotorAnalyzeCmd.Flags().Float64VarP(&analyzeVelocity, "velocity", "V", 7, "Free stream velocity (m/s)")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeDensity, "density", 1.225, "Air density (kg/m³)")

	// Discretization and solver flags
	rotorAnalyzeCmd.Flags().IntVarP(&analyzeElements, "elements", "n", 3, "Number of radial stations")
	rotorAnalyzeCmd.Flags().StringVar(&analyzeSpacing, "spacing", "uniform", "Station spacing: uniform or cosine")
	rotorAnalyzeCmd.Flags().Float64Var(&analyzeTol, "tol", 0, "Solver tolerance override")
	rotorAnalyzeCmd.Flags().IntVar(&analyzeMaxIter, "max-iter", 0, "Solver iteration limit override")

	// Output flags
	rotorAnalyzeCmd.Flags().BoolVar(&analyzePlanform, "planform", false, "Draw the blade planform sketch")
	rotorAnalyzeCmd.Flags().StringVar(&analyzePlotFile, "plot", "", "Export the spanwise loading diagram to a file")
}

func buildAnalyzeAssembly() (*rotor.Assembly, error) {
	cfg := rotor.Config{
		HubRadius: analyzeHubRadius,
		TipRadius: analyzeTipRadius,
		HubChord:  analyzeHubChord,
		TipChord:  analyzeTipChord,
		HubTwist:  analyzeHubTwist,
		TipTwist:  analyzeTipTwist,
		Pitch:     analyzePitch,
		Blades:    analyzeBlades,
		RPM:       analyzeRPM,
		Elements:  analyzeElements,
		Flow:      bem.FlowConditions{Rho: analyzeDensity, VInf: analyzeVelocity},
		Tol:       analyzeTol,
		MaxIter:   analyzeMaxIter,
	}

	switch analyzeSpacing {
	case "uniform", "":
		return rotor.New(cfg)
	case "cosine":
		return rotor.Builder{Config: cfg, Spacing: rotor.Cosine}.Build()
	default:
		return nil, fmt.Errorf("unknown spacing %q (use uniform or cosine)", analyzeSpacing)
	}
}

func runRotorAnalyze(cmd *cobra.Command, args []string) {
	asm, err := buildAnalyzeAssembly()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := asm.Evaluate()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ROTOR PERFORMANCE ANALYSIS - BEM THEORY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printAnalyzeInputs(asm.Config())

	if res != nil {
		printElementTable(asm, res)
	}

	if err != nil {
		var aggErr *bem.AggregationError
		if errors.As(err, &aggErr) {
			fmt.Println("STATUS:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			fmt.Printf("  ✗ %v\n", aggErr)
			fmt.Println("  Try more elements, a larger --max-iter or a looser --tol.")
			fmt.Println()
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	printPerformance(res.Performance, asm.Config())

	geoms := asm.Geometry()
	var data diagram.SpanwiseData
	for i, g := range geoms {
		data.Radii = append(data.Radii, g.Radius)
		data.Chords = append(data.Chords, g.Chord)
		data.DeltaCt = append(data.DeltaCt, res.Elements[i].DeltaCt)
		data.DeltaCp = append(data.DeltaCp, res.Elements[i].DeltaCp)
	}

	if chart := diagram.DrawSpanwiseLoading(data); chart != "" {
		fmt.Println("SPANWISE LOADING:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(chart)
	}

	if analyzePlanform {
		fmt.Println(diagram.DrawBladePlanform(data))
	}

	if analyzePlotFile != "" {
		if err := diagram.ExportSpanwiseDiagram(data, analyzePlotFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Spanwise diagram written to %s\n", analyzePlotFile)
		fmt.Println()
	}
}

func printAnalyzeInputs(cfg rotor.Config) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Hub radius:\t%.2f m\n", cfg.HubRadius)
	fmt.Fprintf(w, "  Tip radius:\t%.2f m\n", cfg.TipRadius)
	fmt.Fprintf(w, "  Hub chord:\t%.3f m\n", cfg.HubChord)
	fmt.Fprintf(w, "  Tip chord:\t%.3f m\n", cfg.TipChord)
	fmt.Fprintf(w, "  Hub twist:\t%.2f°\n", cfg.HubTwist)
	fmt.Fprintf(w, "  Tip twist:\t%.2f°\n", cfg.TipTwist)
	fmt.Fprintf(w, "  Pitch:\t%.2f°\n", cfg.Pitch)
	fmt.Fprintf(w, "  Blades (B):\t%d\n", cfg.Blades)
	fmt.Fprintf(w, "  Rotor speed:\t%.1f rpm\n", cfg.RPM)
	fmt.Fprintf(w, "  Free stream velocity:\t%.2f m/s\n", cfg.Flow.VInf)
	fmt.Fprintf(w, "  Air density:\t%.3f kg/m³\n", cfg.Flow.Rho)
	fmt.Fprintf(w, "  Elements:\t%d\n", cfg.Elements)
	w.Flush()
	fmt.Println()
}

func printElementTable(asm *rotor.Assembly, res *rotor.Result) {
	fmt.Println("ELEMENT RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tr (m)\tchord (m)\ta\tb\tφ (°)\tα (°)\tλr\tΔCt\tΔCp\titer\n")
	fmt.Fprintf(w, "  ─\t─────\t─────────\t─\t─\t─────\t─────\t──\t───\t───\t────\n")
	for i, g := range asm.Geometry() {
		st := res.Elements[i]
		if st == nil || !st.Converged {
			fmt.Fprintf(w, "  %d\t%.2f\t%.3f\t✗ did not converge\n", i, g.Radius, g.Chord)
			continue
		}
		fmt.Fprintf(w, "  %d\t%.2f\t%.3f\t%.4f\t%.4f\t%.2f\t%.2f\t%.2f\t%.4f\t%.4f\t%d\n",
			i, g.Radius, g.Chord, st.A, st.B,
			st.Phi*180/math.Pi, st.AlphaDeg, st.LambdaR,
			st.DeltaCt, st.DeltaCp, st.Iterations)
	}
	w.Flush()
	fmt.Println()
}

func printPerformance(perf *bem.RotorPerformance, cfg rotor.Config) {
	fmt.Println("ROTOR PERFORMANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Net thrust:\t%.2f N\n", perf.NetThrust)
	fmt.Fprintf(w, "  Net torque:\t%.2f N·m\n", perf.NetTorque)
	fmt.Fprintf(w, "  Net power:\t%.2f W\n", perf.NetPower)
	fmt.Fprintf(w, "  Advance ratio (J):\t%.4f\n", perf.J)
	fmt.Fprintf(w, "  Efficiency (η):\t%.4f\n", perf.Eta)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("ROTOR COEFFICIENTS", []string{
		fmt.Sprintf("Ct = %.4f", perf.Ct),
		fmt.Sprintf("Cp = %.4f  (Betz limit %.4f)", perf.Cp, bem.BetzLimit),
		fmt.Sprintf("Cq = %.4f", perf.Cq),
	}))
	fmt.Println()
}
