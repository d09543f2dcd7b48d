package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/windtools/gobem/internal/airfoil"
	"github.com/windtools/gobem/internal/bem"
)

var (
	// Element geometry
	elemRadius float64
	elemWidth  float64
	elemChord  float64
	elemTwist  float64
	elemBlades int

	// Operating point
	elemRPM       float64
	elemVelocity  float64
	elemDensity   float64
	elemRefRadius float64

	// Solver
	elemTol     float64
	elemMaxIter int
	elemGuessA  float64
	elemGuessB  float64
)

var elementAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve one blade element and print all intermediate quantities",
	Long: `Solve the coupled induction equations for a single blade element
and print the converged state: induction factors, inflow angle,
angle of attack, local velocities and the element thrust/torque.

Examples:
  # Mid-span element of the reference rotor
  gobem element analyze --radius 4 --width 2 --chord 0.2 --twist 12

  # Custom initial guess and tighter tolerance
  gobem element analyze --radius 4 --width 2 --chord 0.2 --twist 12 \
      --guess-a 0.3 --guess-b 0.05 --tol 1e-9`,
	Run: runElementAnalyze,
}

func init() {
	elementCmd.AddCommand(elementAnalyzeCmd)

	// Geometry flags
	elementAnalyzeCmd.Flags().Float64VarP(&elemRadius, "radius", "r", 0, "Element mean radius (m) [required]")
	elementAnalyzeCmd.Flags().Float64Var(&elemWidth, "width", 1, "Element radial width dr (m)")
	elementAnalyzeCmd.Flags().Float64VarP(&elemChord, "chord", "c", 0, "Local chord length (m) [required]")
	elementAnalyzeCmd.Flags().Float64VarP(&elemTwist, "twist", "t", 0, "Local twist angle (deg)")
	elementAnalyzeCmd.Flags().IntVarP(&elemBlades, "blades", "B", 3, "Number of blades")

	// Operating point flags
	elementAnalyzeCmd.Flags().Float64Var(&elemRPM, "rpm", 107, "Rotor speed (rpm)")
	elementAnalyzeCmd.Flags().Float64VarP(&elemVelocity, "velocity", "V", 7, "Free stream velocity (m/s)")
	elementAnalyzeCmd.Flags().Float64Var(&elemDensity, "density", 1.225, "Air density (kg/m³)")
	elementAnalyzeCmd.Flags().Float64Var(&elemRefRadius, "ref-radius", 6, "Reference tip radius for coefficient normalization (m)")

	// Solver flags
	elementAnalyzeCmd.Flags().Float64Var(&elemTol, "tol", bem.DefaultTol, "Convergence tolerance on the residual norm")
	elementAnalyzeCmd.Flags().IntVar(&elemMaxIter, "max-iter", bem.DefaultMaxIter, "Iteration limit")
	elementAnalyzeCmd.Flags().Float64Var(&elemGuessA, "guess-a", bem.DefaultAInit, "Initial guess for the axial induction factor")
	elementAnalyzeCmd.Flags().Float64Var(&elemGuessB, "guess-b", bem.DefaultBInit, "Initial guess for the tangential induction factor")

	elementAnalyzeCmd.MarkFlagRequired("radius")
	elementAnalyzeCmd.MarkFlagRequired("chord")
}

func runElementAnalyze(cmd *cobra.Command, args []string) {
	solver := bem.NewSolver(airfoil.Default())
	solver.Tol = elemTol
	solver.MaxIter = elemMaxIter

	geom := bem.ElementGeometry{
		Radius:   elemRadius,
		Width:    elemWidth,
		Chord:    elemChord,
		TwistDeg: elemTwist,
		Blades:   elemBlades,
	}
	flow := bem.FlowConditions{Rho: elemDensity, VInf: elemVelocity}
	guess := &bem.Guess{A: elemGuessA, B: elemGuessB}

	st, err := solver.Solve(geom, flow, elemRPM, elemRefRadius, guess)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BLADE ELEMENT ANALYSIS - BEM THEORY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius (r):\t%.3f m\n", geom.Radius)
	fmt.Fprintf(w, "  Width (dr):\t%.3f m\n", geom.Width)
	fmt.Fprintf(w, "  Chord:\t%.3f m\n", geom.Chord)
	fmt.Fprintf(w, "  Twist (θ):\t%.2f°\n", geom.TwistDeg)
	fmt.Fprintf(w, "  Blades (B):\t%d\n", geom.Blades)
	fmt.Fprintf(w, "  Rotor speed:\t%.1f rpm\n", elemRPM)
	fmt.Fprintf(w, "  Free stream velocity:\t%.2f m/s\n", flow.VInf)
	fmt.Fprintf(w, "  Air density:\t%.3f kg/m³\n", flow.Rho)
	w.Flush()
	fmt.Println()

	if err != nil {
		var convErr *bem.ConvergenceError
		if errors.As(err, &convErr) {
			fmt.Println("STATUS:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			fmt.Printf("  ✗ %v\n", convErr)
			fmt.Println("  Try a different --guess-a/--guess-b or a larger --max-iter.")
			fmt.Println()
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("CONVERGED STATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial induction (a):\t%.6f\n", st.A)
	fmt.Fprintf(w, "  Tangential induction (b):\t%.6f\n", st.B)
	fmt.Fprintf(w, "  Inflow angle (φ):\t%.3f° \n", st.Phi*180/math.Pi)
	fmt.Fprintf(w, "  Angle of attack (α):\t%.3f°\n", st.AlphaDeg)
	fmt.Fprintf(w, "  Local solidity (σ):\t%.5f\n", st.Sigma)
	fmt.Fprintf(w, "  Local tip speed ratio (λr):\t%.3f\n", st.LambdaR)
	fmt.Fprintf(w, "  Cl / Cd:\t%.4f / %.4f\n", st.Cl, st.Cd)
	fmt.Fprintf(w, "  V0 (axial at disk):\t%.3f m/s\n", st.V0)
	fmt.Fprintf(w, "  V1 (resultant):\t%.3f m/s\n", st.V1)
	fmt.Fprintf(w, "  V2 (tangential at disk):\t%.3f m/s\n", st.V2)
	fmt.Fprintf(w, "  Iterations:\t%d\n", st.Iterations)
	fmt.Fprintf(w, "  Residual:\t%.3e\n", st.Residual)
	w.Flush()
	fmt.Println()

	fmt.Println("ELEMENT LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Thrust (ΔT):\t%.3f N\n", st.DeltaT)
	fmt.Fprintf(w, "  Torque (ΔQ):\t%.3f N·m\n", st.DeltaQ)
	fmt.Fprintf(w, "  ΔCt:\t%.5f\n", st.DeltaCt)
	fmt.Fprintf(w, "  ΔCp:\t%.5f\n", st.DeltaCp)
	w.Flush()
	fmt.Println()
}
