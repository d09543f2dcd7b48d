package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/windtools/gobem/internal/airfoil"
	"github.com/windtools/gobem/internal/diagram"
)

var airfoilPlotFile string

var airfoilCmd = &cobra.Command{
	Use:   "airfoil",
	Short: "Inspect the built-in section polar table",
	Long: `Print the sampled lift and drag polars used by the blade element
solver, and the fill values returned for angles of attack outside
the sampled range.

Use --plot to export the polars as an image.`,
	Run: runAirfoil,
}

func init() {
	rootCmd.AddCommand(airfoilCmd)

	airfoilCmd.Flags().StringVar(&airfoilPlotFile, "plot", "", "Export the polars to a file")
}

func runAirfoil(cmd *cobra.Command, args []string) {
	table := airfoil.Default()
	liftAngles, liftCoefs := table.LiftSamples()
	dragAngles, dragCoefs := table.DragSamples()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SECTION POLAR TABLE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("LIFT POLAR:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  α (°)\tCl\n")
	for i, a := range liftAngles {
		fmt.Fprintf(w, "  %.1f\t%.4f\n", a, liftCoefs[i])
	}
	w.Flush()
	fmt.Printf("  Outside %.1f°–%.1f°: Cl = %.2f\n", liftAngles[0], liftAngles[len(liftAngles)-1], airfoil.DefaultLiftFill)
	fmt.Println()

	fmt.Println("DRAG POLAR:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  α (°)\tCd\n")
	for i, a := range dragAngles {
		fmt.Fprintf(w, "  %.1f\t%.4f\n", a, dragCoefs[i])
	}
	w.Flush()
	fmt.Printf("  Outside %.1f°–%.1f°: Cd = %.2f\n", dragAngles[0], dragAngles[len(dragAngles)-1], airfoil.DefaultDragFill)
	fmt.Println()

	if airfoilPlotFile != "" {
		if err := diagram.ExportPolarDiagram(liftAngles, liftCoefs, dragAngles, dragCoefs, airfoilPlotFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Polar diagram written to %s\n", airfoilPlotFile)
		fmt.Println()
	}
}
