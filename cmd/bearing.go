package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gogeo/internal/bearing"
	"github.com/alexiusacademia/gogeo/internal/footing"
	"github.com/alexiusacademia/gogeo/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Soil parameters
	bearingCohesion      float64
	bearingFrictionAngle float64
	bearingUnitWeight    float64

	// Foundation
	bearingShape    string
	bearingWidth    float64
	bearingLength   float64
	bearingDiameter float64
	bearingDepth    float64

	// Options
	bearingSafetyFactor float64
)

var bearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "Compute shallow foundation bearing capacity",
	Long: `Compute the ultimate and allowable bearing capacity of a shallow
foundation using the general bearing capacity equation:

  qu = c·Nc·sc + q·Nq·sq + 0.5·γ·B·Nγ·sγ

with Reissner/Prandtl/Vesic bearing capacity factors and De Beer
shape factors. Inputs are always metric: stresses in kPa, unit weight
in kN/m³, dimensions in m. The --units flag selects the units the
report displays lengths and stresses in.

Examples:
  # 1.5 m square footing on sand, 1 m deep
  gogeo bearing --shape square --width 1.5 --depth 1.0 --phi 32 --gamma 18

  # 1.2 m diameter circular footing on clay (undrained)
  gogeo bearing --shape circular --diameter 1.2 --cohesion 50 --gamma 17

  # Rectangular footing with explicit factor of safety
  gogeo bearing --shape rectangular --width 1.5 --length 2.5 \
      --phi 30 --cohesion 10 --gamma 18.5 --depth 1.2 --fs 3`,
	Run: runBearing,
}

func init() {
	rootCmd.AddCommand(bearingCmd)

	bearingCmd.Flags().StringVar(&bearingShape, "shape", "square", "Footing shape: circular, square or rectangular")
	bearingCmd.Flags().Float64VarP(&bearingWidth, "width", "b", 0, "Footing width B (m)")
	bearingCmd.Flags().Float64VarP(&bearingLength, "length", "l", 0, "Footing length L (m, rectangular only)")
	bearingCmd.Flags().Float64Var(&bearingDiameter, "diameter", 0, "Footing diameter (m, circular only)")
	bearingCmd.Flags().Float64Var(&bearingDepth, "depth", 0, "Foundation depth Df (m)")

	bearingCmd.Flags().Float64VarP(&bearingCohesion, "cohesion", "c", 0, "Soil cohesion c (kPa)")
	bearingCmd.Flags().Float64Var(&bearingFrictionAngle, "phi", 0, "Internal friction angle φ (degrees)")
	bearingCmd.Flags().Float64VarP(&bearingUnitWeight, "gamma", "g", 0, "Soil unit weight γ (kN/m³) [required]")
	bearingCmd.MarkFlagRequired("gamma")

	bearingCmd.Flags().Float64Var(&bearingSafetyFactor, "fs", 3.0, "Factor of safety on qu")
}

// bearingFooting builds the footing entity from the shape flags.
func bearingFooting() (footing.Footing, string, error) {
	switch bearingShape {
	case "circular":
		if bearingDiameter <= 0 {
			return nil, "", fmt.Errorf("circular footing requires --diameter")
		}
		return footing.NewCircular(bearingDiameter), fmt.Sprintf("Circular, D=%.2f m", bearingDiameter), nil
	case "square":
		if bearingWidth <= 0 {
			return nil, "", fmt.Errorf("square footing requires --width")
		}
		return footing.NewSquare(bearingWidth), fmt.Sprintf("Square, B=%.2f m", bearingWidth), nil
	case "rectangular":
		if bearingWidth <= 0 || bearingLength <= 0 {
			return nil, "", fmt.Errorf("rectangular footing requires --width and --length")
		}
		return footing.NewRectangular(bearingWidth, bearingLength),
			fmt.Sprintf("Rectangular, B=%.2f m × L=%.2f m", bearingWidth, bearingLength), nil
	}
	return nil, "", fmt.Errorf("unknown shape %q (use circular, square or rectangular)", bearingShape)
}

func runBearing(cmd *cobra.Command, args []string) {
	cfg, err := calcConfig()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	ftg, shapeDesc, err := bearingFooting()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	input := &bearing.Input{
		Cohesion:      bearingCohesion,
		FrictionAngle: bearingFrictionAngle,
		UnitWeight:    bearingUnitWeight,
		Depth:         bearingDepth,
		SafetyFactor:  bearingSafetyFactor,
	}

	result, err := input.Capacity(ftg)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        SHALLOW FOUNDATION BEARING CAPACITY (MEYERHOF)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("FOUNDATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", shapeDesc)
	fmt.Fprintf(w, "  Width (B):\t%s\n", cfg.FormatLength(units.Meters(ftg.Width())))
	fmt.Fprintf(w, "  Length (L):\t%s\n", cfg.FormatLength(units.Meters(ftg.Length())))
	fmt.Fprintf(w, "  Depth (Df):\t%s\n", cfg.FormatLength(units.Meters(bearingDepth)))
	w.Flush()
	fmt.Println()

	fmt.Println("SOIL PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cohesion (c):\t%s\n", cfg.FormatPressure(units.Kilopascals(bearingCohesion)))
	fmt.Fprintf(w, "  Friction angle (φ):\t%.2f°\n", bearingFrictionAngle)
	fmt.Fprintf(w, "  Unit weight (γ):\t%.2f kN/m³\n", bearingUnitWeight)
	fmt.Fprintf(w, "  Surcharge (q = γ·Df):\t%s\n", cfg.FormatPressure(units.Kilopascals(result.Surcharge)))
	w.Flush()
	fmt.Println()

	fmt.Println("BEARING CAPACITY FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tN\ts (shape)\n")
	fmt.Fprintf(w, "  ─\t─\t─────────\n")
	fmt.Fprintf(w, "  c terms:\t%s\t%s\n", cfg.Format(result.Factors.Nc), cfg.Format(result.Shape.Sc))
	fmt.Fprintf(w, "  q terms:\t%s\t%s\n", cfg.Format(result.Factors.Nq), cfg.Format(result.Shape.Sq))
	fmt.Fprintf(w, "  γ terms:\t%s\t%s\n", cfg.Format(result.Factors.Ngamma), cfg.Format(result.Shape.Sgamma))
	w.Flush()
	fmt.Println()

	fmt.Println("CAPACITY TERMS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cohesion term (c·Nc·sc):\t%s\n", cfg.FormatPressure(units.Kilopascals(result.CohesionTerm)))
	fmt.Fprintf(w, "  Surcharge term (q·Nq·sq):\t%s\n", cfg.FormatPressure(units.Kilopascals(result.SurchargeTerm)))
	fmt.Fprintf(w, "  Width term (0.5·γ·B·Nγ·sγ):\t%s\n", cfg.FormatPressure(units.Kilopascals(result.WidthTerm)))
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", result.Message)
	fmt.Println()
	fmt.Printf("  ╔════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  Ultimate  qu = %s  \n", cfg.FormatPressure(units.Kilopascals(result.Ultimate)))
	fmt.Printf("  ║  Allowable qa = %s (FS = %.1f)  \n", cfg.FormatPressure(units.Kilopascals(result.Allowable)), bearingSafetyFactor)
	fmt.Printf("  ╚════════════════════════════════════════════╝\n")
	fmt.Println()
}
