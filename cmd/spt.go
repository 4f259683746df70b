package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gogeo/internal/spt"
	"github.com/alexiusacademia/gogeo/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Field measurement
	sptBlowCount float64

	// Correction factors
	sptHammerEff    float64
	sptBoreholeFact float64
	sptSamplerFact  float64
	sptRodFact      float64
	sptEffStress    float64

	// Options
	sptShowDerived bool
)

var sptCmd = &cobra.Command{
	Use:   "spt",
	Short: "Correct SPT blow counts and derive soil parameters",
	Long: `Correct a field SPT blow count for hammer energy and overburden
stress, and estimate derived soil parameters. Stress inputs are always
in kPa; the --units flag selects the units the report displays
stresses in.

Corrections:
  N60    = N·(Em·Cb·Cs·Cr)/0.60        (Skempton 1986)
  CN     = √(100/σ'v) ≤ 1.7            (Liao & Whitman 1986)
  (N1)60 = CN·N60

Derived parameters (with --derived):
  φ  = 27.1 + 0.3·N60 − 0.00054·N60²   (Peck et al., Wolff 1989 fit)
  Dr = √((N1)60/60)·100                 (Skempton 1986)
  cu = 6.25·N60                         (Terzaghi & Peck 1967)

Examples:
  # Safety hammer, default correction factors
  gogeo spt --blows 18

  # Donut hammer at 6 m depth of normally consolidated sand
  gogeo spt --blows 18 --hammer 0.45 --stress 110 --derived`,
	Run: runSpt,
}

func init() {
	rootCmd.AddCommand(sptCmd)

	sptCmd.Flags().Float64VarP(&sptBlowCount, "blows", "n", 0, "Field SPT blow count N [required]")
	sptCmd.MarkFlagRequired("blows")

	sptCmd.Flags().Float64Var(&sptHammerEff, "hammer", 0.60, "Hammer energy efficiency Em")
	sptCmd.Flags().Float64Var(&sptBoreholeFact, "borehole", 1.0, "Borehole diameter factor Cb")
	sptCmd.Flags().Float64Var(&sptSamplerFact, "sampler", 1.0, "Sampler correction factor Cs")
	sptCmd.Flags().Float64Var(&sptRodFact, "rod", 1.0, "Rod length factor Cr")
	sptCmd.Flags().Float64VarP(&sptEffStress, "stress", "s", 0, "Effective vertical stress σ'v (kPa) for overburden correction")

	sptCmd.Flags().BoolVarP(&sptShowDerived, "derived", "d", false, "Show derived soil parameter estimates")
}

func runSpt(cmd *cobra.Command, args []string) {
	cfg, err := calcConfig()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if sptBlowCount < 0 {
		fmt.Println("Error: blow count cannot be negative.")
		return
	}

	n60 := spt.N60(sptBlowCount, sptHammerEff, sptBoreholeFact, sptSamplerFact, sptRodFact)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("              SPT BLOW COUNT CORRECTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Field blow count (N):\t%.0f\n", sptBlowCount)
	fmt.Fprintf(w, "  Hammer efficiency (Em):\t%.2f\n", sptHammerEff)
	fmt.Fprintf(w, "  Borehole factor (Cb):\t%.2f\n", sptBoreholeFact)
	fmt.Fprintf(w, "  Sampler factor (Cs):\t%.2f\n", sptSamplerFact)
	fmt.Fprintf(w, "  Rod length factor (Cr):\t%.2f\n", sptRodFact)
	if sptEffStress > 0 {
		fmt.Fprintf(w, "  Effective stress (σ'v):\t%s\n", cfg.FormatPressure(units.Kilopascals(sptEffStress)))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("CORRECTED BLOW COUNTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Energy corrected (N60):\t%s\n", cfg.Format(n60))
	if sptEffStress > 0 {
		fmt.Fprintf(w, "  Overburden factor (CN):\t%s\n", cfg.Format(spt.OverburdenCN(sptEffStress)))
		fmt.Fprintf(w, "  Fully corrected ((N1)60):\t%s\n", cfg.Format(spt.N160(n60, sptEffStress)))
	}
	w.Flush()
	fmt.Println()

	if sptShowDerived {
		phi := units.Degrees(spt.FrictionAngle(n60))

		fmt.Println("DERIVED PARAMETERS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Friction angle (φ):\t%s\n", cfg.FormatAngle(phi))
		if sptEffStress > 0 {
			dr := spt.RelativeDensity(spt.N160(n60, sptEffStress))
			fmt.Fprintf(w, "  Relative density (Dr):\t%s %%\n", cfg.Format(dr))
		}
		fmt.Fprintf(w, "  Undrained strength (cu):\t%s (if clay)\n", cfg.FormatPressure(units.Kilopascals(spt.UndrainedShearStrength(n60))))
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  N60 = %s  \n", cfg.Format(n60))
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
