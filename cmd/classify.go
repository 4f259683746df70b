package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gogeo/internal/soil"
	"github.com/spf13/cobra"
)

var (
	classifyFile string

	classifyGravel float64
	classifySand   float64
	classifyFines  float64
	classifyCu     float64
	classifyCc     float64
	classifyLL     float64
	classifyPL     float64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a soil sample using the USCS",
	Long: `Classify a soil sample per the Unified Soil Classification System
(ASTM D2487) from laboratory test values.

Provide the sample either as flags or as a JSON file:

  {
    "name": "BH-1 S-3",
    "gravel": 5, "sand": 65, "fines": 30,
    "liquid_limit": 35, "plastic_limit": 18
  }

Examples:
  gogeo classify --gravel 60 --sand 35 --fines 5 --cu 5.2 --cc 1.4
  gogeo classify --file bh1-s3.json`,
	Run: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Path to sample JSON file")

	classifyCmd.Flags().Float64Var(&classifyGravel, "gravel", 0, "Gravel fraction (%)")
	classifyCmd.Flags().Float64Var(&classifySand, "sand", 0, "Sand fraction (%)")
	classifyCmd.Flags().Float64Var(&classifyFines, "fines", 0, "Fines fraction (%)")
	classifyCmd.Flags().Float64Var(&classifyCu, "cu", 0, "Coefficient of uniformity Cu")
	classifyCmd.Flags().Float64Var(&classifyCc, "cc", 0, "Coefficient of curvature Cc")
	classifyCmd.Flags().Float64Var(&classifyLL, "ll", 0, "Liquid limit (%)")
	classifyCmd.Flags().Float64Var(&classifyPL, "pl", 0, "Plastic limit (%)")
}

func runClassify(cmd *cobra.Command, args []string) {
	var sample *soil.Sample
	var err error

	if classifyFile != "" {
		sample, err = soil.LoadSample(classifyFile)
		if err != nil {
			fmt.Printf("Error loading sample: %v\n", err)
			return
		}
	} else {
		sample = &soil.Sample{
			Gravel:       classifyGravel,
			Sand:         classifySand,
			Fines:        classifyFines,
			Cu:           classifyCu,
			Cc:           classifyCc,
			LiquidLimit:  classifyLL,
			PlasticLimit: classifyPL,
		}
	}

	result, err := soil.Classify(sample)
	if err != nil {
		fmt.Printf("Error classifying sample: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          USCS SOIL CLASSIFICATION (ASTM D2487)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sample.Name != "" {
		fmt.Printf("  Sample: %s\n", sample.Name)
	}
	if sample.Description != "" {
		fmt.Printf("  Description: %s\n", sample.Description)
	}
	fmt.Println()

	fmt.Println("LAB DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gravel:\t%.1f %%\n", sample.Gravel)
	fmt.Fprintf(w, "  Sand:\t%.1f %%\n", sample.Sand)
	fmt.Fprintf(w, "  Fines:\t%.1f %%\n", sample.Fines)
	if sample.Cu != 0 {
		fmt.Fprintf(w, "  Cu:\t%.2f\n", sample.Cu)
		fmt.Fprintf(w, "  Cc:\t%.2f\n", sample.Cc)
	}
	if sample.LiquidLimit != 0 {
		fmt.Fprintf(w, "  Liquid limit:\t%.1f %%\n", sample.LiquidLimit)
		fmt.Fprintf(w, "  Plastic limit:\t%.1f %%\n", sample.PlasticLimit)
		fmt.Fprintf(w, "  Plasticity index:\t%.1f %%\n", sample.PlasticityIndex())
		fmt.Fprintf(w, "  A-line PI at LL:\t%.1f %%\n", soil.ALine(sample.LiquidLimit))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  %s — %s  \n", result.Symbol, result.Name)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
