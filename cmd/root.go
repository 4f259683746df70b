package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gogeo/internal/units"
	"github.com/alexiusacademia/gogeo/internal/version"
	"github.com/spf13/cobra"
)

var (
	unitSystemName string
	decimalPlaces  int
)

var rootCmd = &cobra.Command{
	Use:   "gogeo",
	Short: "Geotechnical Engineering Calculation Tool",
	Long: `gogeo - Go Geotechnical Engineering Toolkit

A CLI tool for routine geotechnical engineering calculations
based on published handbook correlations.

This tool helps geotechnical engineers perform:
  - SPT blow count corrections (energy and overburden)
  - Soil parameter correlations (friction angle, relative density)
  - Shallow foundation bearing capacity (Meyerhof/Vesic)
  - USCS soil classification from laboratory data
  - Correlation chart export

The correlations used are cited in each command's help text.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gogeo v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Geotechnical Engineering Toolkit                     ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for routine geotechnical engineering calculations")
		fmt.Println("  based on published handbook correlations.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • SPT corrections: N60, (N1)60 and derived soil parameters")
		fmt.Println("    • Bearing capacity for circular, square and rectangular footings")
		fmt.Println("    • USCS soil classification from lab test data")
		fmt.Println("    • Correlation charts (terminal or png/svg/pdf export)")
		fmt.Println()
		fmt.Println("  Use 'gogeo --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
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

	rootCmd.PersistentFlags().StringVarP(&unitSystemName, "units", "u", "SI", "Unit system (SI, MKS, CGS, british, us)")
	rootCmd.PersistentFlags().IntVarP(&decimalPlaces, "places", "P", 2, "Decimal places for reported values")
}

// calcConfig builds the calculation config from the global flags.
func calcConfig() (units.Config, error) {
	cfg := units.DefaultConfig()

	system, err := units.ParseSystem(unitSystemName)
	if err != nil {
		return cfg, err
	}
	cfg.System = system

	if err := cfg.SetDecimalPlaces(decimalPlaces); err != nil {
		return cfg, err
	}
	return cfg, nil
}
