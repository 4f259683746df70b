package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gogeo/internal/bearing"
	"github.com/alexiusacademia/gogeo/internal/diagram"
	"github.com/alexiusacademia/gogeo/internal/spt"
	"github.com/spf13/cobra"
)

var (
	chartName       string
	chartExportFile string
	chartMaxX       float64
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Plot correlation charts",
	Long: `Plot a geotechnical correlation chart in the terminal or export it
to an image file (png, svg, pdf).

Available charts:
  friction   Friction angle φ vs corrected blow count N60
  factors    Bearing capacity factors Nc, Nq, Nγ vs friction angle φ

Examples:
  gogeo chart --name friction
  gogeo chart --name factors --output factors.png
  gogeo chart --name friction --max 80`,
	Run: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&chartName, "name", "n", "friction", "Chart to plot: friction or factors")
	chartCmd.Flags().StringVarP(&chartExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
	chartCmd.Flags().Float64Var(&chartMaxX, "max", 0, "Upper bound of the x-axis (default per chart)")
}

// buildChart assembles the requested chart's curves.
func buildChart(name string, maxX float64) (diagram.ChartData, error) {
	switch name {
	case "friction":
		if maxX <= 0 {
			maxX = 60
		}
		return diagram.ChartData{
			Title:  "Friction angle from corrected SPT blow count (Wolff 1989)",
			XLabel: "N60",
			YLabel: "φ (degrees)",
			Curves: []diagram.Curve{
				{Name: "φ", Points: diagram.Sample(spt.FrictionAngle, 0, maxX, 120)},
			},
		}, nil

	case "factors":
		if maxX <= 0 {
			maxX = 40
		}
		factor := func(pick func(bearing.Factors) float64) func(float64) float64 {
			return func(phi float64) float64 {
				fac, err := bearing.BearingFactors(phi)
				if err != nil {
					return 0
				}
				return pick(fac)
			}
		}
		return diagram.ChartData{
			Title:  "Bearing capacity factors (Reissner/Prandtl/Vesic)",
			XLabel: "φ (degrees)",
			YLabel: "N",
			Curves: []diagram.Curve{
				{Name: "Nc", Points: diagram.Sample(factor(func(f bearing.Factors) float64 { return f.Nc }), 0, maxX, 120)},
				{Name: "Nq", Points: diagram.Sample(factor(func(f bearing.Factors) float64 { return f.Nq }), 0, maxX, 120)},
				{Name: "Nγ", Points: diagram.Sample(factor(func(f bearing.Factors) float64 { return f.Ngamma }), 0, maxX, 120)},
			},
		}, nil
	}

	return diagram.ChartData{}, fmt.Errorf("unknown chart %q (use friction or factors)", name)
}

func runChart(cmd *cobra.Command, args []string) {
	data, err := buildChart(chartName, chartMaxX)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if chartExportFile != "" {
		if err := diagram.ExportChart(data, chartExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("Chart exported to %s\n", chartExportFile)
		return
	}

	fmt.Println()
	fmt.Println(diagram.RenderASCII(data, 70, 15))
}
