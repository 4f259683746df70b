package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gogeo/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gogeo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gogeo v%s\n", version.Version)
		fmt.Println("Geotechnical Engineering Calculation Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
