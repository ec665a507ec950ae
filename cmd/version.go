package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofea/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofea",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofea v%s\n", version.Version)
		fmt.Println("3D Frame Analysis Tool")
		fmt.Println("Linear-elastic direct stiffness method")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
