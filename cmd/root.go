package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gofea/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofea",
	Short: "3D Frame Analysis Tool",
	Long: `gofea - Go Frame Element Analysis

A CLI tool for linear-elastic analysis of 3D frame structures using
the direct stiffness method.

This tool helps structural engineers perform:
  - Nodal displacement analysis of beam/column frames
  - Analysis under the seven standard load cases (DL, LL, LLr, SL, RL, WL, EL)
  - ASD and LRFD load combination factoring
  - Displacement diagram export`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofea v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Frame Element Analysis                               ║")
		fmt.Printf("  ║   %s ©  %s                                 ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for linear-elastic analysis of 3D frame structures")
		fmt.Println("  using the direct stiffness method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • 3D Euler-Bernoulli frame elements with arbitrary orientation")
		fmt.Println("    • Nodal loads under seven standard load cases")
		fmt.Println("    • ASD and LRFD load combination factoring")
		fmt.Println("    • Displacement tables, terminal graphs, and diagram export")
		fmt.Println()
		fmt.Println("  Use 'gofea --help' to see available commands.")
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
}
