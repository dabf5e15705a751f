package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocba/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocba",
	Short: "Continuous Beam Analysis Tool",
	Long: `gocba - Go Continuous Beam Analyzer

A CLI tool for the analysis of continuous beams on simple supports
using the three-moment equation (Clapeyron).

This tool helps structural engineers perform:
  - Support moment solution for any number of spans
  - Support reaction calculation
  - Shear and bending moment diagrams
  - Deflection analysis (double integration)
  - Uniform and triangular distributed loads

Beams are described in YAML or JSON definition files.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocba v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Continuous Beam Analyzer                             ║")
		fmt.Printf("  ║   %s ©  %s                              ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the analysis of continuous beams")
		fmt.Println("  using the three-moment equation.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Support moments from the three-moment equation system")
		fmt.Println("    • Support reactions and per-span maxima")
		fmt.Println("    • Shear, moment and deflection diagrams (terminal and image)")
		fmt.Println("    • Spreadsheet result export")
		fmt.Println()
		fmt.Println("  Use 'gocba --help' to see available commands.")
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
