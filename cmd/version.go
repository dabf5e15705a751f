package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocba/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocba",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocba v%s\n", version.Version)
		fmt.Println("Continuous Beam Analysis Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
