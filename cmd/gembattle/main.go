// Package main is the entry point for the gem battle engine CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gembattle",
	Short: "Gem battle engine",
	Long:  `Gem battle runs the turn-based card battle engine: encounters, gem resolution, and proficiency progression.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
