package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridview",
	Short: "Gridview is an interactive renewable-energy initiatives dashboard",
	Long: `Gridview loads a CSV of renewable-energy initiatives once at startup,
drops bookkeeping categories, and serves an interactive dashboard that
filters and aggregates the dataset by state, fiscal year and source.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("data", "initiatives.csv", "Path of the dataset CSV")
}
