package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/gridview"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gridview",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridview version %s\n", strings.TrimSpace(gridview.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
