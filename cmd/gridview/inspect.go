package main

import (
	"fmt"
	"os"

	"github.com/aretw0/gridview"
	"github.com/aretw0/gridview/internal/logging"
	"github.com/aretw0/gridview/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a summary of the dataset without serving",
	Long: `Loads and filters the dataset, then prints a rendered summary:
record counts, fiscal year span, and the top states by initiative count.`,
	Run: func(cmd *cobra.Command, args []string) {
		dataPath, _ := cmd.Flags().GetString("data")

		dashboard, err := gridview.New(dataPath, gridview.WithLogger(logging.NewNop()))
		if err != nil {
			fmt.Printf("Error loading dataset: %v\n", err)
			os.Exit(1)
		}

		tui.PrintHeading("gridview dataset summary")

		render := tui.NewRenderer()
		out, err := render(dashboard.Summary())
		if err != nil {
			// Fall back to the raw markdown when the terminal renderer fails.
			fmt.Println(dashboard.Summary())
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
