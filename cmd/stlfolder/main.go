package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlfolder/internal/app"
	"github.com/philipparndt/stlfolder/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stlfolder [folder]",
	Short: "View all STL files in a folder as one 3D scene",
	Long: `stlfolder loads every STL file in a folder, frames the combined
bounding box and opens an interactive 3D viewer. Drag to rotate, scroll
to zoom. The folder defaults to the current directory.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetVersion(),
	Run: func(cmd *cobra.Command, args []string) {
		folder := "."
		if len(args) == 1 {
			folder = args[0]
		}
		if err := app.Run(folder); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
