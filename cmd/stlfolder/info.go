package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlfolder/pkg/analysis"
	"github.com/philipparndt/stlfolder/pkg/scene"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [folder]",
	Short: "Display statistics for the STL files in a folder",
	Long:  "Show part and triangle counts, surface area and the combined bounding box without opening a window.",
	Args:  cobra.MaximumNArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	folder := "."
	if len(args) == 1 {
		folder = args[0]
	}

	s, err := scene.Load(folder, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading folder: %v\n", err)
		os.Exit(1)
	}

	summary := analysis.Summarize(s)

	fmt.Println("STL Folder Information")
	fmt.Println("======================")
	fmt.Printf("Folder: %s\n\n", folder)

	fmt.Println("Scene Statistics:")
	fmt.Printf("  Parts: %d\n", summary.PartCount)
	fmt.Printf("  Triangles: %d\n", summary.TriangleCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", summary.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(summary.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(summary.Bounds.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(summary.Bounds.Center))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", summary.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", summary.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", summary.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", summary.Bounds.Size)

	if len(summary.Parts) > 0 {
		fmt.Println("Parts:")
		for _, part := range summary.Parts {
			fmt.Printf("  %s: %d triangles, area %.2f\n", part.Name, part.TriangleCount, part.SurfaceArea)
		}
	}
}
