package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/philipparndt/gochibi/pkg/analysis"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/mesh"
	"github.com/philipparndt/gochibi/pkg/obj"
	"github.com/philipparndt/gochibi/pkg/stl"
	"github.com/spf13/cobra"
)

var infoLargest int

var infoCmd = &cobra.Command{
	Use:   "info [file...]",
	Short: "Show measurements of the generated parts or of exported files",
	Long: `Without arguments, generate the model for the configuration and print
dimensions, volume and surface area per part together with the measured
connector fit. With file arguments, measure those STL or OBJ files instead.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoLargest, "largest", "n", 0, "Only show the N parts with the largest surface area")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		results := make([]*analysis.MeasurementResult, 0, len(args))
		for _, path := range args {
			m, err := loadMesh(path)
			if err != nil {
				return err
			}
			results = append(results, analysis.AnalyzeMesh(filepath.Base(path), m))
		}
		printParts(results)
		return nil
	}

	parts, err := chibi.GenerateFullModel(cfg.Model)
	if err != nil {
		return err
	}

	fmt.Println("Chibi Model Information")
	fmt.Println("=======================")
	fmt.Printf("Configuration: %s\n", cfg.Model)
	fmt.Printf("Parts: %d\n", len(parts))
	bbox := parts.BoundingBox()
	fmt.Printf("Overall size: %s\n\n", analysis.FormatVector(bbox.Size()))

	results := analysis.AnalyzeParts(parts)
	if infoLargest > 0 {
		results = analysis.FindLargestParts(results, infoLargest)
	}
	printParts(results)

	reports, err := analysis.AnalyzeConnectors(parts, cfg.Model.Scale)
	if err != nil {
		return err
	}
	fmt.Println("\nConnectors:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  JOINT\tSOCKET R\tINSERT R\tCLEARANCE\tFITS")
	for _, r := range reports {
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%v\n", r.Joint, r.SocketRadius, r.InsertRadius, r.Clearance, r.Fits)
	}
	return w.Flush()
}

func printParts(results []*analysis.MeasurementResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tWIDTH (X)\tDEPTH (Y)\tHEIGHT (Z)\tVOLUME\tAREA\tTRIANGLES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%d\n",
			r.Name, r.Dimensions.X, r.Dimensions.Y, r.Dimensions.Z, r.Volume, r.SurfaceArea, r.TriangleCount)
	}
	_ = w.Flush()
}

// loadMesh reads an STL or OBJ file by extension
func loadMesh(path string) (*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		m, _, err := obj.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("parsing OBJ file %s: %w", path, err)
		}
		return m, nil
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("parsing STL file %s: %w", path, err)
		}
		return model.ToMesh(), nil
	default:
		return nil, fmt.Errorf("%s: unknown file type, expected .stl or .obj", path)
	}
}
