package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofea/internal/combo"
	"github.com/alexiusacademia/gofea/internal/diagram"
	"github.com/alexiusacademia/gofea/internal/femodel"
	"github.com/alexiusacademia/gofea/internal/modelfile"
	"github.com/spf13/cobra"
)

var (
	analyzeFile         string
	analyzeCombinations string
	analyzeShowGraph    bool
	analyzeExportFile   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze nodal displacements of a 3D frame model",
	Long: `Run a linear-elastic direct stiffness analysis on a frame model
defined in a YAML file and report the nodal displacements per load
case and, optionally, per ASD or LRFD load combination.

Examples:
  gofea analyze --file frame.yaml
  gofea analyze -f frame.yaml --combinations lrfd
  gofea analyze -f frame.yaml --graph -o displacements.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to model YAML file [required]")
	analyzeCmd.MarkFlagRequired("file")

	analyzeCmd.Flags().StringVarP(&analyzeCombinations, "combinations", "c", "None", "Load combinations to apply (None, ASD, LRFD)")
	analyzeCmd.Flags().BoolVar(&analyzeShowGraph, "graph", false, "Show ASCII displacement graphs")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export displacement diagram to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	model, err := modelfile.Load(analyzeFile)
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		os.Exit(1)
	}

	kind, err := combo.Parse(analyzeCombinations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := model.Run(analyzeCombinations); err != nil {
		fmt.Printf("Error running analysis: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     3D FRAME ANALYSIS - DIRECT STIFFNESS METHOD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("MODEL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nodes:\t%d\n", model.NumNodes())
	fmt.Fprintf(w, "  Elements:\t%d\n", model.NumElements())
	fmt.Fprintf(w, "  Supports:\t%d\n", model.NumSupports())
	fmt.Fprintf(w, "  Loads:\t%d\n", model.NumLoads())
	fmt.Fprintf(w, "  Free DOFs:\t%d\n", model.NumFreeDOFs())
	fmt.Fprintf(w, "  Combinations:\t%s\n", kind)
	w.Flush()
	fmt.Println()

	printCaseDisplacements(model)

	if kind != combo.None {
		printCombinationSummary(model, kind)
	}

	if analyzeShowGraph {
		fmt.Print(diagram.DrawASCIIDisplacements(displacementSeries(model, kind)))
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportDisplacementDiagram(displacementSeries(model, kind), analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Displacement diagram exported to %s\n", analyzeExportFile)
	}
}

// printCaseDisplacements prints a nodal displacement table for every load
// case that actually carries load.
func printCaseDisplacements(model *femodel.Model) {
	dofs := model.DOFTable()
	disp := model.Displacements()

	for c := 0; c < femodel.NumLoadCases; c++ {
		if !caseHasLoad(model, c) {
			continue
		}

		fmt.Printf("DISPLACEMENTS - LOAD CASE %s:\n", femodel.LoadCase(c))
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "  Node\tTx\tTy\tTz\tRx\tRy\tRz\t")
		for _, n := range model.Nodes() {
			fmt.Fprintf(w, "  %d\t", n.ID)
			for d := 0; d < 6; d++ {
				g := dofs[n.ID-1][d]
				if g == 0 {
					fmt.Fprint(w, "-\t")
					continue
				}
				fmt.Fprintf(w, "%.6e\t", disp.At(g-1, c))
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()
	}
}

// printCombinationSummary prints the peak translation magnitude reached
// under each load combination.
func printCombinationSummary(model *femodel.Model, kind combo.Kind) {
	combinations := kind.Combinations()

	fmt.Printf("LOAD COMBINATIONS (%s):\n", kind)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tCombination\tMax Translation\t")
	for i, c := range combinations {
		col := femodel.NumLoadCases + i
		maxMag := 0.0
		for _, n := range model.Nodes() {
			if mag := translationMagnitude(model, n.ID, col); mag > maxMag {
				maxMag = mag
			}
		}
		fmt.Fprintf(w, "  %d\t%s\t%.6e\t\n", i+1, c.Description, maxMag)
	}
	w.Flush()
	fmt.Println()
}

// displacementSeries collects per-node translation magnitudes for every
// loaded case, plus each combination when requested.
func displacementSeries(model *femodel.Model, kind combo.Kind) []diagram.DisplacementSeries {
	var series []diagram.DisplacementSeries

	for c := 0; c < femodel.NumLoadCases; c++ {
		if !caseHasLoad(model, c) {
			continue
		}
		series = append(series, diagram.DisplacementSeries{
			Label:  fmt.Sprintf("Load case %s", femodel.LoadCase(c)),
			Values: magnitudesByNode(model, c),
		})
	}
	for i, c := range kind.Combinations() {
		series = append(series, diagram.DisplacementSeries{
			Label:  c.Description,
			Values: magnitudesByNode(model, femodel.NumLoadCases+i),
		})
	}
	return series
}

func magnitudesByNode(model *femodel.Model, col int) []float64 {
	nodes := model.Nodes()
	values := make([]float64, len(nodes))
	for i, n := range nodes {
		values[i] = translationMagnitude(model, n.ID, col)
	}
	return values
}

func translationMagnitude(model *femodel.Model, nodeID, col int) float64 {
	dofs := model.DOFTable()
	disp := model.Displacements()

	sum := 0.0
	for d := 0; d < 3; d++ {
		if g := dofs[nodeID-1][d]; g > 0 {
			v := disp.At(g-1, col)
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}

func caseHasLoad(model *femodel.Model, caseCol int) bool {
	loads := model.LoadMatrix()
	rows, _ := loads.Dims()
	for i := 0; i < rows; i++ {
		if loads.At(i, caseCol) != 0 {
			return true
		}
	}
	return false
}
