package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofea/internal/combo"
	"github.com/spf13/cobra"
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List the ASD and LRFD load combination factor tables",
	Long: `Print the fixed load combination factor tables applied by the
analysis when --combinations is set to ASD or LRFD. Factor columns
follow the load case order DL, LL, LLr, SL, RL, WL, EL.`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)
}

func runCombos(cmd *cobra.Command, args []string) {
	fmt.Println()
	printFactorTable(combo.ASD)
	printFactorTable(combo.LRFD)
}

func printFactorTable(kind combo.Kind) {
	fmt.Printf("%s LOAD COMBINATIONS:\n", kind)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tCombination\tDL\tLL\tLLr\tSL\tRL\tWL\tEL\t")
	for i, c := range kind.Combinations() {
		fmt.Fprintf(w, "  %d\t%s\t", i+1, c.Description)
		for _, f := range c.Factors {
			fmt.Fprintf(w, "%.3g\t", f)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
}
