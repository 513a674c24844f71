package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

// newCompareCmd creates the Cobra command for comparing two prompts.
func newCompareCmd() *cobra.Command {
	var (
		configPath string
		format     string
		literal    bool
	)

	cmd := &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "Compare two prompt variants",
		Long: `Diagnose two prompt files and report which scores higher, the quality
delta, and the per-dimension deltas (A minus B).

With --text the arguments are treated as the prompt texts themselves instead
of file paths.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			textA, textB := args[0], args[1]
			if !literal {
				dataA, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[0], err)
				}
				dataB, err := os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[1], err)
				}
				textA, textB = string(dataA), string(dataB)
			}

			cfg, err := loadScoringConfig(configPath)
			if err != nil {
				return err
			}

			engine := diagnostic.New(cfg)
			cmp := engine.Compare(textA, textB)

			if format == "json" {
				data, err := json.MarshalIndent(cmp, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal comparison: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			printComparison(cmp, args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Scoring table override file (YAML)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&literal, "text", false, "Treat the arguments as prompt text rather than file paths")

	return cmd
}

func printComparison(cmp *diagnostic.Comparison, nameA, nameB string) {
	switch cmp.Winner {
	case "a":
		fmt.Printf("Winner: %s (+%.1f quality)\n", nameA, cmp.QualityDelta)
	case "b":
		fmt.Printf("Winner: %s (+%.1f quality)\n", nameB, cmp.QualityDelta)
	default:
		fmt.Println("Tie: both prompts score the same quality")
	}

	fmt.Printf("\n%-14s %10s %10s %10s\n", "", "A", "B", "A-B")
	row := func(name string, a, b, delta float64) {
		fmt.Printf("%-14s %10.1f %10.1f %+10.1f\n", name, a, b, delta)
	}
	row("quality", cmp.A.Quality, cmp.B.Quality, cmp.A.Quality-cmp.B.Quality)
	row("clarity", cmp.A.Clarity, cmp.B.Clarity, cmp.Deltas.Clarity)
	row("specificity", cmp.A.Specificity, cmp.B.Specificity, cmp.Deltas.Specificity)
	row("completeness", cmp.A.Completeness, cmp.B.Completeness, cmp.Deltas.Completeness)
	row("complexity", cmp.A.Complexity, cmp.B.Complexity, cmp.Deltas.Complexity)

	fmt.Printf("\nA: %s (%d issues)\n", cmp.A.Health, len(cmp.A.Issues))
	fmt.Printf("B: %s (%d issues)\n", cmp.B.Health, len(cmp.B.Issues))
}
