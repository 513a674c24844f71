package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

// newBatchCmd creates the Cobra command for diagnosing many prompts at once.
func newBatchCmd() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "batch [file...]",
		Short: "Diagnose a batch of prompts",
		Long: `Diagnose several prompts in one run. Each file argument is one prompt;
with no arguments, stdin is read as blank-line-separated prompts.

Results keep input order. The exit code is the worst exit code any single
prompt would have produced (see 'diagnose --help' for the mapping).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts, names, err := readBatchInput(args)
			if err != nil {
				return err
			}
			if len(prompts) == 0 {
				return fmt.Errorf("no prompts to diagnose")
			}

			cfg, err := loadScoringConfig(configPath)
			if err != nil {
				return err
			}

			engine := diagnostic.New(cfg)
			results := engine.Batch(prompts)

			worst := exitHealthy
			for _, result := range results {
				if code := exitCode(result.Quality); code > worst {
					worst = code
				}
			}

			switch format {
			case "json":
				// One record per line so CI tooling can stream them.
				for i, result := range results {
					record := diagnostic.ToRecord(result)
					record["name"] = names[i]
					data, err := json.Marshal(record)
					if err != nil {
						return fmt.Errorf("failed to marshal result for %s: %w", names[i], err)
					}
					fmt.Println(string(data))
				}
			case "", "text":
				for i, result := range results {
					fmt.Printf("%-30s %-9s quality %5.1f  issues %d\n",
						names[i], result.Health, result.Quality, len(result.Issues))
				}
			default:
				return fmt.Errorf("invalid format: %s (must be text or json)", format)
			}

			os.Exit(worst)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Scoring table override file (YAML)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

// readBatchInput collects the prompts and a display name for each. File
// arguments are one prompt per file; stdin is split on blank lines.
func readBatchInput(args []string) ([]string, []string, error) {
	if len(args) > 0 {
		prompts := make([]string, 0, len(args))
		names := make([]string, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			prompts = append(prompts, string(data))
			names = append(names, path)
		}
		return prompts, names, nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	var prompts, names []string
	for _, block := range strings.Split(string(data), "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		prompts = append(prompts, block)
		names = append(names, fmt.Sprintf("prompt-%d", len(prompts)))
	}
	return prompts, names, nil
}
