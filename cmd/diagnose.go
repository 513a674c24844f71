package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

// Exit codes for CI / pre-commit integration.
const (
	exitHealthy  = 0 // quality >= 60
	exitWarning  = 1 // quality 40-59
	exitCritical = 2 // quality < 40
)

// newDiagnoseCmd creates the Cobra command for diagnosing a single prompt.
func newDiagnoseCmd() *cobra.Command {
	var (
		configPath string
		format     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "diagnose [file]",
		Short: "Diagnose a prompt from a file or stdin",
		Long: `Diagnose a prompt and print its quality report.

Reads the prompt from the given file, or from stdin when no file is given.
The exit code reflects the quality score for use in CI and pre-commit hooks:
  0  quality >= 60
  1  quality 40-59
  2  quality < 40`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPromptInput(args)
			if err != nil {
				return err
			}

			cfg, err := loadScoringConfig(configPath)
			if err != nil {
				return err
			}

			engine := diagnostic.New(cfg)
			result := engine.Diagnose(text)

			switch format {
			case "json":
				data, err := json.MarshalIndent(diagnostic.ToRecord(result), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result: %w", err)
				}
				fmt.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(diagnostic.ToRecord(result))
				if err != nil {
					return fmt.Errorf("failed to marshal result: %w", err)
				}
				fmt.Print(string(data))
			case "", "text":
				printReport(result, verbose)
			default:
				return fmt.Errorf("invalid format: %s (must be text, json or yaml)", format)
			}

			os.Exit(exitCode(result.Quality))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Scoring table override file (YAML)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, or yaml")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show every issue with its suggestion")

	return cmd
}

// readPromptInput reads the prompt text from the optional file argument or
// from stdin.
func readPromptInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read prompt file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	return string(data), nil
}

// printReport writes the text report with the health line colored by band.
// Color is disabled automatically when stdout is not a terminal.
func printReport(result *diagnostic.DiagnosticResult, verbose bool) {
	report := diagnostic.Render(result, verbose)
	bandColor(result.Health).Print(report)
}

func bandColor(band diagnostic.HealthBand) *color.Color {
	switch band {
	case diagnostic.HealthExcellent, diagnostic.HealthGood:
		return color.New(color.FgGreen)
	case diagnostic.HealthFair:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgRed)
}

func exitCode(quality float64) int {
	switch {
	case quality >= 60:
		return exitHealthy
	case quality >= 40:
		return exitWarning
	}
	return exitCritical
}
