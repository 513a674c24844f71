package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

// newFixCmd creates the Cobra command for auto-fixing a prompt.
func newFixCmd() *cobra.Command {
	var (
		configPath string
		rediagnose bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "fix [file]",
		Short: "Apply the append-only auto-fix to a prompt",
		Long: `Diagnose a prompt and append scaffolding blocks for its fixable issues
(missing format, missing example, missing constraints). The original text is
never modified, only extended.

The fixed prompt is written to stdout, or to the file given with --output.`,
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
			fixed, err := engine.Fix(text, result)
			if err != nil {
				return fmt.Errorf("failed to fix prompt: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(fixed), 0o644); err != nil {
					return fmt.Errorf("failed to write fixed prompt: %w", err)
				}
			} else {
				fmt.Print(fixed)
				if len(fixed) > 0 && fixed[len(fixed)-1] != '\n' {
					fmt.Println()
				}
			}

			if rediagnose {
				after := engine.Diagnose(fixed)
				fmt.Fprintf(os.Stderr, "quality: %.1f -> %.1f (%s -> %s)\n",
					result.Quality, after.Quality, result.Health, after.Health)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Scoring table override file (YAML)")
	cmd.Flags().BoolVar(&rediagnose, "rediagnose", false, "Re-diagnose the fixed prompt and report the score change on stderr")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the fixed prompt to this file instead of stdout")

	return cmd
}
