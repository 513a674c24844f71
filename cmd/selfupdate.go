package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// repoSlug is the GitHub repository releases are published to.
const repoSlug = "prompt-doctor/mcp-prompt-doctor"

// newSelfUpdateCmd creates the Cobra command for updating the binary in place
// from the latest GitHub release.
func newSelfUpdateCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "selfupdate",
		Short: "Update mcp-prompt-doctor to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate(cmd.Context(), checkOnly)
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only check whether a newer release exists")

	return cmd
}

func runSelfUpdate(ctx context.Context, checkOnly bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repoSlug)
	}

	current := rootCmd.Version
	if latest.LessOrEqual(current) {
		fmt.Printf("Current version %s is the latest\n", current)
		return nil
	}

	fmt.Printf("New version available: %s (current: %s)\n", latest.Version(), current)
	if checkOnly {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
