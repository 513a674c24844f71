package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the mcp-prompt-doctor application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcp-prompt-doctor",
	Short: "Prompt diagnostic engine with an MCP server",
	Long: `mcp-prompt-doctor diagnoses natural-language prompts with deterministic
lexical heuristics: per-dimension scores (clarity, specificity, completeness,
complexity), an overall quality score, a health band and typed issues with
suggested fixes. It can apply an automatic append-only rewrite and re-score it.

The same engine is exposed two ways: as CLI subcommands (diagnose, fix,
compare, batch) and as a Model Context Protocol (MCP) server that also
surfaces the framework documents shipped alongside the prompts.

When run without subcommands, it starts the MCP server (equivalent to
'mcp-prompt-doctor serve').`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	// This is useful for providing cleaner error output to the user.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	// SetVersionTemplate defines a custom template for displaying the version.
	// This is used when the --version flag is invoked.
	rootCmd.SetVersionTemplate(`{{printf "mcp-prompt-doctor version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		// Cobra itself usually prints the error. Exiting with a non-zero status code
		// indicates that an error occurred during execution.
		os.Exit(1)
	}
}

// init is a special Go function that is executed when the package is initialized.
// It is used here to add subcommands to the root command.
func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newDiagnoseCmd())
	rootCmd.AddCommand(newFixCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newBatchCmd())
}
