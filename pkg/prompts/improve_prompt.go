package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/prompt-doctor/mcp-prompt-doctor/internal/server"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

func registerImprovePrompt(s *mcpserver.MCPServer, ctx *server.Context) error {
	prompt := mcp.NewPrompt(
		"improve-prompt",
		mcp.WithPromptDescription("Guided rewrite of a prompt based on its diagnosis"),
		mcp.WithArgument("prompt", mcp.ArgumentDescription("The prompt text to improve")),
	)

	s.AddPrompt(prompt, func(promptCtx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		text := args["prompt"]

		pb := newPromptBuilder()

		pb.addSection("Improve a Prompt",
			"This workflow rewrites a weak prompt using its diagnostic report. "+
				"The report below comes from deterministic lexical analysis; the rewrite "+
				"needs your judgment for anything the auto-fixer cannot address.")

		if err := validateInput(text, "prompt", true); err != nil {
			pb.addSection("Action Required",
				"Please supply the 'prompt' argument with the text to improve. "+
					"You can diagnose a candidate first:")
			pb.addCodeBlock("Diagnose", "bash", "prompt.diagnose --prompt \"<your prompt>\"")
			return &mcp.GetPromptResult{
				Description: "Improve prompt guide - prompt text needed",
				Messages: []mcp.PromptMessage{
					{
						Role:    mcp.RoleUser,
						Content: mcp.TextContent{Text: pb.build()},
					},
				},
			}, nil
		}

		result := ctx.Engine.Diagnose(text)
		fixed, err := ctx.Engine.Fix(text, result)
		if err != nil {
			return nil, fmt.Errorf("failed to auto-fix prompt: %w", err)
		}

		pb.addCodeBlock("Original Prompt", "text", text)
		pb.addCodeBlock("Diagnostic Report", "text", diagnostic.Render(result, true))

		if fixed != text {
			pb.addSection("Auto-Fixed Draft",
				"The engine appended scaffolding for the addressable issues. "+
					"Use this draft as the starting point:")
			pb.addCodeBlock("Draft", "text", fixed)
		}

		pb.addList("Rewrite Instructions", []string{
			"Replace every vague verb with a concrete action",
			"Remove hedging language; state requirements directly",
			"If several independent tasks are listed, split them into separate prompts",
			"Fill in the format, example and constraint placeholders with task-specific content",
			"Keep all of the original intent; add, never remove",
		})

		pb.addSection("Verification",
			"After rewriting, re-run the diagnosis and confirm the quality score improved:")
		pb.addCodeBlock("Re-diagnose", "bash", "prompt.diagnose --prompt \"<rewritten prompt>\" --verbose true")

		return &mcp.GetPromptResult{
			Description: fmt.Sprintf("Improvement guide for a %s prompt (quality %.1f)", result.Health, result.Quality),
			Messages: []mcp.PromptMessage{
				{
					Role:    mcp.RoleUser,
					Content: mcp.TextContent{Text: pb.build()},
				},
			},
		}, nil
	})

	return nil
}
