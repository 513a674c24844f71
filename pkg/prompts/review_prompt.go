package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/prompt-doctor/mcp-prompt-doctor/internal/server"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

func registerReviewPrompt(s *mcpserver.MCPServer, ctx *server.Context) error {
	prompt := mcp.NewPrompt(
		"review-prompt",
		mcp.WithPromptDescription("Walkthrough of a prompt's diagnostic findings"),
		mcp.WithArgument("prompt", mcp.ArgumentDescription("The prompt text to review")),
		mcp.WithArgument("focus", mcp.ArgumentDescription("Dimension to focus on: clarity, specificity, completeness, or complexity")),
	)

	s.AddPrompt(prompt, func(promptCtx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		text := args["prompt"]
		focus := args["focus"]

		pb := newPromptBuilder()

		pb.addSection("Review a Prompt",
			"This walkthrough explains what the diagnostic engine found in a prompt "+
				"and why each finding matters.")

		if err := validateInput(text, "prompt", true); err != nil {
			pb.addSection("Action Required",
				"Please supply the 'prompt' argument with the text to review.")
			return &mcp.GetPromptResult{
				Description: "Review prompt guide - prompt text needed",
				Messages: []mcp.PromptMessage{
					{
						Role:    mcp.RoleUser,
						Content: mcp.TextContent{Text: pb.build()},
					},
				},
			}, nil
		}

		result := ctx.Engine.Diagnose(text)

		pb.addCodeBlock("Prompt Under Review", "text", text)
		pb.addCodeBlock("Diagnostic Report", "text", diagnostic.Render(result, true))

		pb.addList("How to Read the Scores", []string{
			"clarity: penalized by vague verbs, hedging language and competing tasks",
			"specificity: penalized by missing constraints and vague verbs",
			"completeness: penalized by missing format and example blocks",
			"complexity: higher means structurally simpler; penalized by multiple tasks, excessive length and example overload",
		})

		if focus != "" {
			pb.addSection("Requested Focus",
				fmt.Sprintf("Concentrate the review on the **%s** dimension: walk through each issue "+
					"affecting it and explain the concrete edit that would resolve it.", focus))
		}

		pb.addSection("Review Instructions",
			"For every issue in the report, explain in one or two sentences what effect it has on "+
				"a model's output, then propose the smallest edit that resolves it. Close with an "+
				"overall recommendation: ship the prompt as is, apply the auto-fix, or rewrite.")

		return &mcp.GetPromptResult{
			Description: fmt.Sprintf("Review guide for a %s prompt with %d issues", result.Health, len(result.Issues)),
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
