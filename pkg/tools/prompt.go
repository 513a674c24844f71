package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"sigs.k8s.io/yaml"

	"github.com/prompt-doctor/mcp-prompt-doctor/internal/server"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

// RegisterPromptTools registers the diagnostic engine tools
func RegisterPromptTools(s *mcpserver.MCPServer, ctx *server.Context) error {
	// prompt.diagnose tool
	diagnoseTool := mcp.NewTool(
		"prompt.diagnose",
		mcp.WithDescription("Diagnose a prompt: per-dimension scores, overall quality, health band and typed issues with suggested fixes"),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The prompt text to diagnose")),
		mcp.WithString("format", mcp.Description("Output format: text, json, or yaml (default: text)")),
		mcp.WithBoolean("verbose", mcp.Description("Include every issue with its suggestion (default: false)")),
	)

	s.AddTool(diagnoseTool, func(toolCtx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments.(map[string]interface{})
		prompt, ok := args["prompt"].(string)
		if !ok {
			return nil, fmt.Errorf("prompt must be a string")
		}
		format := getStringArg(args, "format")
		verbose := getBoolArg(args, "verbose")

		result := ctx.Engine.Diagnose(prompt)

		output, err := formatResult(result, format, verbose)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(output), nil
	})

	// prompt.fix tool
	fixTool := mcp.NewTool(
		"prompt.fix",
		mcp.WithDescription("Apply deterministic auto-fixes to a prompt (appends format, example and constraint scaffolding for addressable issues)"),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The prompt text to fix")),
		mcp.WithBoolean("rediagnose", mcp.Description("Append a diagnosis of the fixed prompt (default: false)")),
	)

	s.AddTool(fixTool, func(toolCtx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments.(map[string]interface{})
		prompt, ok := args["prompt"].(string)
		if !ok {
			return nil, fmt.Errorf("prompt must be a string")
		}
		rediagnose := getBoolArg(args, "rediagnose")

		result := ctx.Engine.Diagnose(prompt)
		fixed, err := ctx.Engine.Fix(prompt, result)
		if err != nil {
			return nil, err
		}

		var sb strings.Builder
		sb.WriteString(fixed)
		if rediagnose {
			sb.WriteString("\n\n--- diagnosis of fixed prompt ---\n")
			sb.WriteString(diagnostic.Render(ctx.Engine.Diagnose(fixed), false))
		}
		return mcp.NewToolResultText(sb.String()), nil
	})

	// prompt.compare tool
	compareTool := mcp.NewTool(
		"prompt.compare",
		mcp.WithDescription("Diagnose two prompts and report which scores higher, with per-dimension deltas"),
		mcp.WithString("a", mcp.Required(), mcp.Description("The first prompt")),
		mcp.WithString("b", mcp.Required(), mcp.Description("The second prompt")),
	)

	s.AddTool(compareTool, func(toolCtx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments.(map[string]interface{})
		a, okA := args["a"].(string)
		b, okB := args["b"].(string)
		if !okA || !okB {
			return nil, fmt.Errorf("a and b must be strings")
		}

		cmp := ctx.Engine.Compare(a, b)

		var sb strings.Builder
		if cmp.Winner == "" {
			sb.WriteString("Tie: both prompts score the same\n")
		} else {
			sb.WriteString(fmt.Sprintf("Winner: prompt %s (quality delta %.1f)\n", cmp.Winner, cmp.QualityDelta))
		}
		sb.WriteString(fmt.Sprintf("\nPrompt a: quality %.1f (%s)\n", cmp.A.Quality, cmp.A.Health))
		sb.WriteString(fmt.Sprintf("Prompt b: quality %.1f (%s)\n", cmp.B.Quality, cmp.B.Health))
		sb.WriteString("\nDimension deltas (a minus b):\n")
		sb.WriteString(fmt.Sprintf("  clarity       %+.1f\n", cmp.Deltas.Clarity))
		sb.WriteString(fmt.Sprintf("  specificity   %+.1f\n", cmp.Deltas.Specificity))
		sb.WriteString(fmt.Sprintf("  completeness  %+.1f\n", cmp.Deltas.Completeness))
		sb.WriteString(fmt.Sprintf("  complexity    %+.1f\n", cmp.Deltas.Complexity))
		return mcp.NewToolResultText(sb.String()), nil
	})

	// prompt.batch tool
	batchTool := mcp.NewTool(
		"prompt.batch",
		mcp.WithDescription("Diagnose several prompts in one call"),
		mcp.WithString("prompts", mcp.Required(), mcp.Description("Prompts as a JSON string array, or separated by blank lines")),
		mcp.WithString("format", mcp.Description("Output format: text or json (default: text)")),
	)

	s.AddTool(batchTool, func(toolCtx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments.(map[string]interface{})
		raw, ok := args["prompts"].(string)
		if !ok {
			return nil, fmt.Errorf("prompts must be a string")
		}
		format := getStringArg(args, "format")

		prompts, err := splitPrompts(raw)
		if err != nil {
			return nil, err
		}
		results := ctx.Engine.Batch(prompts)

		if format == "json" {
			records := make([]map[string]interface{}, 0, len(results))
			for _, result := range results {
				records = append(records, diagnostic.ToRecord(result))
			}
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal batch results: %w", err)
			}
			return mcp.NewToolResultText(string(data)), nil
		}

		var sb strings.Builder
		for i, result := range results {
			sb.WriteString(fmt.Sprintf("Prompt %d: quality %.1f (%s), %d issues\n",
				i+1, result.Quality, result.Health, len(result.Issues)))
		}
		return mcp.NewToolResultText(sb.String()), nil
	})

	return nil
}

// formatResult renders a result in the requested output format.
func formatResult(result *diagnostic.DiagnosticResult, format string, verbose bool) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(diagnostic.ToRecord(result), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(diagnostic.ToRecord(result))
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(data), nil
	case "", "text":
		return diagnostic.Render(result, verbose), nil
	}
	return "", fmt.Errorf("invalid format: %s (must be text, json or yaml)", format)
}

// splitPrompts accepts a JSON string array or blank-line separated text.
func splitPrompts(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var prompts []string
		if err := json.Unmarshal([]byte(trimmed), &prompts); err != nil {
			return nil, fmt.Errorf("invalid prompts array: %w", err)
		}
		return prompts, nil
	}

	prompts := make([]string, 0)
	for _, block := range strings.Split(raw, "\n\n") {
		if strings.TrimSpace(block) != "" {
			prompts = append(prompts, block)
		}
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("no prompts supplied")
	}
	return prompts, nil
}
