package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/prompt-doctor/mcp-prompt-doctor/internal/server"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/framework"
)

// RegisterFrameworkTools registers the framework document tools
func RegisterFrameworkTools(s *mcpserver.MCPServer, ctx *server.Context) error {
	// framework.list tool
	listTool := mcp.NewTool(
		"framework.list",
		mcp.WithDescription("List the framework documents (prompt chains, business context, reference material)"),
		mcp.WithString("kind", mcp.Description("Filter by kind: chain, context, or reference")),
		mcp.WithString("tag", mcp.Description("Filter by tag")),
	)

	s.AddTool(listTool, func(toolCtx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments.(map[string]interface{})
		kind := getStringArg(args, "kind")
		tag := getStringArg(args, "tag")

		docs, err := ctx.Library.List()
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}
		if kind != "" {
			switch kind {
			case "chain", "context", "reference":
				docs = framework.FilterByKind(docs, framework.DocumentKind(kind))
			default:
				return nil, fmt.Errorf("invalid kind: %s (must be chain, context or reference)", kind)
			}
		}
		docs = framework.FilterByTag(docs, tag)

		if len(docs) == 0 {
			return mcp.NewToolResultText("No documents found"), nil
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Found %d documents:\n\n", len(docs)))
		for _, doc := range docs {
			sb.WriteString(fmt.Sprintf("- %s [%s] %s\n", doc.Name, doc.Kind, doc.Title))
			if doc.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", doc.Description))
			}
			if len(doc.Tags) > 0 {
				sb.WriteString(fmt.Sprintf("  tags: %s\n", strings.Join(doc.Tags, ", ")))
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	})

	// framework.read tool
	readTool := mcp.NewTool(
		"framework.read",
		mcp.WithDescription("Read a framework document by name"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the document (file name without .md)")),
	)

	s.AddTool(readTool, func(toolCtx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments.(map[string]interface{})
		name, ok := args["name"].(string)
		if !ok {
			return nil, fmt.Errorf("name must be a string")
		}

		content, err := ctx.Library.Read(name)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(content), nil
	})

	return nil
}
