package prompts

import (
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/prompt-doctor/mcp-prompt-doctor/internal/server"
)

// RegisterPrompts registers all available prompts with the MCP server
func RegisterPrompts(s *mcpserver.MCPServer, ctx *server.Context) error {
	// Register improve-prompt prompt
	if err := registerImprovePrompt(s, ctx); err != nil {
		return fmt.Errorf("failed to register improve-prompt prompt: %w", err)
	}

	// Register review-prompt prompt
	if err := registerReviewPrompt(s, ctx); err != nil {
		return fmt.Errorf("failed to register review-prompt prompt: %w", err)
	}

	return nil
}

// promptBuilder helps build formatted prompts with sections
type promptBuilder struct {
	sections []string
}

func newPromptBuilder() *promptBuilder {
	return &promptBuilder{
		sections: make([]string, 0),
	}
}

func (pb *promptBuilder) addSection(title, content string) {
	section := fmt.Sprintf("## %s\n\n%s", title, content)
	pb.sections = append(pb.sections, section)
}

func (pb *promptBuilder) addList(title string, items []string) {
	var content strings.Builder
	for _, item := range items {
		content.WriteString(fmt.Sprintf("- %s\n", item))
	}
	pb.addSection(title, content.String())
}

func (pb *promptBuilder) addCodeBlock(title, language, code string) {
	content := fmt.Sprintf("```%s\n%s\n```", language, code)
	pb.addSection(title, content)
}

func (pb *promptBuilder) build() string {
	return strings.Join(pb.sections, "\n\n")
}

// validateInput provides common input validation
func validateInput(value, fieldName string, required bool) error {
	if required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}
