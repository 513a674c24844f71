package prompts

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestPromptBuilder(t *testing.T) {
	tests := []struct {
		name     string
		build    func() string
		contains []string
	}{
		{
			name: "basic sections",
			build: func() string {
				pb := newPromptBuilder()
				pb.addSection("Title", "Content here")
				pb.addSection("Another Title", "More content")
				return pb.build()
			},
			contains: []string{
				"## Title",
				"Content here",
				"## Another Title",
				"More content",
			},
		},
		{
			name: "list section",
			build: func() string {
				pb := newPromptBuilder()
				pb.addList("My List", []string{"Item 1", "Item 2", "Item 3"})
				return pb.build()
			},
			contains: []string{
				"## My List",
				"- Item 1",
				"- Item 2",
				"- Item 3",
			},
		},
		{
			name: "code block",
			build: func() string {
				pb := newPromptBuilder()
				pb.addCodeBlock("Example Command", "bash", "prompt.diagnose --prompt \"Write a story\"")
				return pb.build()
			},
			contains: []string{
				"## Example Command",
				"```bash",
				"prompt.diagnose --prompt \"Write a story\"",
				"```",
			},
		},
		{
			name: "mixed content",
			build: func() string {
				pb := newPromptBuilder()
				pb.addSection("Introduction", "This is the intro")
				pb.addList("Steps", []string{"Step 1", "Step 2"})
				pb.addCodeBlock("Command", "bash", "prompt.batch")
				return pb.build()
			},
			contains: []string{
				"## Introduction",
				"This is the intro",
				"## Steps",
				"- Step 1",
				"- Step 2",
				"## Command",
				"```bash",
				"prompt.batch",
				"```",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.build()
			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected output to contain %q, but it didn't.\nGot:\n%s", expected, result)
				}
			}
		})
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		fieldName string
		required  bool
		wantErr   bool
	}{
		{
			name:      "required field with value",
			value:     "Write a story",
			fieldName: "prompt",
			required:  true,
			wantErr:   false,
		},
		{
			name:      "required field without value",
			value:     "",
			fieldName: "prompt",
			required:  true,
			wantErr:   true,
		},
		{
			name:      "required field with only whitespace",
			value:     "   ",
			fieldName: "prompt",
			required:  true,
			wantErr:   true,
		},
		{
			name:      "optional field without value",
			value:     "",
			fieldName: "focus",
			required:  false,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.value, tt.fieldName, tt.required)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Test prompt registration
func TestPromptRegistration(t *testing.T) {
	// This is more of an integration test, but we can at least verify
	// that the prompt handlers return valid results for basic cases

	testCases := []struct {
		name       string
		promptFunc func() (*mcp.GetPromptResult, error)
		wantErr    bool
		checkDesc  string
	}{
		{
			name: "improve-prompt with no args",
			promptFunc: func() (*mcp.GetPromptResult, error) {
				// Simulate calling the improve-prompt handler without text
				pb := newPromptBuilder()
				pb.addSection("Improve a Prompt",
					"This workflow rewrites a weak prompt using its diagnostic report.")
				pb.addSection("Action Required",
					"Please supply the 'prompt' argument with the text to improve.")

				return &mcp.GetPromptResult{
					Description: "Improve prompt guide - prompt text needed",
					Messages: []mcp.PromptMessage{
						{
							Role:    mcp.RoleUser,
							Content: mcp.TextContent{Text: pb.build()},
						},
					},
				}, nil
			},
			wantErr:   false,
			checkDesc: "Improve prompt guide - prompt text needed",
		},
		{
			name: "review-prompt with no args",
			promptFunc: func() (*mcp.GetPromptResult, error) {
				pb := newPromptBuilder()
				pb.addSection("Review a Prompt",
					"This walkthrough explains what the diagnostic engine found in a prompt.")
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
			},
			wantErr:   false,
			checkDesc: "Review prompt guide - prompt text needed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.promptFunc()

			if (err != nil) != tc.wantErr {
				t.Errorf("Expected error: %v, got error: %v", tc.wantErr, err)
			}

			if err == nil {
				if result.Description != tc.checkDesc {
					t.Errorf("Expected description %q, got %q", tc.checkDesc, result.Description)
				}

				if len(result.Messages) == 0 {
					t.Error("Expected at least one message in result")
				}
			}
		})
	}
}
