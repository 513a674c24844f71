package tools

import (
	"reflect"
	"strings"
	"testing"

	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
)

func TestSplitPrompts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "json array",
			raw:  `["Write a story", "Write a poem"]`,
			want: []string{"Write a story", "Write a poem"},
		},
		{
			name: "blank line separated",
			raw:  "Write a story\n\nWrite a poem",
			want: []string{"Write a story", "Write a poem"},
		},
		{
			name: "single prompt",
			raw:  "Write a story",
			want: []string{"Write a story"},
		},
		{
			name:    "malformed json array",
			raw:     `["unterminated`,
			wantErr: true,
		},
		{
			name:    "nothing supplied",
			raw:     "  \n\n  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitPrompts(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("splitPrompts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitPrompts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	engine := diagnostic.New(nil)
	result := engine.Diagnose("Write a story")

	tests := []struct {
		name     string
		format   string
		contains string
		wantErr  bool
	}{
		{name: "default is text", format: "", contains: "Prompt health:"},
		{name: "explicit text", format: "text", contains: "Prompt health:"},
		{name: "json", format: "json", contains: `"quality"`},
		{name: "yaml", format: "yaml", contains: "quality:"},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := formatResult(result, tt.format, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("formatResult() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !strings.Contains(output, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, output)
			}
		})
	}
}

func TestGetArgs(t *testing.T) {
	args := map[string]interface{}{
		"format":  "json",
		"verbose": true,
		"count":   3,
	}

	if got := getStringArg(args, "format"); got != "json" {
		t.Errorf("getStringArg(format) = %q, want json", got)
	}
	if got := getStringArg(args, "missing"); got != "" {
		t.Errorf("getStringArg(missing) = %q, want empty", got)
	}
	if got := getStringArg(args, "count"); got != "" {
		t.Errorf("getStringArg on non-string = %q, want empty", got)
	}
	if !getBoolArg(args, "verbose") {
		t.Error("getBoolArg(verbose) = false, want true")
	}
	if getBoolArg(args, "missing") {
		t.Error("getBoolArg(missing) = true, want false")
	}
}
