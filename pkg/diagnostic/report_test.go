package diagnostic

import (
	"strings"
	"testing"
)

func TestRenderCleanResult(t *testing.T) {
	result := &DiagnosticResult{
		Clarity:      100,
		Specificity:  100,
		Completeness: 100,
		Complexity:   100,
		Quality:      100,
		Health:       HealthExcellent,
	}

	report := Render(result, false)
	for _, want := range []string{
		"Prompt health: excellent (quality 100.0/100)",
		"clarity       100.0",
		"specificity   100.0",
		"completeness  100.0",
		"complexity    100.0",
		"No issues found",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRenderTruncatesIssues(t *testing.T) {
	engine := New(nil)
	// Four hedges plus format, example, constraints and context issues.
	result := engine.Diagnose("Maybe write something that could possibly be good")
	if len(result.Issues) <= topIssueCount {
		t.Fatalf("test prompt produced only %d issues, need more than %d", len(result.Issues), topIssueCount)
	}

	report := Render(result, false)
	if !strings.Contains(report, "... and") {
		t.Errorf("expected a truncation marker:\n%s", report)
	}
	if strings.Contains(report, "suggestion:") {
		t.Errorf("non-verbose report should not include suggestions:\n%s", report)
	}

	// High-severity issues lead the truncated list.
	lines := strings.Split(report, "\n")
	var firstIssue string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			firstIssue = line
			break
		}
	}
	if !strings.Contains(firstIssue, "[high]") {
		t.Errorf("first listed issue is not high severity: %q", firstIssue)
	}
}

func TestRenderVerbose(t *testing.T) {
	engine := New(nil)
	result := engine.Diagnose("Maybe write something that could possibly be good")

	report := Render(result, true)
	if strings.Contains(report, "... and") {
		t.Errorf("verbose report should list every issue:\n%s", report)
	}
	if got := strings.Count(report, "suggestion:"); got != len(result.Issues) {
		t.Errorf("verbose report shows %d suggestions for %d issues", got, len(result.Issues))
	}
}

func TestRenderDeterminism(t *testing.T) {
	engine := New(nil)
	result := engine.Diagnose("Write a story and create profiles and generate dialogue")
	if Render(result, true) != Render(result, true) {
		t.Error("Render is not deterministic")
	}
}
