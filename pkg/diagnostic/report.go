package diagnostic

import (
	"fmt"
	"strings"
)

// topIssueCount limits the issue list in non-verbose reports.
const topIssueCount = 3

// Render formats a result as a deterministic human-readable report. The
// non-verbose form shows the band, the scores and the top issues by
// severity; verbose lists every issue with its suggestion.
func Render(r *DiagnosticResult, verbose bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Prompt health: %s (quality %.1f/100)\n", r.Health, r.Quality)
	sb.WriteString("\nDimensions:\n")
	fmt.Fprintf(&sb, "  clarity       %5.1f\n", r.Clarity)
	fmt.Fprintf(&sb, "  specificity   %5.1f\n", r.Specificity)
	fmt.Fprintf(&sb, "  completeness  %5.1f\n", r.Completeness)
	fmt.Fprintf(&sb, "  complexity    %5.1f\n", r.Complexity)

	if len(r.Issues) == 0 {
		sb.WriteString("\nNo issues found\n")
		return sb.String()
	}

	sorted := r.IssuesBySeverity()
	shown := len(sorted)
	if !verbose && shown > topIssueCount {
		shown = topIssueCount
	}

	fmt.Fprintf(&sb, "\nIssues (%d):\n", len(r.Issues))
	for _, issue := range sorted[:shown] {
		fmt.Fprintf(&sb, "  [%s] %s: %s (%s)\n", issue.Severity, issue.Kind, issue.Description, issue.Location)
		if verbose {
			fmt.Fprintf(&sb, "      suggestion: %s\n", issue.Suggestion)
		}
	}
	if shown < len(sorted) {
		fmt.Fprintf(&sb, "  ... and %d more (use verbose output to see all)\n", len(sorted)-shown)
	}

	return sb.String()
}
