package diagnostic

import (
	"errors"
	"sort"
	"strings"
)

// ErrInconsistentState is returned when the supplied result was clearly not
// produced by diagnosing the supplied text.
var ErrInconsistentState = errors.New("diagnostic result does not match prompt text")

// fixBlocks maps each addressable issue kind to the scaffolding appended for
// it. Vague verbs, hedging and multiple tasks are deliberately absent: fixing
// them needs semantic judgment the engine does not perform.
var fixBlocks = map[IssueKind]string{
	KindMissingFormat:      "Output format: respond in well-structured markdown. State the format explicitly if a different structure (JSON, table, list) is expected.",
	// The example block must not contain an output cue, or appending it
	// would raise a missing-format issue the prompt did not have before.
	KindMissingExample:     "Example:\nGiven: <representative input>\nExpected: <desired result>",
	KindMissingConstraints: "Keep the response under 300 words with a neutral, professional tone.",
}

// fixOrder breaks severity ties deterministically.
var fixOrder = []IssueKind{KindMissingFormat, KindMissingExample, KindMissingConstraints}

// Fix appends one scaffolding block per addressable issue kind present in the
// result, high-severity kinds first. It never removes or edits user content
// and makes no guarantee of full resolution: re-diagnosing the output may
// still report issues, but no dimension that received a targeted fix will
// score lower than before.
func (e *Engine) Fix(text string, result *DiagnosticResult) (string, error) {
	if result == nil {
		return "", ErrInconsistentState
	}
	if result.HasKind(KindEmptyPrompt) && strings.TrimSpace(text) != "" {
		return "", ErrInconsistentState
	}

	// Collect the addressable kinds present, keyed to their most severe
	// occurrence.
	worst := make(map[IssueKind]Severity, len(fixBlocks))
	for _, issue := range result.Issues {
		if _, addressable := fixBlocks[issue.Kind]; !addressable {
			continue
		}
		if have, ok := worst[issue.Kind]; !ok || issue.Severity < have {
			worst[issue.Kind] = issue.Severity
		}
	}
	if len(worst) == 0 {
		return text, nil
	}

	kinds := make([]IssueKind, 0, len(worst))
	for _, kind := range fixOrder {
		if _, ok := worst[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	sort.SliceStable(kinds, func(i, j int) bool {
		return worst[kinds[i]] < worst[kinds[j]]
	})

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(text, "\n"))
	for _, kind := range kinds {
		sb.WriteString("\n\n")
		sb.WriteString(fixBlocks[kind])
	}
	return sb.String(), nil
}
