package diagnostic

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is returned when a record cannot be decoded back into a
// DiagnosticResult.
var ErrInvalidRecord = errors.New("invalid diagnostic record")

// ToRecord converts a result into a plain map built from strings, numbers
// and slices only, safe to serialize across any process or service boundary.
// FromRecord is its exact inverse.
func ToRecord(r *DiagnosticResult) map[string]interface{} {
	issues := make([]interface{}, 0, len(r.Issues))
	for _, issue := range r.Issues {
		issues = append(issues, map[string]interface{}{
			"kind":        string(issue.Kind),
			"severity":    issue.Severity.String(),
			"description": issue.Description,
			"suggestion":  issue.Suggestion,
			"location":    issue.Location,
		})
	}

	return map[string]interface{}{
		"clarity":      r.Clarity,
		"specificity":  r.Specificity,
		"completeness": r.Completeness,
		"complexity":   r.Complexity,
		"quality":      r.Quality,
		"health":       r.Health.String(),
		"issues":       issues,
	}
}

// FromRecord reconstructs a result from a record produced by ToRecord (or an
// equivalent decoded JSON object). Unknown keys are ignored; missing or
// wrongly typed known fields are rejected.
func FromRecord(rec map[string]interface{}) (*DiagnosticResult, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	result := &DiagnosticResult{}

	var err error
	if result.Clarity, err = floatField(rec, "clarity"); err != nil {
		return nil, err
	}
	if result.Specificity, err = floatField(rec, "specificity"); err != nil {
		return nil, err
	}
	if result.Completeness, err = floatField(rec, "completeness"); err != nil {
		return nil, err
	}
	if result.Complexity, err = floatField(rec, "complexity"); err != nil {
		return nil, err
	}
	if result.Quality, err = floatField(rec, "quality"); err != nil {
		return nil, err
	}

	healthName, ok := rec["health"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: health must be a string", ErrInvalidRecord)
	}
	if result.Health, err = ParseHealthBand(healthName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	rawIssues, ok := rec["issues"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: issues must be a list", ErrInvalidRecord)
	}
	result.Issues = make([]Issue, 0, len(rawIssues))
	for i, raw := range rawIssues {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: issue %d is not an object", ErrInvalidRecord, i)
		}
		issue, err := issueFromRecord(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: issue %d: %v", ErrInvalidRecord, i, err)
		}
		result.Issues = append(result.Issues, issue)
	}

	return result, nil
}

func issueFromRecord(entry map[string]interface{}) (Issue, error) {
	var issue Issue

	kind, ok := entry["kind"].(string)
	if !ok {
		return issue, fmt.Errorf("kind must be a string")
	}
	issue.Kind = IssueKind(kind)

	severityName, ok := entry["severity"].(string)
	if !ok {
		return issue, fmt.Errorf("severity must be a string")
	}
	severity, err := ParseSeverity(severityName)
	if err != nil {
		return issue, err
	}
	issue.Severity = severity

	if issue.Description, err = stringField(entry, "description"); err != nil {
		return issue, err
	}
	if issue.Suggestion, err = stringField(entry, "suggestion"); err != nil {
		return issue, err
	}
	if issue.Location, err = stringField(entry, "location"); err != nil {
		return issue, err
	}
	return issue, nil
}

// floatField accepts float64 (JSON decoding) and int (hand-built maps).
func floatField(rec map[string]interface{}, key string) (float64, error) {
	raw, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrInvalidRecord, key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: field %q must be a number", ErrInvalidRecord, key)
}

func stringField(entry map[string]interface{}, key string) (string, error) {
	raw, ok := entry[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string", key)
	}
	return s, nil
}
