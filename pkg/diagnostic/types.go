package diagnostic

import (
	"fmt"
	"sort"
)

// IssueKind identifies a detectable prompt weakness. The set is closed but
// extensible: a custom analyzer may emit its own kind as long as the scoring
// table (Config) carries a penalty and dimension targets for it.
type IssueKind string

const (
	KindEmptyPrompt        IssueKind = "empty-prompt"
	KindVagueVerb          IssueKind = "vague-verb"
	KindAmbiguousLanguage  IssueKind = "ambiguous-language"
	KindMultipleTasks      IssueKind = "multiple-tasks"
	KindMissingFormat      IssueKind = "missing-format"
	KindMissingExample     IssueKind = "missing-example"
	KindTooManyExamples    IssueKind = "too-many-examples"
	KindMissingConstraints IssueKind = "missing-constraints"
	KindExcessiveLength    IssueKind = "excessive-length"
	KindMissingContext     IssueKind = "missing-context"
)

// Severity defines the importance of an issue. Lower values sort first, so
// high-severity issues lead every report.
type Severity int

const (
	SeverityHigh Severity = iota
	SeverityMedium
	SeverityLow
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their names in JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a severity name back to its enum value.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "high":
		return SeverityHigh, nil
	case "medium":
		return SeverityMedium, nil
	case "low":
		return SeverityLow, nil
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

// HealthBand is the discrete classification of a prompt's overall quality.
// It is always a pure function of the quality score (see Config.BandFor).
type HealthBand int

const (
	HealthCritical HealthBand = iota
	HealthPoor
	HealthFair
	HealthGood
	HealthExcellent
)

func (h HealthBand) String() string {
	switch h {
	case HealthCritical:
		return "critical"
	case HealthPoor:
		return "poor"
	case HealthFair:
		return "fair"
	case HealthGood:
		return "good"
	case HealthExcellent:
		return "excellent"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (h HealthBand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HealthBand) UnmarshalText(text []byte) error {
	parsed, err := ParseHealthBand(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHealthBand converts a band name back to its enum value.
func ParseHealthBand(name string) (HealthBand, error) {
	switch name {
	case "critical":
		return HealthCritical, nil
	case "poor":
		return HealthPoor, nil
	case "fair":
		return HealthFair, nil
	case "good":
		return HealthGood, nil
	case "excellent":
		return HealthExcellent, nil
	}
	return 0, fmt.Errorf("unknown health band %q", name)
}

// Dimension names one of the four quality axes.
type Dimension string

const (
	DimClarity      Dimension = "clarity"
	DimSpecificity  Dimension = "specificity"
	DimCompleteness Dimension = "completeness"
	DimComplexity   Dimension = "complexity"
)

// Issue is one detected weakness in a prompt. Issues are value objects and
// are never mutated after an analyzer emits them.
type Issue struct {
	Kind        IssueKind `json:"kind"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	Suggestion  string    `json:"suggestion"`
	Location    string    `json:"location"`
}

// DiagnosticResult is the immutable outcome of one Diagnose call. All
// dimension scores and the quality score are in [0,100]; higher is always
// better (the complexity score is inverted: 100 means structurally simple).
// Quality is derived from the four dimensions by the fixed weighting in the
// Config and is never set independently.
type DiagnosticResult struct {
	Clarity      float64    `json:"clarity"`
	Specificity  float64    `json:"specificity"`
	Completeness float64    `json:"completeness"`
	Complexity   float64    `json:"complexity"`
	Quality      float64    `json:"quality"`
	Health       HealthBand `json:"health"`
	Issues       []Issue    `json:"issues"`
}

// HasKind reports whether any issue of the given kind is present.
func (r *DiagnosticResult) HasKind(kind IssueKind) bool {
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}

// CountKind returns the number of issues of the given kind.
func (r *DiagnosticResult) CountKind(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// IssuesBySeverity returns a copy of the issues sorted by severity, high
// first. Within the same severity the analyzer emission order is preserved.
func (r *DiagnosticResult) IssuesBySeverity() []Issue {
	sorted := make([]Issue, len(r.Issues))
	copy(sorted, r.Issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity < sorted[j].Severity
	})
	return sorted
}

// DimensionDeltas holds per-dimension score differences (A minus B).
type DimensionDeltas struct {
	Clarity      float64 `json:"clarity"`
	Specificity  float64 `json:"specificity"`
	Completeness float64 `json:"completeness"`
	Complexity   float64 `json:"complexity"`
}

// Comparison is the outcome of diagnosing two prompts side by side.
// Winner is "a" or "b", or empty when the quality scores tie exactly.
type Comparison struct {
	Winner       string           `json:"winner"`
	QualityDelta float64          `json:"qualityDelta"`
	A            *DiagnosticResult `json:"a"`
	B            *DiagnosticResult `json:"b"`
	Deltas       DimensionDeltas  `json:"deltas"`
}
