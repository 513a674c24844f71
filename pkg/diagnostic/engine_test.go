package diagnostic

import (
	"math"
	"reflect"
	"testing"
)

// corpus is a spread of prompts from degenerate to well-formed, used by the
// property tests below.
var corpus = []string{
	"",
	"   ",
	"Write a story",
	"Write a 500-word science fiction story about AI for teenagers",
	"Write a story and create profiles and generate dialogue and build an outline",
	"Maybe write something that could possibly be good",
	"Handle the data and process the results",
	"Summarize the attached quarterly report in at most five bullet points, markdown format. Example: - Revenue grew 4%",
	"Translate the following paragraph into formal German, keeping the tone neutral and the length under 100 words.",
}

func TestDiagnoseDeterminism(t *testing.T) {
	engine := New(nil)
	for _, text := range corpus {
		first := engine.Diagnose(text)
		second := engine.Diagnose(text)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Diagnose(%q) is not deterministic:\nfirst:  %+v\nsecond: %+v", text, first, second)
		}
	}
}

func TestDiagnoseEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "spaces only", text: "   "},
		{name: "mixed whitespace", text: "\n\t  \n"},
	}

	engine := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Diagnose(tt.text)
			if result.Health != HealthCritical {
				t.Errorf("health = %s, want critical", result.Health)
			}
			if got := result.CountKind(KindEmptyPrompt); got != 1 {
				t.Errorf("empty-prompt issue count = %d, want exactly 1", got)
			}
			if len(result.Issues) != 1 {
				t.Errorf("total issues = %d, want 1 (empty prompt short-circuits other analyzers)", len(result.Issues))
			}
			if result.Quality != 0 {
				t.Errorf("quality = %.1f, want 0", result.Quality)
			}
		})
	}
}

func TestQualityIsWeightedSum(t *testing.T) {
	engine := New(nil)
	cfg := engine.Config()
	for _, text := range corpus {
		result := engine.Diagnose(text)
		want := cfg.Aggregate(result.Clarity, result.Specificity, result.Completeness, result.Complexity)
		if math.Abs(result.Quality-want) > 1e-9 {
			t.Errorf("Diagnose(%q) quality = %v, want weighted sum %v", text, result.Quality, want)
		}
	}
}

func TestHealthMatchesBand(t *testing.T) {
	engine := New(nil)
	cfg := engine.Config()
	for _, text := range corpus {
		result := engine.Diagnose(text)
		if want := cfg.BandFor(result.Quality); result.Health != want {
			t.Errorf("Diagnose(%q) health = %s, want %s for quality %.1f", text, result.Health, want, result.Quality)
		}
	}
}

func TestCompare(t *testing.T) {
	engine := New(nil)

	tests := []struct {
		name       string
		a, b       string
		wantWinner string
	}{
		{
			name:       "better prompt wins as b",
			a:          "Write a story",
			b:          "Write a 500-word science fiction story about AI for teenagers",
			wantWinner: "b",
		},
		{
			name:       "better prompt wins as a",
			a:          "Write a 500-word science fiction story about AI for teenagers",
			b:          "Write a story",
			wantWinner: "a",
		},
		{
			name:       "identical prompts tie",
			a:          "Write a story",
			b:          "Write a story",
			wantWinner: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := engine.Compare(tt.a, tt.b)
			if cmp.Winner != tt.wantWinner {
				t.Errorf("winner = %q, want %q", cmp.Winner, tt.wantWinner)
			}
			if cmp.QualityDelta < 0 {
				t.Errorf("quality delta = %v, want non-negative", cmp.QualityDelta)
			}
			wantDelta := math.Abs(cmp.A.Quality - cmp.B.Quality)
			if math.Abs(cmp.QualityDelta-wantDelta) > 1e-9 {
				t.Errorf("quality delta = %v, want %v", cmp.QualityDelta, wantDelta)
			}
			// Winner must agree with the underlying quality scores.
			switch {
			case cmp.A.Quality > cmp.B.Quality && cmp.Winner != "a":
				t.Errorf("a scores higher but winner = %q", cmp.Winner)
			case cmp.B.Quality > cmp.A.Quality && cmp.Winner != "b":
				t.Errorf("b scores higher but winner = %q", cmp.Winner)
			case cmp.A.Quality == cmp.B.Quality && cmp.Winner != "":
				t.Errorf("tie but winner = %q", cmp.Winner)
			}
		})
	}
}

func TestBatchPreservesOrder(t *testing.T) {
	engine := New(nil)
	results := engine.Batch(corpus)

	if len(results) != len(corpus) {
		t.Fatalf("got %d results for %d prompts", len(results), len(corpus))
	}
	for i, text := range corpus {
		want := engine.Diagnose(text)
		if !reflect.DeepEqual(results[i], want) {
			t.Errorf("result %d does not match Diagnose(%q)", i, text)
		}
	}
}

func TestBatchEmpty(t *testing.T) {
	engine := New(nil)
	if results := engine.Batch(nil); len(results) != 0 {
		t.Errorf("Batch(nil) returned %d results, want 0", len(results))
	}
}

func TestRegisterCustomAnalyzer(t *testing.T) {
	const kindShouting IssueKind = "shouting"

	cfg := DefaultConfig()
	cfg.BasePenalty[kindShouting] = 10
	cfg.DimensionTargets[kindShouting] = []Dimension{DimClarity}

	engine := New(cfg)
	engine.Register(func(text string) []Issue {
		if text != "" && text == "SHOUTED INSTRUCTION" {
			return []Issue{{
				Kind:        kindShouting,
				Severity:    SeverityLow,
				Description: "prompt is all uppercase",
				Suggestion:  "use normal casing",
				Location:    "prompt",
			}}
		}
		return nil
	})

	result := engine.Diagnose("SHOUTED INSTRUCTION")
	if !result.HasKind(kindShouting) {
		t.Fatal("custom analyzer issue not reported")
	}
	if result.Clarity != 90 {
		t.Errorf("clarity = %.1f, want 90 after the custom penalty", result.Clarity)
	}
}

// The scenarios below pin down the engine's end-to-end behavior on known
// inputs.

func TestScenarioBarePrompt(t *testing.T) {
	engine := New(nil)
	result := engine.Diagnose("Write a story")

	if !result.HasKind(KindMissingFormat) {
		t.Error("expected a missing-format issue")
	}
	if !result.HasKind(KindMissingExample) {
		t.Error("expected a missing-example issue")
	}
	if result.Specificity >= 50 {
		t.Errorf("specificity = %.1f, want low", result.Specificity)
	}
	if result.Completeness >= 50 {
		t.Errorf("completeness = %.1f, want low", result.Completeness)
	}
	if result.Health > HealthFair {
		t.Errorf("health = %s, want fair or worse", result.Health)
	}
}

func TestScenarioSpecificPromptScoresHigher(t *testing.T) {
	engine := New(nil)
	bare := engine.Diagnose("Write a story")
	specific := engine.Diagnose("Write a 500-word science fiction story about AI for teenagers")

	if specific.Specificity <= bare.Specificity {
		t.Errorf("specificity %.1f not higher than bare prompt's %.1f", specific.Specificity, bare.Specificity)
	}
	if specific.Quality <= bare.Quality+10 {
		t.Errorf("quality %.1f not materially higher than bare prompt's %.1f", specific.Quality, bare.Quality)
	}
}

func TestScenarioMultipleTasks(t *testing.T) {
	engine := New(nil)
	result := engine.Diagnose("Write a story and create profiles and generate dialogue and build an outline")

	if got := result.CountKind(KindMultipleTasks); got < 3 {
		t.Errorf("multiple-tasks issues = %d, want >= 3", got)
	}
	if result.Complexity >= 100 {
		t.Errorf("complexity = %.1f, want reduced", result.Complexity)
	}
	if result.Health > HealthFair {
		t.Errorf("health = %s, want fair or worse", result.Health)
	}
}

func TestScenarioHedgedPrompt(t *testing.T) {
	engine := New(nil)
	result := engine.Diagnose("Maybe write something that could possibly be good")

	hedges := result.CountKind(KindAmbiguousLanguage)
	if hedges < 4 {
		t.Fatalf("ambiguous-language issues = %d, want >= 4", hedges)
	}
	for _, issue := range result.Issues {
		if issue.Kind == KindAmbiguousLanguage && issue.Severity != SeverityHigh {
			t.Errorf("hedge %q severity = %s, want high with this many markers", issue.Description, issue.Severity)
		}
	}
}

func TestScenarioAutoFixImprovesCompleteness(t *testing.T) {
	engine := New(nil)
	text := "Write a story"
	before := engine.Diagnose(text)

	fixed, err := engine.Fix(text, before)
	if err != nil {
		t.Fatalf("Fix() error = %v", err)
	}
	if fixed == text {
		t.Fatal("Fix() returned the text unchanged")
	}

	after := engine.Diagnose(fixed)
	if after.Completeness <= before.Completeness {
		t.Errorf("completeness %.1f -> %.1f, want a strict increase", before.Completeness, after.Completeness)
	}
	if after.Clarity != before.Clarity {
		t.Errorf("clarity %.1f -> %.1f, want unchanged", before.Clarity, after.Clarity)
	}
	if after.Specificity < before.Specificity {
		t.Errorf("specificity %.1f -> %.1f, must never regress", before.Specificity, after.Specificity)
	}
}
