package diagnostic

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Weights holds the fixed contribution of each dimension to the overall
// quality score. The four values are expected to sum to 1.
type Weights struct {
	Clarity      float64 `json:"clarity"`
	Specificity  float64 `json:"specificity"`
	Completeness float64 `json:"completeness"`
	Complexity   float64 `json:"complexity"`
}

// BandThresholds holds the inclusive lower quality bound of each health band
// above Critical. Anything below Poor is Critical.
type BandThresholds struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Fair      float64 `json:"fair"`
	Poor      float64 `json:"poor"`
}

// Config is the single scoring table behind the engine: penalties, severity
// multipliers, dimension targets, weights, band thresholds and the word lists
// the lexical analyzers scan for. Every value can be overridden, either in
// code or from a YAML file via LoadConfig; the engine never consults any
// constant outside this table.
type Config struct {
	// BasePenalty is the per-occurrence penalty keyed by issue kind, before
	// the severity multiplier is applied.
	BasePenalty map[IssueKind]float64 `json:"basePenalty"`

	// SeverityMultiplier scales the base penalty per severity.
	SeverityMultiplier map[Severity]float64 `json:"severityMultiplier"`

	// DimensionTargets lists the dimensions each issue kind penalizes.
	// A registered custom analyzer extends the table by adding its kind here
	// and in BasePenalty.
	DimensionTargets map[IssueKind][]Dimension `json:"dimensionTargets"`

	Weights        Weights        `json:"weights"`
	BandThresholds BandThresholds `json:"bandThresholds"`

	// MaxPromptTokens is the token count above which ExcessiveLength fires.
	MaxPromptTokens int `json:"maxPromptTokens"`
	// ComplexTokens is the token count above which a prompt is judged
	// complex, escalating MissingExample from Low to Medium.
	ComplexTokens int `json:"complexTokens"`
	// MinContextTokens is the token count below which MissingContext fires.
	MinContextTokens int `json:"minContextTokens"`
	// MaxExamples is the example block count above which TooManyExamples fires.
	MaxExamples int `json:"maxExamples"`
	// PrimaryVerbWindow is the number of leading words treated as the
	// prompt's primary instruction when grading vague verbs.
	PrimaryVerbWindow int `json:"primaryVerbWindow"`

	VagueVerbs      []string `json:"vagueVerbs"`
	HedgeMarkers    []string `json:"hedgeMarkers"`
	FormatCues      []string `json:"formatCues"`
	OutputCues      []string `json:"outputCues"`
	ExampleCues     []string `json:"exampleCues"`
	ConstraintCues  []string `json:"constraintCues"`
	ImperativeVerbs []string `json:"imperativeVerbs"`
	GenerativeVerbs []string `json:"generativeVerbs"`
}

// DefaultConfig returns the default scoring table. The numeric values are a
// tuned default, not a law; callers may override any of them.
func DefaultConfig() *Config {
	return &Config{
		BasePenalty: map[IssueKind]float64{
			KindEmptyPrompt:        100,
			KindVagueVerb:          12,
			KindAmbiguousLanguage:  8,
			KindMultipleTasks:      10,
			KindMissingFormat:      25,
			KindMissingExample:     15,
			KindTooManyExamples:    10,
			KindMissingConstraints: 25,
			KindExcessiveLength:    15,
			KindMissingContext:     20,
		},
		SeverityMultiplier: map[Severity]float64{
			SeverityHigh:   3,
			SeverityMedium: 2,
			SeverityLow:    1,
		},
		DimensionTargets: map[IssueKind][]Dimension{
			KindEmptyPrompt:        {DimClarity, DimSpecificity, DimCompleteness, DimComplexity},
			KindVagueVerb:          {DimClarity, DimSpecificity},
			KindAmbiguousLanguage:  {DimClarity},
			KindMultipleTasks:      {DimClarity, DimComplexity},
			KindMissingFormat:      {DimCompleteness},
			KindMissingExample:     {DimCompleteness},
			KindTooManyExamples:    {DimComplexity},
			KindMissingConstraints: {DimSpecificity},
			KindExcessiveLength:    {DimComplexity},
			KindMissingContext:     {DimSpecificity},
		},
		Weights: Weights{
			Clarity:      0.3,
			Specificity:  0.3,
			Completeness: 0.25,
			Complexity:   0.15,
		},
		BandThresholds: BandThresholds{
			Excellent: 80,
			Good:      60,
			Fair:      40,
			Poor:      20,
		},
		MaxPromptTokens:   400,
		ComplexTokens:     120,
		MinContextTokens:  10,
		MaxExamples:       5,
		PrimaryVerbWindow: 3,
		VagueVerbs: []string{
			"handle", "deal with", "process", "manage", "do something with",
		},
		HedgeMarkers: []string{
			"maybe", "possibly", "perhaps", "might", "could", "probably",
			"something", "somehow", "sort of", "kind of",
		},
		FormatCues: []string{
			"json", "yaml", "xml", "csv", "markdown", "html", "table",
			"schema", "format", "bullet", "template", "structure",
			"structured", "numbered list", "one per line",
		},
		OutputCues: []string{
			"return", "output", "respond", "provide", "give me", "answer",
			"write", "create", "generate", "produce", "compose", "draft",
			"summarize", "summarise", "translate", "extract", "explain",
		},
		ExampleCues: []string{
			"example", "e.g.", "for instance", "such as", "input:", "output:",
		},
		ConstraintCues: []string{
			"at most", "at least", "no more than", "fewer than",
			"no longer than", "under ", "within ", "limit", "maximum",
			"minimum", "tone", "style", " words", " characters",
			" sentences", " paragraphs", "-word", "avoid ", "exclude",
			"do not", "don't", "must not", "concise", "formal", "informal",
		},
		ImperativeVerbs: []string{
			"write", "create", "generate", "build", "make", "list",
			"summarize", "summarise", "translate", "explain", "analyze",
			"analyse", "draft", "design", "produce", "compose", "review",
			"describe", "develop", "implement", "extract", "classify",
			"compare", "outline", "rewrite", "handle", "process", "manage",
			"plan", "research", "find", "identify", "evaluate",
		},
		GenerativeVerbs: []string{
			"write", "create", "generate", "compose", "draft", "produce",
			"design", "develop", "rewrite", "summarize", "summarise",
		},
	}
}

// LoadConfig reads YAML overrides from path on top of the default table.
// Map entries are merged key by key; lists and scalars replace the default.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scoring config %s: %w", path, err)
	}
	return cfg, nil
}
