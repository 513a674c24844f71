package diagnostic

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Engine runs the ordered analyzer list over a prompt and assembles the
// immutable result. Diagnose never fails for any input string; the worst case
// is a Critical result carrying an EmptyPrompt issue. An Engine holds no
// mutable state after construction, so a single instance is safe for
// concurrent use without locking.
type Engine struct {
	cfg       *Config
	analyzers []Analyzer
}

// New creates an engine with the default analyzer list. A nil config selects
// DefaultConfig.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{
		cfg:       cfg,
		analyzers: defaultAnalyzers(cfg),
	}
}

// Config returns the scoring table the engine was built with.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Register appends a custom analyzer to the end of the fixed list. The
// analyzer's issue kinds need entries in the config's BasePenalty and
// DimensionTargets tables to affect scoring. Register before first use;
// the engine is not safe to extend while Diagnose calls are in flight.
func (e *Engine) Register(a Analyzer) {
	e.analyzers = append(e.analyzers, a)
}

// Diagnose runs the full analyzer list in order and scores the findings.
// An EmptyPrompt finding short-circuits the remaining analyzers.
func (e *Engine) Diagnose(text string) *DiagnosticResult {
	issues := make([]Issue, 0, 8)
	for _, analyze := range e.analyzers {
		found := analyze(text)
		issues = append(issues, found...)
		if hasKind(found, KindEmptyPrompt) {
			break
		}
	}

	clarity, specificity, completeness, complexity := e.cfg.dimensionScores(issues)
	quality := e.cfg.Aggregate(clarity, specificity, completeness, complexity)

	return &DiagnosticResult{
		Clarity:      clarity,
		Specificity:  specificity,
		Completeness: completeness,
		Complexity:   complexity,
		Quality:      quality,
		Health:       e.cfg.BandFor(quality),
		Issues:       issues,
	}
}

// Compare diagnoses both prompts and reports which scores higher. An exact
// quality tie reports no winner.
func (e *Engine) Compare(textA, textB string) *Comparison {
	a := e.Diagnose(textA)
	b := e.Diagnose(textB)

	winner := ""
	delta := a.Quality - b.Quality
	switch {
	case delta > 0:
		winner = "a"
	case delta < 0:
		winner = "b"
		delta = -delta
	}

	return &Comparison{
		Winner:       winner,
		QualityDelta: delta,
		A:            a,
		B:            b,
		Deltas: DimensionDeltas{
			Clarity:      a.Clarity - b.Clarity,
			Specificity:  a.Specificity - b.Specificity,
			Completeness: a.Completeness - b.Completeness,
			Complexity:   a.Complexity - b.Complexity,
		},
	}
}

// Batch diagnoses every prompt independently and preserves input order.
// Calls share no state, so they run in parallel bounded by the CPU count.
func (e *Engine) Batch(texts []string) []*DiagnosticResult {
	results := make([]*DiagnosticResult, len(texts))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			results[i] = e.Diagnose(text)
			return nil
		})
	}
	// Diagnose cannot fail, so the group never returns an error.
	_ = g.Wait()

	return results
}

func hasKind(issues []Issue, kind IssueKind) bool {
	for _, issue := range issues {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}
