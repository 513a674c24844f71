package diagnostic

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cached memoizes Diagnose results by exact input text. The engine itself
// stays pure and stateless; caching is an explicit wrapper chosen at the
// call site. Results are immutable, so cached pointers are safe to share
// across goroutines. Concurrent diagnoses of the same text are collapsed
// into a single computation.
type Cached struct {
	engine *Engine

	group   singleflight.Group
	mu      sync.RWMutex
	results map[string]*DiagnosticResult
}

// NewCached wraps an engine with a memoizing layer.
func NewCached(engine *Engine) *Cached {
	return &Cached{
		engine:  engine,
		results: make(map[string]*DiagnosticResult),
	}
}

// Engine returns the wrapped engine.
func (c *Cached) Engine() *Engine {
	return c.engine
}

// Diagnose returns the cached result for text, computing it once if needed.
func (c *Cached) Diagnose(text string) *DiagnosticResult {
	c.mu.RLock()
	cached, ok := c.results[text]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	v, _, _ := c.group.Do(text, func() (interface{}, error) {
		result := c.engine.Diagnose(text)
		c.mu.Lock()
		c.results[text] = result
		c.mu.Unlock()
		return result, nil
	})
	return v.(*DiagnosticResult)
}

// Compare diagnoses both prompts through the cache.
func (c *Cached) Compare(textA, textB string) *Comparison {
	a := c.Diagnose(textA)
	b := c.Diagnose(textB)

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

// Fix delegates to the wrapped engine.
func (c *Cached) Fix(text string, result *DiagnosticResult) (string, error) {
	return c.engine.Fix(text, result)
}

// Batch diagnoses every prompt through the cache, preserving order.
func (c *Cached) Batch(texts []string) []*DiagnosticResult {
	results := make([]*DiagnosticResult, len(texts))
	for i, text := range texts {
		results[i] = c.Diagnose(text)
	}
	return results
}

// Len reports the number of cached results.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
