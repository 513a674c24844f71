package diagnostic

import (
	"fmt"
	"strings"
)

// Analyzer is a single stateless pass over the prompt text: text in, zero or
// more issues out. Analyzers never fail and never mutate shared state, so the
// engine can run them for any input string, including empty, non-ASCII and
// pathological ones. Each pass is a single scan over the text.
type Analyzer func(text string) []Issue

// defaultAnalyzers returns the fixed ordered analyzer list. The length check
// runs first; the engine short-circuits the rest when it reports EmptyPrompt.
func defaultAnalyzers(cfg *Config) []Analyzer {
	return []Analyzer{
		analyzeLength(cfg),
		analyzeVagueVerbs(cfg),
		analyzeAmbiguity(cfg),
		analyzeMultiTask(cfg),
		analyzeFormat(cfg),
		analyzeExamples(cfg),
		analyzeConstraints(cfg),
		analyzeContext(cfg),
	}
}

// analyzeLength flags empty or whitespace-only prompts and prompts past the
// effectiveness threshold.
func analyzeLength(cfg *Config) Analyzer {
	return func(text string) []Issue {
		if strings.TrimSpace(text) == "" {
			return []Issue{{
				Kind:        KindEmptyPrompt,
				Severity:    SeverityHigh,
				Description: "prompt is empty or whitespace only",
				Suggestion:  "write an instruction that names the task, the subject and the desired output",
				Location:    "prompt",
			}}
		}
		n := tokenCount(text)
		if n > cfg.MaxPromptTokens {
			return []Issue{{
				Kind:        KindExcessiveLength,
				Severity:    SeverityMedium,
				Description: fmt.Sprintf("prompt is %d words long; effectiveness degrades past %d", n, cfg.MaxPromptTokens),
				Suggestion:  "trim background material and keep only what the task needs",
				Location:    fmt.Sprintf("%d words", n),
			}}
		}
		return nil
	}
}

// analyzeVagueVerbs flags low-information instruction verbs. A match within
// the primary verb window is graded High, later matches Medium.
func analyzeVagueVerbs(cfg *Config) Analyzer {
	return func(text string) []Issue {
		lower := strings.ToLower(text)
		var issues []Issue
		for _, verb := range cfg.VagueVerbs {
			for _, off := range findOccurrences(lower, verb) {
				word := wordAt(lower, off)
				severity := SeverityMedium
				if word <= cfg.PrimaryVerbWindow {
					severity = SeverityHigh
				}
				issues = append(issues, Issue{
					Kind:        KindVagueVerb,
					Severity:    severity,
					Description: fmt.Sprintf("%q is a low-information verb that leaves the action undefined", verb),
					Suggestion:  fmt.Sprintf("replace %q with a concrete action such as \"summarize\", \"extract\" or \"rewrite\"", verb),
					Location:    fmt.Sprintf("word %d", word),
				})
			}
		}
		return issues
	}
}

// analyzeAmbiguity flags hedging markers. One issue is emitted per
// occurrence; the severity of all of them scales with the total marker count.
func analyzeAmbiguity(cfg *Config) Analyzer {
	return func(text string) []Issue {
		lower := strings.ToLower(text)
		type hit struct {
			marker string
			off    int
		}
		var hits []hit
		for _, marker := range cfg.HedgeMarkers {
			for _, off := range findOccurrences(lower, marker) {
				hits = append(hits, hit{marker, off})
			}
		}
		if len(hits) == 0 {
			return nil
		}
		severity := SeverityLow
		switch {
		case len(hits) >= 4:
			severity = SeverityHigh
		case len(hits) >= 2:
			severity = SeverityMedium
		}
		issues := make([]Issue, 0, len(hits))
		for _, h := range hits {
			issues = append(issues, Issue{
				Kind:        KindAmbiguousLanguage,
				Severity:    severity,
				Description: fmt.Sprintf("hedging language %q leaves the requirement open", h.marker),
				Suggestion:  "state the requirement directly instead of hedging",
				Location:    fmt.Sprintf("word %d", wordAt(lower, h.off)),
			})
		}
		return issues
	}
}

// analyzeMultiTask counts independent imperative clauses; every task beyond
// the first gets its own issue.
func analyzeMultiTask(cfg *Config) Analyzer {
	return func(text string) []Issue {
		tasks := taskClauses(cfg, text)
		if len(tasks) <= 1 {
			return nil
		}
		issues := make([]Issue, 0, len(tasks)-1)
		for i := 1; i < len(tasks); i++ {
			issues = append(issues, Issue{
				Kind:        KindMultipleTasks,
				Severity:    SeverityHigh,
				Description: fmt.Sprintf("independent task %d (%q) competes with the primary instruction", i+1, firstWord(tasks[i])),
				Suggestion:  "split into separate prompts, one task each",
				Location:    fmt.Sprintf("task %d", i+1),
			})
		}
		return issues
	}
}

// analyzeFormat flags instructions that produce output but never say what
// shape the output should take.
func analyzeFormat(cfg *Config) Analyzer {
	return func(text string) []Issue {
		lower := strings.ToLower(text)
		if hasAnyCue(lower, cfg.FormatCues) {
			return nil
		}
		if !hasAnyCue(lower, cfg.OutputCues) {
			return nil
		}
		return []Issue{{
			Kind:        KindMissingFormat,
			Severity:    SeverityMedium,
			Description: "no output format is specified for an instruction that produces output",
			Suggestion:  "state the expected shape, e.g. \"respond in markdown\" or \"return JSON with these fields\"",
			Location:    "prompt",
		}}
	}
}

// analyzeExamples flags prompts with no example of the desired behavior, and
// prompts with so many examples that returns diminish.
func analyzeExamples(cfg *Config) Analyzer {
	return func(text string) []Issue {
		lower := strings.ToLower(text)
		present := hasAnyCue(lower, cfg.ExampleCues) ||
			len(findPrefixOccurrences(lower, "example")) > 0 || // "examples" counts too
			strings.Contains(text, "```")
		if !present {
			severity := SeverityLow
			if tokenCount(text) > cfg.ComplexTokens || len(taskClauses(cfg, text)) >= 2 {
				severity = SeverityMedium
			}
			return []Issue{{
				Kind:        KindMissingExample,
				Severity:    severity,
				Description: "no example of the desired input/output is given",
				Suggestion:  "add one representative example of the expected output",
				Location:    "prompt",
			}}
		}
		blocks := len(findPrefixOccurrences(lower, "example")) +
			strings.Count(lower, "e.g.") +
			strings.Count(text, "```")/2
		if blocks > cfg.MaxExamples {
			return []Issue{{
				Kind:        KindTooManyExamples,
				Severity:    SeverityLow,
				Description: fmt.Sprintf("%d example blocks found; past %d they add overfitting risk, not signal", blocks, cfg.MaxExamples),
				Suggestion:  "keep the two or three most representative examples",
				Location:    fmt.Sprintf("%d examples", blocks),
			}}
		}
		return nil
	}
}

// analyzeConstraints flags generative tasks with no length, tone or exclusion
// constraint.
func analyzeConstraints(cfg *Config) Analyzer {
	return func(text string) []Issue {
		lower := strings.ToLower(text)
		if !hasAnyCue(lower, cfg.GenerativeVerbs) {
			return nil
		}
		if hasAnyCue(lower, cfg.ConstraintCues) {
			return nil
		}
		return []Issue{{
			Kind:        KindMissingConstraints,
			Severity:    SeverityLow,
			Description: "generative task has no length, tone or exclusion constraint",
			Suggestion:  "add a bound such as a word limit, a tone requirement or topics to avoid",
			Location:    "prompt",
		}}
	}
}

// analyzeContext flags prompts too short to carry any real context.
func analyzeContext(cfg *Config) Analyzer {
	return func(text string) []Issue {
		n := tokenCount(text)
		if n == 0 || n >= cfg.MinContextTokens {
			return nil
		}
		severity := SeverityMedium
		if n*2 <= cfg.MinContextTokens {
			severity = SeverityHigh
		}
		return []Issue{{
			Kind:        KindMissingContext,
			Severity:    severity,
			Description: fmt.Sprintf("prompt is only %d words; the model has almost no context to work with", n),
			Suggestion:  "describe the subject, audience and purpose in a sentence or two",
			Location:    fmt.Sprintf("%d words", n),
		}}
	}
}

// --- lexical helpers ---

func tokenCount(text string) int {
	return len(strings.Fields(text))
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func bareWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

// findOccurrences returns the byte offsets of every occurrence of phrase in
// lower. Bare words must sit on word boundaries; phrases containing spaces or
// punctuation match as plain substrings.
func findOccurrences(lower, phrase string) []int {
	if phrase == "" {
		return nil
	}
	word := bareWord(phrase)
	var offs []int
	for start := 0; start < len(lower); {
		idx := strings.Index(lower[start:], phrase)
		if idx < 0 {
			break
		}
		pos := start + idx
		if !word || boundedAt(lower, pos, len(phrase)) {
			offs = append(offs, pos)
		}
		start = pos + 1
	}
	return offs
}

// findPrefixOccurrences matches a word on its leading boundary only, so
// "examples" still counts as an occurrence of "example".
func findPrefixOccurrences(lower, word string) []int {
	var offs []int
	for start := 0; start < len(lower); {
		idx := strings.Index(lower[start:], word)
		if idx < 0 {
			break
		}
		pos := start + idx
		if pos == 0 || !isWordChar(lower[pos-1]) {
			offs = append(offs, pos)
		}
		start = pos + 1
	}
	return offs
}

func boundedAt(lower string, pos, length int) bool {
	if pos > 0 && isWordChar(lower[pos-1]) {
		return false
	}
	end := pos + length
	if end < len(lower) && isWordChar(lower[end]) {
		return false
	}
	return true
}

func hasAnyCue(lower string, cues []string) bool {
	for _, cue := range cues {
		if bareWord(cue) {
			if len(findOccurrences(lower, cue)) > 0 {
				return true
			}
		} else if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// wordAt converts a byte offset into a 1-based word position.
func wordAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return len(strings.Fields(text[:offset])) + 1
}

var clauseSeparators = []string{" and ", " & ", " also ", " then ", ";"}

// taskClauses splits the prompt into coordinate clauses and keeps the ones
// that start with an imperative verb.
func taskClauses(cfg *Config, text string) []string {
	norm := strings.ToLower(text)
	for _, sep := range clauseSeparators {
		norm = strings.ReplaceAll(norm, sep, "\n")
	}
	var tasks []string
	for _, clause := range strings.Split(norm, "\n") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if containsString(cfg.ImperativeVerbs, firstWord(clause)) {
			tasks = append(tasks, clause)
		}
	}
	return tasks
}

// firstWord returns the first alphabetic word of a clause, skipping list
// markers such as "1.", "-" or "*".
func firstWord(clause string) string {
	start := 0
	for start < len(clause) {
		c := clause[start]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			break
		}
		start++
	}
	end := start
	for end < len(clause) {
		c := clause[end]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			break
		}
		end++
	}
	return clause[start:end]
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
