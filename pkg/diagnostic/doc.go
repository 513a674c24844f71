// Package diagnostic implements the prompt diagnostic engine: a set of pure
// lexical analyzers that detect typed weaknesses in a natural-language
// instruction, a scorer that turns the findings into four 0-100 dimension
// scores (clarity, specificity, completeness, complexity), an aggregator that
// derives the overall quality score and its health band, an append-only
// auto-fixer, and a round-trippable record form for transport.
//
// All judgments come from lexical and structural heuristics over the raw
// text; the engine performs no model inference and no I/O, and every
// operation is a pure function of the input text plus the scoring table.
package diagnostic
