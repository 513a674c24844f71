package diagnostic

// dimensionScores reduces each dimension from 100 by the configured penalty
// per relevant issue, floored at 0. The penalty for one issue is its kind's
// base value scaled by the severity multiplier, applied to every dimension
// the kind targets.
func (c *Config) dimensionScores(issues []Issue) (clarity, specificity, completeness, complexity float64) {
	clarity, specificity, completeness, complexity = 100, 100, 100, 100
	for _, issue := range issues {
		penalty := c.BasePenalty[issue.Kind] * c.SeverityMultiplier[issue.Severity]
		for _, dim := range c.DimensionTargets[issue.Kind] {
			switch dim {
			case DimClarity:
				clarity -= penalty
			case DimSpecificity:
				specificity -= penalty
			case DimCompleteness:
				completeness -= penalty
			case DimComplexity:
				complexity -= penalty
			}
		}
	}
	clarity = floorScore(clarity)
	specificity = floorScore(specificity)
	completeness = floorScore(completeness)
	complexity = floorScore(complexity)
	return clarity, specificity, completeness, complexity
}

// Aggregate combines the four dimension scores into the overall quality
// score using the fixed weights.
func (c *Config) Aggregate(clarity, specificity, completeness, complexity float64) float64 {
	return c.Weights.Clarity*clarity +
		c.Weights.Specificity*specificity +
		c.Weights.Completeness*completeness +
		c.Weights.Complexity*complexity
}

// BandFor maps a quality score to its health band.
func (c *Config) BandFor(quality float64) HealthBand {
	switch {
	case quality >= c.BandThresholds.Excellent:
		return HealthExcellent
	case quality >= c.BandThresholds.Good:
		return HealthGood
	case quality >= c.BandThresholds.Fair:
		return HealthFair
	case quality >= c.BandThresholds.Poor:
		return HealthPoor
	}
	return HealthCritical
}

func floorScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	return score
}
