// Package verdict fuses the ML classifier probability with the heuristic
// linguistic score and maps the result onto a discrete risk tier.
package verdict

// Fusion split between the ML probability and the heuristic score. A fixed
// policy constant, not learned or adjusted per request.
const (
	MLWeight        = 0.6
	HeuristicWeight = 0.4
)

// Risk tier cutoffs on the fused score. Both boundaries classify as
// MODERATE.
const (
	highAbove        = 0.7
	moderateAtOrOver = 0.4
)

// RiskLevel is the discrete risk tier derived from the final score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// Fuse combines the classifier's probability-of-fake with the heuristic
// score. Pure arithmetic; both inputs are expected in [0,1].
func Fuse(mlScore, heuristicScore float64) float64 {
	return mlScore*MLWeight + heuristicScore*HeuristicWeight
}

// Classify maps a final score to its risk tier and verdict text.
func Classify(finalScore float64) (RiskLevel, string) {
	switch {
	case finalScore > highAbove:
		return RiskHigh, "HIGH RISK - Likely Fake News"
	case finalScore >= moderateAtOrOver:
		return RiskModerate, "MODERATE RISK - Verify Sources"
	default:
		return RiskLow, "LOW RISK - Appears Legitimate"
	}
}

// ConfidencePercent expresses how strongly the score supports the issued
// verdict: the fake probability for MODERATE/HIGH, its complement for LOW.
func ConfidencePercent(finalScore float64, level RiskLevel) float64 {
	if level == RiskLow {
		return (1 - finalScore) * 100
	}
	return finalScore * 100
}
