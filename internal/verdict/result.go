package verdict

import (
	"fmt"
	"math"

	"github.com/pressguard-ai/pressguard/internal/analyzer"
	"github.com/pressguard-ai/pressguard/internal/classifier"
)

// MLConfidence is the classifier's class distribution as percentages.
type MLConfidence struct {
	Fake float64 `json:"fake"`
	Real float64 `json:"real"`
}

// HeuristicDetails is the per-feature breakdown exposed for explainability.
type HeuristicDetails struct {
	SensationalScore float64  `json:"sensational_score"`
	PunctuationScore float64  `json:"punctuation_score"`
	CapsScore        float64  `json:"caps_score"`
	LengthScore      float64  `json:"length_score"`
	EmotionalScore   float64  `json:"emotional_score"`
	Flags            []string `json:"flags"`
}

// Result is the complete analysis payload returned to callers. It carries
// every intermediate value so a verdict can always be explained.
type Result struct {
	Verdict          string           `json:"verdict"`
	RiskLevel        RiskLevel        `json:"risk_level"`
	Confidence       float64          `json:"confidence"`
	FinalScore       float64          `json:"final_score"`
	MLScore          float64          `json:"ml_score"`
	HeuristicScore   float64          `json:"heuristic_score"`
	MLConfidence     MLConfidence     `json:"ml_confidence"`
	HeuristicDetails HeuristicDetails `json:"heuristic_details"`
	ModelName        string           `json:"model_name,omitempty"`
}

// Assemble fuses the heuristic report with the classifier prediction and
// packages the full payload. It rejects malformed predictions instead of
// normalizing them silently; aside from display rounding it never alters an
// upstream value.
func Assemble(rep *analyzer.Report, pred classifier.Prediction, modelName string) (*Result, error) {
	if rep == nil {
		return nil, fmt.Errorf("heuristic report is nil")
	}
	if err := validatePrediction(pred); err != nil {
		return nil, err
	}

	final := Fuse(pred.ProbFake, rep.HeuristicScore)
	level, text := Classify(final)

	flags := rep.Flags
	if flags == nil {
		flags = []string{}
	}

	return &Result{
		Verdict:        text,
		RiskLevel:      level,
		Confidence:     round2(ConfidencePercent(final, level)),
		FinalScore:     round3(final),
		MLScore:        round3(pred.ProbFake),
		HeuristicScore: round3(rep.HeuristicScore),
		MLConfidence: MLConfidence{
			Fake: round2(pred.ProbFake * 100),
			Real: round2(pred.ProbReal * 100),
		},
		HeuristicDetails: HeuristicDetails{
			SensationalScore: round3(rep.Sensational.Value),
			PunctuationScore: round3(rep.Punctuation.Value),
			CapsScore:        round3(rep.Caps.Value),
			LengthScore:      round3(rep.Length.Value),
			EmotionalScore:   round3(rep.Emotional.Value),
			Flags:            flags,
		},
		ModelName: modelName,
	}, nil
}

func validatePrediction(pred classifier.Prediction) error {
	for _, p := range []float64{pred.ProbFake, pred.ProbReal} {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
			return fmt.Errorf("%w: malformed probability %v", classifier.ErrUnavailable, p)
		}
	}
	return nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
