package verdict

import (
	"testing"
)

func TestFuseIdentity(t *testing.T) {
	cases := []struct{ ml, heuristic float64 }{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
		{0.25, 0.75},
		{0.9463, 0.123},
		{0.0001, 0.9999},
	}
	for _, tc := range cases {
		want := tc.ml*0.6 + tc.heuristic*0.4
		if got := Fuse(tc.ml, tc.heuristic); got != want {
			t.Fatalf("Fuse(%v, %v) = %v, want exact %v", tc.ml, tc.heuristic, got, want)
		}
	}
}

func TestClassifyTiers(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{0.399, RiskLow},
		{0.4, RiskModerate}, // boundary is inclusive toward MODERATE
		{0.55, RiskModerate},
		{0.7, RiskModerate}, // boundary is inclusive toward MODERATE
		{0.700001, RiskHigh},
		{0.71, RiskHigh},
		{1.0, RiskHigh},
	}

	for _, tc := range cases {
		level, text := Classify(tc.score)
		if level != tc.want {
			t.Fatalf("Classify(%v) = %s, want %s", tc.score, level, tc.want)
		}
		if text == "" {
			t.Fatalf("Classify(%v) returned empty verdict text", tc.score)
		}
	}
}

func TestVerdictTexts(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.9, "HIGH RISK - Likely Fake News"},
		{0.5, "MODERATE RISK - Verify Sources"},
		{0.1, "LOW RISK - Appears Legitimate"},
	}
	for _, tc := range cases {
		if _, text := Classify(tc.score); text != tc.want {
			t.Fatalf("Classify(%v) text = %q, want %q", tc.score, text, tc.want)
		}
	}
}

func TestConfidencePercent(t *testing.T) {
	for _, score := range []float64{0, 0.1, 0.3999, 0.4, 0.55, 0.7, 0.9, 1} {
		level, _ := Classify(score)
		conf := ConfidencePercent(score, level)
		if conf < 0 || conf > 100 {
			t.Fatalf("confidence %v out of range for score %v", conf, score)
		}
	}

	if got := ConfidencePercent(0.9, RiskHigh); got != 0.9*100 {
		t.Fatalf("high confidence = %v, want %v", got, 0.9*100)
	}
	if got := ConfidencePercent(0.1, RiskLow); got != (1-0.1)*100 {
		t.Fatalf("low confidence = %v, want %v", got, (1-0.1)*100)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		score := float64(i) / 99
		l1, t1 := Classify(score)
		l2, t2 := Classify(score)
		if l1 != l2 || t1 != t2 {
			t.Fatalf("Classify(%v) not deterministic", score)
		}
	}
}
