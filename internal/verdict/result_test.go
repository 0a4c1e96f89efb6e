package verdict

import (
	"errors"
	"math"
	"testing"

	"github.com/pressguard-ai/pressguard/internal/analyzer"
	"github.com/pressguard-ai/pressguard/internal/classifier"
)

func sampleReport(t *testing.T) *analyzer.Report {
	t.Helper()
	a := analyzer.New(analyzer.DefaultLexicon())
	rep, err := a.Analyze("SHOCKING!!! THE TRUTH EXPOSED!!!", "You won't believe what happened!!!")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return rep
}

func TestAssemble(t *testing.T) {
	rep := sampleReport(t)
	pred := classifier.Prediction{ProbFake: 0.92, ProbReal: 0.08}

	res, err := Assemble(rep, pred, "PassiveAggressive + TF-IDF")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if res.RiskLevel != RiskHigh {
		t.Fatalf("risk level = %s, want HIGH", res.RiskLevel)
	}
	if res.MLScore != 0.92 {
		t.Fatalf("ml score = %v", res.MLScore)
	}
	if res.MLConfidence.Fake != 92 || res.MLConfidence.Real != 8 {
		t.Fatalf("ml confidence = %+v", res.MLConfidence)
	}
	if res.Confidence < 0 || res.Confidence > 100 {
		t.Fatalf("confidence out of range: %v", res.Confidence)
	}
	if res.FinalScore < 0 || res.FinalScore > 1 {
		t.Fatalf("final score out of range: %v", res.FinalScore)
	}
	if res.HeuristicDetails.SensationalScore != 1 {
		t.Fatalf("sensational score = %v, want saturated 1", res.HeuristicDetails.SensationalScore)
	}
	if len(res.HeuristicDetails.Flags) < 2 {
		t.Fatalf("expected flags to carry through, got %v", res.HeuristicDetails.Flags)
	}
	if res.ModelName != "PassiveAggressive + TF-IDF" {
		t.Fatalf("model name = %q", res.ModelName)
	}
}

func TestAssemblePreservesUpstreamValues(t *testing.T) {
	rep := sampleReport(t)
	pred := classifier.Prediction{ProbFake: 0.25, ProbReal: 0.75}

	res, err := Assemble(rep, pred, "")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if res.HeuristicScore != math.Round(rep.HeuristicScore*1000)/1000 {
		t.Fatalf("heuristic score altered: %v vs report %v", res.HeuristicScore, rep.HeuristicScore)
	}
	want := math.Round(Fuse(pred.ProbFake, rep.HeuristicScore)*1000) / 1000
	if res.FinalScore != want {
		t.Fatalf("final score = %v, want %v", res.FinalScore, want)
	}
	if len(res.HeuristicDetails.Flags) != len(rep.Flags) {
		t.Fatalf("flags altered: %v vs %v", res.HeuristicDetails.Flags, rep.Flags)
	}
}

func TestAssembleRejectsMalformedPrediction(t *testing.T) {
	rep := sampleReport(t)

	cases := []classifier.Prediction{
		{ProbFake: math.NaN(), ProbReal: 0.5},
		{ProbFake: 0.5, ProbReal: math.Inf(1)},
		{ProbFake: -0.1, ProbReal: 1.1},
		{ProbFake: 2, ProbReal: -1},
	}
	for _, pred := range cases {
		if _, err := Assemble(rep, pred, ""); !errors.Is(err, classifier.ErrUnavailable) {
			t.Fatalf("prediction %+v: expected ErrUnavailable, got %v", pred, err)
		}
	}
}

func TestAssembleNilReport(t *testing.T) {
	if _, err := Assemble(nil, classifier.Prediction{ProbFake: 0.5, ProbReal: 0.5}, ""); err == nil {
		t.Fatalf("expected error for nil report")
	}
}
