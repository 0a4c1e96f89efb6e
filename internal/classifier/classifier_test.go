package classifier

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases", "BREAKING News", "breaking news"},
		{"strips urls", "read more at https://example.com/story now", "read more at now"},
		{"strips www urls", "see www.example.com today", "see today"},
		{"strips emails", "contact tips@example.com for info", "contact for info"},
		{"keeps basic punctuation", "Really? Yes, really!", "really? yes, really!"},
		{"drops digits and symbols", "top 10 secrets #exposed @ 5pm", "top secrets exposed pm"},
		{"collapses whitespace", "too   many\t\tspaces", "too many spaces"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSoftmax2(t *testing.T) {
	cases := []struct {
		a, b float64
	}{
		{0, 0},
		{3, -3},
		{-10, 10},
		{100, 100.5},
	}
	for _, tc := range cases {
		fake, real := softmax2(tc.a, tc.b)
		if fake < 0 || fake > 1 || real < 0 || real > 1 {
			t.Fatalf("softmax2(%v, %v) out of range: %v %v", tc.a, tc.b, fake, real)
		}
		if math.Abs(fake+real-1) > 1e-12 {
			t.Fatalf("softmax2(%v, %v) does not sum to 1: %v", tc.a, tc.b, fake+real)
		}
		if tc.a > tc.b && fake <= real {
			t.Fatalf("softmax2(%v, %v): larger logit should win", tc.a, tc.b)
		}
	}
}

func TestClassIndices(t *testing.T) {
	fakeIdx, realIdx, err := classIndices([]string{"fake", "real"})
	if err != nil {
		t.Fatalf("classIndices: %v", err)
	}
	if fakeIdx != 0 || realIdx != 1 {
		t.Fatalf("got fake=%d real=%d, want 0/1", fakeIdx, realIdx)
	}

	fakeIdx, realIdx, err = classIndices([]string{"Real", "FAKE"})
	if err != nil {
		t.Fatalf("classIndices mixed case: %v", err)
	}
	if fakeIdx != 1 || realIdx != 0 {
		t.Fatalf("got fake=%d real=%d, want 1/0", fakeIdx, realIdx)
	}

	if _, _, err := classIndices([]string{"spam", "ham"}); err == nil {
		t.Fatalf("expected error for unknown labels")
	}
}

func TestLoadLabels(t *testing.T) {
	dir := t.TempDir()

	arrPath := filepath.Join(dir, "arr.json")
	if err := os.WriteFile(arrPath, []byte(`["fake","real"]`), 0o644); err != nil {
		t.Fatalf("write labels: %v", err)
	}
	labels, err := loadLabels(arrPath)
	if err != nil {
		t.Fatalf("load array labels: %v", err)
	}
	if len(labels) != 2 || labels[0] != "fake" {
		t.Fatalf("unexpected labels: %v", labels)
	}

	mapPath := filepath.Join(dir, "map.json")
	if err := os.WriteFile(mapPath, []byte(`{"0":"fake","1":"real"}`), 0o644); err != nil {
		t.Fatalf("write labels: %v", err)
	}
	labels, err = loadLabels(mapPath)
	if err != nil {
		t.Fatalf("load map labels: %v", err)
	}
	if len(labels) != 2 || labels[1] != "real" {
		t.Fatalf("unexpected labels: %v", labels)
	}
}

func TestStaticClassifier(t *testing.T) {
	s := NewStatic(0.85)
	pred, err := s.Predict(context.Background(), "anything")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if pred.ProbFake != 0.85 || pred.ProbReal != 1-0.85 {
		t.Fatalf("unexpected prediction: %+v", pred)
	}

	s.Err = ErrUnavailable
	if _, err := s.Predict(context.Background(), "anything"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestBundleLooksValid(t *testing.T) {
	dir := t.TempDir()
	if BundleLooksValid(dir) {
		t.Fatalf("empty dir should not look valid")
	}

	for _, p := range []string{"fakenews_v1.onnx", "label_map.json", "metadata.yaml", "tokenizer/vocab.txt"} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if !BundleLooksValid(dir) {
		t.Fatalf("complete dir should look valid")
	}
}

func TestLoadMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yaml")
	content := "model_name: PassiveAggressive + TF-IDF\naccuracy: 0.9463\nf1_score: 0.9441\nversion: \"1\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}

	meta, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("load metadata: %v", err)
	}
	if meta.ModelName != "PassiveAggressive + TF-IDF" {
		t.Fatalf("model name = %q", meta.ModelName)
	}
	if meta.Accuracy != 0.9463 || meta.F1Score != 0.9441 {
		t.Fatalf("unexpected metrics: %+v", meta)
	}
}
