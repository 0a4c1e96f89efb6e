package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/pressguard-ai/pressguard/internal/analyzer"
	"github.com/pressguard-ai/pressguard/internal/classifier"
	"github.com/pressguard-ai/pressguard/internal/config"
	"github.com/pressguard-ai/pressguard/internal/verdict"
)

func main() {
	cfgPath := flag.String("config", "", "path to config yaml (required)")
	n := flag.Int("n", 200, "number of iterations")
	headline := flag.String("headline", "SHOCKING!!! THE TRUTH EXPOSED!!!", "headline to score")
	body := flag.String("body", "You won't believe what happened!!!", "body to score")
	heuristicOnly := flag.Bool("heuristic-only", false, "skip the ONNX model and time the linguistic scorers alone")
	flag.Parse()

	if *cfgPath == "" {
		log.Fatalf("config flag is required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lex, err := analyzer.LoadLexicon(cfg.Lexicon.Path)
	if err != nil {
		log.Fatalf("load lexicon: %v", err)
	}
	an := analyzer.New(lex)

	var clf classifier.Classifier = classifier.NewStatic(0.5)
	modelName := "static"
	if !*heuristicOnly {
		model, err := classifier.LoadModel(cfg.Model.BundleDir, cfg.Model.SeqLen)
		if err != nil {
			log.Fatalf("load model: %v", err)
		}
		clf = model
		modelName = model.Metadata().ModelName
	}

	combined := *headline + " " + *body
	ctx := context.Background()

	// Warmup
	for i := 0; i < 5; i++ {
		if _, err := score(ctx, an, clf, *headline, *body, combined); err != nil {
			log.Fatalf("warmup failed: %v", err)
		}
	}

	if *n <= 0 {
		*n = 1
	}

	durations := make([]time.Duration, 0, *n)
	for i := 0; i < *n; i++ {
		start := time.Now()
		if _, err := score(ctx, an, clf, *headline, *body, combined); err != nil {
			log.Fatalf("score failed: %v", err)
		}
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}

	avg := float64(total.Microseconds()) / 1000.0 / float64(len(durations))
	p50 := float64(durations[len(durations)/2].Microseconds()) / 1000.0
	p95 := float64(durations[int(float64(len(durations))*0.95)].Microseconds()) / 1000.0

	fmt.Printf("bench: n=%d avg_ms=%.2f p50_ms=%.2f p95_ms=%.2f model=%s lexicon=%s\n",
		len(durations), avg, p50, p95, modelName, lex.Version)
}

func score(ctx context.Context, an *analyzer.Analyzer, clf classifier.Classifier, headline, body, combined string) (*verdict.Result, error) {
	rep, err := an.Analyze(headline, body)
	if err != nil {
		return nil, err
	}
	pred, err := clf.Predict(ctx, combined)
	if err != nil {
		return nil, err
	}
	return verdict.Assemble(rep, pred, "")
}
