package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/pressguard-ai/pressguard/internal/analyzer"
	"github.com/pressguard-ai/pressguard/internal/audit"
	"github.com/pressguard-ai/pressguard/internal/classifier"
	"github.com/pressguard-ai/pressguard/internal/config"
	"github.com/pressguard-ai/pressguard/internal/server"
)

func main() {
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides config)")
	configPath := flag.String("config", "pressguard.yaml", "Path to PressGuard config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	addr := cfg.Server.Addr
	if *addrFlag != "" {
		addr = *addrFlag
	}

	lex, err := analyzer.LoadLexicon(cfg.Lexicon.Path)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	an := analyzer.New(lex)
	log.Printf("lexicon %q: %d sensational, %d emotional entries",
		lex.Version, len(lex.Sensational), len(lex.Emotional))

	if !classifier.BundleLooksValid(cfg.Model.BundleDir) {
		log.Fatalf("model bundle at %s is incomplete", cfg.Model.BundleDir)
	}
	model, err := classifier.LoadModel(cfg.Model.BundleDir, cfg.Model.SeqLen)
	if err != nil {
		log.Fatalf("failed to load model: %v", err)
	}
	meta := model.Metadata()
	log.Printf("model loaded: %s (accuracy %.4f, f1 %.4f)", meta.ModelName, meta.Accuracy, meta.F1Score)

	var emitter *audit.Emitter
	if cfg.Audit.Enabled {
		var sinks []audit.Sink
		if cfg.Audit.FilePath != "" {
			fs, err := audit.NewFileSink(cfg.Audit.FilePath)
			if err != nil {
				log.Fatalf("failed to open audit log: %v", err)
			}
			sinks = append(sinks, fs)
		}
		if cfg.Audit.WebhookURL != "" {
			ws, err := audit.NewWebhookSink(cfg.Audit.WebhookURL, nil, 2*time.Second)
			if err != nil {
				log.Fatalf("failed to configure audit webhook: %v", err)
			}
			sinks = append(sinks, ws)
		}
		emitter = audit.NewEmitter(audit.EmitterConfig{
			QueueSize: cfg.Audit.QueueSize,
			Workers:   cfg.Audit.Workers,
		}, sinks)
		defer emitter.Close(context.Background())
	}

	srv := server.New(cfg, an, model, meta, emitter)

	log.Printf("Starting PressGuard on %s...", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
