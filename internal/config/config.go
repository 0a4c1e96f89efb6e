package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds PressGuard configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Model   ModelConfig   `yaml:"model"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Audit   AuditConfig   `yaml:"audit"`
}

type ServerConfig struct {
	Addr                     string `yaml:"addr"`                   // HTTP listen address, e.g. ":8080"
	MaxRequestBodyBytes      int64  `yaml:"max_request_body_bytes"` // cap on /analyze payload size
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
}

type ModelConfig struct {
	BundleDir string `yaml:"bundle_dir"` // directory with the ONNX model, labels, metadata, tokenizer
	SeqLen    int    `yaml:"seq_len"`    // tokenizer sequence length
}

type LexiconConfig struct {
	Path string `yaml:"path"` // optional YAML lexicon; empty means built-in sets
}

type AuditConfig struct {
	Enabled    bool   `yaml:"enabled"`
	FilePath   string `yaml:"file_path"`   // JSONL audit log; empty disables the file sink
	WebhookURL string `yaml:"webhook_url"` // optional HTTP sink
	QueueSize  int    `yaml:"queue_size"`
	Workers    int    `yaml:"workers"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxRequestBodyBytes <= 0 {
		cfg.Server.MaxRequestBodyBytes = 1 << 20
	}
	if cfg.Server.ReadHeaderTimeoutSeconds <= 0 {
		cfg.Server.ReadHeaderTimeoutSeconds = 5
	}

	if cfg.Model.BundleDir == "" {
		cfg.Model.BundleDir = "models/fakenews_v1"
	}
	if cfg.Model.SeqLen <= 0 {
		cfg.Model.SeqLen = 256
	}

	if cfg.Audit.QueueSize <= 0 {
		cfg.Audit.QueueSize = 1000
	}
	if cfg.Audit.Workers <= 0 {
		cfg.Audit.Workers = 1
	}
}
