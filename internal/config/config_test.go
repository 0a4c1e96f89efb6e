package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Model.SeqLen != 256 {
		t.Fatalf("seq_len = %d", cfg.Model.SeqLen)
	}
	if cfg.Audit.QueueSize != 1000 || cfg.Audit.Workers != 1 {
		t.Fatalf("audit defaults: %+v", cfg.Audit)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pressguard.yaml")
	content := `server:
  addr: ":9090"
  read_header_timeout_seconds: 2
model:
  bundle_dir: /opt/pressguard/models/fakenews_v1
  seq_len: 128
lexicon:
  path: /etc/pressguard/lexicon.yaml
audit:
  enabled: true
  file_path: /var/log/pressguard/audit.jsonl
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadHeaderTimeoutSeconds != 2 {
		t.Fatalf("read_header_timeout_seconds = %v", cfg.Server.ReadHeaderTimeoutSeconds)
	}
	if cfg.Model.SeqLen != 128 {
		t.Fatalf("seq_len = %d", cfg.Model.SeqLen)
	}
	if !cfg.Audit.Enabled || cfg.Audit.FilePath == "" {
		t.Fatalf("audit section: %+v", cfg.Audit)
	}
	// Unset values still get defaults.
	if cfg.Server.MaxRequestBodyBytes != 1<<20 {
		t.Fatalf("max body bytes = %d", cfg.Server.MaxRequestBodyBytes)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"missing addr", func(c *Config) { c.Server.Addr = " " }, true},
		{"missing bundle dir", func(c *Config) { c.Model.BundleDir = "" }, true},
		{"bad seq len", func(c *Config) { c.Model.SeqLen = 0 }, true},
		{"audit without sink", func(c *Config) { c.Audit.Enabled = true }, true},
		{"audit with file sink", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.FilePath = "audit.jsonl"
		}, false},
		{"audit bad webhook", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.WebhookURL = "not a url"
		}, true},
		{"audit good webhook", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.WebhookURL = "https://example.com/hook"
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
