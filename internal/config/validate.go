package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}
	if cfg.Server.MaxRequestBodyBytes <= 0 {
		return errors.New("server.max_request_body_bytes must be positive")
	}

	if strings.TrimSpace(cfg.Model.BundleDir) == "" {
		return errors.New("model.bundle_dir must be set")
	}
	if cfg.Model.SeqLen <= 0 {
		return errors.New("model.seq_len must be positive")
	}

	if cfg.Audit.Enabled {
		if cfg.Audit.FilePath == "" && cfg.Audit.WebhookURL == "" {
			return errors.New("audit.enabled requires file_path or webhook_url")
		}
		if cfg.Audit.WebhookURL != "" {
			u, err := url.Parse(cfg.Audit.WebhookURL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return fmt.Errorf("audit.webhook_url %q is not a valid http(s) URL", cfg.Audit.WebhookURL)
			}
		}
	}

	return nil
}
