// Package audit records every analysis decision as a structured event and
// delivers it asynchronously to configured sinks, off the request path.
package audit

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Decision is the outcome of an analysis request.
type Decision string

const (
	DecisionScored          Decision = "scored"
	DecisionRejectedInput   Decision = "rejected_input"
	DecisionErrorClassifier Decision = "error_classifier"
)

const headlinePreviewLimit = 120

// Event is the canonical audit record for one analysis request.
type Event struct {
	Version         string    `json:"version"`
	Timestamp       time.Time `json:"timestamp"`
	RequestID       string    `json:"request_id"`
	Decision        Decision  `json:"decision"`
	HeadlinePreview string    `json:"headline_preview"`
	RiskLevel       string    `json:"risk_level,omitempty"`
	FinalScore      float64   `json:"final_score"`
	MLScore         float64   `json:"ml_score"`
	HeuristicScore  float64   `json:"heuristic_score"`
	Flags           []string  `json:"flags,omitempty"`
	LatencyMs       float64   `json:"latency_ms"`
}

// NewEvent stamps version, timestamp, request id, and truncates the headline
// preview. Score fields are left for the caller to fill when available.
func NewEvent(decision Decision, headline string) *Event {
	return &Event{
		Version:         "1",
		Timestamp:       time.Now().UTC(),
		RequestID:       newRequestID(),
		Decision:        decision,
		HeadlinePreview: truncate(headline, headlinePreviewLimit),
	}
}

func newRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "req-unknown"
	}
	return "req-" + hex.EncodeToString(buf)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
