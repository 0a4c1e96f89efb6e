package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pressguard-ai/pressguard/internal/analyzer"
	"github.com/pressguard-ai/pressguard/internal/audit"
	"github.com/pressguard-ai/pressguard/internal/classifier"
	"github.com/pressguard-ai/pressguard/internal/config"
	"github.com/pressguard-ai/pressguard/internal/verdict"
)

// Server wraps the HTTP components for PressGuard.
type Server struct {
	mux      *http.ServeMux
	cfg      *config.Config
	analyzer *analyzer.Analyzer
	clf      classifier.Classifier
	meta     classifier.Metadata
	audit    *audit.Emitter
}

// New creates a PressGuard server with all routes registered. The audit
// emitter may be nil when auditing is disabled.
func New(cfg *config.Config, an *analyzer.Analyzer, clf classifier.Classifier, meta classifier.Metadata, emitter *audit.Emitter) *Server {
	mux := http.NewServeMux()

	s := &Server{
		mux:      mux,
		cfg:      cfg,
		analyzer: an,
		clf:      clf,
		meta:     meta,
		audit:    emitter,
	}

	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/health", s.handleHealth)

	return s
}

// Handler exposes the mux for tests and custom server setups.
func (s *Server) Handler() http.Handler { return s.mux }

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Printf("PressGuard running on %s (model %q)", addr, s.meta.ModelName)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: time.Duration(s.cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
	}
	return srv.ListenAndServe()
}

// --- Wire types ---

type analyzeRequest struct {
	Headline string `json:"headline"`
	Body     string `json:"body,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type healthResponse struct {
	Status   string  `json:"status"`
	Model    string  `json:"model"`
	Accuracy float64 `json:"accuracy"`
	F1Score  float64 `json:"f1_score"`
}

func writeError(w http.ResponseWriter, status int, message, typ string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: errorDetail{Message: message, Type: typ}}); err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}

// --- Handlers ---

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxRequestBodyBytes)

	var reqBody analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "invalid_request_error")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body", "invalid_request_error")
		return
	}

	headline := strings.TrimSpace(reqBody.Headline)
	body := strings.TrimSpace(reqBody.Body)

	rep, err := s.analyzer.Analyze(headline, body)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyHeadline) {
			s.emitAudit(r.Context(), audit.DecisionRejectedInput, headline, nil, start)
			writeError(w, http.StatusBadRequest, "headline is required", "invalid_request_error")
			return
		}
		log.Printf("analyze failed: %v", err)
		s.emitAudit(r.Context(), audit.DecisionRejectedInput, headline, nil, start)
		writeError(w, http.StatusBadRequest, "could not analyze text", "invalid_request_error")
		return
	}

	combined := headline
	if body != "" {
		combined += " " + body
	}

	pred, err := s.clf.Predict(r.Context(), combined)
	if err != nil {
		log.Printf("classifier error: %v", err)
		s.emitAudit(r.Context(), audit.DecisionErrorClassifier, headline, nil, start)
		writeError(w, http.StatusServiceUnavailable, "classifier unavailable", "dependency_error")
		return
	}

	result, err := verdict.Assemble(rep, pred, s.meta.ModelName)
	if err != nil {
		log.Printf("assemble failed: %v", err)
		s.emitAudit(r.Context(), audit.DecisionErrorClassifier, headline, nil, start)
		writeError(w, http.StatusServiceUnavailable, "classifier returned malformed probabilities", "dependency_error")
		return
	}

	s.emitAudit(r.Context(), audit.DecisionScored, headline, result, start)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := healthResponse{
		Status:   "online",
		Model:    s.meta.ModelName,
		Accuracy: s.meta.Accuracy,
		F1Score:  s.meta.F1Score,
	}
	status := http.StatusOK
	if s.clf == nil {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to write health response: %v", err)
	}
}

func (s *Server) emitAudit(ctx context.Context, decision audit.Decision, headline string, result *verdict.Result, start time.Time) {
	if s.audit == nil {
		return
	}

	ev := audit.NewEvent(decision, headline)
	ev.LatencyMs = float64(time.Since(start).Microseconds()) / 1000.0
	if result != nil {
		ev.RiskLevel = string(result.RiskLevel)
		ev.FinalScore = result.FinalScore
		ev.MLScore = result.MLScore
		ev.HeuristicScore = result.HeuristicScore
		ev.Flags = result.HeuristicDetails.Flags
	}

	s.audit.Emit(ctx, ev)
}
