package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/secmon-lab/vibecheck/pkg/domain/interfaces"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"An unexpected error occurred."}`))
		return
	}

	safeWrite(w, code, body)
}

type config struct {
	analyzeTimeout time.Duration
	maxBodySize    int64
}

type Option func(*config)

// WithAnalyzeTimeout bounds a single vibe check request including GitHub and model calls
func WithAnalyzeTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.analyzeTimeout = d
	}
}

func WithMaxBodySize(n int64) Option {
	return func(cfg *config) {
		cfg.maxBodySize = n
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		analyzeTimeout: 2 * time.Minute,
		maxBodySize:    16 * 1024,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", handleAnalyze(uc, cfg))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
