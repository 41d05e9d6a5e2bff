// Package server exposes the text frontend over HTTP: health probing,
// normalization, and tokenization endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-phonetok/internal/config"
	"github.com/example/go-phonetok/internal/prosody"
	"github.com/example/go-phonetok/internal/tokenizer"
	"github.com/example/go-phonetok/internal/tts"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Frontend is the text-frontend capability the handler serves.
type Frontend interface {
	Tokenize(text string) (tokenizer.Output, error)
	Normalize(text string) string
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes int
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes: 4096,
		logger:       slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

type handler struct {
	frontend Frontend
	opts     options
	log      *slog.Logger
}

// NewHandler returns an http.Handler serving /health, POST /normalize, and
// POST /tokenize.
func NewHandler(frontend Frontend, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		frontend: frontend,
		opts:     opts,
		log:      opts.logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/normalize", h.handleNormalize)
	mux.HandleFunc("/tokenize", h.handleTokenize)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type textRequest struct {
	Text string `json:"text"`
}

type normalizeResponse struct {
	Text string `json:"text"`
}

type tokenizeResponse struct {
	TokenIDs     []int                `json:"token_ids"`
	ProsodyHints map[int]prosody.Hint `json:"prosody_hints,omitempty"`
}

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readTextRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, normalizeResponse{Text: h.frontend.Normalize(req.Text)})
}

func (h *handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readTextRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	out, err := h.frontend.Tokenize(req.Text)
	durationMS := time.Since(start).Milliseconds()

	if err != nil {
		if errors.Is(err, tts.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "tokenization failed",
			slog.Int("text_len", len(req.Text)),
			slog.Int64("duration_ms", durationMS),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.InfoContext(r.Context(), "tokenization complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int("token_count", len(out.TokenIDs)),
		slog.Int("hint_count", len(out.ProsodyHints)),
		slog.Int64("duration_ms", durationMS),
	)

	writeJSON(w, http.StatusOK, tokenizeResponse{
		TokenIDs:     out.TokenIDs,
		ProsodyHints: out.ProsodyHints,
	})
}

func (h *handler) readTextRequest(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return textRequest{}, false
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return textRequest{}, false
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return textRequest{}, false
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return textRequest{}, false
	}

	if len(req.Text) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return textRequest{}, false
	}

	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful
// shutdown.
type Server struct {
	cfg             config.Config
	frontend        Frontend
	shutdownTimeout time.Duration
}

func New(cfg config.Config, frontend Frontend) *Server {
	return &Server{
		cfg:             cfg,
		frontend:        frontend,
		shutdownTimeout: 30 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

func (s *Server) Start(ctx context.Context) error {
	frontend := s.frontend
	if frontend == nil {
		svc, err := tts.NewService(s.cfg)
		if err != nil {
			return fmt.Errorf("initialize frontend: %w", err)
		}
		frontend = svc
	}

	h := NewHandler(frontend, WithMaxTextBytes(s.cfg.Server.MaxTextBytes))

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(s.cfg.Server.RequestTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

// ProbeHTTP checks the /health endpoint of a running server.
func ProbeHTTP(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}
