// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/config"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/history"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/resume"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/terminal"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

// =============================================================================
// SERVER
// =============================================================================

// Server embeds the command interpreter behind a JSON API. Each request gets
// a fresh theme and history cell, so interpreter state never leaks between
// clients.
type Server struct {
	cfg      *config.Config
	store    *portfolio.Store
	registry *terminal.Registry
	httpSrv  *http.Server

	mu     sync.RWMutex
	submit contact.SubmitFunc
}

// New creates a server around the given store and configuration.
func New(cfg *config.Config, store *portfolio.Store) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		registry: terminal.NewRegistry(),
		submit:   contact.NewWebhookSubmitter(cfg.Contact.WebhookURL, nil),
	}
}

// Reconfigure applies settings that can change while the server runs.
// Routing, listen address, and rate limits need a restart; the contact
// webhook does not.
func (s *Server) Reconfigure(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submit = contact.NewWebhookSubmitter(cfg.Contact.WebhookURL, nil)
}

func (s *Server) submitFunc() contact.SubmitFunc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submit
}

// Handler builds the routed handler with the full middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/execute", s.handleExecute)
	mux.HandleFunc("GET /api/portfolio", s.handlePortfolio)
	mux.HandleFunc("POST /api/contact", s.handleContact)
	mux.HandleFunc("GET /api/resume", s.handleResume)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /stats", s.handleStats)

	limiter := NewRateLimiter(
		s.cfg.Server.RateLimitRequests,
		time.Duration(s.cfg.Server.RateLimitWindowSecs)*time.Second,
	)

	chain := Chain(
		Recovery(),
		RequestID(),
		Logging(),
		SecurityHeaders(),
		CORS(s.cfg.Server.AllowedOrigins),
		RateLimit(limiter, s.cfg.Server.TrustedProxies),
	)
	return chain(mux)
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("SERVER_START | addr=%s", s.httpSrv.Addr)
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// RequestID tags every request with a unique ID for log correlation.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, r)
		})
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) snapshot(ctx context.Context) *portfolio.Data {
	data, err := s.store.Snapshot(ctx)
	if err != nil {
		if !errors.Is(err, portfolio.ErrNotSeeded) {
			log.Printf("SNAPSHOT_FAILED | error=%v", err)
		}
		return nil
	}
	return data
}

type executeRequest struct {
	Input string `json:"input"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := &terminal.Context{
		Data:    s.snapshot(r.Context()),
		Theme:   theme.NewState(),
		History: history.New(),
		Submit:  s.submitFunc(),
	}

	out := s.registry.Execute(terminal.Parse(req.Input), ctx)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	data := s.snapshot(r.Context())
	if data == nil {
		writeError(w, http.StatusNotFound, "portfolio data is not available")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var form contact.FormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res := s.submitFunc()(r.Context(), form)
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	// Serve the pre-rendered PDF when one is configured; fall back to
	// generated Markdown so the endpoint always responds.
	if path := s.cfg.Resume.PDFPath; path != "" {
		if _, err := os.Stat(path); err == nil {
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="Hassan_Kazmi_Resume.pdf"`)
			http.ServeFile(w, r, path)
			return
		}
		log.Printf("RESUME_PDF_MISSING | path=%s", path)
	}

	md := resume.Markdown(s.snapshot(r.Context()), resume.Options{})
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, md)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statsResponse struct {
	Skills         int `json:"skills"`
	Experiences    int `json:"experiences"`
	Projects       int `json:"projects"`
	Certifications int `json:"certifications"`
	Achievements   int `json:"achievements"`
	Total          int `json:"total"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	data := s.snapshot(r.Context())
	if data == nil {
		writeJSON(w, http.StatusOK, statsResponse{})
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Skills:         len(data.Skills),
		Experiences:    len(data.Experiences),
		Projects:       len(data.Projects),
		Certifications: len(data.Certifications),
		Achievements:   len(data.Achievements),
		Total:          data.SectionCount(),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("RESPONSE_ENCODE_FAILED | error=%v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
