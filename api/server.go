// Package api exposes the quote engine over HTTP for the form-collection
// frontend. One POST per form submission: compute the quote, optionally
// queue the outbound email, return the structured result.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"bartending-quote/internal/logger"
	"bartending-quote/notify"
	"bartending-quote/pkg/geo"
	"bartending-quote/quote"
	"bartending-quote/quote/booking"
	"bartending-quote/refdata"
)

// Config holds server configuration.
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int64
	CORSOrigins    []string

	// TemplateID identifies the outbound email template at the provider.
	TemplateID string
}

// DefaultConfig returns default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxRequestSize: 1 << 20, // a form submission is tiny
		CORSOrigins:    []string{"*"},
		TemplateID:     "quote_v2",
	}
}

// Server is the HTTP intake for booking submissions.
type Server struct {
	httpServer *http.Server
	engine     *quote.Engine
	tables     *refdata.Tables
	sender     notify.Sender // nil disables email dispatch
	log        *logger.Logger
	config     *Config
}

// NewServer creates the intake server. sender may be nil, in which case
// quotes are computed and returned but no email is queued.
func NewServer(tables *refdata.Tables, sender notify.Sender, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	return &Server{
		engine: quote.NewEngine(),
		tables: tables,
		sender: sender,
		log:    logger.New("quote-api"),
		config: config,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/quote", s.handleQuote)

	handler := s.corsMiddleware(s.loggingMiddleware(mux))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.log.Info("server_start", map[string]any{"port": s.config.Port})
	return s.httpServer.ListenAndServe()
}

// StartWithGracefulShutdown runs Start and drains on SIGINT/SIGTERM.
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		s.log.Info("server_shutdown", nil)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

// QuoteRequest is the API request for one form submission.
type QuoteRequest struct {
	Booking booking.Request `json:"booking"`

	// EventPoint, when set, overrides Booking.TravelKm with the
	// great-circle distance from home base.
	EventPoint *geo.Point `json:"event_point,omitempty"`

	// SendEmail queues the outbound message when a sender is configured.
	SendEmail bool `json:"send_email"`
}

// QuoteResponse is the API response.
type QuoteResponse struct {
	QuoteRef string        `json:"quote_ref"`
	Result   *quote.Result `json:"result"`

	EmailQueued bool   `json:"email_queued"`
	EmailError  string `json:"email_error,omitempty"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req QuoteRequest
	body := http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if req.EventPoint != nil {
		req.Booking.TravelKm = geo.TravelKm(*req.EventPoint)
		if req.Booking.Location == "" {
			req.Booking.Location = req.EventPoint.FormattedAddress
		}
	}

	result := s.engine.Compute(req.Booking, s.tables)
	resp := QuoteResponse{
		QuoteRef: uuid.NewString(),
		Result:   result,
	}

	if req.SendEmail && s.sender != nil {
		msg := notify.Message{
			TemplateID: s.config.TemplateID,
			To:         req.Booking.Email,
			Fields:     notify.BuildFields(result, resp.QuoteRef),
		}
		if err := s.sender.Send(r.Context(), msg); err != nil {
			// The quote itself is fine; report delivery trouble and let
			// the frontend show its retry-later message.
			s.log.Error("email_dispatch", err, map[string]any{"quote_ref": resp.QuoteRef})
			resp.EmailError = "email dispatch failed"
		} else {
			resp.EmailQueued = true
		}
	}

	s.log.Info("quote_computed", map[string]any{
		"quote_ref": resp.QuoteRef,
		"guests":    result.Request.Guests,
		"bar_type":  string(result.Request.BarType),
		"total":     result.Costs.GrandTotal.StringFixed(2),
		"warnings":  len(result.Warnings),
	})
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("http_request", map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"remote":      r.RemoteAddr,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		allowed := false
		for _, o := range s.config.CORSOrigins {
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) jsonError(w http.ResponseWriter, status int, msg string) {
	s.jsonResponse(w, status, map[string]string{"error": msg})
}
