// Package server exposes attached devices over HTTP with content
// negotiation.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
	"github.com/FreeMasen/orbi-helpers/internal/model"
	"github.com/FreeMasen/orbi-helpers/internal/render"
)

const shutdownTimeout = 5 * time.Second

// Source produces a fresh device list per call.
type Source interface {
	AttachedDevices(ctx context.Context) (*model.AttachedDevices, error)
}

// Server serves /attached-devices, /healthz and /metrics. Each request
// runs its own fetch; requests share nothing but the read-only Source.
type Server struct {
	source   Source
	logger   *slog.Logger
	metrics  *Metrics
	registry *prometheus.Registry
	handler  http.Handler
}

// New builds a Server. A nil logger discards.
func New(source Source, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	registry := prometheus.NewRegistry()
	s := &Server{
		source:   source,
		logger:   logger,
		metrics:  NewMetrics(registry),
		registry: registry,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /attached-devices", s.handleAttachedDevices)
	mux.HandleFunc("GET /healthz", HealthHandler)
	mux.Handle("GET /metrics", MetricsHandler(registry))
	s.handler = withAccessLog(logger, mux)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Registry returns the registry behind /metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleAttachedDevices(w http.ResponseWriter, r *http.Request) {
	rep, ok := Negotiate(r.Header.Get("Accept"))
	if !ok {
		s.metrics.requests.WithLabelValues("none", strconv.Itoa(http.StatusNotAcceptable)).Inc()
		http.Error(w, "supported representations: application/json, text/plain", http.StatusNotAcceptable)
		return
	}
	label := representationLabel(rep)

	start := time.Now()
	devices, err := s.source.AttachedDevices(r.Context())
	s.metrics.fetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		kind := apperr.KindOf(err)
		code := StatusFor(err)
		s.metrics.fetchErrors.WithLabelValues(kind.String()).Inc()
		s.metrics.requests.WithLabelValues(label, strconv.Itoa(code)).Inc()
		s.logger.Error("fetching attached devices",
			"id", requestID(r.Context()),
			"kind", kind.String(),
			"error", err)
		http.Error(w, http.StatusText(code), code)
		return
	}

	var body []byte
	switch rep {
	case RepresentationJSON:
		body, err = render.JSON(devices)
		if err != nil {
			s.metrics.requests.WithLabelValues(label, strconv.Itoa(http.StatusInternalServerError)).Inc()
			s.logger.Error("failed to encode response", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
	case RepresentationText:
		body = []byte(render.PlainText(devices))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}

	s.metrics.requests.WithLabelValues(label, strconv.Itoa(http.StatusOK)).Inc()
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func representationLabel(rep Representation) string {
	if rep == RepresentationJSON {
		return "json"
	}
	return "text"
}

// StatusFor maps a pipeline error to a response status. Config problems
// are the server's own fault; the router misbehaving is a bad gateway.
func StatusFor(err error) int {
	kind := apperr.KindOf(err)
	switch {
	case kind.IsConfig():
		return http.StatusInternalServerError
	case kind == apperr.KindNetwork, kind == apperr.KindResponseParse:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
