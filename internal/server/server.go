// Package server exposes a loaded almanac over HTTP: a health probe, the
// Prometheus metrics and the two lowest-location queries.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/specialistvlad/almanac/internal/almanac"
	"github.com/specialistvlad/almanac/internal/ctxlog"
	"github.com/specialistvlad/almanac/internal/metrics"
)

// Querier answers lowest-location queries.
type Querier interface {
	Lowest(ctx context.Context, mode almanac.Mode) (uint64, error)
}

// Handler serves the almanac endpoints.
type Handler struct {
	logger  *slog.Logger
	model   Querier
	metrics *metrics.Metrics
}

// New creates a handler. A nil model serves only /health and /metrics.
func New(model Querier, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		model:   model,
		metrics: m,
	}
}

// Router returns the chi router with every route registered.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", h.handleHealth)
	if h.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{}))
	}
	if h.model != nil {
		r.Get("/v1/lowest/{mode}", h.handleLowest)
	}
	return r
}

// NewHTTPServer builds an HTTP server with sane defaults for this project.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type lowestResponse struct {
	Mode     string `json:"mode"`
	Location uint64 `json:"location"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

func (h *Handler) handleLowest(w http.ResponseWriter, r *http.Request) {
	ctx := ctxlog.WithLogger(r.Context(), h.logger)
	mode, err := almanac.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	location, err := h.model.Lowest(ctx, mode)
	if h.metrics != nil {
		h.metrics.ObserveQuery(string(mode), time.Since(start).Seconds(), err)
	}
	if err != nil {
		h.logger.Warn("Query failed.", "mode", mode, "error", err)
		h.writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, lowestResponse{Mode: string(mode), Location: location})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, almanac.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, almanac.ErrEmptyInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
