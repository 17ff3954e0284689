package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lookupdesk/internal/kvstore"
	"lookupdesk/internal/lookup/models"
	"lookupdesk/internal/lookup/ports"
	"lookupdesk/internal/lookup/view"
	"lookupdesk/internal/platform/metrics"
	"lookupdesk/internal/platform/middleware"
	dErrors "lookupdesk/pkg/domain-errors"
	"lookupdesk/pkg/platform/httputil"
)

// LookupService runs a single lookup.
type LookupService interface {
	Lookup(ctx context.Context, domain models.Domain, input string, p ports.Presenter) (*models.Result, error)
}

// HistoryStore exposes the search history.
type HistoryStore interface {
	Load(ctx context.Context) ([]models.HistoryEntry, error)
	Clear(ctx context.Context) error
}

// Handler serves the lookup and history endpoints.
type Handler struct {
	logger  *slog.Logger
	lookups LookupService
	history HistoryStore
	health  kvstore.HealthChecker
	metrics *metrics.Metrics
	timeout time.Duration
}

type Option func(*Handler)

// WithHealthChecker makes /healthz probe the storage backend.
func WithHealthChecker(hc kvstore.HealthChecker) Option {
	return func(h *Handler) {
		h.health = hc
	}
}

// WithTimeout bounds each request. It must exceed the fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// New creates a lookup Handler.
func New(lookups LookupService, history HistoryStore, logger *slog.Logger, metrics *metrics.Metrics, opts ...Option) *Handler {
	h := &Handler{
		logger:  logger,
		lookups: lookups,
		history: history,
		metrics: metrics,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the routes on r.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.Timeout(h.timeout))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.LatencyMiddleware(h.metrics))
	router.Post("/lookups/{domain}", h.handleLookup)
	router.Get("/history", h.handleListHistory)
	router.Delete("/history", h.handleClearHistory)
	router.Get("/healthz", h.handleHealth)

	r.Mount("/", router)
}

type lookupRequest struct {
	Value string `json:"value"`
}

type lookupResponse struct {
	State   string          `json:"state"`
	Domain  models.Domain   `json:"domain"`
	Key     string          `json:"key"`
	Cached  bool            `json:"cached"`
	Payload json.RawMessage `json:"payload"`
	Rows    []view.Row      `json:"rows"`
}

type historyResponse struct {
	Entries []models.HistoryEntry `json:"entries"`
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	domain, err := models.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown lookup domain"))
		return
	}

	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid lookup request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	p := &responsePresenter{}
	result, err := h.lookups.Lookup(ctx, domain, req.Value, p)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeValidation) && !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.WarnContext(ctx, "lookup failed",
				"request_id", requestID,
				"domain", domain.String(),
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "lookup rendered",
		"request_id", requestID,
		"domain", domain.String(),
		"states", p.states(),
	)
	httputil.WriteJSON(w, http.StatusOK, lookupResponse{
		State:   string(models.RenderResult),
		Domain:  result.Domain,
		Key:     result.Key,
		Cached:  result.Cached,
		Payload: result.Payload,
		Rows:    view.Rows(domain, result.Payload),
	})
}

func (h *Handler) handleListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.history.Load(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load history",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load history"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, historyResponse{Entries: entries})
}

// handleClearHistory requires ?confirm=true, the server-side stand-in for the
// confirmation prompt.
func (h *Handler) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Query().Get("confirm") != "true" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "clearing history requires confirm=true"))
		return
	}
	if err := h.history.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear history",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear history"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Health(r.Context()); err != nil {
			h.logger.WarnContext(r.Context(), "storage health check failed", "error", err.Error())
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
