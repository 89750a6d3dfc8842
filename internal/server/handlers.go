// Package server exposes the recap engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/iksnae/activity-recap/internal"
	"github.com/iksnae/activity-recap/internal/recap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 8 << 20

// SessionStore loads stored sessions
type SessionStore interface {
	LoadSession(ctx context.Context, id string) (*internal.RecordingSession, error)
}

// Handler coordinates HTTP requests with the recap engine
type Handler struct {
	store     SessionStore
	generator *recap.CachedGenerator
	metrics   *Metrics
	gatherer  prometheus.Gatherer
}

// NewHandler builds a Handler. store may be nil, in which case stored
// session recaps answer 404. cache may be nil.
func NewHandler(store SessionStore, cache *internal.CacheManager, reg *prometheus.Registry) *Handler {
	return &Handler{
		store:     store,
		generator: &recap.CachedGenerator{Cache: cache},
		metrics:   NewMetrics(reg),
		gatherer:  reg,
	}
}

// RecapRequest is the body of POST /v1/recaps
type RecapRequest struct {
	ProfileType string              `json:"profileType"`
	Events      []internal.RawEvent `json:"events"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RegisterRoutes wires endpoints to the mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/recaps", h.createRecap)
	mux.HandleFunc("GET /v1/sessions/{id}/recap", h.sessionRecap)
	mux.HandleFunc("GET /healthz", healthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}

// healthz reports a simple OK status for container health checks
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) createRecap(w http.ResponseWriter, r *http.Request) {
	var req RecapRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.metrics.RecordInvalidInput()
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	profile, err := internal.ParseProfileType(req.ProfileType)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}

	session, err := internal.NewNormalizer().NormalizeRecording(&internal.RawRecording{Events: req.Events}, profile)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}

	start := time.Now()
	content, err := recap.Generate(session.Events, profile)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}
	h.metrics.RecordGeneration(string(profile), time.Since(start))

	writeJSON(w, http.StatusOK, content)
}

func (h *Handler) sessionRecap(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if h.store == nil {
		writeError(w, http.StatusNotFound, "not_found", "session not found")
		return
	}

	session, err := h.store.LoadSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, internal.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "session not found")
			return
		}
		internal.LogError("Failed to load session %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "server_error", "failed to load session")
		return
	}

	var profile internal.ProfileType
	if p := r.URL.Query().Get("profile"); p != "" {
		profile, err = internal.ParseProfileType(p)
		if err != nil {
			h.writeGenerationError(w, err)
			return
		}
	}

	start := time.Now()
	content, cached, err := h.generator.Generate(session, profile)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}
	if profile == "" {
		profile = session.ProfileType
	}
	if !cached {
		h.metrics.RecordGeneration(string(profile), time.Since(start))
	}

	writeJSON(w, http.StatusOK, content)
}

func (h *Handler) writeGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, internal.ErrInvalidInput) {
		h.metrics.RecordInvalidInput()
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	internal.LogError("Recap generation failed: %v", err)
	writeError(w, http.StatusInternalServerError, "server_error", "recap generation failed")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		internal.LogWarn("Failed to write response: %v", err)
	}
}
