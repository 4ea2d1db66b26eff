// Package server exposes the scoring, projection, and SWOT engines plus the
// checkpoint store over an HTTP API. Handlers accept profile payloads as
// JSON maps so unknown keys are tolerated and missing keys take defaults.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KatyGHub/finhealth-app/internal/store"
	"github.com/KatyGHub/finhealth-app/pkg/assessment"
	"github.com/KatyGHub/finhealth-app/pkg/fire"
	"github.com/KatyGHub/finhealth-app/pkg/healthindex"
	"github.com/KatyGHub/finhealth-app/pkg/profile"
	"github.com/KatyGHub/finhealth-app/pkg/swot"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	store       *store.Store
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the assessment API.
// The store may be nil, in which case the persistence endpoints report
// service unavailable while the pure computation endpoints keep working.
func NewHandler(logger *zap.Logger, st *store.Store, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = 256 * 1024
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, store: st, maxBodySize: maxBodySize, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)

		r.Post("/health", h.handleHealth)
		r.Post("/fire", h.handleFire)
		r.Post("/swot", h.handleSwot)
		r.Post("/assess", h.handleAssess)
		r.Post("/export", h.handleExport)

		r.Get("/profile", h.handleProfileGet)
		r.Put("/profile", h.handleProfilePut)

		r.Get("/checkpoints", h.handleCheckpointsList)
		r.Post("/checkpoints", h.handleCheckpointAppend)
		r.Delete("/checkpoints/last", h.handleCheckpointDeleteLast)
		r.Get("/checkpoints/trend", h.handleCheckpointTrend)

		r.Get("/actions", h.handleActionsList)
		r.Post("/actions", h.handleActionAccept)
		r.Post("/actions/{key}/toggle", h.handleActionToggle)
		r.Delete("/actions/completed", h.handleActionsClear)
	})

	return r
}

// assessRequest is the shared request body for the computation endpoints.
type assessRequest struct {
	Profile     map[string]interface{} `json:"profile"`
	Assumptions *fire.Assumptions      `json:"assumptions,omitempty"`
}

func (h *handler) decodeAssessRequest(w http.ResponseWriter, r *http.Request) (profile.Household, fire.Assumptions, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return profile.Household{}, fire.Assumptions{}, false
	}

	hh := profile.FromMap(req.Profile)
	assumptions := fire.DefaultAssumptions(hh.Age)
	if req.Assumptions != nil {
		assumptions = req.Assumptions.Normalize()
		if assumptions.CurrentAge <= 0 {
			assumptions.CurrentAge = hh.Age
		}
	}
	return hh, assumptions, true
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	hh, _, ok := h.decodeAssessRequest(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, healthindex.Compute(hh, hh.Derive()))
}

func (h *handler) handleFire(w http.ResponseWriter, r *http.Request) {
	hh, assumptions, ok := h.decodeAssessRequest(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, fire.Project(hh.Derive(), assumptions))
}

func (h *handler) handleSwot(w http.ResponseWriter, r *http.Request) {
	hh, _, ok := h.decodeAssessRequest(w, r)
	if !ok {
		return
	}
	res := healthindex.Compute(hh, hh.Derive())
	h.writeJSON(w, http.StatusOK, swot.Derive(res, hh))
}

func (h *handler) handleAssess(w http.ResponseWriter, r *http.Request) {
	hh, assumptions, ok := h.decodeAssessRequest(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, assessment.New(hh, assumptions))
}

// handleExport serializes a profile/assumptions payload as YAML for download.
func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	hh, assumptions, ok := h.decodeAssessRequest(w, r)
	if !ok {
		return
	}

	payload := map[string]interface{}{
		"profile":     hh,
		"assumptions": assumptions,
	}
	yamlBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err))
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"configYaml": string(yamlBytes)})
}

func (h *handler) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	hh, found, err := h.store.LoadProfile(userID(r))
	if err != nil {
		h.respondStoreError(w, "server.handleProfileGet", err)
		return
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "no stored profile")
		return
	}
	h.writeJSON(w, http.StatusOK, hh)
}

func (h *handler) handleProfilePut(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode profile: %v", err))
		return
	}

	hh := profile.FromMap(fields)
	if err := h.store.SaveProfile(userID(r), hh); err != nil {
		h.respondStoreError(w, "server.handleProfilePut", err)
		return
	}
	h.writeJSON(w, http.StatusOK, hh)
}

func (h *handler) handleCheckpointsList(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	checkpoints, err := h.store.ListCheckpoints(userID(r))
	if err != nil {
		h.respondStoreError(w, "server.handleCheckpointsList", err)
		return
	}
	if checkpoints == nil {
		checkpoints = []store.Checkpoint{}
	}
	h.writeJSON(w, http.StatusOK, checkpoints)
}

func (h *handler) handleCheckpointAppend(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req struct {
		PFI float64 `json:"pfi"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode checkpoint: %v", err))
		return
	}
	if req.PFI < 0 || req.PFI > 100 {
		h.respondError(w, http.StatusBadRequest, "pfi must be in [0, 100]")
		return
	}

	id, err := h.store.AppendCheckpoint(userID(r), req.PFI, time.Now().UTC())
	if err != nil {
		h.respondStoreError(w, "server.handleCheckpointAppend", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *handler) handleCheckpointDeleteLast(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	if err := h.store.DeleteLastCheckpoint(userID(r)); err != nil {
		h.respondStoreError(w, "server.handleCheckpointDeleteLast", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleCheckpointTrend(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	trend, err := h.store.CheckpointTrend(userID(r))
	if err != nil {
		h.respondStoreError(w, "server.handleCheckpointTrend", err)
		return
	}
	h.writeJSON(w, http.StatusOK, trend)
}

func (h *handler) handleActionsList(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	items, err := h.store.ListActions(userID(r))
	if err != nil {
		h.respondStoreError(w, "server.handleActionsList", err)
		return
	}
	if items == nil {
		items = []store.ActionItem{}
	}
	h.writeJSON(w, http.StatusOK, items)
}

// handleActionAccept accepts one suggested action from a SWOT finding into
// the user's persistent list.
func (h *handler) handleActionAccept(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req struct {
		FindingID string `json:"findingId"`
		Key       string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode action request: %v", err))
		return
	}

	blueprints := swot.SuggestionsFor(req.FindingID)
	if len(blueprints) == 0 {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("no suggestions for finding %q", req.FindingID))
		return
	}

	for _, bp := range blueprints {
		if req.Key != "" && bp.Key != req.Key {
			continue
		}
		if err := h.store.AcceptAction(userID(r), bp); err != nil {
			h.respondStoreError(w, "server.handleActionAccept", err)
			return
		}
		h.writeJSON(w, http.StatusCreated, bp)
		return
	}
	h.respondError(w, http.StatusNotFound, fmt.Sprintf("finding %q has no action %q", req.FindingID, req.Key))
}

func (h *handler) handleActionToggle(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	key := chi.URLParam(r, "key")
	done, err := h.store.ToggleAction(userID(r), key)
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"done": done})
}

func (h *handler) handleActionsClear(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	cleared, err := h.store.ClearCompletedActions(userID(r))
	if err != nil {
		h.respondStoreError(w, "server.handleActionsClear", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"cleared": cleared})
}

// userID resolves the opaque user identifier for persistence endpoints.
func userID(r *http.Request) string {
	if id := r.URL.Query().Get("user"); id != "" {
		return id
	}
	return "default"
}

func (h *handler) requireStore(w http.ResponseWriter) bool {
	if h.store == nil {
		h.respondError(w, http.StatusServiceUnavailable, "persistence is not configured")
		return false
	}
	return true
}

// respondStoreError surfaces persistence failures as non-fatal notices; the
// computation endpoints stay available regardless.
func (h *handler) respondStoreError(w http.ResponseWriter, op string, err error) {
	h.logger.Warn("persistence operation failed",
		zap.String("op", op),
		zap.Error(err),
	)
	h.respondError(w, http.StatusInternalServerError, err.Error())
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
