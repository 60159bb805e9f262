package handlers

import (
	"encoding/json"
	"net/http"

	"trendpulse-backend/internal/models"
	"trendpulse-backend/internal/store"
	"trendpulse-backend/internal/ws"
)

type AnalyticsHandler struct {
	store *store.Store
	hub   *ws.Hub
}

func NewAnalyticsHandler(store *store.Store, hub *ws.Hub) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, hub: hub}
}

// Latest serves GET /api/analytics: the most recently created snapshot,
// 404 if none exist yet.
func (h *AnalyticsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	analytics, ok := h.store.LatestAnalytics(r.Context())
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No analytics found", r))
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// Create records a new analytics snapshot.
func (h *AnalyticsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.InsertAnalytics
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationFields(err), r))
		return
	}

	analytics := h.store.CreateAnalytics(r.Context(), req)
	h.hub.Publish("analytics.created", analytics)
	writeJSON(w, http.StatusCreated, analytics)
}
