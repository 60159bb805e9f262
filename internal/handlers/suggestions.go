package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"trendpulse-backend/internal/models"
	"trendpulse-backend/internal/store"
	"trendpulse-backend/internal/ws"
)

// suggestionService is the slice of the AI adapter this handler needs.
type suggestionService interface {
	GenerateSuggestions(ctx context.Context, topic, platform, style string) (models.SuggestionResult, error)
	AnalyzeContent(ctx context.Context, content, platform string) (models.AnalysisResult, error)
}

type SuggestionHandler struct {
	store *store.Store
	ai    suggestionService
	hub   *ws.Hub
}

func NewSuggestionHandler(store *store.Store, ai suggestionService, hub *ws.Hub) *SuggestionHandler {
	return &SuggestionHandler{store: store, ai: ai, hub: hub}
}

// List serves GET /api/content-suggestions: the persisted history of
// every generated suggestion set.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListContentSuggestions(r.Context()))
}

// Generate serves POST /api/ai-suggestions. Whatever the adapter returns
// (model output or fallback) is persisted, so the suggestion history
// always matches what the user saw.
func (h *SuggestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationFields(err), r))
		return
	}

	result, err := h.ai.GenerateSuggestions(r.Context(), req.Topic, req.Platform, req.Style)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	suggestion := h.store.CreateContentSuggestion(r.Context(), models.InsertContentSuggestion{
		Topic:        req.Topic,
		Platform:     req.Platform,
		Style:        req.Style,
		Titles:       result.Titles,
		Tags:         result.Tags,
		ContentIdeas: result.ContentIdeas,
	})
	h.hub.Publish("suggestion.created", suggestion)

	writeJSON(w, http.StatusOK, result)
}

// Analyze serves POST /api/analyze-content. Analysis results are
// ephemeral; nothing is persisted.
func (h *SuggestionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationFields(err), r))
		return
	}

	result, err := h.ai.AnalyzeContent(r.Context(), req.Content, req.Platform)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
