package handlers

import (
	"net/http"

	"trendpulse-backend/internal/models"
	"trendpulse-backend/internal/store"
)

type VideoHandler struct {
	store *store.Store
}

func NewVideoHandler(store *store.Store) *VideoHandler {
	return &VideoHandler{store: store}
}

// List serves GET /api/trending-videos. Absent or "all" query values
// leave that dimension unfiltered.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.VideoFilter{
		Platform: r.URL.Query().Get("platform"),
		Category: r.URL.Query().Get("category"),
	}
	writeJSON(w, http.StatusOK, h.store.ListTrendingVideos(r.Context(), filter))
}
