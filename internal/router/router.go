package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"trendpulse-backend/internal/handlers"
	"trendpulse-backend/internal/middleware"
	"trendpulse-backend/internal/ws"
)

func New(
	logger *zap.Logger,
	videoHandler *handlers.VideoHandler,
	projectHandler *handlers.ProjectHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	suggestionHandler *handlers.SuggestionHandler,
	hub *ws.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Trending Videos ────
		r.Get("/trending-videos", videoHandler.List)

		// ──── Analytics ────
		r.Get("/analytics", analyticsHandler.Latest)
		r.Post("/analytics", analyticsHandler.Create)

		// ──── Projects ────
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.List)
			r.Post("/", projectHandler.Create)
			r.Get("/{id}", projectHandler.Get)
			r.Patch("/{id}", projectHandler.Update)
			r.Put("/{id}", projectHandler.Update)
		})

		// ──── AI Suggestions & Analysis ────
		r.Get("/content-suggestions", suggestionHandler.List)
		r.Post("/ai-suggestions", suggestionHandler.Generate)
		r.Post("/analyze-content", suggestionHandler.Analyze)

		// ──── Live Dashboard Events ────
		r.Get("/ws", hub.HandleWebSocket)
	})

	return r
}
