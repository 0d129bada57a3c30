package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moodmitra/moodmitra-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, api *handlers.API) {
	// Simulated-identity auth routes
	r.Post("/api/auth/signup", api.Signup)
	r.Post("/api/auth/signin", api.Signin)
	r.Post("/api/auth/anonymous", api.Anonymous)
	r.Post("/api/auth/logout", api.Logout)
	r.Get("/api/auth/me", api.Me)

	// Mood tracking routes
	r.Post("/api/moods", api.CreateMood)
	r.Get("/api/moods", api.ListMoods)
	r.Get("/api/moods/meta", api.MoodMeta)

	// Journaling routes
	r.Post("/api/journals", api.CreateJournal)
	r.Get("/api/journals", api.ListJournals)

	// Analytics routes
	r.Get("/api/insights", api.Insights)

	// Mood-aware quotes
	r.Get("/api/quotes", api.Quotes)

	// Avatar upload
	r.Post("/api/upload", api.UploadAvatar)

	// WebSocket endpoint for live insight updates
	r.Get("/ws/insights", api.InsightsWebSocket)
}
