// Package handlers exposes the session facade and analytics pipeline over
// HTTP. Handlers hang off an API struct instead of package globals so each
// server (and each test) owns its session explicitly.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodmitra/moodmitra-backend/internal/services"
	"github.com/moodmitra/moodmitra-backend/internal/session"
)

// API carries the dependencies shared by all handlers. Cloudinary is nil
// when upload credentials are not configured.
type API struct {
	Session    *session.Session
	Hub        *services.InsightsHub
	Cloudinary *services.CloudinaryService
}

// NewAPI builds the handler set over a session.
func NewAPI(s *session.Session, hub *services.InsightsHub, cld *services.CloudinaryService) *API {
	return &API{Session: s, Hub: hub, Cloudinary: cld}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
