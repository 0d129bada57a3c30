package handlers

import (
	"net/http"

	"github.com/moodmitra/moodmitra-backend/internal/models"
	"github.com/moodmitra/moodmitra-backend/internal/services"
)

type QuotesResponse struct {
	Success bool             `json:"success"`
	Mood    models.MoodType  `json:"mood,omitempty"`
	Quotes  []services.Quote `json:"quotes"`
}

// Quotes returns quotes curated for the user's most recent mood, falling
// back to the general wellness set when there is no mood history.
func (api *API) Quotes(w http.ResponseWriter, r *http.Request) {
	var mood models.MoodType
	if moods := api.Session.Moods(); len(moods) > 0 {
		mood = moods[0].Mood
	}
	writeJSON(w, http.StatusOK, QuotesResponse{
		Success: true,
		Mood:    mood,
		Quotes:  services.QuotesForMood(mood),
	})
}
