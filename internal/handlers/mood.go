package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodmitra/moodmitra-backend/internal/apperrors"
	"github.com/moodmitra/moodmitra-backend/internal/models"
)

type CreateMoodRequest struct {
	Mood  string `json:"mood"`
	Score int    `json:"score"`
	Note  string `json:"note,omitempty"`
}

type CreateMoodResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Entry   *models.MoodEntry `json:"entry,omitempty"`
}

type ListMoodsResponse struct {
	Success       bool               `json:"success"`
	Moods         []models.MoodEntry `json:"moods"`
	Total         int                `json:"total"`
	CurrentStreak int                `json:"current_streak"`
}

// CreateMood records one mood observation.
func (api *API) CreateMood(w http.ResponseWriter, r *http.Request) {
	var req CreateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := api.Session.AddMoodEntry(r.Context(), models.MoodType(req.Mood), req.Score, req.Note)
	if err != nil {
		if apperrors.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to record mood")
		return
	}

	writeJSON(w, http.StatusCreated, CreateMoodResponse{
		Success: true,
		Message: "Mood recorded",
		Entry:   &entry,
	})
}

// ListMoods returns the full mood history, newest first.
func (api *API) ListMoods(w http.ResponseWriter, r *http.Request) {
	moods := api.Session.Moods()
	writeJSON(w, http.StatusOK, ListMoodsResponse{
		Success:       true,
		Moods:         moods,
		Total:         len(moods),
		CurrentStreak: api.Session.CurrentStreak(),
	})
}

type moodMetaEntry struct {
	Mood models.MoodType `json:"mood"`
	models.MoodMeta
}

// MoodMeta returns the display metadata for every category in canonical
// order, so the client never hard-codes the category set.
func (api *API) MoodMeta(w http.ResponseWriter, r *http.Request) {
	out := make([]moodMetaEntry, 0, len(models.AllMoods))
	for _, m := range models.AllMoods {
		meta, _ := models.Meta(m)
		out = append(out, moodMetaEntry{Mood: m, MoodMeta: meta})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"moods":   out,
	})
}
