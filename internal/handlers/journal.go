package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodmitra/moodmitra-backend/internal/apperrors"
	"github.com/moodmitra/moodmitra-backend/internal/models"
	"github.com/moodmitra/moodmitra-backend/internal/services"
)

type CreateJournalRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

type CreateJournalResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Entry   *models.JournalEntry `json:"entry,omitempty"`
}

type ListJournalsResponse struct {
	Success  bool                  `json:"success"`
	Journals []models.JournalEntry `json:"journals"`
	Total    int                   `json:"total"`
	Prompts  []string              `json:"prompts"`
}

// CreateJournal records one reflective note. Sentiment is derived once here
// and frozen on the entry.
func (api *API) CreateJournal(w http.ResponseWriter, r *http.Request) {
	var req CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := api.Session.AddJournalEntry(r.Context(), req.Content, models.MoodType(req.Mood))
	if err != nil {
		if apperrors.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create journal entry")
		return
	}

	writeJSON(w, http.StatusCreated, CreateJournalResponse{
		Success: true,
		Message: "Journal entry saved, analyzed as " + string(entry.Sentiment),
		Entry:   &entry,
	})
}

// ListJournals returns the journal history, newest first, plus the writing
// prompts shown alongside the form.
func (api *API) ListJournals(w http.ResponseWriter, r *http.Request) {
	journals := api.Session.Journals()
	writeJSON(w, http.StatusOK, ListJournalsResponse{
		Success:  true,
		Journals: journals,
		Total:    len(journals),
		Prompts:  services.JournalPrompts,
	})
}
