package handlers

import (
	"net/http"

	"github.com/moodmitra/moodmitra-backend/internal/analytics"
)

type InsightsResponse struct {
	Success bool              `json:"success"`
	Data    analytics.Payload `json:"data"`
}

// Insights returns the full aggregation payload for the current snapshot:
// mood distribution, 30-day trend, weekly rollup, sentiment distribution,
// scalar insights and qualitative observations.
func (api *API) Insights(w http.ResponseWriter, r *http.Request) {
	payload := analytics.BuildPayload(api.Session.Snapshot(), api.Session.Now())
	writeJSON(w, http.StatusOK, InsightsResponse{
		Success: true,
		Data:    payload,
	})
}
