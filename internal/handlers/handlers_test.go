package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmitra/moodmitra-backend/internal/handlers"
	"github.com/moodmitra/moodmitra-backend/internal/models"
	"github.com/moodmitra/moodmitra-backend/internal/routes"
	"github.com/moodmitra/moodmitra-backend/internal/services"
	"github.com/moodmitra/moodmitra-backend/internal/session"
	"github.com/moodmitra/moodmitra-backend/internal/store"
)

var now = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	st := store.New(store.NewMemoryKV(), nil)
	s := session.New(context.Background(), st, session.WithClock(func() time.Time { return now }))
	api := handlers.NewAPI(s, services.NewInsightsHub(), nil)

	r := chi.NewRouter()
	routes.SetupRoutes(r, api)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateMood(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/moods", `{"mood":"happy","score":8,"note":"sunny"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	rec = doJSON(t, r, http.MethodGet, "/api/moods", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list handlers.ListMoodsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Moods, 1)
	assert.Equal(t, models.MoodHappy, list.Moods[0].Mood)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.CurrentStreak)
}

func TestCreateMoodRejectsInvalidInput(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/moods", `{"mood":"ecstatic","score":8}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/moods", `{"mood":"happy","score":42}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/moods", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/moods", "")
	var list handlers.ListMoodsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
}

func TestCreateJournalDerivesSentiment(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/journals", `{"content":"what a wonderful amazing day","mood":"happy"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handlers.CreateJournalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Entry)
	assert.Equal(t, models.SentimentPositive, resp.Entry.Sentiment)
	assert.Contains(t, resp.Message, "positive")
}

func TestCreateJournalRejectsWhitespaceContent(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/journals", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/journals", "")
	var list handlers.ListJournalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
	assert.NotEmpty(t, list.Prompts)
}

func TestInsightsPayloadShape(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/moods", `{"mood":"calm","score":6}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.InsightsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.MoodDistribution, len(models.AllMoods))
	assert.Len(t, resp.Data.Trend, 30)
	assert.Len(t, resp.Data.WeeklyRollup, 4)
	assert.Equal(t, models.MoodCalm, resp.Data.Insights.MostCommonMood)
	assert.Equal(t, 1, resp.Data.Insights.CurrentStreak)
}

func TestSignupPasswordMismatch(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"pw1","confirm_password":"pw2"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Passwords do not match", decodeBody(t, rec)["message"])
}

func TestAuthLifecycle(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"pw","confirm_password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var me handlers.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	require.NotNil(t, me.User)
	assert.Equal(t, "Asha", me.User.Name)

	// Record some history, then sign out. Logout wipes everything.
	rec = doJSON(t, r, http.MethodPost, "/api/moods", `{"mood":"happy","score":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/moods", "")
	var list handlers.ListMoodsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
}

func TestAnonymousSession(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/anonymous", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "Guest", resp.User.Name)
	assert.True(t, resp.User.IsAnonymous)
}

func TestQuotesFollowLatestMood(t *testing.T) {
	r := newTestRouter(t)

	// No history: general quotes only, no mood echoed back.
	rec := doJSON(t, r, http.MethodGet, "/api/quotes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.QuotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Mood)
	assert.NotEmpty(t, resp.Quotes)

	rec = doJSON(t, r, http.MethodPost, "/api/moods", `{"mood":"sad","score":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/quotes", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.MoodSad, resp.Mood)
}

func TestMoodMetaCoversAllCategories(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/moods/meta", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Moods   []struct {
			Mood  models.MoodType `json:"mood"`
			Label string          `json:"label"`
			Emoji string          `json:"emoji"`
		} `json:"moods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Moods, len(models.AllMoods))
	for i, m := range models.AllMoods {
		assert.Equal(t, m, resp.Moods[i].Mood)
		assert.NotEmpty(t, resp.Moods[i].Label)
		assert.NotEmpty(t, resp.Moods[i].Emoji)
	}
}

func TestUploadUnavailableWithoutCloudinary(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/upload", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
