// Package session owns the in-memory history for the active user and is the
// only mutation path into it. Every mutation is followed by a full snapshot
// write through the entry store. The session is an explicitly constructed,
// injected object, not a process-wide singleton, so tests can run several
// isolated sessions side by side.
package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moodmitra/moodmitra-backend/internal/apperrors"
	"github.com/moodmitra/moodmitra-backend/internal/models"
	"github.com/moodmitra/moodmitra-backend/internal/sentiment"
	"github.com/moodmitra/moodmitra-backend/internal/store"
	"github.com/moodmitra/moodmitra-backend/internal/streak"
)

// Session is the mutation facade over one user's history. Methods are safe
// for concurrent use; the mutex serializes logical operations so a
// persistence write always completes before the next mutation begins.
type Session struct {
	mu         sync.Mutex
	history    models.History
	store      *store.Store
	classifier *sentiment.Classifier
	now        func() time.Time
	onChange   func(models.History)
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the wall-clock source. Tests pin it to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithClassifier replaces the default sentiment classifier.
func WithClassifier(c *sentiment.Classifier) Option {
	return func(s *Session) { s.classifier = c }
}

// WithOnChange registers a callback invoked with a snapshot after every
// persisted mutation. Used to push live insight updates.
func WithOnChange(fn func(models.History)) Option {
	return func(s *Session) { s.onChange = fn }
}

// New loads the last persisted history from st and returns a session over it.
func New(ctx context.Context, st *store.Store, opts ...Option) *Session {
	s := &Session{
		store:      st,
		classifier: sentiment.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history = st.Load(ctx)
	return s
}

// newID returns a time-ordered unique id, so ids created later always sort
// after earlier ones.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// persist writes the current snapshot. Write failures are logged and the
// session continues; losing the most recent write is preferable to aborting
// the user's session.
func (s *Session) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.history); err != nil {
		log.Printf("session: failed to persist snapshot: %v", err)
	}
	if s.onChange != nil {
		s.onChange(s.history.Clone())
	}
}

// SetUser replaces the active user. A nil user means no one is signed in.
func (s *Session) SetUser(ctx context.Context, u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.User = u
	s.persist(ctx)
}

// AddMoodEntry validates and records one mood observation, newest first.
func (s *Session) AddMoodEntry(ctx context.Context, mood models.MoodType, score int, note string) (models.MoodEntry, error) {
	if !mood.Valid() {
		return models.MoodEntry{}, apperrors.NewValidation("mood", "must be one of the fixed mood categories")
	}
	if score < models.MinScore || score > models.MaxScore {
		return models.MoodEntry{}, apperrors.NewValidation("score", "must be between 1 and 10")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.MoodEntry{
		ID:        newID(),
		Mood:      mood,
		Score:     score,
		CreatedAt: s.now(),
		Note:      note,
	}
	s.history.Moods = append([]models.MoodEntry{entry}, s.history.Moods...)
	s.persist(ctx)
	return entry, nil
}

// AddJournalEntry validates content, derives its sentiment once, and records
// the entry. Empty or whitespace-only content is rejected before any state
// changes. mood is an optional category association; pass "" for none.
func (s *Session) AddJournalEntry(ctx context.Context, content string, mood models.MoodType) (models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, apperrors.NewValidation("content", "journal content must not be empty")
	}
	if mood != "" && !mood.Valid() {
		return models.JournalEntry{}, apperrors.NewValidation("mood", "must be one of the fixed mood categories")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.JournalEntry{
		ID:        newID(),
		Content:   content,
		Sentiment: s.classifier.Classify(content),
		CreatedAt: s.now(),
		Mood:      mood,
	}
	s.history.Journals = append([]models.JournalEntry{entry}, s.history.Journals...)
	s.persist(ctx)
	return entry, nil
}

// Logout clears the user and both collections and wipes all persisted state.
// This is a total, irreversible reset, not a selective delete.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = models.History{
		Moods:    []models.MoodEntry{},
		Journals: []models.JournalEntry{},
	}
	if err := s.store.Wipe(ctx); err != nil {
		log.Printf("session: failed to wipe persisted state: %v", err)
	}
	if s.onChange != nil {
		s.onChange(s.history.Clone())
	}
}

// User returns a copy of the active user, or nil when no one is signed in.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.history.User == nil {
		return nil
	}
	u := *s.history.User
	return &u
}

// Moods returns the mood entries, newest first.
func (s *Session) Moods() []models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MoodEntry, len(s.history.Moods))
	copy(out, s.history.Moods)
	return out
}

// Journals returns the journal entries, newest first.
func (s *Session) Journals() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JournalEntry, len(s.history.Journals))
	copy(out, s.history.Journals)
	return out
}

// Snapshot returns an immutable copy of the full history for aggregation.
func (s *Session) Snapshot() models.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Clone()
}

// CurrentStreak computes the consecutive-day tracking streak as of now.
func (s *Session) CurrentStreak() int {
	s.mu.Lock()
	moods := make([]models.MoodEntry, len(s.history.Moods))
	copy(moods, s.history.Moods)
	now := s.now()
	s.mu.Unlock()
	return streak.Current(moods, now)
}

// TotalEntries is the combined mood and journal entry count.
func (s *Session) TotalEntries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.TotalEntries()
}

// Now exposes the session's clock so read paths that aggregate by date share
// the same time source as the mutation paths.
func (s *Session) Now() time.Time {
	return s.now()
}
