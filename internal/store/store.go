// Package store persists the session history to a key-value substrate as
// three independently keyed JSON blobs. Writes replace a blob wholesale;
// there are no partial or merge writes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/moodmitra/moodmitra-backend/internal/models"
	"github.com/moodmitra/moodmitra-backend/pkg/utils"
)

// ErrNotFound is returned by KV implementations when a key is absent.
var ErrNotFound = errors.New("store: key not found")

// KV is the persistent key-value substrate the store writes through. Values
// are opaque serialized blobs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

const (
	keyUser     = "moodmitra:user"
	keyMoods    = "moodmitra:moods"
	keyJournals = "moodmitra:journals"
)

// Store serializes History snapshots to a KV substrate, optionally
// encrypting each blob at rest.
type Store struct {
	kv     KV
	cipher *utils.BlobCipher
}

// New builds a store over the given substrate. cipher may be nil, in which
// case blobs are stored as plain JSON.
func New(kv KV, cipher *utils.BlobCipher) *Store {
	return &Store{kv: kv, cipher: cipher}
}

// Load reconstructs the last persisted history. It fails soft: absent or
// unparsable blobs yield empty collections, never an error, so the app stays
// usable with no history.
func (s *Store) Load(ctx context.Context) models.History {
	h := models.History{
		Moods:    []models.MoodEntry{},
		Journals: []models.JournalEntry{},
	}

	var user models.User
	if s.loadBlob(ctx, keyUser, &user) {
		h.User = &user
	}
	s.loadBlob(ctx, keyMoods, &h.Moods)
	s.loadBlob(ctx, keyJournals, &h.Journals)
	if h.Moods == nil {
		h.Moods = []models.MoodEntry{}
	}
	if h.Journals == nil {
		h.Journals = []models.JournalEntry{}
	}
	return h
}

// loadBlob reads, decrypts and unmarshals one blob into dest. Returns false
// on any failure; a corrupt blob is logged and treated as absent.
func (s *Store) loadBlob(ctx context.Context, key string, dest interface{}) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: failed to read %s: %v", key, err)
		}
		return false
	}
	if s.cipher != nil {
		raw, err = s.cipher.Decrypt(raw)
		if err != nil {
			log.Printf("store: failed to decrypt %s, ignoring blob: %v", key, err)
			return false
		}
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("store: corrupt blob at %s, ignoring: %v", key, err)
		return false
	}
	return true
}

// Save persists the full snapshot: one whole-blob write per entity kind. An
// absent user removes the user blob.
func (s *Store) Save(ctx context.Context, h models.History) error {
	if h.User != nil {
		if err := s.saveBlob(ctx, keyUser, h.User); err != nil {
			return err
		}
	} else if err := s.kv.Del(ctx, keyUser); err != nil {
		return err
	}
	if err := s.saveBlob(ctx, keyMoods, h.Moods); err != nil {
		return err
	}
	return s.saveBlob(ctx, keyJournals, h.Journals)
}

func (s *Store) saveBlob(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	blob := string(data)
	if s.cipher != nil {
		blob, err = s.cipher.Encrypt(blob)
		if err != nil {
			return err
		}
	}
	return s.kv.Set(ctx, key, blob)
}

// Wipe removes all persisted state. Used by logout, which is a total reset.
func (s *Store) Wipe(ctx context.Context) error {
	return s.kv.Del(ctx, keyUser, keyMoods, keyJournals)
}
