package models

import (
	"fmt"
	"time"
)

// MoodType is one of the fixed mood categories a user can record.
type MoodType string

const (
	MoodHappy    MoodType = "happy"
	MoodSad      MoodType = "sad"
	MoodStressed MoodType = "stressed"
	MoodCalm     MoodType = "calm"
	MoodNeutral  MoodType = "neutral"
)

// AllMoods lists every valid category in canonical order. Analytics that
// break ties between categories iterate this slice so results are stable.
var AllMoods = []MoodType{MoodHappy, MoodCalm, MoodNeutral, MoodSad, MoodStressed}

// Valid reports whether m is one of the fixed categories.
func (m MoodType) Valid() bool {
	for _, v := range AllMoods {
		if m == v {
			return true
		}
	}
	return false
}

const (
	// MinScore and MaxScore bound the intensity score of a mood entry.
	MinScore = 1
	MaxScore = 10
)

// MoodEntry is one mood observation. Entries are immutable once created;
// there is no edit or delete operation.
type MoodEntry struct {
	ID        string    `json:"id"`
	Mood      MoodType  `json:"mood"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	Note      string    `json:"note,omitempty"`
}

// MoodMeta is the display metadata for a mood category.
type MoodMeta struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var moodMeta = map[MoodType]MoodMeta{
	MoodHappy:    {Label: "Happy", Emoji: "😊", Color: "#fbbf24", Description: "Feeling joyful and positive"},
	MoodCalm:     {Label: "Calm", Emoji: "😌", Color: "#10b981", Description: "Peaceful and relaxed"},
	MoodNeutral:  {Label: "Neutral", Emoji: "😐", Color: "#6b7280", Description: "Balanced and steady"},
	MoodSad:      {Label: "Sad", Emoji: "😢", Color: "#3b82f6", Description: "Feeling down or melancholy"},
	MoodStressed: {Label: "Stressed", Emoji: "😰", Color: "#ef4444", Description: "Anxious or overwhelmed"},
}

func init() {
	// Every category must carry metadata; a missing entry is a programming
	// error, not a runtime fallback.
	for _, m := range AllMoods {
		if _, ok := moodMeta[m]; !ok {
			panic(fmt.Sprintf("models: mood %q has no display metadata", m))
		}
	}
}

// Meta returns the display metadata for a mood category.
func Meta(m MoodType) (MoodMeta, bool) {
	meta, ok := moodMeta[m]
	return meta, ok
}
