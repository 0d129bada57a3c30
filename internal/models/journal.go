package models

import "time"

// Sentiment is the three-way label derived from journal text at creation
// time. It is computed once and frozen.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// AllSentiments lists the labels in canonical order.
var AllSentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// JournalEntry is one reflective free-text note. Entries are immutable once
// created. Mood is an optional category association.
type JournalEntry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
	Mood      MoodType  `json:"mood,omitempty"`
}
