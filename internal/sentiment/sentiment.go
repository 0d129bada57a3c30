// Package sentiment classifies free text into a three-way label by counting
// exact keyword matches. Matching is exact-token only: no stemming and no
// substring matching, so "happiness" does not match "happy". That is an
// intentional limitation of the classifier, kept cheap and deterministic.
package sentiment

import (
	"strings"

	"github.com/moodmitra/moodmitra-backend/internal/models"
)

// PositiveWords and NegativeWords are the fixed keyword sets. They are part
// of the classifier's contract, exported so callers can enumerate them or
// build an extended classifier on top.
var (
	PositiveWords = []string{
		"happy", "good", "great", "amazing", "wonderful", "love", "joy",
		"excited", "grateful", "blessed", "perfect", "awesome", "brilliant",
		"fantastic",
	}
	NegativeWords = []string{
		"sad", "bad", "terrible", "awful", "hate", "angry", "frustrated",
		"worried", "anxious", "depressed", "horrible", "worst", "difficult",
	}
)

// Classifier counts token matches against a positive and a negative word set.
type Classifier struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New builds a classifier from the given word sets. Words are lowercased.
func New(positive, negative []string) *Classifier {
	c := &Classifier{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		c.positive[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range negative {
		c.negative[strings.ToLower(w)] = struct{}{}
	}
	return c
}

// Default returns a classifier over PositiveWords and NegativeWords.
func Default() *Classifier {
	return New(PositiveWords, NegativeWords)
}

// Classify tokenizes text on whitespace and returns positive when positive
// matches outnumber negative ones, negative for the reverse, and neutral
// otherwise (including empty input). It is pure and never fails.
func (c *Classifier) Classify(text string) models.Sentiment {
	positive, negative := 0, 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if _, ok := c.positive[token]; ok {
			positive++
		}
		if _, ok := c.negative[token]; ok {
			negative++
		}
	}
	switch {
	case positive > negative:
		return models.SentimentPositive
	case negative > positive:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

var defaultClassifier = Default()

// Classify runs the default classifier.
func Classify(text string) models.Sentiment {
	return defaultClassifier.Classify(text)
}
