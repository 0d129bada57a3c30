package analytics

import (
	"time"

	"github.com/moodmitra/moodmitra-backend/internal/models"
)

// Payload bundles every derived metric for one history snapshot. It is what
// the insights endpoint returns and what the live insights socket pushes
// after each mutation.
type Payload struct {
	MoodDistribution      []MoodCount      `json:"mood_distribution"`
	Trend                 []TrendPoint     `json:"trend"`
	WeeklyRollup          []WeekSummary    `json:"weekly_rollup"`
	SentimentDistribution []SentimentCount `json:"sentiment_distribution"`
	Insights              Insights         `json:"insights"`
	Observations          Observations     `json:"observations"`
}

// BuildPayload runs the full aggregation pipeline over a snapshot.
func BuildPayload(h models.History, now time.Time) Payload {
	trend := Trend(h.Moods, now)
	ins := ComputeInsights(h, now)
	return Payload{
		MoodDistribution:      MoodDistribution(h.Moods),
		Trend:                 trend,
		WeeklyRollup:          WeeklyRollup(trend),
		SentimentDistribution: SentimentDistribution(h.Journals),
		Insights:              ins,
		Observations:          Observe(ins),
	}
}
