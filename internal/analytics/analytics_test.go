package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmitra/moodmitra-backend/internal/models"
)

var now = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func mood(m models.MoodType, score int, at time.Time) models.MoodEntry {
	return models.MoodEntry{ID: at.String(), Mood: m, Score: score, CreatedAt: at}
}

func journal(s models.Sentiment, at time.Time) models.JournalEntry {
	return models.JournalEntry{ID: at.String(), Content: "x", Sentiment: s, CreatedAt: at}
}

func TestMoodDistributionEmpty(t *testing.T) {
	dist := MoodDistribution(nil)
	require.Len(t, dist, len(models.AllMoods))
	for _, d := range dist {
		assert.Equal(t, 0, d.Count)
		assert.Equal(t, 0, d.Percentage)
	}
}

func TestMoodDistributionPercentagesSumTo100(t *testing.T) {
	moods := []models.MoodEntry{
		mood(models.MoodHappy, 8, now),
		mood(models.MoodHappy, 7, now),
		mood(models.MoodSad, 3, now),
		mood(models.MoodCalm, 6, now),
	}
	dist := MoodDistribution(moods)

	total := 0
	byMood := map[models.MoodType]MoodCount{}
	for _, d := range dist {
		total += d.Percentage
		byMood[d.Mood] = d
	}
	assert.InDelta(t, 100, total, 2) // ±rounding
	assert.Equal(t, 2, byMood[models.MoodHappy].Count)
	assert.Equal(t, 50, byMood[models.MoodHappy].Percentage)
	assert.Equal(t, "Happy", byMood[models.MoodHappy].Label)
	assert.Equal(t, 0, byMood[models.MoodStressed].Count)
}

func TestSentimentDistribution(t *testing.T) {
	journals := []models.JournalEntry{
		journal(models.SentimentPositive, now),
		journal(models.SentimentPositive, now),
		journal(models.SentimentNegative, now),
	}
	dist := SentimentDistribution(journals)
	require.Len(t, dist, len(models.AllSentiments))

	byLabel := map[models.Sentiment]SentimentCount{}
	for _, d := range dist {
		byLabel[d.Sentiment] = d
	}
	assert.Equal(t, 2, byLabel[models.SentimentPositive].Count)
	assert.Equal(t, 67, byLabel[models.SentimentPositive].Percentage)
	assert.Equal(t, 33, byLabel[models.SentimentNegative].Percentage)
	assert.Equal(t, 0, byLabel[models.SentimentNeutral].Count)
}

func TestTrendShape(t *testing.T) {
	trend := Trend(nil, now)
	require.Len(t, trend, TrendDays)
	assert.Equal(t, "2025-02-14", trend[0].Date)
	assert.Equal(t, "2025-03-15", trend[len(trend)-1].Date)
	for _, p := range trend {
		assert.Nil(t, p.Score)
		assert.Equal(t, 0, p.Entries)
	}
}

func TestTrendDailyMeansAndGaps(t *testing.T) {
	moods := []models.MoodEntry{
		mood(models.MoodHappy, 8, now),
		mood(models.MoodSad, 4, now.Add(-2*time.Hour)),
		mood(models.MoodCalm, 5, now.AddDate(0, 0, -29)),
		// Outside the window entirely.
		mood(models.MoodCalm, 9, now.AddDate(0, 0, -31)),
	}
	trend := Trend(moods, now)

	today := trend[len(trend)-1]
	require.NotNil(t, today.Score)
	assert.Equal(t, 6.0, *today.Score)
	assert.Equal(t, 2, today.Entries)

	oldest := trend[0]
	require.NotNil(t, oldest.Score)
	assert.Equal(t, 5.0, *oldest.Score)

	// Yesterday is a gap, not a zero.
	assert.Nil(t, trend[len(trend)-2].Score)
}

func TestWeeklyRollup(t *testing.T) {
	moods := []models.MoodEntry{
		mood(models.MoodHappy, 8, now),                 // week 4
		mood(models.MoodHappy, 6, now.AddDate(0, 0, -1)), // week 4
		mood(models.MoodSad, 2, now.AddDate(0, 0, -10)),  // week 3
	}
	weeks := WeeklyRollup(Trend(moods, now))
	require.Len(t, weeks, 4)

	assert.Equal(t, "Week 1", weeks[0].Week)
	assert.Equal(t, 0.0, weeks[0].Score)
	assert.Equal(t, 0, weeks[0].Entries)

	assert.Equal(t, 2.0, weeks[2].Score)
	assert.Equal(t, 1, weeks[2].Entries)

	assert.Equal(t, 7.0, weeks[3].Score)
	assert.Equal(t, 2, weeks[3].Entries)
}

func TestComputeInsightsEmpty(t *testing.T) {
	ins := ComputeInsights(models.History{}, now)
	assert.Equal(t, 0.0, ins.AverageScore)
	assert.Equal(t, models.MoodType(""), ins.MostCommonMood)
	assert.Equal(t, 0, ins.TotalEntries)
	assert.Equal(t, 0, ins.ConsistencyScore)
	assert.Equal(t, 0, ins.CurrentStreak)
}

func TestComputeInsightsScalars(t *testing.T) {
	h := models.History{
		Moods: []models.MoodEntry{
			mood(models.MoodHappy, 8, now),
			mood(models.MoodHappy, 7, now.AddDate(0, 0, -1)),
			mood(models.MoodSad, 4, now.AddDate(0, 0, -2)),
		},
		Journals: []models.JournalEntry{
			journal(models.SentimentPositive, now),
		},
	}
	ins := ComputeInsights(h, now)
	assert.Equal(t, 6.3, ins.AverageScore)
	assert.Equal(t, models.MoodHappy, ins.MostCommonMood)
	assert.Equal(t, 2, ins.MostCommonCount)
	assert.Equal(t, 4, ins.TotalEntries)
	assert.Equal(t, 13, ins.ConsistencyScore) // round(4/30*100)
	assert.Equal(t, 3, ins.CurrentStreak)
}

func TestComputeInsightsMostCommonTieIsCanonical(t *testing.T) {
	h := models.History{
		Moods: []models.MoodEntry{
			mood(models.MoodStressed, 5, now),
			mood(models.MoodCalm, 5, now),
		},
	}
	// Calm precedes stressed in canonical order, regardless of entry order.
	ins := ComputeInsights(h, now)
	assert.Equal(t, models.MoodCalm, ins.MostCommonMood)
}

func TestConsistencyScoreSaturatesAt100(t *testing.T) {
	h := models.History{}
	for i := 0; i < 31; i++ {
		h.Moods = append(h.Moods, mood(models.MoodNeutral, 5, now.Add(-time.Duration(i)*time.Minute)))
	}
	ins := ComputeInsights(h, now)
	assert.Equal(t, 100, ins.ConsistencyScore)
}

func TestObserveFlags(t *testing.T) {
	h := models.History{
		Moods: []models.MoodEntry{
			mood(models.MoodHappy, 9, now),
			mood(models.MoodHappy, 8, now.AddDate(0, 0, -1)),
		},
	}
	obs := Observe(ComputeInsights(h, now))
	assert.NotEmpty(t, obs.PositivePatterns)
	// Few entries and no journals: both growth flags fire.
	assert.Contains(t, obs.GrowthAreas, "Try to track your mood more consistently")
	assert.Contains(t, obs.GrowthAreas, "Writing in your journal can help process emotions")
}

func TestBuildPayloadDeterministic(t *testing.T) {
	h := models.History{
		Moods:    []models.MoodEntry{mood(models.MoodHappy, 8, now)},
		Journals: []models.JournalEntry{journal(models.SentimentNeutral, now)},
	}
	a := BuildPayload(h, now)
	b := BuildPayload(h, now)
	assert.Equal(t, a, b)
}
