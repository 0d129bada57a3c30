// Package analytics derives summary metrics from a history snapshot. Every
// function is pure: deterministic for identical input, total over its domain
// (empty histories are fine) and never mutates the snapshot.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/moodmitra/moodmitra-backend/internal/models"
	"github.com/moodmitra/moodmitra-backend/internal/streak"
)

// TrendDays is the length of the daily trend window.
const TrendDays = 30

// MoodCount is one slice of the mood distribution.
type MoodCount struct {
	Mood       models.MoodType `json:"mood"`
	Label      string          `json:"label"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// SentimentCount is one slice of the journal sentiment distribution.
type SentimentCount struct {
	Sentiment  models.Sentiment `json:"sentiment"`
	Count      int              `json:"count"`
	Percentage int              `json:"percentage"`
}

// TrendPoint is one calendar day of the 30-day trend. Score is nil on days
// with no entries so callers can tell "no data" apart from a real zero.
type TrendPoint struct {
	Date    string   `json:"date"`
	Score   *float64 `json:"score"`
	Entries int      `json:"entries"`
}

// WeekSummary is one 7-day window of the weekly rollup.
type WeekSummary struct {
	Week    string  `json:"week"`
	Score   float64 `json:"score"`
	Entries int     `json:"entries"`
}

// Insights holds the scalar metrics for the analytics view. AverageScore is 0
// when there are no mood entries; callers distinguish "no data" from a real
// zero via MoodEntries.
type Insights struct {
	AverageScore     float64         `json:"average_score"`
	MostCommonMood   models.MoodType `json:"most_common_mood,omitempty"`
	MostCommonCount  int             `json:"most_common_count"`
	MoodEntries      int             `json:"mood_entries"`
	JournalEntries   int             `json:"journal_entries"`
	TotalEntries     int             `json:"total_entries"`
	ConsistencyScore int             `json:"consistency_score"`
	CurrentStreak    int             `json:"current_streak"`
}

// Observations are the qualitative flags shown alongside the numbers.
type Observations struct {
	PositivePatterns []string `json:"positive_patterns"`
	GrowthAreas      []string `json:"growth_areas"`
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MoodDistribution groups mood entries by category. Every category appears in
// canonical order, including ones with zero entries, so the output shape is
// stable regardless of history content.
func MoodDistribution(moods []models.MoodEntry) []MoodCount {
	counts := make(map[models.MoodType]int, len(models.AllMoods))
	for _, m := range moods {
		counts[m.Mood]++
	}
	out := make([]MoodCount, 0, len(models.AllMoods))
	for _, mood := range models.AllMoods {
		meta, _ := models.Meta(mood)
		out = append(out, MoodCount{
			Mood:       mood,
			Label:      meta.Label,
			Count:      counts[mood],
			Percentage: percentage(counts[mood], len(moods)),
		})
	}
	return out
}

// SentimentDistribution groups journal entries by sentiment label, same
// shape rules as MoodDistribution.
func SentimentDistribution(journals []models.JournalEntry) []SentimentCount {
	counts := make(map[models.Sentiment]int, len(models.AllSentiments))
	for _, j := range journals {
		counts[j.Sentiment]++
	}
	out := make([]SentimentCount, 0, len(models.AllSentiments))
	for _, s := range models.AllSentiments {
		out = append(out, SentimentCount{
			Sentiment:  s,
			Count:      counts[s],
			Percentage: percentage(counts[s], len(journals)),
		})
	}
	return out
}

// Trend computes the mean intensity score for each of the last 30 calendar
// days ending on now's UTC date, oldest first. Days without entries keep a
// nil score.
func Trend(moods []models.MoodEntry, now time.Time) []TrendPoint {
	today := day(now)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range moods {
		d := day(m.CreatedAt).Format("2006-01-02")
		sums[d] += float64(m.Score)
		counts[d]++
	}

	out := make([]TrendPoint, 0, TrendDays)
	for i := TrendDays - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i).Format("2006-01-02")
		point := TrendPoint{Date: d, Entries: counts[d]}
		if counts[d] > 0 {
			score := round1(sums[d] / float64(counts[d]))
			point.Score = &score
		}
		out = append(out, point)
	}
	return out
}

// WeeklyRollup partitions a 30-day trend into 4 consecutive 7-day windows,
// oldest to newest, covering the most recent 28 days (the two oldest trend
// days fall outside any window). A window's score is the mean of its non-gap
// points, 0 when the window is entirely gaps; its entry count is the sum of
// the daily counts.
func WeeklyRollup(trend []TrendPoint) []WeekSummary {
	out := make([]WeekSummary, 0, 4)
	for w := 0; w < 4; w++ {
		start := len(trend) - (4-w)*7
		if start < 0 {
			start = 0
		}
		end := len(trend) - (3-w)*7
		if end > len(trend) {
			end = len(trend)
		}
		sum, scored, entries := 0.0, 0, 0
		for _, p := range trend[start:end] {
			entries += p.Entries
			if p.Score != nil {
				sum += *p.Score
				scored++
			}
		}
		week := WeekSummary{Week: fmt.Sprintf("Week %d", w+1), Entries: entries}
		if scored > 0 {
			week.Score = round1(sum / float64(scored))
		}
		out = append(out, week)
	}
	return out
}

// ComputeInsights derives the scalar metrics from a history snapshot.
// Most-common ties are broken by canonical category order, so the result is
// deterministic for identical input.
func ComputeInsights(h models.History, now time.Time) Insights {
	ins := Insights{
		MoodEntries:    len(h.Moods),
		JournalEntries: len(h.Journals),
		TotalEntries:   h.TotalEntries(),
		CurrentStreak:  streak.Current(h.Moods, now),
	}

	if len(h.Moods) > 0 {
		sum := 0
		for _, m := range h.Moods {
			sum += m.Score
		}
		ins.AverageScore = round1(float64(sum) / float64(len(h.Moods)))

		counts := make(map[models.MoodType]int)
		for _, m := range h.Moods {
			counts[m.Mood]++
		}
		for _, mood := range models.AllMoods {
			if counts[mood] > ins.MostCommonCount {
				ins.MostCommonMood = mood
				ins.MostCommonCount = counts[mood]
			}
		}
	}

	consistency := percentage(ins.TotalEntries, TrendDays)
	if consistency > 100 {
		consistency = 100
	}
	ins.ConsistencyScore = consistency
	return ins
}

// Observe derives the qualitative flags from the scalar insights.
func Observe(ins Insights) Observations {
	var obs Observations
	if ins.CurrentStreak > 0 {
		obs.PositivePatterns = append(obs.PositivePatterns,
			fmt.Sprintf("You're on a %d-day tracking streak!", ins.CurrentStreak))
	}
	if ins.AverageScore >= 7 {
		obs.PositivePatterns = append(obs.PositivePatterns,
			fmt.Sprintf("Your average mood score is excellent (%.1f/10)", ins.AverageScore))
	}
	if ins.MostCommonMood != "" {
		obs.PositivePatterns = append(obs.PositivePatterns,
			fmt.Sprintf("Your most common mood is %s", ins.MostCommonMood))
	}
	if ins.TotalEntries > 20 {
		obs.PositivePatterns = append(obs.PositivePatterns,
			fmt.Sprintf("Great consistency with %d total entries", ins.TotalEntries))
	}
	if ins.ConsistencyScore < 70 {
		obs.GrowthAreas = append(obs.GrowthAreas,
			"Try to track your mood more consistently")
	}
	if ins.MoodEntries > 0 && ins.AverageScore < 5 {
		obs.GrowthAreas = append(obs.GrowthAreas,
			"Consider reaching out for support if needed")
	}
	if ins.JournalEntries < 5 {
		obs.GrowthAreas = append(obs.GrowthAreas,
			"Writing in your journal can help process emotions")
	}
	return obs
}
