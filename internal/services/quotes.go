package services

import "github.com/moodmitra/moodmitra-backend/internal/models"

// Quote is one curated motivational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// quotesByMood holds curated quotes keyed by mood category, plus a general
// wellness set appended to every selection.
var quotesByMood = map[models.MoodType][]Quote{
	models.MoodHappy: {
		{Text: "Happiness is not something ready-made. It comes from your own actions.", Author: "Dalai Lama"},
		{Text: "The most important thing is to enjoy your life—to be happy—it's all that matters.", Author: "Audrey Hepburn"},
		{Text: "Happiness is when what you think, what you say, and what you do are in harmony.", Author: "Mahatma Gandhi"},
	},
	models.MoodSad: {
		{Text: "The darkest nights produce the brightest stars.", Author: "John Green"},
		{Text: "You are stronger than you believe, more talented than you think, and capable of more than you imagine.", Author: "Roy T. Bennett"},
		{Text: "Every storm runs out of rain. Every dark night turns into day.", Author: "Maya Angelou"},
	},
	models.MoodStressed: {
		{Text: "You have been assigned this mountain to show others it can be moved.", Author: "Mel Robbins"},
		{Text: "Stress is caused by being here but wanting to be there.", Author: "Eckhart Tolle"},
		{Text: "Take time to make your soul happy.", Author: "Unknown"},
	},
	models.MoodCalm: {
		{Text: "Peace comes from within. Do not seek it without.", Author: "Buddha"},
		{Text: "Calmness is the cradle of power.", Author: "Josiah Gilbert Holland"},
		{Text: "In the midst of movement and chaos, keep stillness inside of you.", Author: "Deepak Chopra"},
	},
	models.MoodNeutral: {
		{Text: "Every day is a new beginning. Take a deep breath and start again.", Author: "Unknown"},
		{Text: "Balance is not better time management, but better boundary management.", Author: "Betsy Jacobson"},
		{Text: "Today is the first day of the rest of your life.", Author: "John Denver"},
	},
}

var generalQuotes = []Quote{
	{Text: "Mental health is not a destination, but a process. It's about how you drive, not where you're going.", Author: "Noam Shpancer"},
	{Text: "Self-care is not selfish. You cannot serve from an empty vessel.", Author: "Eleanor Brown"},
	{Text: "Your mental health is a priority. Your happiness is essential. Your self-care is a necessity.", Author: "Unknown"},
	{Text: "It's okay to not be okay. It's not okay to not ask for help.", Author: "Unknown"},
	{Text: "Progress, not perfection, is the goal.", Author: "Unknown"},
	{Text: "You are enough, just as you are. Each emotion you feel is valid.", Author: "Unknown"},
}

// QuotesForMood returns the quotes curated for a mood followed by the general
// wellness set. An unrecognized or empty mood yields the general set only.
func QuotesForMood(mood models.MoodType) []Quote {
	curated, ok := quotesByMood[mood]
	if !ok {
		out := make([]Quote, len(generalQuotes))
		copy(out, generalQuotes)
		return out
	}
	out := make([]Quote, 0, len(curated)+len(generalQuotes))
	out = append(out, curated...)
	out = append(out, generalQuotes...)
	return out
}

// JournalPrompts are shown next to the journal form as writing inspiration.
var JournalPrompts = []string{
	"What made me smile today?",
	"What am I grateful for right now?",
	"How did I handle challenges today?",
	"What emotions did I experience today?",
	"What would I like to improve tomorrow?",
	"What positive affirmation do I need to hear?",
}
