package engagement

import (
	"math"
	"strings"

	"github.com/ArjunSarkar1/ClipsMaker/internal/ports"
)

// Laughter markers counted case-insensitively, text and emoji forms.
var laughterMarkers = []string{"haha", "lol", "lmao", "😂", "😄", "😆"}

// TextScorer rates a text span for viewer engagement using lexical and
// sentiment heuristics.
type TextScorer struct {
	sentiment ports.SentimentScorer
	w         Weights
}

func NewTextScorer(sentiment ports.SentimentScorer, w Weights) *TextScorer {
	return &TextScorer{sentiment: sentiment, w: w}
}

// Score returns an engagement estimate in [0, 1]. Empty or whitespace-only
// text scores exactly 0.
func (t *TextScorer) Score(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	// Strong sentiment in either direction holds attention.
	polarity := clamp(t.sentiment.Polarity(trimmed), -1, 1)
	score := math.Abs(polarity) * t.w.Sentiment

	score += math.Min(float64(strings.Count(trimmed, "?"))*t.w.Question, t.w.QuestionCap)
	score += math.Min(float64(strings.Count(trimmed, "!"))*t.w.Exclamation, t.w.ExclamationCap)

	lower := strings.ToLower(trimmed)
	laughs := 0
	for _, m := range laughterMarkers {
		laughs += strings.Count(lower, m)
	}
	score += math.Min(float64(laughs)*t.w.Laughter, t.w.LaughterCap)

	if n := len(strings.Fields(trimmed)); n >= t.w.MinWords && n <= t.w.MaxWords {
		score += t.w.LengthBonus
	}

	return math.Min(score, 1)
}
