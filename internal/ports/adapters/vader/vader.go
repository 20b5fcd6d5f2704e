package vader

import "github.com/jonreiter/govader"

// Scorer wraps the VADER sentiment lexicon. Construction loads the lexicon
// once; reuse the scorer across calls.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func New() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound sentiment score in [-1, 1].
func (s *Scorer) Polarity(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}
