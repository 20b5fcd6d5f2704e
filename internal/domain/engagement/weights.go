package engagement

// Weights tunes the individual engagement signals. The defaults are a
// starting configuration, not empirically optimal constants; callers may
// adjust any of them.
type Weights struct {
	// Fusion split between the two analyses.
	Text  float64
	Audio float64

	// Text signals.
	Sentiment      float64
	Question       float64
	QuestionCap    float64
	Exclamation    float64
	ExclamationCap float64
	Laughter       float64
	LaughterCap    float64
	LengthBonus    float64
	MinWords       int
	MaxWords       int

	// Audio signals.
	Loudness      float64
	LoudnessCap   float64
	Brightness    float64 // centroid divisor, Hz
	BrightnessCap float64
	Activity      float64
	ActivityCap   float64
}

func DefaultWeights() Weights {
	return Weights{
		Text:  0.4,
		Audio: 0.6,

		Sentiment:      0.3,
		Question:       0.2,
		QuestionCap:    0.3,
		Exclamation:    0.15,
		ExclamationCap: 0.2,
		Laughter:       0.1,
		LaughterCap:    0.2,
		LengthBonus:    0.1,
		MinWords:       5,
		MaxWords:       50,

		Loudness:      10,
		LoudnessCap:   0.4,
		Brightness:    5000,
		BrightnessCap: 0.3,
		Activity:      2,
		ActivityCap:   0.3,
	}
}

func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
