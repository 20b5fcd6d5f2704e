package engagement

// stubSentiment returns a fixed polarity for any text.
type stubSentiment struct{ polarity float64 }

func (s stubSentiment) Polarity(string) float64 { return s.polarity }

// stubSpectral returns fixed single-frame feature sequences.
type stubSpectral struct{ centroid, zcr float64 }

func (s stubSpectral) Features([]float64, int) ([]float64, []float64) {
	return []float64{s.centroid}, []float64{s.zcr}
}

func constantWave(amplitude float64, sampleRate int, seconds float64) []float64 {
	n := int(float64(sampleRate) * seconds)
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude
	}
	return out
}
