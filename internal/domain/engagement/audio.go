package engagement

import (
	"math"
	"time"

	"github.com/ArjunSarkar1/ClipsMaker/internal/ports"
	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

// AudioScorer rates a time-aligned span of the waveform using signal-level
// heuristics: loudness, brightness, and speech activity.
type AudioScorer struct {
	spectral ports.SpectralAnalyzer
	w        Weights
}

func NewAudioScorer(spectral ports.SpectralAnalyzer, w Weights) *AudioScorer {
	return &AudioScorer{spectral: spectral, w: w}
}

// Score returns an engagement estimate in [0, 1] for the waveform between
// start and end. An empty slice scores exactly 0.
func (a *AudioScorer) Score(buf types.AudioBuffer, start, end time.Duration) float64 {
	slice := buf.Slice(start, end)
	if len(slice) == 0 {
		return 0
	}

	score := math.Min(rms(slice)*a.w.Loudness, a.w.LoudnessCap)

	centroids, zcr := a.spectral.Features(slice, buf.SampleRate)
	score += math.Min(mean(centroids)/a.w.Brightness, a.w.BrightnessCap)
	score += math.Min(mean(zcr)*a.w.Activity, a.w.ActivityCap)

	return math.Min(score, 1)
}

func rms(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
