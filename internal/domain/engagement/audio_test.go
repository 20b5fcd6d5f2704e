package engagement

import (
	"math"
	"testing"
	"time"

	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

func TestAudioScorer_EmptySliceScoresZero(t *testing.T) {
	sc := NewAudioScorer(stubSpectral{centroid: 4000, zcr: 0.5}, DefaultWeights())
	buf := types.AudioBuffer{Samples: constantWave(0.5, 100, 1), SampleRate: 100}

	tests := []struct {
		name       string
		start, end time.Duration
	}{
		{"inverted", 2 * time.Second, time.Second},
		{"beyond buffer", 5 * time.Second, 6 * time.Second},
		{"zero width", time.Second, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sc.Score(buf, tt.start, tt.end); got != 0 {
				t.Fatalf("expected 0 for empty slice, got %v", got)
			}
		})
	}
}

func TestAudioScorer_Components(t *testing.T) {
	tests := []struct {
		name      string
		amplitude float64
		centroid  float64
		zcr       float64
		want      float64
	}{
		{"loudness only", 0.02, 0, 0, 0.2},
		{"loudness capped", 1, 0, 0, 0.4},
		{"brightness", 0, 1000, 0, 0.2},
		{"brightness capped", 0, 100000, 0, 0.3},
		{"activity", 0, 0, 0.05, 0.1},
		{"activity capped", 0, 0, 1, 0.3},
		{"all capped clamps to one", 1, 100000, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewAudioScorer(stubSpectral{centroid: tt.centroid, zcr: tt.zcr}, DefaultWeights())
			buf := types.AudioBuffer{Samples: constantWave(tt.amplitude, 1000, 2), SampleRate: 1000}
			got := sc.Score(buf, 0, 2*time.Second)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAudioScorer_SliceTruncation(t *testing.T) {
	// The window [1.5s, 2s) on a 2s buffer must cover exactly the back
	// quarter of the samples.
	buf := types.AudioBuffer{Samples: make([]float64, 2000), SampleRate: 1000}
	got := buf.Slice(1500*time.Millisecond, 2*time.Second)
	if len(got) != 500 {
		t.Fatalf("slice length = %d, want 500", len(got))
	}
}
