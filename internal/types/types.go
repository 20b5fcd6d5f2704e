package types

import "time"

type Transcript struct {
	Segments []Segment `json:"segments"`
}

// Segment is one timestamped span of transcribed speech, as produced by the
// ASR engine. Times are in seconds from the start of the source audio.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Source records how a candidate was produced. Diagnostic only; it never
// influences scoring.
type Source string

const (
	SourceAtomic   Source = "atomic"
	SourceCombined Source = "combined"
)

// Candidate is a time-bounded span of the source considered for promotion to
// a final short clip.
type Candidate struct {
	Start time.Duration
	End   time.Duration
	Text  string

	Source Source
}

// Duration is recomputed from the bounds, never trusted from upstream.
func (c Candidate) Duration() time.Duration { return c.End - c.Start }

// ScoredCandidate is a candidate with its fused engagement score attached.
// Never mutated after creation.
type ScoredCandidate struct {
	Candidate

	EngagementScore float64
}

// AudioBuffer is a full-length decoded mono waveform with samples normalized
// to [-1, 1]. It is shared read-only across all candidate scoring passes;
// Slice returns views, never copies.
type AudioBuffer struct {
	Samples    []float64
	SampleRate int
}

// Slice returns the samples covering [start, end). Sample indices truncate
// toward zero and are clamped to the buffer bounds; an inverted or
// out-of-range window yields an empty slice.
func (b AudioBuffer) Slice(start, end time.Duration) []float64 {
	lo := int(start.Seconds() * float64(b.SampleRate))
	hi := int(end.Seconds() * float64(b.SampleRate))
	if lo < 0 {
		lo = 0
	}
	if hi > len(b.Samples) {
		hi = len(b.Samples)
	}
	if lo >= hi {
		return nil
	}
	return b.Samples[lo:hi]
}

func (b AudioBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

type Manifest struct {
	RunID    string         `json:"run_id"`
	Podcast  string         `json:"podcast"`
	Gameplay string         `json:"gameplay"`
	Clips    []ManifestClip `json:"clips"`
}

type ManifestClip struct {
	ID              string  `json:"id"`
	StartSec        float64 `json:"start_sec"`
	EndSec          float64 `json:"end_sec"`
	DurationSec     float64 `json:"duration_sec"`
	EngagementScore float64 `json:"engagement_score"`
	Source          string  `json:"source"`
	Text            string  `json:"text"`
	File            string  `json:"file"`
	Subtitles       string  `json:"subtitles"`
}
