package ports

import (
	"context"
	"time"

	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

type VideoTool interface {
	ExtractAudioMono16k(ctx context.Context, inMP4, outWav string) error
	// RenderVerticalClip composes the podcast (top) and gameplay (bottom)
	// tracks into a 9:16 split-screen clip covering [start, end], keeping
	// only the podcast audio. When burnASS is non-empty the subtitle track
	// is burned into the video.
	RenderVerticalClip(ctx context.Context, podcastMP4, gameplayMP4 string, start, end time.Duration, outMP4, burnASS string) error
	ProbeDuration(ctx context.Context, inMP4 string) (time.Duration, error)
}

type ASR interface {
	Transcribe(ctx context.Context, wavPath, cacheDir string) (types.Transcript, error)
}

type AudioDecoder interface {
	Decode(path string) (types.AudioBuffer, error)
}

type Downloader interface {
	// Download fetches a remote video into destDir and returns the path of
	// the downloaded file.
	Download(ctx context.Context, url, destDir string) (string, error)
}

// SentimentScorer returns signed polarity in [-1, 1] for a text span.
type SentimentScorer interface {
	Polarity(text string) float64
}

// SpectralAnalyzer returns per-frame spectral centroid (Hz) and
// zero-crossing-rate sequences for a sample slice.
type SpectralAnalyzer interface {
	Features(samples []float64, sampleRate int) (centroids, zcr []float64)
}
