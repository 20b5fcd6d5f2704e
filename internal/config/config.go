package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Engagement tunes the candidate selection stage.
type Engagement struct {
	TextWeight           float64 `toml:"text_weight"`
	AudioWeight          float64 `toml:"audio_weight"`
	TargetCombineSeconds float64 `toml:"target_combine_seconds"`
	MinClipSeconds       float64 `toml:"min_clip_seconds"`
	MaxClipSeconds       float64 `toml:"max_clip_seconds"`
	MaxResults           int     `toml:"max_results"`
}

// Video controls the rendered clip geometry and encoding.
type Video struct {
	TargetWidth  int     `toml:"target_width"`
	TargetHeight int     `toml:"target_height"`
	FPS          int     `toml:"fps"`
	ZoomFactor   float64 `toml:"zoom_factor"`
	Codec        string  `toml:"codec"`
	AudioCodec   string  `toml:"audio_codec"`
	Preset       string  `toml:"preset"`
	CRF          int     `toml:"crf"`
}

// Subtitles controls caption pacing and styling.
type Subtitles struct {
	FontSize      int  `toml:"font_size"`
	WordsPerChunk int  `toml:"words_per_chunk"`
	FadeMillis    int  `toml:"fade_millis"`
	MarginBottom  int  `toml:"margin_bottom"`
	Highlight     bool `toml:"highlight"`
}

// Tools locates the external binaries the pipeline shells out to.
type Tools struct {
	FFmpeg       string `toml:"ffmpeg"`
	FFprobe      string `toml:"ffprobe"`
	WhisperBin   string `toml:"whisper_bin"`
	WhisperModel string `toml:"whisper_model"`
	YtDlp        string `toml:"yt_dlp"`
}

type Settings struct {
	Engagement Engagement `toml:"engagement"`
	Video      Video      `toml:"video"`
	Subtitles  Subtitles  `toml:"subtitles"`
	Tools      Tools      `toml:"tools"`
}

// Default returns the built-in settings: a 0.4/0.6 text/audio split, 30s
// merge target, 10-60s clip bounds, 1080x1920 output.
func Default() Settings {
	return Settings{
		Engagement: Engagement{
			TextWeight:           0.4,
			AudioWeight:          0.6,
			TargetCombineSeconds: 30,
			MinClipSeconds:       10,
			MaxClipSeconds:       60,
			MaxResults:           10,
		},
		Video: Video{
			TargetWidth:  1080,
			TargetHeight: 1920,
			FPS:          30,
			ZoomFactor:   1.3,
			Codec:        "libx264",
			AudioCodec:   "aac",
			Preset:       "veryfast",
			CRF:          18,
		},
		Subtitles: Subtitles{
			FontSize:      64,
			WordsPerChunk: 3,
			FadeMillis:    300,
			MarginBottom:  100,
			Highlight:     true,
		},
		Tools: Tools{
			FFmpeg:       "ffmpeg",
			FFprobe:      "ffprobe",
			WhisperBin:   ".cache/bin/whisper.cpp",
			WhisperModel: ".cache/models/ggml-base.bin",
			YtDlp:        "yt-dlp",
		},
	}
}

// Load reads a TOML settings file over the defaults. An empty path returns
// the defaults unchanged; a missing file is an error so typos do not
// silently fall back.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config file %s does not exist", path)
		}
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Sample returns the annotated sample configuration shipped with the binary.
func Sample() string { return sampleConfig }

func (s Settings) Validate() error {
	e := s.Engagement
	if e.TextWeight < 0 || e.AudioWeight < 0 {
		return errors.New("engagement weights must be non-negative")
	}
	if e.TextWeight+e.AudioWeight <= 0 {
		return errors.New("at least one engagement weight must be positive")
	}
	if e.MinClipSeconds <= 0 {
		return errors.New("min_clip_seconds must be > 0")
	}
	if e.MaxClipSeconds < e.MinClipSeconds {
		return errors.New("max_clip_seconds must be >= min_clip_seconds")
	}
	if e.TargetCombineSeconds <= 0 {
		return errors.New("target_combine_seconds must be > 0")
	}
	if e.MaxResults <= 0 {
		return errors.New("max_results must be > 0")
	}
	v := s.Video
	if v.TargetWidth <= 0 || v.TargetHeight <= 0 {
		return errors.New("video dimensions must be > 0")
	}
	if v.FPS <= 0 {
		return errors.New("fps must be > 0")
	}
	if v.ZoomFactor < 1 {
		return errors.New("zoom_factor must be >= 1")
	}
	if s.Subtitles.WordsPerChunk <= 0 {
		return errors.New("words_per_chunk must be > 0")
	}
	if s.Tools.WhisperModel == "" {
		return errors.New("whisper_model is required")
	}
	return nil
}
