package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/ArjunSarkar1/ClipsMaker/internal/config"
	"github.com/ArjunSarkar1/ClipsMaker/internal/domain/engagement"
	"github.com/ArjunSarkar1/ClipsMaker/internal/domain/subtitles"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports/adapters/ffmpeg"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports/adapters/spectral"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports/adapters/vader"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports/adapters/wavfile"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports/adapters/whispercpp"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports/adapters/ytdlp"
	"github.com/ArjunSarkar1/ClipsMaker/internal/usecase"
)

type Config struct {
	// PodcastInput and GameplayInput accept a local path or a YouTube URL.
	PodcastInput  string
	GameplayInput string

	OutDir        string
	CacheDir      string
	ClipsN        int
	BurnSubtitles bool

	Settings config.Settings
	Logger   *slog.Logger
}

func (c Config) Validate() error {
	if c.PodcastInput == "" {
		return errors.New("podcast input is empty")
	}
	if c.GameplayInput == "" {
		return errors.New("gameplay input is empty")
	}
	for _, in := range []string{c.PodcastInput, c.GameplayInput} {
		if ytdlp.IsURL(in) {
			if _, err := ytdlp.CleanURL(in); err != nil {
				return err
			}
			continue
		}
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
	}
	if c.ClipsN <= 0 {
		return errors.New("clips must be > 0")
	}
	return c.Settings.Validate()
}

func Run(ctx context.Context, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	set := cfg.Settings

	// adapters
	video := ffmpeg.New(set.Tools.FFmpeg, set.Tools.FFprobe, ffmpeg.Options{
		Width:      set.Video.TargetWidth,
		Height:     set.Video.TargetHeight,
		FPS:        set.Video.FPS,
		ZoomFactor: set.Video.ZoomFactor,
		Codec:      set.Video.Codec,
		AudioCodec: set.Video.AudioCodec,
		Preset:     set.Video.Preset,
		CRF:        set.Video.CRF,
	})
	asr := whispercpp.New(set.Tools.WhisperBin, set.Tools.WhisperModel)
	decoder := wavfile.New()
	downloader := ytdlp.New(set.Tools.YtDlp)
	analyzer := engagement.NewAnalyzer(analyzerConfig(set.Engagement), vader.New(), spectral.New(), logger)

	baseCache := cfg.CacheDir
	if baseCache == "" {
		baseCache = ".cache"
	}

	podcast, err := resolveInput(ctx, downloader, cfg.PodcastInput, filepath.Join(baseCache, "downloads"), logger)
	if err != nil {
		return err
	}
	gameplay, err := resolveInput(ctx, downloader, cfg.GameplayInput, filepath.Join(baseCache, "downloads"), logger)
	if err != nil {
		return err
	}

	jobID := hash(podcast)
	cacheDir := filepath.Join(baseCache, "runs", jobID)
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	logger.Debug("workspace ready", "cache", cacheDir)

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	runOutDir := buildRunOutDir(outDir, podcast, time.Now().UTC())
	if err := os.MkdirAll(filepath.Join(runOutDir, "clips"), 0o755); err != nil {
		return err
	}
	if cfg.BurnSubtitles {
		if err := os.MkdirAll(filepath.Join(runOutDir, "subtitles"), 0o755); err != nil {
			return err
		}
	}
	logger.Info("output run dir", "path", runOutDir)

	uc := usecase.New(usecase.Deps{
		Video:      video,
		ASR:        asr,
		Audio:      decoder,
		Engagement: analyzer,
		Logger:     logger,
	})

	res, err := uc.Run(ctx, usecase.Input{
		PodcastMP4:    podcast,
		GameplayMP4:   gameplay,
		ClipsN:        cfg.ClipsN,
		BurnSubtitles: cfg.BurnSubtitles,
		Subtitles: subtitles.Options{
			WordsPerChunk: set.Subtitles.WordsPerChunk,
			Fade:          time.Duration(set.Subtitles.FadeMillis) * time.Millisecond,
			Highlight:     set.Subtitles.Highlight,
			FontSize:      set.Subtitles.FontSize,
			MarginBottom:  set.Subtitles.MarginBottom,
		},
		CacheDir: cacheDir,
		OutDir:   runOutDir,
		RunID:    uuid.NewString(),
	})
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(runOutDir, "manifest.json")
	if err := os.WriteFile(manifestPath, b, 0o644); err != nil {
		return err
	}
	logger.Info("manifest written", "clips", len(res.Manifest.Clips), "path", manifestPath)

	printSummary(os.Stdout, res.Manifest)
	return nil
}

func analyzerConfig(e config.Engagement) engagement.Config {
	w := engagement.DefaultWeights()
	w.Text = e.TextWeight
	w.Audio = e.AudioWeight
	return engagement.Config{
		Weights:       w,
		TargetCombine: secs(e.TargetCombineSeconds),
		MinClip:       secs(e.MinClipSeconds),
		MaxClip:       secs(e.MaxClipSeconds),
		MaxResults:    e.MaxResults,
	}
}

func secs(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }

func resolveInput(ctx context.Context, dl ports.Downloader, in, downloadDir string, logger *slog.Logger) (string, error) {
	if !ytdlp.IsURL(in) {
		return filepath.Abs(in)
	}
	if err := os.MkdirAll(downloadDir, 0o755); err != nil {
		return "", err
	}
	logger.Info("downloading source video", "url", in)
	path, err := dl.Download(ctx, in, downloadDir)
	if err != nil {
		return "", err
	}
	logger.Info("download complete", "path", path)
	return path, nil
}

func buildRunOutDir(outRoot, podcastPath string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(podcastPath), filepath.Ext(podcastPath))
	name = normalizePathSegment(name)
	if name == "" {
		name = "input"
	}
	ts := now.UTC().Format("20060102-150405Z")
	runSeed := fmt.Sprintf("%s|%d", podcastPath, now.UTC().UnixNano())
	suffix := hash(runSeed)[:6]
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", name, ts, suffix))
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.ASR = (*whispercpp.Adapter)(nil)
var _ ports.AudioDecoder = (*wavfile.Decoder)(nil)
var _ ports.Downloader = (*ytdlp.Adapter)(nil)
var _ ports.SentimentScorer = (*vader.Scorer)(nil)
var _ ports.SpectralAnalyzer = (*spectral.Analyzer)(nil)
