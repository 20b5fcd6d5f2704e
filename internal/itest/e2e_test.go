//go:build integration

package itest

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/ArjunSarkar1/ClipsMaker/internal/config"
	"github.com/ArjunSarkar1/ClipsMaker/internal/pipeline"
	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
	"log/slog"
)

// TestE2E drives the full pipeline against synthesized fixtures. It needs
// ffmpeg, espeak-ng, and a whisper.cpp install pointed to by
// CLIPSMAKER_WHISPER_BIN / CLIPSMAKER_WHISPER_MODEL.
func TestE2E(t *testing.T) {
	whisperBin := os.Getenv("CLIPSMAKER_WHISPER_BIN")
	whisperModel := os.Getenv("CLIPSMAKER_WHISPER_MODEL")
	if whisperBin == "" || whisperModel == "" {
		t.Fatalf("CLIPSMAKER_WHISPER_BIN and CLIPSMAKER_WHISPER_MODEL are required for itest")
	}

	tmp := t.TempDir()
	podcast := filepath.Join(tmp, "podcast.mp4")
	gameplay := filepath.Join(tmp, "gameplay.mp4")

	// Speech audio via espeak-ng; repeated so the transcript clears the
	// 10 second candidate floor.
	wav := filepath.Join(tmp, "speech.wav")
	text := "This is amazing! Really? No way. Haha that is so funny. " +
		"What happens next is even better! You will not believe this part."
	cmd := exec.Command("espeak-ng", "-s", "120", "-w", wav, text+" "+text+" "+text)
	if b, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("espeak-ng failed: %v\n%s", err, string(b))
	}

	// Podcast fixture: black frames plus the synthesized speech.
	ff := exec.Command("ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", "color=c=black:s=1280x720:d=40",
		"-i", wav,
		"-shortest",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		podcast,
	)
	if b, err := ff.CombinedOutput(); err != nil {
		t.Fatalf("ffmpeg podcast fixture failed: %v\n%s", err, string(b))
	}

	// Gameplay fixture: silent moving test pattern.
	ff = exec.Command("ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", "testsrc=size=1280x720:rate=30:duration=40",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		gameplay,
	)
	if b, err := ff.CombinedOutput(); err != nil {
		t.Fatalf("ffmpeg gameplay fixture failed: %v\n%s", err, string(b))
	}

	settings := config.Default()
	settings.Tools.WhisperBin = whisperBin
	settings.Tools.WhisperModel = whisperModel

	outDir := filepath.Join(tmp, "out")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	cfg := pipeline.Config{
		PodcastInput:  podcast,
		GameplayInput: gameplay,
		OutDir:        outDir,
		CacheDir:      filepath.Join(tmp, "cache"),
		ClipsN:        2,
		BurnSubtitles: true,
		Settings:      settings,
		Logger:        slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	runDirs, err := filepath.Glob(filepath.Join(outDir, "*"))
	if err != nil || len(runDirs) != 1 {
		t.Fatalf("expected one run dir, got %v (err %v)", runDirs, err)
	}
	manifestPath := filepath.Join(runDirs[0], "manifest.json")
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("missing manifest: %v", err)
	}
	var m types.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}

	for _, clip := range m.Clips {
		if clip.DurationSec < 10 || clip.DurationSec > 60 {
			t.Fatalf("clip %s outside duration bounds: %v", clip.ID, clip.DurationSec)
		}
		clipPath := filepath.Join(runDirs[0], clip.File)
		sec, err := probeDurationSeconds(clipPath)
		if err != nil {
			t.Fatalf("probe clip %s: %v", clip.ID, err)
		}
		if diff := sec - clip.DurationSec; diff < -2 || diff > 2 {
			t.Fatalf("rendered duration %v drifts from manifest %v", sec, clip.DurationSec)
		}
	}
}
