package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ArjunSarkar1/ClipsMaker/internal/domain/engagement"
	"github.com/ArjunSarkar1/ClipsMaker/internal/domain/subtitles"
	"github.com/ArjunSarkar1/ClipsMaker/internal/ports"
	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

type Deps struct {
	Video      ports.VideoTool
	ASR        ports.ASR
	Audio      ports.AudioDecoder
	Engagement *engagement.Analyzer
	Logger     *slog.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Usecase{d: d}
}

type Input struct {
	PodcastMP4    string
	GameplayMP4   string
	ClipsN        int
	BurnSubtitles bool
	Subtitles     subtitles.Options
	CacheDir      string
	OutDir        string
	RunID         string
}

type Result struct {
	Manifest types.Manifest
}

// Run executes the full pipeline for already-local source files: audio
// extraction, transcription, engagement analysis, then per-clip subtitle and
// split-screen rendering. An analysis yielding no suitable candidates is a
// normal outcome producing an empty manifest.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	log := u.d.Logger

	wav := filepath.Join(in.CacheDir, "audio.wav")
	log.Info("extracting audio", "input", in.PodcastMP4)
	if err := u.d.Video.ExtractAudioMono16k(ctx, in.PodcastMP4, wav); err != nil {
		return Result{}, err
	}

	log.Info("transcribing audio")
	tr, err := u.d.ASR.Transcribe(ctx, wav, in.CacheDir)
	if err != nil {
		return Result{}, err
	}
	log.Info("transcript ready", "segments", len(tr.Segments))

	buf, err := u.d.Audio.Decode(wav)
	if err != nil {
		return Result{}, err
	}

	ranked := u.d.Engagement.Select(tr.Segments, buf)

	m := types.Manifest{
		RunID:    in.RunID,
		Podcast:  in.PodcastMP4,
		Gameplay: in.GameplayMP4,
	}
	if len(ranked) == 0 {
		log.Warn("no suitable engagement segments found; nothing to render")
		return Result{Manifest: m}, nil
	}

	n := in.ClipsN
	if n <= 0 || n > len(ranked) {
		n = len(ranked)
	}
	for i, sc := range ranked[:n] {
		id := fmt.Sprintf("%03d", i+1)
		clipPath := filepath.Join(in.OutDir, "clips", id+".mp4")
		log.Info("rendering clip",
			"id", id,
			"start", sc.Start,
			"end", sc.End,
			"score", sc.EngagementScore,
		)

		assRel := ""
		assPath := ""
		if in.BurnSubtitles {
			assRel = filepath.ToSlash(filepath.Join("subtitles", id+".ass"))
			assPath = filepath.Join(in.OutDir, "subtitles", id+".ass")
			ass := subtitles.RenderChunkedASS(tr, sc.Start, sc.End, in.Subtitles)
			if err := writeFile(assPath, []byte(ass)); err != nil {
				return Result{}, err
			}
		}

		if err := u.d.Video.RenderVerticalClip(ctx, in.PodcastMP4, in.GameplayMP4, sc.Start, sc.End, clipPath, assPath); err != nil {
			return Result{}, err
		}

		m.Clips = append(m.Clips, types.ManifestClip{
			ID:              id,
			StartSec:        sc.Start.Seconds(),
			EndSec:          sc.End.Seconds(),
			DurationSec:     sc.Duration().Seconds(),
			EngagementScore: sc.EngagementScore,
			Source:          string(sc.Source),
			Text:            sc.Text,
			File:            filepath.ToSlash(filepath.Join("clips", id+".mp4")),
			Subtitles:       assRel,
		})
	}

	return Result{Manifest: m}, nil
}

func writeFile(path string, b []byte) error {
	return os.WriteFile(path, b, 0o644)
}
