package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Options controls the rendered clip geometry and encoding. Zero values fall
// back to the short-form defaults.
type Options struct {
	Width      int     // output width, default 1080
	Height     int     // output height, default 1920
	FPS        int     // default 30
	ZoomFactor float64 // per-pane zoom, default 1.3
	Codec      string  // default libx264
	AudioCodec string  // default aac
	Preset     string  // default veryfast
	CRF        int     // default 18
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1080
	}
	if o.Height <= 0 {
		o.Height = 1920
	}
	if o.FPS <= 0 {
		o.FPS = 30
	}
	if o.ZoomFactor <= 0 {
		o.ZoomFactor = 1.3
	}
	if o.Codec == "" {
		o.Codec = "libx264"
	}
	if o.AudioCodec == "" {
		o.AudioCodec = "aac"
	}
	if o.Preset == "" {
		o.Preset = "veryfast"
	}
	if o.CRF <= 0 {
		o.CRF = 18
	}
	return o
}

type Adapter struct {
	ffmpeg  string
	ffprobe string
	opts    Options
}

func New(ffmpegPath, ffprobePath string, opts Options) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath, opts: opts.withDefaults()}
}

func (a *Adapter) ExtractAudioMono16k(ctx context.Context, inMP4, outWav string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inMP4,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-f", "wav",
		outWav,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w\n%s", err, string(b))
	}
	return nil
}

// RenderVerticalClip stacks the podcast on top of the gameplay track in a
// 9:16 frame, keeping only the podcast audio. Each pane is zoomed and
// center-cropped to fill its half of the frame.
func (a *Adapter) RenderVerticalClip(ctx context.Context, podcastMP4, gameplayMP4 string, start, end time.Duration, outMP4, burnASS string) error {
	o := a.opts
	filter := a.buildFilter(burnASS)

	args := []string{
		"-y",
		"-ss", fmtSeconds(start),
		"-to", fmtSeconds(end),
		"-i", podcastMP4,
		"-ss", fmtSeconds(start),
		"-to", fmtSeconds(end),
		"-i", gameplayMP4,
		"-filter_complex", filter,
		"-map", "[v]",
		"-map", "0:a?",
		"-c:v", o.Codec,
		"-preset", o.Preset,
		"-crf", strconv.Itoa(o.CRF),
		"-r", strconv.Itoa(o.FPS),
		"-c:a", o.AudioCodec,
		"-b:a", "192k",
		"-shortest",
		outMP4,
	}
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg render clip: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) buildFilter(burnASS string) string {
	o := a.opts
	paneH := o.Height / 2
	pane := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=increase,scale=iw*%.2f:ih*%.2f,crop=%d:%d",
		o.Width, paneH, o.ZoomFactor, o.ZoomFactor, o.Width, paneH,
	)
	filter := fmt.Sprintf("[0:v]%s[top];[1:v]%s[bottom];[top][bottom]vstack=inputs=2[stacked]", pane, pane)
	if burnASS == "" {
		return filter + ";[stacked]null[v]"
	}
	return filter + ";[stacked]subtitles=" + escapeFilterPath(burnASS) + "[v]"
}

func (a *Adapter) ProbeDuration(ctx context.Context, inMP4 string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inMP4,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

func fmtSeconds(d time.Duration) string {
	sec := float64(d) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
