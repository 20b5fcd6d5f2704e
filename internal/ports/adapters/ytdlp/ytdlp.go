package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Adapter shells out to yt-dlp for remote video fetching.
type Adapter struct {
	bin string
}

func New(binPath string) *Adapter {
	if binPath == "" {
		binPath = "yt-dlp"
	}
	return &Adapter{bin: binPath}
}

// Download fetches the video behind rawURL into destDir and returns the path
// of the merged MP4.
func (a *Adapter) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	cleaned, err := CleanURL(rawURL)
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, a.bin,
		"--no-playlist",
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
		"--merge-output-format", "mp4",
		"-o", filepath.Join(destDir, "%(id)s.%(ext)s"),
		"--no-simulate",
		"--print", "after_move:filepath",
		cleaned,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w\n%s", err, stderr.String())
	}

	path := lastLine(stdout.String())
	if path == "" {
		return "", fmt.Errorf("yt-dlp did not report an output path for %s", cleaned)
	}
	return path, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
