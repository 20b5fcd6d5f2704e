package ytdlp

import (
	"fmt"
	"net/url"
	"strings"
)

var allowedHosts = map[string]struct{}{
	"youtube.com":     {},
	"www.youtube.com": {},
	"m.youtube.com":   {},
	"youtu.be":        {},
}

// IsURL reports whether the input looks like a remote video reference rather
// than a local path.
func IsURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// CleanURL normalizes a YouTube URL to its canonical watch form, stripping
// playlist and tracking parameters. Short youtu.be links are expanded. URLs
// without an extractable video id (shorts, live paths) pass through
// unchanged.
func CleanURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid video URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("invalid video URL %q: absolute URL with host is required", raw)
	}

	host := strings.ToLower(u.Hostname())
	if _, ok := allowedHosts[host]; !ok {
		return "", fmt.Errorf("unsupported video host %q", host)
	}

	if host == "youtu.be" {
		id := strings.Trim(u.Path, "/")
		if id == "" {
			return "", fmt.Errorf("no video id in URL %q", raw)
		}
		return "https://www.youtube.com/watch?v=" + id, nil
	}

	if id := u.Query().Get("v"); id != "" {
		return "https://www.youtube.com/watch?v=" + id, nil
	}
	return raw, nil
}
