package subtitles

import (
	"fmt"
	"strings"
	"time"

	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

// Options controls subtitle pacing and styling.
type Options struct {
	WordsPerChunk int           // default 3
	Fade          time.Duration // fade in/out per chunk, default 300ms
	Highlight     bool          // apply the fade effect
	FontSize      int           // default 64
	MarginBottom  int           // default 100
}

func (o Options) withDefaults() Options {
	if o.WordsPerChunk <= 0 {
		o.WordsPerChunk = 3
	}
	if o.Fade <= 0 {
		o.Fade = 300 * time.Millisecond
	}
	if o.FontSize <= 0 {
		o.FontSize = 64
	}
	if o.MarginBottom <= 0 {
		o.MarginBottom = 100
	}
	return o
}

// DefaultOptions returns the short-form caption defaults with highlighting
// enabled.
func DefaultOptions() Options {
	o := Options{Highlight: true}
	return o.withDefaults()
}

// RenderChunkedASS builds an ASS subtitle track for the clip window
// [start, end]. Transcript segments fully inside the window are shifted to
// clip-local time and split into small word chunks that share the segment's
// duration evenly, pacing the captions the way short-form videos do.
func RenderChunkedASS(tr types.Transcript, start, end time.Duration, opts Options) string {
	opts = opts.withDefaults()
	chunks := chunkWindow(tr, start, end, opts.WordsPerChunk)

	var b strings.Builder
	b.WriteString(assHeader(opts))
	b.WriteString("\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	fadeMS := int(opts.Fade / time.Millisecond)
	for _, c := range chunks {
		b.WriteString("Dialogue: 0,")
		b.WriteString(assTime(c.start))
		b.WriteString(",")
		b.WriteString(assTime(c.end))
		b.WriteString(",Shorts,,0,0,0,,")
		// Very short chunks skip the fade so text never spends its whole
		// lifetime semi-transparent.
		if opts.Highlight && c.end-c.start > 2*opts.Fade {
			fmt.Fprintf(&b, "{\\fad(%d,%d)}", fadeMS, fadeMS)
		}
		b.WriteString(sanitizeASS(c.text))
		b.WriteString("\n")
	}
	return b.String()
}

type chunk struct {
	start time.Duration
	end   time.Duration
	text  string
}

func chunkWindow(tr types.Transcript, start, end time.Duration, wordsPerChunk int) []chunk {
	var out []chunk
	for _, s := range tr.Segments {
		ss, se := dur(s.Start), dur(s.End)
		if ss < start || se > end || se <= ss {
			continue
		}
		words := strings.Fields(s.Text)
		if len(words) == 0 {
			continue
		}
		groups := groupWords(words, wordsPerChunk)
		local := ss - start
		per := (se - ss) / time.Duration(len(groups))
		for i, g := range groups {
			out = append(out, chunk{
				start: local + time.Duration(i)*per,
				end:   local + time.Duration(i+1)*per,
				text:  g,
			})
		}
	}
	return out
}

func groupWords(words []string, n int) []string {
	var out []string
	for i := 0; i < len(words); i += n {
		j := i + n
		if j > len(words) {
			j = len(words)
		}
		out = append(out, strings.Join(words[i:j], " "))
	}
	return out
}

func assHeader(opts Options) string {
	return fmt.Sprintf(strings.TrimSpace(`
[Script Info]
ScriptType: v4.00+
PlayResX: 1080
PlayResY: 1920
ScaledBorderAndShadow: yes

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Shorts, Inter, %d, &H00FFFFFF, &H00FFD200, &H00000000, &H64000000, 1,0,0,0,100,100,0,0,1,6,2,2, 40,40,%d,1
`), opts.FontSize, opts.MarginBottom)
}

func assTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hs := int(d / time.Hour)
	d -= time.Duration(hs) * time.Hour
	ms := int(d / time.Minute)
	d -= time.Duration(ms) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second
	cs := int(d / (10 * time.Millisecond))
	return fmt.Sprintf("%d:%02d:%02d.%02d", hs, ms, s, cs)
}

func sanitizeASS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return strings.TrimSpace(s)
}

func dur(sec float64) time.Duration { return time.Duration(sec * float64(time.Second)) }
