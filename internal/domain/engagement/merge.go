package engagement

import (
	"strings"
	"time"

	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

// Merge folds consecutive transcript segments into longer combined
// candidates. A group closes once the running window reaches target, or at
// the end of the input; a closed group is kept only when it spans at least
// minKeep. Malformed segments (end <= start) are skipped rather than failing
// the whole pass.
func Merge(segs []types.Segment, target, minKeep time.Duration) []types.Candidate {
	// Guardrails keep callers safe from bad config while preserving useful
	// lower bounds.
	if target <= 0 {
		target = 30 * time.Second
	}
	if minKeep < 0 {
		minKeep = 0
	}

	var out []types.Candidate
	var parts []string
	var start, lastEnd time.Duration
	open := false

	for _, s := range segs {
		if s.End <= s.Start {
			continue
		}
		se := dur(s.End)
		if !open {
			start = dur(s.Start)
			parts = parts[:0]
			open = true
		}
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
		lastEnd = se
		if se-start >= target {
			if se-start >= minKeep {
				out = append(out, closeGroup(start, se, parts))
			}
			open = false
		}
	}
	// Rule (b): the trailing group closes at the end of the input even when
	// it never reached the target.
	if open && lastEnd-start >= minKeep {
		out = append(out, closeGroup(start, lastEnd, parts))
	}
	return out
}

func closeGroup(start, end time.Duration, parts []string) types.Candidate {
	return types.Candidate{
		Start:  start,
		End:    end,
		Text:   strings.Join(parts, " "),
		Source: types.SourceCombined,
	}
}

func dur(sec float64) time.Duration { return time.Duration(sec * float64(time.Second)) }
