package engagement

import (
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/ArjunSarkar1/ClipsMaker/internal/ports"
	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

type Config struct {
	Weights Weights

	// TargetCombine is the duration the merger accumulates toward.
	TargetCombine time.Duration
	// MinClip and MaxClip bound the durations a candidate may have in the
	// final ranking.
	MinClip time.Duration
	MaxClip time.Duration
	// MaxResults caps the length of the returned ranking.
	MaxResults int
}

func DefaultConfig() Config {
	return Config{
		Weights:       DefaultWeights(),
		TargetCombine: 30 * time.Second,
		MinClip:       10 * time.Second,
		MaxClip:       60 * time.Second,
		MaxResults:    10,
	}
}

// Analyzer turns a raw timestamped transcript plus a decoded waveform into a
// ranked, duration-constrained list of clip candidates. It holds no model or
// engine handles; the sentiment and spectral capabilities are injected.
type Analyzer struct {
	cfg    Config
	text   *TextScorer
	audio  *AudioScorer
	logger *slog.Logger
}

func NewAnalyzer(cfg Config, sentiment ports.SentimentScorer, spectral ports.SpectralAnalyzer, logger *slog.Logger) *Analyzer {
	// Guardrails keep a zero-valued config usable.
	def := DefaultConfig()
	if cfg.TargetCombine <= 0 {
		cfg.TargetCombine = def.TargetCombine
	}
	if cfg.MinClip <= 0 {
		cfg.MinClip = def.MinClip
	}
	if cfg.MaxClip <= 0 || cfg.MaxClip < cfg.MinClip {
		cfg.MaxClip = def.MaxClip
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = def.MaxResults
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{
		cfg:    cfg,
		text:   NewTextScorer(sentiment, cfg.Weights),
		audio:  NewAudioScorer(spectral, cfg.Weights),
		logger: logger,
	}
}

// ScoreCandidate fuses the text and audio analyses into a single weighted
// engagement score.
func (a *Analyzer) ScoreCandidate(c types.Candidate, buf types.AudioBuffer) types.ScoredCandidate {
	textScore := a.text.Score(c.Text)
	audioScore := a.audio.Score(buf, c.Start, c.End)
	fused := clamp(a.cfg.Weights.Text*textScore+a.cfg.Weights.Audio*audioScore, 0, 1)
	return types.ScoredCandidate{Candidate: c, EngagementScore: fused}
}

// Select builds the candidate pool, scores it, filters by duration bounds,
// and returns at most MaxResults candidates sorted by engagement score
// descending. An empty transcript or an empty surviving set yields an empty
// result, not an error.
func (a *Analyzer) Select(segs []types.Segment, buf types.AudioBuffer) []types.ScoredCandidate {
	if len(segs) == 0 {
		return nil
	}

	pool := Merge(segs, a.cfg.TargetCombine, a.cfg.MinClip)
	combined := len(pool)

	// Atomic segments long enough to stand alone join the pool. Text overlap
	// with combined candidates is intentional; both windows compete on score.
	for _, s := range segs {
		if s.End <= s.Start {
			continue
		}
		start, end := dur(s.Start), dur(s.End)
		if end-start < a.cfg.MinClip {
			continue
		}
		pool = append(pool, types.Candidate{
			Start:  start,
			End:    end,
			Text:   strings.TrimSpace(s.Text),
			Source: types.SourceAtomic,
		})
	}
	a.logger.Debug("candidate pool built",
		"segments", len(segs),
		"combined", combined,
		"atomic", len(pool)-combined,
	)

	scored := make([]types.ScoredCandidate, 0, len(pool))
	for _, c := range pool {
		sc := a.ScoreCandidate(c, buf)
		if d := sc.Duration(); d < a.cfg.MinClip || d > a.cfg.MaxClip {
			continue
		}
		scored = append(scored, sc)
	}

	// Stable sort: ties keep original pool order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].EngagementScore > scored[j].EngagementScore
	})
	if len(scored) > a.cfg.MaxResults {
		scored = scored[:a.cfg.MaxResults]
	}

	a.logger.Info("engagement ranking complete", "candidates", len(pool), "selected", len(scored))
	for i, sc := range scored {
		a.logger.Debug("ranked candidate",
			"rank", i+1,
			"start", sc.Start,
			"end", sc.End,
			"score", sc.EngagementScore,
			"source", sc.Source,
		)
	}
	return scored
}
