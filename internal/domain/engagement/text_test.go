package engagement

import (
	"math"
	"testing"
)

func TestTextScorer_EmptyScoresZero(t *testing.T) {
	sc := NewTextScorer(stubSentiment{polarity: 1}, DefaultWeights())
	for _, text := range []string{"", "   ", "\t\n"} {
		if got := sc.Score(text); got != 0 {
			t.Fatalf("Score(%q) = %v, want 0", text, got)
		}
	}
}

func TestTextScorer_Components(t *testing.T) {
	tests := []struct {
		name     string
		polarity float64
		text     string
		want     float64
	}{
		{"sentiment only", -1, "bad", 0.3},
		{"questions capped", 0, "??", 0.3},
		{"single question", 0, "why?", 0.2},
		{"exclamations capped", 0, "!!", 0.2},
		{"laughter capped", 0, "haha lol lmao", 0.2},
		{"single laughter", 0, "lol", 0.1},
		{"length bonus", 0, "one two three four five", 0.1},
		{"plain word", 0, "hello", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewTextScorer(stubSentiment{polarity: tt.polarity}, DefaultWeights())
			got := sc.Score(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Score(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextScorer_Bounds(t *testing.T) {
	// Every signal maxed out still clamps to 1.
	sc := NewTextScorer(stubSentiment{polarity: 1}, DefaultWeights())
	text := "haha lol lmao is this real??? no way!!! seriously why how what when where did that even happen haha lol"
	got := sc.Score(text)
	if got < 0 || got > 1 {
		t.Fatalf("score out of bounds: %v", got)
	}
}

func TestTextScorer_ClampsPolarity(t *testing.T) {
	// A misbehaving sentiment collaborator must not push the term past its
	// weight.
	sc := NewTextScorer(stubSentiment{polarity: 5}, DefaultWeights())
	got := sc.Score("word")
	if math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("Score = %v, want 0.3", got)
	}
}
