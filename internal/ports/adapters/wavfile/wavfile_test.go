package wavfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeTestWAV(t *testing.T, path string, data []int, sampleRate, channels int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wav: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav: %v", err)
	}
}

func TestDecode_MonoNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	// Full-scale positive, zero, full-scale negative.
	writeTestWAV(t, path, []int{32767, 0, -32768, 16384}, 16000, 1)

	got, err := New().Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SampleRate != 16000 {
		t.Fatalf("sample rate = %d, want 16000", got.SampleRate)
	}
	if len(got.Samples) != 4 {
		t.Fatalf("sample count = %d, want 4", len(got.Samples))
	}
	for i, s := range got.Samples {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d not normalized: %v", i, s)
		}
	}
	if got.Samples[1] != 0 {
		t.Fatalf("zero sample decoded as %v", got.Samples[1])
	}
	if got.Samples[0] < 0.99 || got.Samples[2] > -0.99 {
		t.Fatalf("full-scale samples not near unit amplitude: %v, %v", got.Samples[0], got.Samples[2])
	}
}

func TestDecode_StereoDownmix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	// Two interleaved frames: (1000, 3000) and (-2000, -4000).
	writeTestWAV(t, path, []int{1000, 3000, -2000, -4000}, 8000, 2)

	got, err := New().Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Samples) != 2 {
		t.Fatalf("sample count = %d, want 2", len(got.Samples))
	}
	want0 := 2000.0 / 32768.0
	if diff := got.Samples[0] - want0; diff < -1e-9 || diff > 1e-9 {
		t.Fatalf("downmixed sample = %v, want %v", got.Samples[0], want0)
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New().Decode(path); err == nil {
		t.Fatalf("expected error for invalid file")
	}
}
