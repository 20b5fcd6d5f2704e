package wavfile

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

// Decoder reads a WAV file into a normalized waveform buffer. Multi-channel
// input is downmixed to mono by averaging.
type Decoder struct{}

func New() *Decoder { return &Decoder{} }

func (d *Decoder) Decode(path string) (types.AudioBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.AudioBuffer{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return types.AudioBuffer{}, fmt.Errorf("not a valid wav file: %s", path)
	}

	var buf *audio.IntBuffer
	buf, err = dec.FullPCMBuffer()
	if err != nil {
		return types.AudioBuffer{}, fmt.Errorf("read pcm: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return types.AudioBuffer{}, fmt.Errorf("wav %s: missing format information", path)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = int(dec.BitDepth)
	}
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := math.Pow(2, float64(bitDepth-1))

	channels := buf.Format.NumChannels
	samples := make([]float64, 0, len(buf.Data)/channels)
	for i := 0; i+channels <= len(buf.Data); i += channels {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i+c])
		}
		samples = append(samples, sum/float64(channels)/scale)
	}

	return types.AudioBuffer{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}
