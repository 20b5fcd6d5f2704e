package spectral

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Short-time analysis parameters, matching the common defaults of audio
// feature libraries.
const (
	frameLength = 2048
	hopLength   = 512
)

// Analyzer computes short-time spectral features over a waveform. It is
// stateless and safe to share.
type Analyzer struct{}

func New() *Analyzer { return &Analyzer{} }

// Features returns the per-frame spectral centroid in Hz and the per-frame
// zero-crossing rate. Input shorter than one frame is analyzed as a single
// truncated frame; empty input yields empty sequences.
func (a *Analyzer) Features(samples []float64, sampleRate int) ([]float64, []float64) {
	frames := frame(samples)
	if len(frames) == 0 {
		return nil, nil
	}

	fft := fourier.NewFFT(frameLength)
	centroids := make([]float64, 0, len(frames))
	zcr := make([]float64, 0, len(frames))
	buf := make([]float64, frameLength)
	for _, fr := range frames {
		zcr = append(zcr, zeroCrossingRate(fr))

		// Hann-window the frame, zero-pad the remainder.
		n := copy(buf, fr)
		window.Hann(buf[:n])
		for i := n; i < frameLength; i++ {
			buf[i] = 0
		}
		coeffs := fft.Coefficients(nil, buf)
		centroids = append(centroids, centroidHz(fft, coeffs, sampleRate))
	}
	return centroids, zcr
}

func frame(samples []float64) [][]float64 {
	if len(samples) == 0 {
		return nil
	}
	if len(samples) < frameLength {
		return [][]float64{samples}
	}
	var out [][]float64
	for i := 0; i+frameLength <= len(samples); i += hopLength {
		out = append(out, samples[i:i+frameLength])
	}
	return out
}

// centroidHz is the magnitude-weighted mean frequency of the spectrum.
func centroidHz(fft *fourier.FFT, coeffs []complex128, sampleRate int) float64 {
	var magSum, weighted float64
	for i, c := range coeffs {
		mag := math.Hypot(real(c), imag(c))
		magSum += mag
		weighted += fft.Freq(i) * float64(sampleRate) * mag
	}
	if magSum == 0 {
		return 0
	}
	return weighted / magSum
}

// zeroCrossingRate is the fraction of adjacent sample pairs whose signs
// differ.
func zeroCrossingRate(fr []float64) float64 {
	if len(fr) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(fr); i++ {
		if math.Signbit(fr[i]) != math.Signbit(fr[i-1]) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(fr))
}
