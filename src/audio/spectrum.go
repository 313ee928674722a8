package audio

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// ----- Spectrum ----- //

// Spectrum returns the windowed magnitude spectrum of samples, bins 0..n/2-1,
// normalized so a full-scale sine peaks near 0.5. samples is not modified.
func Spectrum(samples []float64) []float64 {
	n := len(samples)
	if n < 2 {
		return nil
	}
	x := make([]float64, n)
	copy(x, samples)
	Han(x)
	bins := fft.FFTReal(x)
	out := make([]float64, n/2)
	for i := range out {
		out[i] = cmplx.Abs(bins[i]) * 2 / float64(n)
	}
	return out
}

// DominantFrequency returns the centre frequency of the strongest non-DC bin.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	spectrum := Spectrum(samples)
	best := 0
	for i := 1; i < len(spectrum); i++ {
		if best == 0 || spectrum[i] > spectrum[best] {
			best = i
		}
	}
	if best == 0 {
		return 0
	}
	return float64(best) * float64(sampleRate) / float64(len(samples))
}
