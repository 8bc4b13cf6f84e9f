package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// PowerSpectrum returns |X(k)| for the non-negative frequency bins of the
// series with its mean removed and zero-padded to a power of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	padded := make([]float64, nextPowerOf2(len(data)))
	copy(padded, data)
	floats.AddConst(-floats.Sum(data)/float64(len(data)), padded[:len(data)])

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak of a series sampled every dt seconds. The peak is refined by
// parabolic interpolation over its neighbours. It returns zero when the
// series is too short or flat.
func DominantFrequency(data []float64, dt float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 || dt <= 0 {
		return 0
	}

	peak := floats.MaxIdx(ps[1:]) + 1
	if ps[peak] == 0 {
		return 0
	}

	offset := 0.0
	if peak+1 < len(ps) {
		l, c, r := ps[peak-1], ps[peak], ps[peak+1]
		if d := l - 2*c + r; d != 0 {
			offset = 0.5 * (l - r) / d
		}
	}

	n := 2 * len(ps)
	return (float64(peak) + offset) / (float64(n) * dt)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
