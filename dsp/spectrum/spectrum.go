package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput reports a signal without samples.
	ErrEmptyInput = errors.New("spectrum: empty input")

	// ErrSampleRate reports a non-positive sample rate.
	ErrSampleRate = errors.New("spectrum: sample rate must be > 0")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Spectrum is a one-sided amplitude spectrum. Freqs and Amps have the same
// length; Freqs[i] = (i+1) * SampleRate / FFTSize.
type Spectrum struct {
	Freqs      []float64
	Amps       []float64
	FFTSize    int
	SampleRate float64
}

// Resolution returns the bin spacing in Hz.
func (s Spectrum) Resolution() float64 {
	if s.FFTSize == 0 {
		return 0
	}
	return s.SampleRate / float64(s.FFTSize)
}

// Peak returns the frequency and amplitude of the largest bin. ok is false
// for an empty spectrum.
func (s Spectrum) Peak() (freq, amp float64, ok bool) {
	if len(s.Amps) == 0 {
		return 0, 0, false
	}

	best := 0
	for i, a := range s.Amps {
		if a > s.Amps[best] {
			best = i
		}
	}

	return s.Freqs[best], s.Amps[best], true
}

type config struct {
	fftSize int
}

// Option configures Amplitude.
type Option func(*config)

// WithFFTSize sets the transform length. Longer signals are truncated,
// shorter ones zero padded.
func WithFFTSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.fftSize = n
		}
	}
}

// Amplitude computes the one-sided amplitude spectrum of signal sampled at
// sampleRate Hz. The transform runs over exactly len(signal) samples unless
// [WithFFTSize] overrides it. Amplitudes are |X[k]| divided by the number of
// signal samples used; bins 1 .. n/2-1 are kept.
func Amplitude(signal []float64, sampleRate float64, opts ...Option) (Spectrum, error) {
	var cfg config
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	if !(sampleRate > 0) {
		return Spectrum{}, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}

	used := len(signal)
	if cfg.fftSize > 0 && cfg.fftSize < used {
		used = cfg.fftSize
	}
	if used == 0 {
		return Spectrum{}, ErrEmptyInput
	}

	n := max(used, cfg.fftSize)
	if n/2 <= 1 {
		return Spectrum{FFTSize: n, SampleRate: sampleRate}, nil
	}

	in := make([]complex128, n)
	for i, x := range signal[:used] {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: fft: %w", err)
	}

	// Bins 1 .. n/2-1.
	bins := out[1 : n/2]

	mag := make([]float64, len(bins))
	re, im, buf := getScratch(len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(mag, re, im)
	putScratch(buf)

	amps := make([]float64, len(bins))
	vecmath.ScaleBlock(amps, mag, 1/float64(used))

	freqs := make([]float64, len(bins))
	for i := range freqs {
		freqs[i] = float64(i+1) * sampleRate / float64(n)
	}

	return Spectrum{
		Freqs:      freqs,
		Amps:       amps,
		FFTSize:    n,
		SampleRate: sampleRate,
	}, nil
}
