// Package spectrum computes one-sided amplitude spectra of telemetry series.
//
// [Amplitude] runs a forward FFT over the signal and returns |X[k]|/N for
// the positive-frequency bins, skipping DC and Nyquist. N is the number of
// input samples used, so a sine of amplitude A on an exact bin shows up as
// a peak of A/2.
//
// FFTs are computed with algo-fft over exactly the signal length; use
// [WithFFTSize] to truncate or zero pad.
package spectrum
