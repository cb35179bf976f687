// Package iir provides a generalized direct-form IIR filter runtime.
//
// A [Filter] applies a pre-computed [Coefficients] set to a stream of
// samples. It keeps the full explicit history of both inputs and outputs
// (index 0 newest) and evaluates
//
//	y[k] = ff[0]*x[k] + sum_{n=1}^{N} (ff[n]*x[k-n] - fb[n]*y[k-n])
//
// fb[0] is never read; the recurrence assumes it is normalized to 1.
//
// An empty coefficient set builds a bypass filter that returns every sample
// unchanged. Non-empty sets must have equal lengths and an order of at least
// three; anything else is rejected by [New] with an error matching
// [ErrConfiguration].
//
// The runtime performs no numeric checks. Unstable coefficients diverge and
// NaN or Inf values propagate through the output as ordinary samples.
//
// This package provides the processing runtime only. Coefficient design is a
// separate concern; named coefficient sets are supplied by dsp/filter/bank.
package iir
