// Package time computes summary statistics of sampled telemetry signals.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds the summary printed for a telemetry series.
//
// Variance and StdDev are population values (divided by N, not N-1).
type Stats struct {
	Length   int
	Mean     float64
	Variance float64
	StdDev   float64
	RMS      float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Peak     float64 // max(|max|, |min|)
	Range    float64 // max - min
}

// Calculate computes all statistics. Mean and variance use Welford's online
// update for numerical stability. An empty signal yields the zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean  float64
		m2    float64
		sumSq float64
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
		sumSq += x * x
	}

	nf := float64(n)
	variance := m2 / nf

	maxPos := floats.MaxIdx(signal)
	minPos := floats.MinIdx(signal)
	maxVal, minVal := signal[maxPos], signal[minPos]

	return Stats{
		Length:   n,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		RMS:      math.Sqrt(sumSq / nf),
		Max:      maxVal,
		MaxPos:   maxPos,
		Min:      minVal,
		MinPos:   minPos,
		Peak:     math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Range:    maxVal - minVal,
	}
}

// Mean returns the arithmetic mean using Kahan summation.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Variance returns the population variance.
func Variance(signal []float64) float64 {
	return Calculate(signal).Variance
}

// StdDev returns the population standard deviation.
func StdDev(signal []float64) float64 {
	return Calculate(signal).StdDev
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}
