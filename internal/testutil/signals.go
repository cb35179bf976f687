package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// TimeAxis returns n sample times spaced 1/sampleRate seconds apart.
func TimeAxis(sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / sampleRate
	}
	return out
}

// TelemetryCSV renders a log in the recorder's format: semicolon separated,
// decimal comma, one header row. temperature may be nil; otherwise it must
// have the same length as current.
func TelemetryCSV(times, current, temperature []float64) string {
	var sb strings.Builder
	sb.WriteString("N;Time, s;Current, A")
	if temperature != nil {
		sb.WriteString(";Temperature, C")
	}
	sb.WriteByte('\n')

	num := func(v float64) string {
		return strings.Replace(fmt.Sprintf("%g", v), ".", ",", 1)
	}
	for i := range current {
		fmt.Fprintf(&sb, "%d;%s;%s", i+1, num(times[i]), num(current[i]))
		if temperature != nil {
			fmt.Fprintf(&sb, ";%s", num(temperature[i]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
