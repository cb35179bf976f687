package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). With eps == 0 the
// elements must be bit-identical, so NaN matches only the same NaN and
// -0 does not match +0.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if i := firstMismatch(got, want, eps); i >= 0 {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)",
			i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
	}
}

// firstMismatch returns the index of the first pair outside eps, or -1.
// Both slices must have the same length.
func firstMismatch(got, want []float64, eps float64) int {
	for i := range got {
		if eps == 0 {
			if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
				return i
			}
			continue
		}
		if !(math.Abs(got[i]-want[i]) <= eps) {
			return i
		}
	}
	return -1
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
