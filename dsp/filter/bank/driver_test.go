package bank

import (
	"testing"

	"github.com/cwbudde/algo-telemetry/dsp/filter/iir"
	"github.com/cwbudde/algo-telemetry/internal/testutil"
)

func TestRun_MatchesProcessSample(t *testing.T) {
	b := Default()
	src := testutil.DeterministicNoise(3, 1, 256)
	orig := append([]float64(nil), src...)

	for _, e := range b.Entries() {
		f1, _, _, _ := b.NewFilter(e.ID)
		f2, _, _, _ := b.NewFilter(e.ID)

		want := make([]float64, len(src))
		for i, x := range src {
			want[i] = f1.ProcessSample(x)
		}

		testutil.RequireSliceNearlyEqual(t, Run(f2, src), want, 0)
	}

	testutil.RequireSliceNearlyEqual(t, src, orig, 0)
}

func TestRunAll_OrderAndFallback(t *testing.T) {
	b := Default()
	src := testutil.DeterministicSine(5, 1000, 1, 500)

	ids := []int{3, 0, 99, 1, 3}
	results, err := RunAll(b, ids, src)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != len(ids) {
		t.Fatalf("got %d results, want %d", len(results), len(ids))
	}

	for i, r := range results {
		if r.Requested != ids[i] {
			t.Errorf("result %d: Requested = %d, want %d", i, r.Requested, ids[i])
		}
		if len(r.Output) != len(src) {
			t.Errorf("result %d: %d samples, want %d", i, len(r.Output), len(src))
		}
	}

	if !results[2].Fallback || results[2].Entry.ID != BypassID {
		t.Errorf("id 99: got entry %d fallback=%v, want bypass fallback", results[2].Entry.ID, results[2].Fallback)
	}
	testutil.RequireSliceNearlyEqual(t, results[1].Output, src, 0)
	testutil.RequireSliceNearlyEqual(t, results[2].Output, src, 0)

	// Same id twice: separate filters, identical output.
	testutil.RequireSliceNearlyEqual(t, results[0].Output, results[4].Output, 0)

	e, _ := b.Select(3)
	f, err := iir.New(e.Coefficients)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, results[0].Output, Run(f, src), 0)
}

func TestRunAll_Empty(t *testing.T) {
	results, err := RunAll(Default(), nil, []float64{1, 2, 3})
	if err != nil || len(results) != 0 {
		t.Fatalf("RunAll(nil ids) = %v, %v", results, err)
	}

	results, err = RunAll(Default(), []int{1}, nil)
	if err != nil || len(results[0].Output) != 0 {
		t.Fatalf("RunAll(empty src) = %v, %v", results, err)
	}
}
