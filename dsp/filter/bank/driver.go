package bank

import (
	"sync"

	"github.com/cwbudde/algo-telemetry/dsp/filter/iir"
)

// Result is the output of one filter pass driven by [RunAll].
type Result struct {
	Requested int   // id asked for
	Entry     Entry // entry actually applied
	Fallback  bool  // Requested was out of range and Entry is the bypass
	Output    []float64
}

// Run feeds src through f in order and returns the filtered samples.
// src is not modified.
func Run(f *iir.Filter, src []float64) []float64 {
	out := make([]float64, len(src))
	f.ProcessBlockTo(out, src)

	return out
}

// RunAll filters src once per id. Each id gets its own filter and runs on its
// own goroutine; results keep the order of ids.
func RunAll(b *Bank, ids []int, src []float64) ([]Result, error) {
	results := make([]Result, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()

			f, e, ok, err := b.NewFilter(id)
			if err != nil {
				errs[i] = err
				return
			}

			results[i] = Result{
				Requested: id,
				Entry:     e,
				Fallback:  !ok,
				Output:    Run(f, src),
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
