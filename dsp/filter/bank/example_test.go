package bank_test

import (
	"fmt"

	"github.com/cwbudde/algo-telemetry/dsp/filter/bank"
)

func ExampleDefault() {
	b := bank.Default()
	for _, e := range b.Entries() {
		fmt.Printf("%d) %s\n", e.ID, e.Description)
	}
	// Output:
	// 0) No filter
	// 1) Moving average, 4 taps
	// 2) Recursive smoother, order 3
	// 3) Butterworth LPF, order 3, fc = 0.05 fs
	// 4) Moving average, 8 taps
}

func ExampleBank_Select() {
	b := bank.Default()

	e, ok := b.Select(42)
	fmt.Println(e.ID, ok)
	// Output:
	// 0 false
}

func ExampleRunAll() {
	results, err := bank.RunAll(bank.Default(), []int{1, 2}, []float64{1, 1, 1, 1, 1})
	if err != nil {
		panic(err)
	}

	for _, r := range results {
		fmt.Printf("%s: %.4f\n", r.Entry.Description, r.Output)
	}
	// Output:
	// Moving average, 4 taps: [0.2500 0.5000 0.7500 1.0000 1.0000]
	// Recursive smoother, order 3: [0.2000 0.3800 0.5420 0.6878 0.6390]
}
