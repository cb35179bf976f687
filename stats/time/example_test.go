package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-telemetry/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	fmt.Printf("mean=%.1f std=%.1f var=%.1f\n", s.Mean, s.StdDev, s.Variance)

	// Output:
	// mean=5.0 std=2.0 var=4.0
}
