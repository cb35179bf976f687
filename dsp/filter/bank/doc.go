// Package bank provides a read-only registry of named IIR coefficient sets
// and the stream driver that applies them.
//
// A [Bank] is an ordered list of [Entry] values addressed by integer id.
// Id 0 is always the bypass entry ("no filter"); loaded sets follow as ids
// 1..N in source order. Every set is validated with [iir.New] when the bank
// is built, so a filter constructed from a bank entry never fails later.
//
// Selection is deliberately lenient: [Bank.Select] maps any id outside
// [0, Len()) to the bypass entry instead of failing. The second return value
// reports whether the requested id existed, so callers that need strict
// bounds checking can enforce it themselves.
//
// Banks are read from JSON:
//
//	{
//	  "filters": [
//	    {"description": "Moving average", "acoeff": [0.25, 0.25, 0.25, 0.25], "bcoeff": [1, 0, 0, 0]}
//	  ]
//	}
//
// acoeff is the feedforward (numerator) set and bcoeff the feedback
// (denominator) set. [Default] returns the bank compiled into the binary.
//
// Basic usage:
//
//	b := bank.Default()
//	results, err := bank.RunAll(b, []int{1, 3}, samples)
//	for _, r := range results {
//	    fmt.Println(r.Entry.Description, len(r.Output))
//	}
package bank
