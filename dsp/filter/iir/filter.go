package iir

import (
	"errors"
	"fmt"
)

// minOrder is the lowest order accepted for a non-empty coefficient set.
const minOrder = 3

var (
	// ErrConfiguration is matched by every construction failure.
	ErrConfiguration = errors.New("iir: invalid coefficient set")

	// ErrLengthMismatch reports feedforward and feedback slices of different length.
	ErrLengthMismatch = fmt.Errorf("%w: feedforward and feedback lengths differ", ErrConfiguration)

	// ErrOrderTooLow reports a non-empty coefficient set with order below 3.
	ErrOrderTooLow = fmt.Errorf("%w: order must be greater than 2", ErrConfiguration)
)

// Coefficients is a recurrence definition. Feedforward holds the numerator
// (acoeff) and Feedback the denominator (bcoeff); both have N+1 entries for
// a filter of order N. Two empty slices mark a bypass set.
//
// A Coefficients value is treated as immutable once handed to [New]: the
// filter borrows the slices instead of copying them.
type Coefficients struct {
	Feedforward []float64
	Feedback    []float64
	Description string
}

// IsBypass reports whether both coefficient slices are empty.
func (c Coefficients) IsBypass() bool {
	return len(c.Feedforward) == 0 && len(c.Feedback) == 0
}

// Order returns len(Feedforward)-1, or 0 for a bypass set.
func (c Coefficients) Order() int {
	if len(c.Feedforward) == 0 {
		return 0
	}

	return len(c.Feedforward) - 1
}

// Validate checks the coefficient constraints without building a filter.
func (c Coefficients) Validate() error {
	if len(c.Feedforward) != len(c.Feedback) {
		return fmt.Errorf("%w (%d != %d)", ErrLengthMismatch, len(c.Feedforward), len(c.Feedback))
	}

	if c.IsBypass() {
		return nil
	}

	if c.Order() < minOrder {
		return fmt.Errorf("%w (got %d)", ErrOrderTooLow, c.Order())
	}

	return nil
}

// Filter is a direct-form IIR filter with explicit input and output history.
//
// A Filter is either bypass or active for its whole lifetime. It is not safe
// for concurrent use; run independent streams on separate filters.
type Filter struct {
	coeffs Coefficients
	bypass bool
	order  int
	x      []float64 // past inputs, x[0] newest
	y      []float64 // past outputs, y[0] newest
}

// New creates a filter for the given coefficient set with zeroed history.
func New(c Coefficients) (*Filter, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.IsBypass() {
		return &Filter{coeffs: c, bypass: true}, nil
	}

	n := c.Order()

	return &Filter{
		coeffs: c,
		order:  n,
		x:      make([]float64, n+1),
		y:      make([]float64, n+1),
	}, nil
}

// ProcessSample filters one input sample and returns the output.
//
// Bypass filters return x unchanged. Active filters shift the history by one
// slot, store x as the newest input and evaluate the recurrence in index
// order, accumulating into the newest output slot.
func (f *Filter) ProcessSample(x float64) float64 {
	if f.bypass {
		return x
	}

	ff, fb := f.coeffs.Feedforward, f.coeffs.Feedback
	xs, ys := f.x, f.y

	copy(xs[1:], xs[:f.order])
	copy(ys[1:], ys[:f.order])

	xs[0] = x
	ys[0] = ff[0] * xs[0]
	for n := 1; n <= f.order; n++ {
		ys[0] += ff[n]*xs[n] - fb[n]*ys[n]
	}

	return ys[0]
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// IsBypass reports whether the filter passes samples through unchanged.
func (f *Filter) IsBypass() bool { return f.bypass }

// Order returns the filter order, 0 for bypass filters.
func (f *Filter) Order() int { return f.order }

// Coefficients returns the borrowed coefficient set. Callers must not modify
// the returned slices.
func (f *Filter) Coefficients() Coefficients { return f.coeffs }

// History returns copies of the input and output history, newest first.
// Both are nil for bypass filters.
func (f *Filter) History() (inputs, outputs []float64) {
	if f.bypass {
		return nil, nil
	}

	inputs = make([]float64, len(f.x))
	outputs = make([]float64, len(f.y))
	copy(inputs, f.x)
	copy(outputs, f.y)

	return inputs, outputs
}
