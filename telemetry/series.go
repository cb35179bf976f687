package telemetry

import (
	"math"
	"sort"
)

// OpenEnd is the end time that selects everything up to the last sample.
// Any end at or beyond it, including +Inf, behaves the same.
const OpenEnd = 1 << 32

// Series is a sampled signal with an ascending time axis in seconds.
// Time and Values always have the same length.
type Series struct {
	Time   []float64
	Values []float64
}

func (s *Series) append(t, v float64) {
	s.Time = append(s.Time, t)
	s.Values = append(s.Values, v)
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Values) }

// Start returns the first sample time, or 0 for an empty series.
func (s Series) Start() float64 {
	if len(s.Time) == 0 {
		return 0
	}

	return s.Time[0]
}

// End returns the last sample time, or 0 for an empty series.
func (s Series) End() float64 {
	if len(s.Time) == 0 {
		return 0
	}

	return s.Time[len(s.Time)-1]
}

// WithValues returns a series on the same time axis carrying values.
// values must have the same length as s.
func (s Series) WithValues(values []float64) Series {
	return Series{Time: s.Time, Values: values}
}

// Range returns the index range [lo, hi) covering begin <= t < end.
//
// The bounds are located by binary search for the first time >= bound, so
// the time axis must be ascending. begin <= 0 starts at the first sample and
// end >= [OpenEnd] runs to the last one.
func (s Series) Range(begin, end float64) (lo, hi int) {
	lo, hi = 0, len(s.Time)
	if begin > 0 {
		lo = sort.SearchFloat64s(s.Time, begin)
	}

	if end < OpenEnd && !math.IsNaN(end) {
		hi = sort.SearchFloat64s(s.Time, end)
	}

	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// Slice returns the samples with begin <= t < end, see [Series.Range].
// The result shares storage with s.
func (s Series) Slice(begin, end float64) Series {
	lo, hi := s.Range(begin, end)

	return Series{
		Time:   s.Time[lo:hi:hi],
		Values: s.Values[lo:hi:hi],
	}
}
