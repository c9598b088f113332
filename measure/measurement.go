// Package measure describes how much horizontal space a piece of content needs.
package measure

// Measurement is the range of cell widths a content unit can occupy.
// Min is the narrowest width the content renders at without corruption,
// Max is the width it would use given unlimited space.
type Measurement struct {
	Min int
	Max int
}

// Measurable is implemented by anything that can report its width range
// for a given budget. Implementations must be pure: the same budget always
// yields the same Measurement, and a larger budget never lowers Max.
type Measurable interface {
	Measure(budget int) Measurement
}

// MeasurableFunc adapts a plain function to Measurable.
type MeasurableFunc func(budget int) Measurement

// Measure calls f(budget).
func (f MeasurableFunc) Measure(budget int) Measurement {
	return f(budget)
}

// NewMeasurement returns a normalized Measurement for the given bounds.
func NewMeasurement(min, max int) Measurement {
	return Measurement{Min: min, Max: max}.Normalize()
}

// Exact returns a Measurement whose range is the single width w.
func Exact(w int) Measurement {
	return NewMeasurement(w, w)
}

// Normalize clamps negative bounds to zero and ensures Min <= Max.
func (m Measurement) Normalize() Measurement {
	m.Min = max(m.Min, 0)
	m.Max = max(m.Max, 0)
	if m.Min > m.Max {
		m.Min = m.Max
	}
	return m
}

// Span returns the difference between Max and Min.
func (m Measurement) Span() int {
	return m.Max - m.Min
}

// WithMaximum returns m with both bounds limited to w.
func (m Measurement) WithMaximum(w int) Measurement {
	return Measurement{Min: min(m.Min, w), Max: min(m.Max, w)}.Normalize()
}

// WithMinimum returns m with both bounds raised to at least w.
func (m Measurement) WithMinimum(w int) Measurement {
	w = max(w, 0)
	return Measurement{Min: max(m.Min, w), Max: max(m.Max, w)}
}

// Clamp limits m to [lo, hi]. A negative bound is ignored.
func (m Measurement) Clamp(lo, hi int) Measurement {
	if lo >= 0 {
		m = m.WithMinimum(lo)
	}
	if hi >= 0 {
		m = m.WithMaximum(hi)
	}
	return m
}

// Combine merges measurements as the smallest of the minimums and the
// largest of the maximums. ok is false when ms is empty.
func Combine(ms ...Measurement) (m Measurement, ok bool) {
	if len(ms) == 0 {
		return Measurement{}, false
	}
	m = ms[0]
	for _, other := range ms[1:] {
		m.Min = min(m.Min, other.Min)
		m.Max = max(m.Max, other.Max)
	}
	return m.Normalize(), true
}
