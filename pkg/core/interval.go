package core

import "math"

// Interval represents a closed range of scalar values
type Interval struct {
	Start, End float64
}

// EmptyInterval contains no values
var EmptyInterval = Interval{Start: math.Inf(1), End: math.Inf(-1)}

// UniverseInterval contains all values
var UniverseInterval = Interval{Start: math.Inf(-1), End: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.End - i.Start
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Start >= i.End
}

// Contains reports whether value lies within the interval, inclusive
func (i Interval) Contains(value float64) bool {
	return i.Start <= value && value <= i.End
}

// Surrounds reports whether value lies strictly within the interval
func (i Interval) Surrounds(value float64) bool {
	return i.Start < value && value < i.End
}

// Expand returns the interval padded symmetrically by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2.0
	return Interval{Start: i.Start - padding, End: i.End + padding}
}

// Union returns the smallest interval containing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{
		Start: math.Min(i.Start, other.Start),
		End:   math.Max(i.End, other.End),
	}
}

// Shift returns the interval translated by offset
func (i Interval) Shift(offset float64) Interval {
	return Interval{Start: i.Start + offset, End: i.End + offset}
}
