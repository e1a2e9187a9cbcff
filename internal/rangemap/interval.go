package rangemap

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyInterval is returned when an interval would have zero length.
	ErrEmptyInterval = errors.New("interval length must be positive")

	// ErrIntervalOverflow is returned when start+length does not fit in a uint64.
	ErrIntervalOverflow = errors.New("interval end overflows uint64")
)

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  uint64
	Length uint64
}

// NewInterval validates and returns an interval.
func NewInterval(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("%w: start %d", ErrEmptyInterval, start)
	}
	if length > math.MaxUint64-start {
		return Interval{}, fmt.Errorf("%w: start %d length %d", ErrIntervalOverflow, start, length)
	}
	return Interval{Start: start, Length: length}, nil
}

// End returns the exclusive upper bound.
func (i Interval) End() uint64 { return i.Start + i.Length }

// Contains reports whether v lies inside the interval.
func (i Interval) Contains(v uint64) bool {
	return v >= i.Start && v-i.Start < i.Length
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End())
}

// between builds [lo, hi). The caller guarantees lo < hi.
func between(lo, hi uint64) Interval {
	return Interval{Start: lo, Length: hi - lo}
}

// SubMapping sends [SourceStart, SourceStart+Length) to
// [DestinationStart, DestinationStart+Length).
type SubMapping struct {
	SourceStart      uint64
	DestinationStart uint64
	Length           uint64
}

// NewSubMapping validates both sides of the mapping. The argument order
// follows the almanac notation: destination first.
func NewSubMapping(destinationStart, sourceStart, length uint64) (SubMapping, error) {
	if _, err := NewInterval(sourceStart, length); err != nil {
		return SubMapping{}, fmt.Errorf("source range: %w", err)
	}
	if _, err := NewInterval(destinationStart, length); err != nil {
		return SubMapping{}, fmt.Errorf("destination range: %w", err)
	}
	return SubMapping{SourceStart: sourceStart, DestinationStart: destinationStart, Length: length}, nil
}

// Source returns the covered source interval.
func (m SubMapping) Source() Interval {
	return Interval{Start: m.SourceStart, Length: m.Length}
}

// translate moves a value that lies inside the source interval.
func (m SubMapping) translate(v uint64) uint64 {
	return m.DestinationStart + (v - m.SourceStart)
}
