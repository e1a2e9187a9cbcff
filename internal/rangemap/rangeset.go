package rangemap

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrOddSeedCount is returned when values cannot be read as (start, length) pairs.
var ErrOddSeedCount = errors.New("odd number of values cannot form range pairs")

// RangeSet is a collection of intervals owned by whoever is traversing it.
// It is a set: neither the order of its elements nor how fragments are cut
// carries meaning.
type RangeSet []Interval

// PairRanges reads values pairwise as (start, length). Pairs with zero length
// describe no values and are dropped.
func PairRanges(values []uint64) (RangeSet, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddSeedCount, len(values))
	}
	set := make(RangeSet, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		if values[i+1] == 0 {
			continue
		}
		iv, err := NewInterval(values[i], values[i+1])
		if err != nil {
			return nil, fmt.Errorf("range pair %d: %w", i/2, err)
		}
		set = append(set, iv)
	}
	return set, nil
}

// Map sends every interval through the stage and concatenates the results.
func (rs RangeSet) Map(s *Stage) RangeSet {
	out := make(RangeSet, 0, len(rs))
	for _, r := range rs {
		out = append(out, s.MapRange(r)...)
	}
	return out
}

// Min returns the smallest value covered by the set. Every interval is a run
// of consecutive rising integers, so the answer is always some interval's start.
func (rs RangeSet) Min() (uint64, bool) {
	if len(rs) == 0 {
		return 0, false
	}
	lowest := rs[0].Start
	for _, r := range rs[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, true
}

// Contains reports whether any interval holds v.
func (rs RangeSet) Contains(v uint64) bool {
	for _, r := range rs {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// TotalLength sums all interval lengths. The sum may exceed uint64.
func (rs RangeSet) TotalLength() *big.Int {
	total := new(big.Int)
	var n big.Int
	for _, r := range rs {
		total.Add(total, n.SetUint64(r.Length))
	}
	return total
}

// Values is a flat list of discrete values travelling through the stages.
type Values []uint64

// Map translates every value through the stage, preserving order.
func (vs Values) Map(s *Stage) Values {
	out := make(Values, len(vs))
	for i, v := range vs {
		out[i] = s.MapValue(v)
	}
	return out
}

// Min returns the smallest value.
func (vs Values) Min() (uint64, bool) {
	if len(vs) == 0 {
		return 0, false
	}
	lowest := vs[0]
	for _, v := range vs[1:] {
		lowest = min(lowest, v)
	}
	return lowest, true
}
