// Package rangemap holds the interval primitives of the almanac engine: the
// half-open Interval, the fixed-offset SubMapping, the Stage that groups
// sub-mappings between two categories, and the RangeSet that is driven through
// stages.
//
// Mapping a range never enumerates its values. A Stage cuts an input interval at
// every boundary of every overlapping sub-mapping so that each resulting
// fragment maps uniformly, either by one sub-mapping's offset or by identity.
package rangemap
