// Package traversal drives range sets and value lists along a resolved stage
// path. Work per stage is proportional to the number of fragments times the
// number of sub-mappings, never to the size of the intervals.
package traversal
